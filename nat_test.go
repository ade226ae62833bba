package karatsuba

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randInt returns a random integer with up to n bits.
func randInt(r *rand.Rand, n int) *big.Int {
	max := new(big.Int).Lsh(big.NewInt(1), uint(n))
	return new(big.Int).Rand(r, max)
}

func natFromString(t *testing.T, s string) nat {
	t.Helper()
	n, ok := new(big.Int).SetString(s, 0)
	require.True(t, ok, "bad literal %q", s)
	return newNat(n)
}

func TestNatRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		x := randInt(r, i*13)
		assert.Equal(t, 0, x.Cmp(newNat(x).toInt()))
	}
	assert.Nil(t, newNat(new(big.Int)))
	assert.Equal(t, 0, nat(nil).toInt().Sign())
}

func TestNewNatNegative(t *testing.T) {
	assert.PanicsWithValue(t, "karatsuba: negative number", func() {
		newNat(big.NewInt(-1))
	})
}

func TestNatArithmetic(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		a := randInt(r, r.Intn(600))
		b := randInt(r, r.Intn(600))
		x, y := newNat(a), newNat(b)

		want := new(big.Int).Add(a, b)
		assert.Equal(t, 0, want.Cmp(nat(nil).add(x, y).toInt()), "%v + %v", a, b)

		hi, lo := a, b
		if a.Cmp(b) < 0 {
			hi, lo = b, a
		}
		want = new(big.Int).Sub(hi, lo)
		assert.Equal(t, 0, want.Cmp(nat(nil).sub(newNat(hi), newNat(lo)).toInt()), "%v - %v", hi, lo)

		s := uint(r.Intn(300))
		want = new(big.Int).Lsh(a, s)
		assert.Equal(t, 0, want.Cmp(nat(nil).shl(x, s).toInt()), "%v << %d", a, s)
		want = new(big.Int).Rsh(a, s)
		assert.Equal(t, 0, want.Cmp(nat(nil).shr(x, s).toInt()), "%v >> %d", a, s)

		assert.Equal(t, a.BitLen(), x.bitLen())
	}
}

func TestNatInPlace(t *testing.T) {
	x := natFromString(t, "0xffffffffffffffffffffffffffffffff")
	y := natFromString(t, "0x1")

	z := nat(nil).set(x)
	z = z.add(z, y)
	assert.Equal(t, "340282366920938463463374607431768211456", z.toInt().String())

	z = z.sub(z, y)
	assert.Equal(t, x, z)

	z = z.shl(z, 70)
	z = z.shr(z, 70)
	assert.Equal(t, x, z)
}

func TestNatSubUnderflow(t *testing.T) {
	assert.PanicsWithValue(t, "underflow", func() {
		nat(nil).sub(natFromString(t, "5"), natFromString(t, "6"))
	})
	assert.PanicsWithValue(t, "underflow", func() {
		nat(nil).sub(natFromString(t, "5"), natFromString(t, "0x10000000000000000"))
	})
}

func TestNatMulWord(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		a := randInt(r, r.Intn(1000))
		w := Word(r.Uint32())
		want := new(big.Int).Mul(a, new(big.Int).SetUint64(uint64(w)))
		assert.Equal(t, 0, want.Cmp(nat(nil).mulWord(newNat(a), w).toInt()))
	}
	assert.Len(t, nat(nil).mulWord(natFromString(t, "12345"), 0), 0)
	assert.Len(t, nat(nil).mulWord(nil, 7), 0)
}

// digitsByShift counts digits by shifting right until x reaches zero.
func digitsByShift(x nat, digitBits uint) int {
	n := 0
	for len(x) > 0 {
		x = nat(nil).shr(x, digitBits)
		n++
	}
	return n
}

func TestNatDigitCount(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for _, digitBits := range []uint{1, 7, 8, 16, 31, 32} {
		for i := 0; i < 100; i++ {
			x := newNat(randInt(r, r.Intn(700)))
			assert.Equal(t, digitsByShift(x, digitBits), x.digitCount(digitBits),
				"digits of %v in base 2**%d", x.toInt(), digitBits)
		}
	}

	tests := []struct {
		x    string
		want int
	}{
		{"0", 0},
		{"1", 1},
		{"0xffff", 1},
		{"0x10000", 2},
		{"0xffffffff", 2},
		{"0x100000000", 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, natFromString(t, tt.x).digitCount(16), tt.x)
	}
}

func TestNatLessThanBase(t *testing.T) {
	assert.True(t, nat(nil).lessThanBase(16))
	assert.True(t, natFromString(t, "0xffff").lessThanBase(16))
	assert.False(t, natFromString(t, "0x10000").lessThanBase(16))
	assert.True(t, natFromString(t, "0xff").lessThanBase(8))
	assert.False(t, natFromString(t, "0x100").lessThanBase(8))
}
