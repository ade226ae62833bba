package karatsuba

import (
	"crypto/rand"
	"math/big"
	"sync"
	"testing"
)

const numBits = 20000

var (
	benchRandLimit     *big.Int
	onceBenchRandLimit sync.Once
	benchA, benchB     *big.Int
	onceBenchOperands  sync.Once
)

func getBenchRandLimit() *big.Int {
	onceBenchRandLimit.Do(func() {
		benchRandLimit = new(big.Int).SetInt64(1)
		benchRandLimit.Lsh(benchRandLimit, numBits)
	})
	return benchRandLimit
}

func getBenchOperands() (*big.Int, *big.Int) {
	onceBenchOperands.Do(func() {
		benchA, _ = rand.Int(rand.Reader, getBenchRandLimit())
		benchB, _ = rand.Int(rand.Reader, getBenchRandLimit())
	})
	return benchA, benchB
}

// getDecimalPairs returns one operand pair for every decimal length from 2
// to 250 digits.
func getDecimalPairs(b *testing.B) [][2]*big.Int {
	ten := big.NewInt(10)
	pairs := make([][2]*big.Int, 0, 249)
	for digits := int64(2); digits <= 250; digits++ {
		max := new(big.Int).Exp(ten, big.NewInt(digits), nil)
		x, err := rand.Int(rand.Reader, max)
		if err != nil {
			b.Fatal(err)
		}
		y, err := rand.Int(rand.Reader, max)
		if err != nil {
			b.Fatal(err)
		}
		pairs = append(pairs, [2]*big.Int{x, y})
	}
	return pairs
}

func BenchmarkBigIntMul(b *testing.B) {
	x, y := getBenchOperands()
	b.ResetTimer()
	var result big.Int
	for i := 0; i < b.N; i++ {
		result.Mul(x, y)
	}
}

func BenchmarkMultiplyRecursive(b *testing.B) {
	x, y := getBenchOperands()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		MultiplyRecursive(x, y)
	}
}

func BenchmarkMultiplyIterative(b *testing.B) {
	x, y := getBenchOperands()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		MultiplyIterative(x, y)
	}
}

func BenchmarkDecimalPairsRecursive(b *testing.B) {
	pairs := getDecimalPairs(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, p := range pairs {
			MultiplyRecursive(p[0], p[1])
		}
	}
}

func BenchmarkDecimalPairsIterative(b *testing.B) {
	pairs := getDecimalPairs(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, p := range pairs {
			MultiplyIterative(p[0], p[1])
		}
	}
}

func BenchmarkIterativeNoCache(b *testing.B) {
	e, err := NewEvaluator(WithoutShiftCache())
	if err != nil {
		b.Fatal(err)
	}
	x, y := getBenchOperands()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.Multiply(x, y); err != nil {
			b.Fatal(err)
		}
	}
}
