package karatsuba

import (
	"math/big"
	"sync"

	"golang.org/x/xerrors"
)

// DefaultDigitBits is the width of one digit of the split. The digit base
// is B = 2**DefaultDigitBits.
const DefaultDigitBits = 16

// maxDigitBits keeps every value below the digit base inside one Word on
// all platforms, so the leaf product is a single-word multiplication.
const maxDigitBits = 32

// SplitResult is the outcome of splitting one pair of operands at the
// half-point digit. FullShift is always twice HalfShift.
type SplitResult struct {
	FullShift uint
	HalfShift uint
	High1     *big.Int
	Low1      *big.Int
	High2     *big.Int
	Low2      *big.Int
}

// parts is the internal form of SplitResult.
type parts struct {
	full, half  uint
	high1, low1 nat
	high2, low2 nat
}

type shifts struct {
	full, half uint
}

// ShiftCache memoizes the (full, half) shift amounts of a split by the
// half-point digit count m2. The mapping is a pure function of m2 for a
// given digit width, so entries never go stale. A ShiftCache is safe for
// concurrent use and may be shared by several evaluators with the same
// digit width.
type ShiftCache struct {
	mu        sync.RWMutex
	digitBits uint
	m         map[int]shifts
}

// NewShiftCache returns an empty cache.
func NewShiftCache() *ShiftCache {
	return &ShiftCache{m: make(map[int]shifts)}
}

func (c *ShiftCache) get(m2 int, digitBits uint) shifts {
	c.mu.RLock()
	bound := c.digitBits
	s, ok := c.m[m2]
	c.mu.RUnlock()
	if ok && bound == digitBits {
		return s
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.m == nil {
		c.m = make(map[int]shifts)
	}
	if c.digitBits == 0 {
		c.digitBits = digitBits
	}
	if c.digitBits != digitBits {
		panic("karatsuba: shift cache shared between digit widths")
	}
	half := digitBits * uint(m2)
	s = shifts{full: 2 * half, half: half}
	c.m[m2] = s
	return s
}

// Len returns the number of memoized entries.
func (c *ShiftCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}

// Reset drops all entries and unbinds the cache from its digit width.
func (c *ShiftCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m = make(map[int]shifts)
	c.digitBits = 0
}

// Splitter divides operand pairs at the half-point of the shorter
// operand, counted in base 2**digitBits digits.
type Splitter struct {
	digitBits uint
	cache     *ShiftCache
}

// NewSplitter returns a Splitter for base 2**digitBits. cache may be nil,
// in which case the shift amounts are computed on every split.
func NewSplitter(digitBits uint, cache *ShiftCache) (*Splitter, error) {
	if digitBits == 0 || digitBits > maxDigitBits {
		return nil, xerrors.Errorf("%d bits: %w", digitBits, ErrDigitBits)
	}
	return &Splitter{digitBits: digitBits, cache: cache}, nil
}

// DigitBits returns the digit width of s.
func (s *Splitter) DigitBits() uint {
	return s.digitBits
}

// Split splits a and b. Both must be at least the digit base; smaller
// pairs are leaves and are multiplied directly.
func (s *Splitter) Split(a, b *big.Int) (SplitResult, error) {
	if a.Sign() < 0 || b.Sign() < 0 {
		return SplitResult{}, xerrors.Errorf("split: %w", ErrNegativeOperand)
	}
	x, y := newNat(a), newNat(b)
	if s.isLeaf(x, y) {
		return SplitResult{}, xerrors.Errorf("base 2**%d: %w", s.digitBits, ErrLeafOperand)
	}
	r := s.split(x, y)
	return SplitResult{
		FullShift: r.full,
		HalfShift: r.half,
		High1:     r.high1.toInt(),
		Low1:      r.low1.toInt(),
		High2:     r.high2.toInt(),
		Low2:      r.low2.toInt(),
	}, nil
}

func (s *Splitter) isLeaf(x, y nat) bool {
	return x.lessThanBase(s.digitBits) || y.lessThanBase(s.digitBits)
}

func (s *Splitter) shiftsFor(m2 int) shifts {
	if s.cache != nil {
		return s.cache.get(m2, s.digitBits)
	}
	half := s.digitBits * uint(m2)
	return shifts{full: 2 * half, half: half}
}

// split requires x, y >= 2**digitBits, so m2 >= 1.
func (s *Splitter) split(x, y nat) parts {
	m := x.digitCount(s.digitBits)
	if n := y.digitCount(s.digitBits); n < m {
		m = n
	}
	sh := s.shiftsFor(m / 2)

	r := parts{full: sh.full, half: sh.half}
	r.high1, r.low1 = halves(x, sh.half)
	r.high2, r.low2 = halves(y, sh.half)
	return r
}

// halves returns x >> s and x - (x >> s << s).
func halves(x nat, s uint) (high, low nat) {
	high = nat(nil).shr(x, s)
	low = nat(nil).sub(x, nat(nil).shl(high, s))
	return
}
