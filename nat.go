// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the unsigned multi-precision integers (natural
// numbers) the Karatsuba evaluators operate on. Only the operations the
// split and recombination steps need are provided.
//
// intBits, clear, norm, make, set, sub, alias and same are unchanged
// math/big code. newNat differs only in its panic message and
// shl only in its alias guard; add, bitLen and shr follow math/big's add,
// bitLen and rsh. toInt, mulWord, digitCount and lessThanBase are specific
// to this package.
//
// Caution: This implementation relies on the function "alias"
//          which assumes that (nat) slice capacities are never
//          changed (no 3-operand slice expressions). If that
//          changes, alias needs to be updated for correctness.

package karatsuba

import (
	"math/big"
	"math/bits"
)

// An unsigned integer x of the form
//
//	x = x[n-1]*2^(_W*(n-1)) + ... + x[1]*2^_W + x[0]
//
// is stored in a slice of length n, with the words x[i] as the slice
// elements. A number is normalized if the slice contains no leading 0
// words; the normalized representation of 0 is the empty or nil slice.
type nat []Word

func newNat(n *big.Int) nat {
	if n.Sign() < 0 {
		panic("karatsuba: negative number")
	}
	if n.BitLen() == 0 {
		return nil
	}
	// n is positive and non-zero
	zBits := n.Bits()
	z := make(nat, len(zBits))
	for i, d := range zBits {
		z[i] = Word(d)
	}
	return z
}

func (z nat) intBits() []big.Word {
	if len(z) == 0 {
		return nil
	}
	zBits := make([]big.Word, len(z))
	for i, d := range z {
		zBits[i] = big.Word(d)
	}
	return zBits
}

func (z nat) toInt() *big.Int {
	return new(big.Int).SetBits(z.intBits())
}

func (z nat) clear() {
	for i := range z {
		z[i] = 0
	}
}

func (z nat) norm() nat {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[0:i]
}

func (z nat) make(n int) nat {
	if n <= cap(z) {
		return z[:n] // reuse z
	}
	if n == 1 {
		// Most nats start small and stay that way; don't over-allocate.
		return make(nat, 1)
	}
	const e = 4 // extra capacity
	return make(nat, n, n+e)
}

func (z nat) set(x nat) nat {
	z = z.make(len(x))
	copy(z, x)
	return z
}

func (z nat) add(x, y nat) nat {
	m := len(x)
	n := len(y)

	switch {
	case m < n:
		return z.add(y, x)
	case m == 0:
		// n == 0 because m >= n; result is 0
		return z[:0]
	case n == 0:
		// result is x
		return z.set(x)
	}
	// m >= n > 0

	z = z.make(m + 1)
	c := addVV(z[0:n], x, y)
	if m > n {
		c = addVW(z[n:m], x[n:], c)
	}
	z[m] = c

	return z.norm()
}

// sub panics if x < y.
func (z nat) sub(x, y nat) nat {
	m := len(x)
	n := len(y)

	switch {
	case m < n:
		panic("underflow")
	case m == 0:
		// n == 0 because m >= n; result is 0
		return z[:0]
	case n == 0:
		// result is x
		return z.set(x)
	}
	// m > 0

	z = z.make(m)
	c := subVV(z[0:n], x, y)
	if m > n {
		c = subVW(z[n:], x[n:], c)
	}
	if c != 0 {
		panic("underflow")
	}

	return z.norm()
}

// mulWord sets z = x*y for a single word y. It is the leaf product of both
// evaluators: one of the operands of a leaf pair is always below the digit
// base and therefore fits a Word.
func (z nat) mulWord(x nat, y Word) nat {
	m := len(x)
	if m == 0 || y == 0 {
		return z[:0]
	}
	// m > 0

	if alias(z, x) {
		z = nil
	}
	z = z.make(m + 1)
	z[m] = mulAddVWW(z[0:m], x, y, 0)

	return z.norm()
}

// alias reports whether x and y share the same base array.
//
// Note: alias assumes that the capacity of underlying arrays
// is never changed for nat values; i.e. that there are
// no 3-operand slice expressions in this code (or worse,
// reflect-based operations to the same effect).
func alias(x, y nat) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}

func same(x, y nat) bool {
	return len(x) == len(y) && len(x) > 0 && &x[0] == &y[0]
}

// bitLen returns the length of x in bits.
// Unlike most methods, it works even if x is not normalized.
func (x nat) bitLen() int {
	if i := len(x) - 1; i >= 0 {
		return i*_W + bits.Len(uint(x[i]))
	}
	return 0
}

// digitCount returns the number of base 2**digitBits digits of x, that is
// the number of times x has to be shifted right by digitBits before it
// reaches zero. digitCount of 0 is 0.
func (x nat) digitCount(digitBits uint) int {
	return (x.bitLen() + int(digitBits) - 1) / int(digitBits)
}

// lessThanBase reports whether x < 2**digitBits.
func (x nat) lessThanBase(digitBits uint) bool {
	return x.bitLen() <= int(digitBits)
}

// z = x << s
func (z nat) shl(x nat, s uint) nat {
	if s == 0 {
		if same(z, x) {
			return z
		}
		if !alias(z, x) {
			return z.set(x)
		}
	}

	m := len(x)
	if m == 0 {
		return z[:0]
	}
	// m > 0

	if alias(z, x) {
		z = nil
	}
	n := m + int(s/_W)
	z = z.make(n + 1)
	z[n] = shlVU(z[n-m:n], x, s%_W)
	z[0 : n-m].clear()

	return z.norm()
}

// z = x >> s
func (z nat) shr(x nat, s uint) nat {
	if s == 0 {
		if same(z, x) {
			return z
		}
		if !alias(z, x) {
			return z.set(x)
		}
	}

	m := len(x)
	n := m - int(s/_W)
	if n <= 0 {
		return z[:0]
	}
	// n > 0

	if alias(z, x) {
		z = nil
	}
	z = z.make(n)
	shrVU(z, x[m-n:], s%_W)

	return z.norm()
}
