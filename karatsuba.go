package karatsuba

// Stats describes the recursion tree walked by one multiplication.
type Stats struct {
	Strategy Strategy
	// Splits is the number of internal nodes, each one call of the splitter.
	Splits int
	// Leaves is the number of direct products.
	Leaves int
	// MaxDepth is the largest number of internal nodes waiting for their
	// children at the same time.
	MaxDepth int
	// MaxPending is the deepest the work stack grew. Iterative only.
	MaxPending int
}

func (st *Stats) enter(depth int) {
	st.Splits++
	if depth > st.MaxDepth {
		st.MaxDepth = depth
	}
}

// leafMul multiplies a pair in which at least one operand is below the
// digit base, and so has at most one word.
func leafMul(x, y nat) nat {
	if len(x) > len(y) {
		x, y = y, x
	}
	// len(x) <= 1
	if len(x) == 0 {
		return nil
	}
	return nat(nil).mulWord(y, x[0])
}

// combine returns z2<<full + (z1-z2-z0)<<half + z0.
//
// z1 = (l1+h1)*(l2+h2) = z0 + z2 + l1*h2 + h1*l2, so the middle term is
// never negative and the unsigned subtraction cannot underflow.
func combine(z0, z1, z2 nat, full, half uint) nat {
	mid := nat(nil).sub(z1, z2)
	mid = mid.sub(mid, z0)

	z := nat(nil).shl(z2, full)
	z = z.add(z, nat(nil).shl(mid, half))
	return z.add(z, z0)
}

// sums returns l1+h1 and l2+h2, the operands of the middle product.
func (p *parts) sums() (nat, nat) {
	return nat(nil).add(p.low1, p.high1), nat(nil).add(p.low2, p.high2)
}
