package karatsuba

func mulRecursive(s *Splitter, x, y nat, depth int, st *Stats) nat {
	if s.isLeaf(x, y) {
		st.Leaves++
		return leafMul(x, y)
	}
	st.enter(depth + 1)

	p := s.split(x, y)
	s1, s2 := p.sums()
	z0 := mulRecursive(s, p.low1, p.low2, depth+1, st)
	z1 := mulRecursive(s, s1, s2, depth+1, st)
	z2 := mulRecursive(s, p.high1, p.high2, depth+1, st)
	return combine(z0, z1, z2, p.full, p.half)
}
