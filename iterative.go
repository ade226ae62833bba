package karatsuba

// Branch tags of the three children of an internal node.
const (
	branchLow  = 0 // low1 * low2
	branchMid  = 1 // (low1+high1) * (low2+high2)
	branchHigh = 2 // high1 * high2
)

// task is a multiplication waiting on the work stack.
type task struct {
	x, y   nat
	branch int
}

// frame is an expanded internal node waiting for its three children.
type frame struct {
	branch     int
	full, half uint
}

// mulIterative walks the same ternary tree as mulRecursive in the same
// order, with heap stacks instead of the call stack.
//
// Completed products collect in three slot stacks, one per branch tag.
// A leaf goes to the slot given by a counter that is reset whenever an
// internal node is expanded and saturates at branchHigh. That counter
// always matches the leaf's branch tag: a low child that is internal has
// both halves at or above the base, so its middle sibling is internal too,
// and every subtree ends on a high leaf, leaving the counter at branchHigh.
// The high child of a node is always the last one to complete, so a
// non-empty high slot means the top entries of all three slots belong to
// the node on top of the frame stack.
func mulIterative(s *Splitter, x, y nat, st *Stats) nat {
	if s.isLeaf(x, y) {
		st.Leaves++
		return leafMul(x, y)
	}

	work := []task{{x: x, y: y, branch: branchLow}}
	var (
		frames []frame
		slots  [3][]nat
		leaf   int
	)

	for len(work) > 0 {
		if len(work) > st.MaxPending {
			st.MaxPending = len(work)
		}
		t := work[len(work)-1]
		work = work[:len(work)-1]

		if !s.isLeaf(t.x, t.y) {
			p := s.split(t.x, t.y)
			frames = append(frames, frame{branch: t.branch, full: p.full, half: p.half})
			st.enter(len(frames))
			leaf = branchLow

			s1, s2 := p.sums()
			// pushed high first so that the low child is taken first
			work = append(work,
				task{x: p.high1, y: p.high2, branch: branchHigh},
				task{x: s1, y: s2, branch: branchMid},
				task{x: p.low1, y: p.low2, branch: branchLow},
			)
		} else {
			st.Leaves++
			slots[leaf] = append(slots[leaf], leafMul(t.x, t.y))
			if leaf < branchHigh {
				leaf++
			}
		}

		for len(slots[branchHigh]) > 0 {
			if len(frames) == 0 || len(slots[branchLow]) == 0 || len(slots[branchMid]) == 0 {
				panic("karatsuba: unbalanced result slots")
			}
			f := frames[len(frames)-1]
			frames = frames[:len(frames)-1]

			z0 := pop(&slots[branchLow])
			z1 := pop(&slots[branchMid])
			z2 := pop(&slots[branchHigh])
			slots[f.branch] = append(slots[f.branch], combine(z0, z1, z2, f.full, f.half))
		}
	}

	if len(frames) != 0 || len(slots[branchLow]) != 1 || len(slots[branchMid]) != 0 {
		panic("karatsuba: unbalanced result slots")
	}
	return slots[branchLow][0]
}

func pop(s *[]nat) nat {
	v := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return v
}
