package karatsuba

//go:generate stringer -type=Strategy

// Strategy selects how an Evaluator walks the Karatsuba recursion tree.
// Both strategies return identical results.
type Strategy int

const (
	// Recursive evaluates the tree with ordinary recursive calls.
	Recursive Strategy = iota
	// Iterative evaluates the tree with explicit heap stacks and never
	// recurses.
	Iterative
)

func (s Strategy) valid() bool {
	return s == Recursive || s == Iterative
}
