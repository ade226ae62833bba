/*
Package karatsuba multiplies arbitrary-precision non-negative integers with
the Karatsuba divide-and-conquer algorithm.

Each operand pair is split at the half-point of the shorter operand,
counted in base 2**16 digits:

	a = high1*2^h + low1
	b = high2*2^h + low2

and the product is recombined from three half-size products

	z0 = low1*low2
	z1 = (low1+high1)*(low2+high2)
	z2 = high1*high2
	a*b = z2<<2h + (z1-z2-z0)<<h + z0

until one operand of a pair is below the digit base, where the pair is
multiplied directly.

Two strategies walk the resulting ternary tree. MultiplyRecursive recurses;
MultiplyIterative runs a stack machine on the heap and returns exactly the
same values. An Evaluator selects the strategy and digit width explicitly,
reports the tree shape and logs through zap.
*/
package karatsuba
