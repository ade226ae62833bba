package karatsuba

import "golang.org/x/xerrors"

var (
	// ErrNegativeOperand is returned when an operand is below zero.
	ErrNegativeOperand = xerrors.New("karatsuba: negative operand")
	// ErrLeafOperand is returned by Split when an operand is below the
	// digit base; such pairs are multiplied directly.
	ErrLeafOperand = xerrors.New("karatsuba: operand below digit base")
	// ErrDigitBits is returned for a digit width outside 1..32.
	ErrDigitBits = xerrors.New("karatsuba: invalid digit width")
	// ErrStrategy is returned for an unknown evaluation strategy.
	ErrStrategy = xerrors.New("karatsuba: unknown strategy")
)
