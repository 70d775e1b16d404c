package polyexpr

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrDivisionByZero is matched by every error returned when an integer
// division has a zero divisor.
var ErrDivisionByZero = errors.New("division by zero")

// DivisionByZeroError is returned by Evaluate and Simplify when the divisor of
// a division is zero.
type DivisionByZeroError struct {
	// The division node that failed.
	Node *Binary
	// Value of the dividend at the time of failure.
	Dividend *big.Int
}

func (d *DivisionByZeroError) Error() string {
	return fmt.Sprintf("%s in %q", ErrDivisionByZero, d.Node.String())
}

// Is makes DivisionByZeroError match ErrDivisionByZero with errors.Is.
func (d *DivisionByZeroError) Is(target error) bool { return target == ErrDivisionByZero }

func divisionByZero(node *Binary, dividend *big.Int) error {
	return &DivisionByZeroError{Node: node, Dividend: new(big.Int).Set(dividend)}
}
