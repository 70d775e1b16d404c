package polyexpr

import (
	"errors"
	"math/big"
)

var one = big.NewInt(1)

// Apply the operator to l and r.
//
// Division is floor division and returns ErrDivisionByZero if r is zero.
func (o Operator) Apply(l, r *big.Int) (*big.Int, error) {
	switch o {
	case OpAdd:
		return new(big.Int).Add(l, r), nil
	case OpSub:
		return new(big.Int).Sub(l, r), nil
	case OpMul:
		return new(big.Int).Mul(l, r), nil
	case OpDiv:
		if r.Sign() == 0 {
			return nil, ErrDivisionByZero
		}
		return floorDiv(l, r), nil
	}
	panic("unsupported operator")
}

// floorDiv rounds the quotient toward negative infinity. big.Int.Div is
// Euclidean, which differs for negative divisors.
func floorDiv(l, r *big.Int) *big.Int {
	q, m := new(big.Int).QuoRem(l, r, new(big.Int))
	if m.Sign() != 0 && m.Sign() != r.Sign() {
		q.Sub(q, one)
	}
	return q
}

// Evaluate e with the variable bound to x.
//
// A *DivisionByZeroError is returned if any divisor evaluates to zero.
func Evaluate(e Expr, x *big.Int) (*big.Int, error) {
	switch e := e.(type) {
	case *Variable:
		return new(big.Int).Set(x), nil

	case *Literal:
		return e.Value(), nil

	case *Binary:
		l, err := Evaluate(e.Left, x)
		if err != nil {
			return nil, err
		}
		r, err := Evaluate(e.Right, x)
		if err != nil {
			return nil, err
		}
		v, err := e.Op.Apply(l, r)
		if errors.Is(err, ErrDivisionByZero) {
			return nil, divisionByZero(e, l)
		}
		return v, err
	}
	panic("unsupported node")
}

// EvaluateInt is a convenience wrapper around Evaluate.
func EvaluateInt(e Expr, x int64) (*big.Int, error) {
	return Evaluate(e, big.NewInt(x))
}
