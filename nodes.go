package polyexpr

import "math/big"

// Operator of a Binary node.
type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
)

func (o Operator) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	}
	panic("unsupported operator")
}

// Variable is the single free variable X.
type Variable struct{}

// X returns the free variable.
func X() *Variable { return &Variable{} }

func (*Variable) expr() {}

// Literal is an integer constant.
type Literal struct {
	v *big.Int
}

// Int returns a Literal with the value i.
func Int(i int64) *Literal { return &Literal{v: big.NewInt(i)} }

// BigInt returns a Literal holding a copy of i.
func BigInt(i *big.Int) *Literal { return &Literal{v: new(big.Int).Set(i)} }

// Value returns a copy of the literal's value.
func (l *Literal) Value() *big.Int { return new(big.Int).Set(l.v) }

// Is returns true if the literal is equal to i.
func (l *Literal) Is(i int64) bool { return l.v.IsInt64() && l.v.Int64() == i }

func (*Literal) expr() {}

// Binary applies Op to Left and Right.
//
// Both children are owned by the node.
type Binary struct {
	Op    Operator
	Left  Expr
	Right Expr
}

// NewBinary returns a Binary node applying op to left and right.
func NewBinary(op Operator, left, right Expr) *Binary {
	return &Binary{Op: op, Left: left, Right: right}
}

// Add returns "left + right".
func Add(left, right Expr) *Binary { return NewBinary(OpAdd, left, right) }

// Sub returns "left - right".
func Sub(left, right Expr) *Binary { return NewBinary(OpSub, left, right) }

// Mul returns "left * right".
func Mul(left, right Expr) *Binary { return NewBinary(OpMul, left, right) }

// Div returns "left / right", using floor division.
func Div(left, right Expr) *Binary { return NewBinary(OpDiv, left, right) }

func (*Binary) expr() {}

// Equal returns true if a and b are structurally identical trees.
func Equal(a, b Expr) bool {
	switch a := a.(type) {
	case *Variable:
		_, ok := b.(*Variable)
		return ok

	case *Literal:
		b, ok := b.(*Literal)
		return ok && a.v.Cmp(b.v) == 0

	case *Binary:
		b, ok := b.(*Binary)
		return ok && a.Op == b.Op && Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
	}
	panic("unsupported node")
}

// asLiteral returns e as a *Literal if it is one.
func asLiteral(e Expr) (*Literal, bool) {
	l, ok := e.(*Literal)
	return l, ok
}

// isLiteral returns true if e is a Literal with the value i.
func isLiteral(e Expr, i int64) bool {
	l, ok := asLiteral(e)
	return ok && l.Is(i)
}

// isOp returns true if e is a Binary node with one of the given operators.
func isOp(e Expr, ops ...Operator) bool {
	b, ok := e.(*Binary)
	if !ok {
		return false
	}
	for _, op := range ops {
		if b.Op == op {
			return true
		}
	}
	return false
}
