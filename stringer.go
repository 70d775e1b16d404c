package polyexpr

import (
	"bytes"
	"fmt"
)

type stringerVisitor struct {
	bytes.Buffer
}

func stringer(e Expr) string {
	v := &stringerVisitor{}
	v.visit(e)
	return v.String()
}

func (s *stringerVisitor) visit(e Expr) {
	switch e := e.(type) {
	case *Variable:
		fmt.Fprint(s, "X")

	case *Literal:
		fmt.Fprint(s, e.v.String())

	case *Binary:
		var wrapLeft, wrapRight bool
		switch e.Op {
		case OpAdd:
		case OpSub, OpMul:
			wrapLeft = isOp(e.Left, OpAdd)
			wrapRight = isOp(e.Right, OpAdd)
		case OpDiv:
			wrapLeft = isOp(e.Left, OpAdd, OpSub)
			wrapRight = isOp(e.Right, OpAdd, OpSub)
		default:
			panic("unsupported operator")
		}
		s.operand(e.Left, wrapLeft)
		fmt.Fprintf(s, " %s ", e.Op)
		s.operand(e.Right, wrapRight)

	default:
		panic("unsupported node")
	}
}

func (s *stringerVisitor) operand(e Expr, wrap bool) {
	if !wrap {
		s.visit(e)
		return
	}
	fmt.Fprint(s, "( ")
	s.visit(e)
	fmt.Fprint(s, " )")
}

func (v *Variable) String() string { return stringer(v) }
func (l *Literal) String() string  { return stringer(l) }
func (b *Binary) String() string   { return stringer(b) }
