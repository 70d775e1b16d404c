package polyexpr

import (
	"fmt"
	"strings"
)

// Dump returns an unambiguous, fully parenthesised prefix form of e.
//
//     Dump(Mul(Add(Int(1), Int(2)), X())) == "(* (+ 1 2) X)"
func Dump(e Expr) string {
	out := &strings.Builder{}
	nodePrinter(out, e)
	return out.String()
}

func nodePrinter(out *strings.Builder, e Expr) {
	switch e := e.(type) {
	case *Variable:
		out.WriteString("X")

	case *Literal:
		out.WriteString(e.v.String())

	case *Binary:
		fmt.Fprintf(out, "(%s ", e.Op)
		nodePrinter(out, e.Left)
		out.WriteString(" ")
		nodePrinter(out, e.Right)
		out.WriteString(")")

	default:
		panic("unsupported node")
	}
}
