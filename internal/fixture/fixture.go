// Package fixture builds expression trees from infix text for use in tests.
//
// It uses precedence climbing over the default participle lexer. Integers may
// be negated with a unary "-", the variable is "X", and "*" and "/" bind
// tighter than "+" and "-". All operators are left associative.
package fixture

import (
	"math/big"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/alecthomas/polyexpr"
)

type opInfo struct {
	Operator polyexpr.Operator
	Priority int
}

var info = map[string]opInfo{
	"+": {polyexpr.OpAdd, 1},
	"-": {polyexpr.OpSub, 1},
	"*": {polyexpr.OpMul, 2},
	"/": {polyexpr.OpDiv, 2},
}

type tree struct {
	expr polyexpr.Expr
}

func (t *tree) Parse(lex *lexer.PeekingLexer) error {
	expr, err := parseExpr(lex, 1)
	if err != nil {
		return err
	}
	t.expr = expr
	return nil
}

func parseExpr(lex *lexer.PeekingLexer, minPrec int) (polyexpr.Expr, error) {
	lhs, err := parseAtom(lex)
	if err != nil {
		return nil, err
	}
	for {
		tok := lex.Peek()
		op, ok := info[tok.Value]
		if tok.EOF() || !ok || op.Priority < minPrec {
			break
		}
		lex.Next()
		rhs, err := parseExpr(lex, op.Priority+1)
		if err != nil {
			return nil, err
		}
		lhs = polyexpr.NewBinary(op.Operator, lhs, rhs)
	}
	return lhs, nil
}

func parseAtom(lex *lexer.PeekingLexer) (polyexpr.Expr, error) {
	tok := lex.Peek()
	switch {
	case tok.EOF():
		return nil, participle.Errorf(tok.Pos, "unexpected EOF")

	case tok.Value == "(":
		lex.Next()
		expr, err := parseExpr(lex, 1)
		if err != nil {
			return nil, err
		}
		if tok := lex.Peek(); tok.Value != ")" {
			return nil, participle.Errorf(tok.Pos, "unmatched (")
		}
		lex.Next()
		return expr, nil

	case tok.Value == "X":
		lex.Next()
		return polyexpr.X(), nil

	case tok.Value == "-":
		lex.Next()
		lit, err := parseInt(lex)
		if err != nil {
			return nil, err
		}
		return polyexpr.BigInt(new(big.Int).Neg(lit)), nil
	}
	lit, err := parseInt(lex)
	if err != nil {
		return nil, err
	}
	return polyexpr.BigInt(lit), nil
}

func parseInt(lex *lexer.PeekingLexer) (*big.Int, error) {
	tok := lex.Peek()
	n, ok := new(big.Int).SetString(tok.Value, 10)
	if !ok {
		return nil, participle.Errorf(tok.Pos, "expected an integer or X not %q", tok.Value)
	}
	lex.Next()
	return n, nil
}

var parser = participle.MustBuild[tree]()

// Parse src into an expression tree.
func Parse(src string) (polyexpr.Expr, error) {
	t, err := parser.ParseString("", src)
	if err != nil {
		return nil, err
	}
	return t.expr, nil
}

// MustParse is like Parse but panics on error.
func MustParse(src string) polyexpr.Expr {
	expr, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return expr
}
