package polyexpr

// Simplify returns an expression equivalent to e with constant subtrees folded
// and identities (x + 0, x * 1, x * 0, x - 0, 0 / x, x / 1) eliminated.
//
// Children are simplified before their parent, so a single pass reaches a
// fixed point. Subtrees that are already reduced are shared with e.
//
// Folding a division by the literal 0 returns a *DivisionByZeroError. Note that
// "0 / 0" simplifies to 0 without error, as the zero dividend rule is applied
// first, whereas evaluating it fails.
func Simplify(e Expr, options ...Option) (Expr, error) {
	s, err := newSimplifyContext(options...)
	if err != nil {
		return nil, err
	}
	return s.simplify(e)
}

func (s *simplifyContext) simplify(e Expr) (Expr, error) {
	s.traceNode(e)
	switch e := e.(type) {
	case *Variable, *Literal:
		return e, nil

	case *Binary:
		leave := s.Enter()
		left, err := s.simplify(e.Left)
		if err != nil {
			leave()
			return nil, err
		}
		right, err := s.simplify(e.Right)
		leave()
		if err != nil {
			return nil, err
		}
		rule, out, err := rewrite(e, left, right)
		if err != nil {
			return nil, err
		}
		s.traceRule(rule, out)
		return out, nil
	}
	panic("unsupported node")
}

// rewrite applies the first matching rule for b's operator to its simplified
// children, returning the name of the rule and the result.
func rewrite(b *Binary, left, right Expr) (string, Expr, error) {
	switch b.Op {
	case OpAdd:
		switch {
		case isLiteral(left, 0):
			return "add-zero", right, nil
		case isLiteral(right, 0):
			return "add-zero", left, nil
		}

	case OpSub:
		if isLiteral(right, 0) {
			return "sub-zero", left, nil
		}

	case OpMul:
		switch {
		case isLiteral(left, 0) || isLiteral(right, 0):
			return "mul-zero", Int(0), nil
		case isLiteral(left, 1):
			return "mul-one", right, nil
		case isLiteral(right, 1):
			return "mul-one", left, nil
		}

	case OpDiv:
		switch {
		case isLiteral(left, 0):
			return "div-zero", Int(0), nil
		case isLiteral(right, 1):
			return "div-one", left, nil
		}

	default:
		panic("unsupported operator")
	}

	if l, ok := asLiteral(left); ok {
		if r, ok := asLiteral(right); ok {
			v, err := b.Op.Apply(l.v, r.v)
			if err != nil {
				return "", nil, divisionByZero(b, l.v)
			}
			return "fold", &Literal{v: v}, nil
		}
	}

	if left == b.Left && right == b.Right {
		return "keep", b, nil
	}
	return "keep", NewBinary(b.Op, left, right), nil
}
