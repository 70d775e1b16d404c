package polyexpr

// Walk e in pre-order, calling visitor for each node.
func Walk(e Expr, visitor Visitor) error {
	return visitor(e, func() error {
		switch e := e.(type) {
		case *Variable:

		case *Literal:

		case *Binary:
			if err := Walk(e.Left, visitor); err != nil {
				return err
			}
			return Walk(e.Right, visitor)

		default:
			panic("unsupported node")
		}
		return nil
	})
}

// IsConstant returns true if e does not reference the variable.
func IsConstant(e Expr) bool {
	constant := true
	_ = Walk(e, func(e Expr, next func() error) error {
		if _, ok := e.(*Variable); ok {
			constant = false
			return nil
		}
		if !constant {
			return nil
		}
		return next()
	})
	return constant
}

// Depth returns the height of the tree rooted at e. Leaves have a depth of 1.
func Depth(e Expr) int {
	depth, height := 0, 0
	_ = Walk(e, func(e Expr, next func() error) error {
		depth++
		if depth > height {
			height = depth
		}
		err := next()
		depth--
		return err
	})
	return height
}
