package polyexpr

import "io"

// Context for a single Simplify call.
type simplifyContext struct {
	trace  io.Writer
	indent int
}

func newSimplifyContext(options ...Option) (*simplifyContext, error) {
	s := &simplifyContext{}
	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Enter the children of the current node. The returned function leaves them.
func (s *simplifyContext) Enter() func() {
	s.indent += 2
	return func() { s.indent -= 2 }
}
