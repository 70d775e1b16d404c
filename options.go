package polyexpr

import "io"

// An Option to modify the behaviour of Simplify.
type Option func(s *simplifyContext) error

// Trace writes each node visited by Simplify, and the rule applied to it, to "w".
func Trace(w io.Writer) Option {
	return func(s *simplifyContext) error {
		s.trace = w
		return nil
	}
}
