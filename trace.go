package polyexpr

import (
	"fmt"
	"strings"
)

// tracef writes an indented line to the trace writer, if any.
func (s *simplifyContext) tracef(format string, args ...interface{}) {
	if s.trace == nil {
		return
	}
	fmt.Fprintf(s.trace, "%s%s\n", strings.Repeat(" ", s.indent), fmt.Sprintf(format, args...))
}

// Trace the node about to be simplified.
func (s *simplifyContext) traceNode(e Expr) {
	s.tracef("%s", Dump(e))
}

// Trace the rule that rewrote the current node.
func (s *simplifyContext) traceRule(rule string, out Expr) {
	s.tracef("=> %s %s", rule, Dump(out))
}
