package polyexpr

import "fmt"

// Expr is a node in an expression tree.
//
// The set of implementations is closed: *Variable, *Literal and *Binary.
// Trees are immutable once constructed.
type Expr interface {
	fmt.Stringer
	// Restricts implementations to this package.
	expr()
}

// A Visitor is called for each node during Walk.
//
// Calling "next" descends into the children of "e". Returning without calling
// it skips the subtree.
type Visitor func(e Expr, next func() error) error

var (
	_ Expr = &Variable{}
	_ Expr = &Literal{}
	_ Expr = &Binary{}
)
