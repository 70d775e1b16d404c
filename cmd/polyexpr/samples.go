package main

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	. "github.com/alecthomas/polyexpr"
)

var samples = map[string]Expr{
	"original":         Add(Add(Int(4), Int(3)), Add(X(), Mul(Int(1), Add(Mul(X(), X()), Int(1))))),
	"subtraction":      Sub(Int(10), Int(3)),
	"division":         Div(Int(15), Int(3)),
	"mixed":            Add(Sub(Mul(Int(2), X()), Int(1)), Div(Int(6), Int(2))),
	"division-by-zero": Div(Int(5), Int(0)),
	// Simplifies to 0 but cannot be evaluated.
	"zero-by-zero": Div(Int(0), Int(0)),
}

func sampleNames() []string {
	names := maps.Keys(samples)
	slices.Sort(names)
	return names
}
