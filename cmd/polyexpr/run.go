package main

import (
	"fmt"
	"io"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"github.com/alecthomas/polyexpr"
)

// CLI flags and arguments.
type CLI struct {
	Version  kong.VersionFlag `help:"Show version."`
	X        []int64          `name:"x" default:"2,4" env:"POLYEXPR_X" help:"Values to bind X to when evaluating."`
	Simplify bool             `help:"Print the simplified form of each sample."`
	AST      bool             `name:"ast" help:"Print the fully parenthesised tree of each sample."`
	Trace    bool             `help:"Trace simplification to stderr (implies --simplify)."`
	Verbose  bool             `short:"v" help:"Enable debug logging."`
	List     bool             `help:"List sample names and exit."`
	Samples  []string         `arg:"" optional:"" help:"Samples to print (default: all)."`
}

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func (c *CLI) run(stdout, stderr io.Writer, log *logrus.Logger) error {
	if c.List {
		for _, name := range sampleNames() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}
	names := c.Samples
	if len(names) == 0 {
		names = sampleNames()
	}
	for _, name := range names {
		if _, ok := samples[name]; !ok {
			return fmt.Errorf("unknown sample %q", name)
		}
	}
	failed := 0
	for _, name := range names {
		if !c.printSample(stdout, stderr, log.WithField("sample", name), name, samples[name]) {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d samples failed", failed, len(names))
	}
	return nil
}

// printSample reports each failure and carries on, returning false if
// anything failed.
func (c *CLI) printSample(stdout, stderr io.Writer, log *logrus.Entry, name string, expr polyexpr.Expr) bool {
	log.WithFields(logrus.Fields{
		"depth":    polyexpr.Depth(expr),
		"constant": polyexpr.IsConstant(expr),
	}).Debug("Printing sample")
	ok := true
	fmt.Fprintf(stdout, "%s: %s\n", name, expr)
	if c.AST {
		fmt.Fprintf(stdout, "  ast: %s\n", polyexpr.Dump(expr))
	}
	if c.Simplify || c.Trace {
		var options []polyexpr.Option
		if c.Trace {
			options = append(options, polyexpr.Trace(stderr))
		}
		simple, err := polyexpr.Simplify(expr, options...)
		if err != nil {
			log.WithError(err).Warn("Simplification failed")
			ok = false
		} else {
			fmt.Fprintf(stdout, "  simplified: %s\n", simple)
			log.WithField("changed", !polyexpr.Equal(expr, simple)).Debug("Simplified")
		}
	}
	for _, x := range c.X {
		value, err := polyexpr.EvaluateInt(expr, x)
		if err != nil {
			log.WithError(err).WithField("x", x).Warn("Evaluation failed")
			ok = false
			continue
		}
		fmt.Fprintf(stdout, "  X=%d: %s\n", x, value)
	}
	return ok
}
