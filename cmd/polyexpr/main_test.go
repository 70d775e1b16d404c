package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/alecthomas/kong"
	"github.com/sebdah/goldie/v2"
)

func runCLI(t *testing.T, cli *CLI) (stdout, stderr string, err error) {
	t.Helper()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	err = cli.run(out, errOut, newLogger(errOut, cli.Verbose))
	return out.String(), errOut.String(), err
}

func TestRunAll(t *testing.T) {
	stdout, stderr, err := runCLI(t, &CLI{X: []int64{2, 4}})
	assert.EqualError(t, err, "2 of 6 samples failed")
	goldie.New(t).Assert(t, "all", []byte(stdout))
	assert.Contains(t, stderr, `level=warning msg="Evaluation failed"`)
	assert.Contains(t, stderr, "sample=division-by-zero")
	assert.Contains(t, stderr, "sample=zero-by-zero")
	assert.NotContains(t, stderr, "sample=original")
}

func TestRunSimplify(t *testing.T) {
	stdout, _, err := runCLI(t, &CLI{X: []int64{3}, Simplify: true, Samples: []string{"mixed", "zero-by-zero"}})
	assert.EqualError(t, err, "1 of 2 samples failed")
	goldie.New(t).Assert(t, "simplify", []byte(stdout))
}

func TestRunSimplifyFailure(t *testing.T) {
	stdout, stderr, err := runCLI(t, &CLI{Simplify: true, Samples: []string{"division-by-zero"}})
	assert.Error(t, err)
	assert.Equal(t, "division-by-zero: 5 / 0\n", stdout)
	assert.Contains(t, stderr, `msg="Simplification failed"`)
}

func TestRunAST(t *testing.T) {
	stdout, _, err := runCLI(t, &CLI{AST: true, Samples: []string{"mixed"}})
	assert.NoError(t, err)
	assert.Equal(t, "mixed: 2 * X - 1 + 6 / 2\n  ast: (+ (- (* 2 X) 1) (/ 6 2))\n", stdout)
}

func TestRunTrace(t *testing.T) {
	stdout, stderr, err := runCLI(t, &CLI{Trace: true, Samples: []string{"subtraction"}})
	assert.NoError(t, err)
	assert.Equal(t, "subtraction: 10 - 3\n  simplified: 7\n", stdout)
	assert.Equal(t, "(- 10 3)\n  10\n  3\n=> fold 7\n", stderr)
}

func TestRunVerbose(t *testing.T) {
	_, stderr, err := runCLI(t, &CLI{Verbose: true, Simplify: true, Samples: []string{"original"}})
	assert.NoError(t, err)
	assert.Contains(t, stderr, `level=debug msg="Printing sample" constant=false depth=6 sample=original`)
	assert.Contains(t, stderr, `level=debug msg=Simplified changed=true sample=original`)
}

func TestRunList(t *testing.T) {
	stdout, _, err := runCLI(t, &CLI{List: true})
	assert.NoError(t, err)
	assert.Equal(t, strings.Join(sampleNames(), "\n")+"\n", stdout)
	assert.Equal(t, []string{"division", "division-by-zero", "mixed", "original", "subtraction", "zero-by-zero"}, sampleNames())
}

func TestRunUnknownSample(t *testing.T) {
	stdout, _, err := runCLI(t, &CLI{Samples: []string{"original", "cubic"}})
	assert.EqualError(t, err, `unknown sample "cubic"`)
	assert.Equal(t, "", stdout)
}

func TestFlags(t *testing.T) {
	cli := &CLI{}
	parser, err := kong.New(cli, kong.Vars{"version": "test"})
	assert.NoError(t, err)
	_, err = parser.Parse([]string{})
	assert.NoError(t, err)
	assert.Equal(t, []int64{2, 4}, cli.X)

	cli = &CLI{}
	parser, err = kong.New(cli, kong.Vars{"version": "test"})
	assert.NoError(t, err)
	_, err = parser.Parse([]string{"--x=1,-2", "--simplify", "mixed", "original"})
	assert.NoError(t, err)
	assert.Equal(t, []int64{1, -2}, cli.X)
	assert.True(t, cli.Simplify)
	assert.Equal(t, []string{"mixed", "original"}, cli.Samples)
}

func TestFlagsFromEnvironment(t *testing.T) {
	t.Setenv("POLYEXPR_X", "7,8")
	cli := &CLI{}
	parser, err := kong.New(cli, kong.Vars{"version": "test"})
	assert.NoError(t, err)
	_, err = parser.Parse([]string{})
	assert.NoError(t, err)
	assert.Equal(t, []int64{7, 8}, cli.X)
}
