package fixture

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/alecthomas/polyexpr"
)

func TestParse(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{"X", "X"},
		{"42", "42"},
		{"-7", "-7"},
		{"1 + 2 * 3", "(+ 1 (* 2 3))"},
		{"1 - 2 - 3", "(- (- 1 2) 3)"},
		{"12 / 2 / 3", "(/ (/ 12 2) 3)"},
		{"( 1 + 2 ) * X", "(* (+ 1 2) X)"},
		{"X * -3 + 1", "(+ (* X -3) 1)"},
		{"X - ( 1 + 2 )", "(- X (+ 1 2))"},
		{"123456789012345678901234567890 * X", "(* 123456789012345678901234567890 X)"},
	}
	for _, test := range tests {
		expr, err := Parse(test.src)
		assert.NoError(t, err, test.src)
		assert.Equal(t, test.expected, polyexpr.Dump(expr), test.src)
	}
}

func TestParseErrors(t *testing.T) {
	for _, src := range []string{"", "1 +", "( 1 + 2", "1 + 2 )", "Y", "- X", "1 2"} {
		_, err := Parse(src)
		assert.Error(t, err, src)
	}
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("(") })
}
