package eval_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stepwise-labs/bodmas/internal/eval"
)

func TestSolvePrecedence(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want float64
	}{
		{name: "multiplication before addition", expr: "2 + 3 * 4", want: 14},
		{name: "division before addition", expr: "20 / 4 + 3", want: 8},
		{name: "multiplication before subtraction", expr: "10 - 2 * 3", want: 4},
		{name: "brackets first", expr: "(2 + 3) * 4", want: 20},
		{name: "redundant brackets", expr: "2 + (3 * 4)", want: 14},
		{name: "nested brackets", expr: "((1 + 2) * (3 + 1))", want: 12},
		{name: "division left to right", expr: "24 / 3 / 2", want: 4},
		{name: "subtraction left to right", expr: "10 - 2 + 3", want: 11},
		{name: "mixed div mul left to right", expr: "12 / 2 * 3", want: 18},
		{name: "exponent before addition", expr: "2 ** 3 + 4", want: 12},
		{name: "exponent before multiplication", expr: "2 * 3 ** 2", want: 18},
		{name: "caret exponent", expr: "2 ^ 3 + 4", want: 12},
		{name: "exponent right associative", expr: "2 ** 3 ** 2", want: 512},
		{name: "unary minus below exponent", expr: "-2 ** 2", want: -4},
		{name: "unary minus", expr: "-4 + 6", want: 2},
		{name: "unary plus", expr: "+3 * 2", want: 6},
		{name: "double sign", expr: "2 + -3", want: -1},
		{name: "decimals", expr: "1.5 * 2", want: 3},
		{name: "whitespace insensitive", expr: " 2+3*4 ", want: 14},
		{name: "complex expression", expr: "(10 - 4) * 2 + 3", want: 15},
		{name: "multiple operations", expr: "2 * 3 + 4 * 5", want: 26},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := eval.Solve(tt.expr)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestSolveDivisionByZero(t *testing.T) {
	tests := []string{"5 / 0", "1 / (2 - 2)", "-5 / 0"}
	for _, expr := range tests {
		t.Run(expr, func(t *testing.T) {
			got, err := eval.Solve(expr)
			require.NoError(t, err)
			assert.True(t, math.IsInf(got, 1), "want +Inf, got %v", got)
		})
	}
}

func TestSolveInvalidExpression(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{name: "empty", expr: ""},
		{name: "whitespace only", expr: "   "},
		{name: "trailing operator", expr: "2 + "},
		{name: "leading binary operator", expr: "* 2"},
		{name: "unbalanced open bracket", expr: "(2 + 3"},
		{name: "unbalanced close bracket", expr: "2 + 3)"},
		{name: "empty brackets", expr: "()"},
		{name: "letters", expr: "two + 2"},
		{name: "adjacent literals", expr: "2 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := eval.Solve(tt.expr)
			require.Error(t, err)
			assert.ErrorIs(t, err, eval.ErrInvalidExpression)
		})
	}
}

func TestParseErrorMessage(t *testing.T) {
	_, err := eval.Solve("2 + $")
	require.Error(t, err)

	var perr *eval.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 4, perr.Pos)
	assert.Contains(t, perr.Error(), "offset 4")
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 8, want: "8"},
		{in: 2.5, want: "2.5"},
		{in: -6, want: "-6"},
		{in: math.Inf(1), want: "+Inf"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, eval.FormatNumber(tt.in))
	}
}
