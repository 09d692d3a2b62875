package eval

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Step records one simplification of an expression: the snapshot after the
// reduction and a description naming the operation and its sub-result.
type Step struct {
	Index       int    `json:"step"`
	Expression  string `json:"expression"`
	Description string `json:"description"`
}

// Trace is the ordered list of simplification steps from the original
// expression down to its final value. Indices increase strictly from 0.
type Trace []Step

// originalDescription labels step 0 of every trace.
const originalDescription = "Original expression"

var (
	bracketRe  = regexp.MustCompile(`\([^()]+\)`)
	exponentRe = regexp.MustCompile(`(\d+\.?\d*)\*\*(\d+\.?\d*)`)
	mulDivRe   = regexp.MustCompile(`(-?\d+\.?\d*)([*/])(-?\d+\.?\d*)`)
	addSubRe   = regexp.MustCompile(`(-?\d+\.?\d*)([+-])(-?\d+\.?\d*)`)
)

// phaseResult carries one reduction phase's outcome: the remaining working
// expression, the steps it produced, and whether the phase ran to completion.
// A false ok halts the overall pipeline, keeping the steps gathered so far.
type phaseResult struct {
	remaining string
	steps     []Step
	ok        bool
}

type phaseFunc func(string) phaseResult

// Explain reduces the expression one precedence group at a time (brackets,
// exponents, division/multiplication, addition/subtraction) and returns the
// ordered trace of every splice. Step 0 is always the unmodified input.
//
// Explain never fails: when a phase cannot find a reducible match while its
// operator remains, or a sub-evaluation errors, the pipeline stops and the
// partial trace is returned. This deliberately trades completeness for always
// having something to show a learner.
func Explain(expression string) Trace {
	trace := Trace{{Index: 0, Expression: expression, Description: originalDescription}}

	cur := normalize(expression)

	for _, phase := range []phaseFunc{reduceBrackets, reduceExponents, reduceMulDiv, reduceAddSub} {
		res := phase(cur)
		for _, s := range res.steps {
			s.Index = len(trace)
			trace = append(trace, s)
		}
		cur = res.remaining
		if !res.ok {
			break
		}
	}

	return trace
}

// normalize strips whitespace and folds the ^ exponent spelling into ** so
// the phase patterns only deal with one operator alphabet.
func normalize(expression string) string {
	var b strings.Builder
	b.Grow(len(expression))
	for i := 0; i < len(expression); i++ {
		switch expression[i] {
		case ' ', '\t', '\n', '\r':
		case '^':
			b.WriteString("**")
		default:
			b.WriteByte(expression[i])
		}
	}
	return b.String()
}

// reduceBrackets repeatedly evaluates the left-most innermost bracket pair
// and splices its value back in. The count of open brackets strictly
// decreases each iteration; an unmatched bracket or a failing interior stops
// the phase.
func reduceBrackets(cur string) phaseResult {
	var steps []Step
	for strings.Contains(cur, "(") {
		loc := bracketRe.FindStringIndex(cur)
		if loc == nil {
			return phaseResult{cur, steps, false}
		}
		interior := cur[loc[0]+1 : loc[1]-1]
		v, err := Solve(interior)
		if err != nil {
			return phaseResult{cur, steps, false}
		}
		result := FormatNumber(v)
		cur = cur[:loc[0]] + result + cur[loc[1]:]
		steps = append(steps, Step{
			Expression:  cur,
			Description: fmt.Sprintf("Brackets: (%s) = %s", interior, result),
		})
	}
	return phaseResult{cur, steps, true}
}

// reduceExponents folds the left-most base**exponent pair of unsigned
// literals until no ** remains.
func reduceExponents(cur string) phaseResult {
	var steps []Step
	for strings.Contains(cur, "**") {
		m := exponentRe.FindStringSubmatchIndex(cur)
		if m == nil {
			return phaseResult{cur, steps, false}
		}
		base, err1 := strconv.ParseFloat(cur[m[2]:m[3]], 64)
		exp, err2 := strconv.ParseFloat(cur[m[4]:m[5]], 64)
		if err1 != nil || err2 != nil {
			return phaseResult{cur, steps, false}
		}
		result := FormatNumber(math.Pow(base, exp))
		match := cur[m[0]:m[1]]
		cur = cur[:m[0]] + result + cur[m[1]:]
		steps = append(steps, Step{
			Expression:  cur,
			Description: fmt.Sprintf("Orders/Exponents: %s = %s", match, result),
		})
	}
	return phaseResult{cur, steps, true}
}

// reduceMulDiv folds the left-most a*b or a/b pair of signed literals,
// left to right. Division by zero splices +Inf rather than failing.
func reduceMulDiv(cur string) phaseResult {
	var steps []Step
	for strings.ContainsAny(cur, "*/") {
		m := mulDivRe.FindStringSubmatchIndex(cur)
		if m == nil {
			return phaseResult{cur, steps, false}
		}
		a, err1 := strconv.ParseFloat(cur[m[2]:m[3]], 64)
		b, err2 := strconv.ParseFloat(cur[m[6]:m[7]], 64)
		if err1 != nil || err2 != nil {
			return phaseResult{cur, steps, false}
		}
		v := applyMulDiv(a, cur[m[4]:m[5]], b)
		result := FormatNumber(v)
		match := cur[m[0]:m[1]]
		cur = cur[:m[0]] + result + cur[m[1]:]
		steps = append(steps, Step{
			Expression:  cur,
			Description: fmt.Sprintf("Division/Multiplication: %s = %s", match, result),
		})
	}
	return phaseResult{cur, steps, true}
}

// reduceAddSub folds the left-most a+b or a-b pair, scanning from position 1
// onward so a leading sign left by an earlier reduction is never treated as a
// binary operator.
func reduceAddSub(cur string) phaseResult {
	var steps []Step
	for len(cur) > 1 && strings.ContainsAny(cur[1:], "+-") {
		m := addSubRe.FindStringSubmatchIndex(cur[1:])
		if m == nil {
			return phaseResult{cur, steps, false}
		}
		const offset = 1
		a, err1 := strconv.ParseFloat(cur[offset+m[2]:offset+m[3]], 64)
		b, err2 := strconv.ParseFloat(cur[offset+m[6]:offset+m[7]], 64)
		if err1 != nil || err2 != nil {
			return phaseResult{cur, steps, false}
		}
		v := a + b
		if cur[offset+m[4]:offset+m[5]] == "-" {
			v = a - b
		}
		result := FormatNumber(v)
		match := cur[offset+m[0] : offset+m[1]]
		cur = cur[:offset+m[0]] + result + cur[offset+m[1]:]
		steps = append(steps, Step{
			Expression:  cur,
			Description: fmt.Sprintf("Addition/Subtraction: %s = %s", match, result),
		})
	}
	return phaseResult{cur, steps, true}
}

func applyMulDiv(a float64, op string, b float64) float64 {
	if op == "*" {
		return a * b
	}
	if b == 0 {
		return math.Inf(1)
	}
	return a / b
}
