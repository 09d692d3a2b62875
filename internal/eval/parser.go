package eval

import (
	"math"
	"strconv"
)

// Operator precedence, lowest to highest. Exponentiation binds tighter than a
// unary sign so -2**2 evaluates as -(2**2), and it is right-associative.
const (
	precNone = iota
	precAddition // + -
	precMultiply // * /
	precUnary    // unary + -
	precPower    // ** ^
)

// Expr is a parsed arithmetic expression node.
type Expr interface {
	value() float64
}

// NumberLit is a numeric literal.
type NumberLit struct {
	Value float64
}

// UnaryExpr is a prefix sign applied to an operand.
type UnaryExpr struct {
	Op   TokenType
	Expr Expr
}

// BinaryExpr is an infix operation over two operands.
type BinaryExpr struct {
	Op    TokenType
	Left  Expr
	Right Expr
}

func (n *NumberLit) value() float64 { return n.Value }

func (u *UnaryExpr) value() float64 {
	v := u.Expr.value()
	if u.Op == TOKEN_MINUS {
		return -v
	}
	return v
}

func (b *BinaryExpr) value() float64 {
	left := b.Left.value()
	right := b.Right.value()
	switch b.Op {
	case TOKEN_PLUS:
		return left + right
	case TOKEN_MINUS:
		return left - right
	case TOKEN_STAR:
		return left * right
	case TOKEN_SLASH:
		if right == 0 {
			// Division by zero is not an error; it yields +Inf.
			return math.Inf(1)
		}
		return left / right
	case TOKEN_POW:
		return math.Pow(left, right)
	}
	return math.NaN()
}

// Parser parses arithmetic expressions using precedence climbing.
type Parser struct {
	lexer *Lexer
	token Token
	peek  Token
}

// NewParser creates a parser over the given input.
func NewParser(input string) *Parser {
	p := &Parser{lexer: NewLexer(input)}
	// Prime token and peek.
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.token = p.peek
	p.peek = p.lexer.NextToken()
}

// Parse parses a complete expression and requires all input to be consumed.
func (p *Parser) Parse() (Expr, error) {
	if p.token.Type == TOKEN_EOF {
		return nil, parseErrorf(p.token.Pos, "empty expression")
	}
	expr, err := p.parseExpression(precNone + 1)
	if err != nil {
		return nil, err
	}
	if p.token.Type != TOKEN_EOF {
		return nil, parseErrorf(p.token.Pos, "unexpected token %q", p.token.Literal)
	}
	return expr, nil
}

// parseExpression implements precedence climbing: parse a prefix expression,
// then fold infix operators while their precedence is at least min.
func (p *Parser) parseExpression(min int) (Expr, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for {
		prec := infixPrecedence(p.token.Type)
		if prec < min {
			return left, nil
		}

		op := p.token.Type
		p.nextToken()

		// ** is right-associative: reuse its own precedence as the minimum
		// so the right operand absorbs further exponents first.
		next := prec + 1
		if op == TOKEN_POW {
			next = prec
		}

		right, err := p.parseExpression(next)
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Op: op, Left: left, Right: right}
	}
}

// parsePrefix parses unary signs and primary expressions.
func (p *Parser) parsePrefix() (Expr, error) {
	switch p.token.Type {
	case TOKEN_MINUS, TOKEN_PLUS:
		op := p.token.Type
		p.nextToken()
		expr, err := p.parseExpression(precUnary)
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Op: op, Expr: expr}, nil
	default:
		return p.parsePrimary()
	}
}

// parsePrimary parses a numeric literal or a parenthesised sub-expression.
func (p *Parser) parsePrimary() (Expr, error) {
	switch p.token.Type {
	case TOKEN_NUMBER:
		v, err := strconv.ParseFloat(p.token.Literal, 64)
		if err != nil {
			return nil, parseErrorf(p.token.Pos, "invalid number literal %q", p.token.Literal)
		}
		p.nextToken()
		return &NumberLit{Value: v}, nil

	case TOKEN_LPAREN:
		p.nextToken()
		expr, err := p.parseExpression(precNone + 1)
		if err != nil {
			return nil, err
		}
		if p.token.Type != TOKEN_RPAREN {
			return nil, parseErrorf(p.token.Pos, "expected ), got %q", p.token.Literal)
		}
		p.nextToken()
		return expr, nil

	case TOKEN_EOF:
		return nil, parseErrorf(p.token.Pos, "unexpected end of expression")

	default:
		return nil, parseErrorf(p.token.Pos, "unexpected token %q", p.token.Literal)
	}
}

func infixPrecedence(t TokenType) int {
	switch t {
	case TOKEN_PLUS, TOKEN_MINUS:
		return precAddition
	case TOKEN_STAR, TOKEN_SLASH:
		return precMultiply
	case TOKEN_POW:
		return precPower
	}
	return precNone
}

// Solve evaluates the expression by standard BODMAS precedence rules and
// returns its value. Malformed input returns an error matching
// ErrInvalidExpression. Division by zero yields +Inf.
func Solve(expression string) (float64, error) {
	expr, err := NewParser(expression).Parse()
	if err != nil {
		return 0, err
	}
	return expr.value(), nil
}

// FormatNumber renders a value in the shortest form that round-trips, so
// whole numbers print without a fractional part when spliced back into an
// expression during step reduction.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
