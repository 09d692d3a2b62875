// Package eval implements the BODMAS expression evaluator: a lexer and
// precedence-climbing parser for arithmetic expressions, a stepwise
// precedence-group reducer that records human-readable simplification
// steps, and answer validation against a tolerance.
package eval

import "fmt"

// TokenType identifies the kind of a lexed token.
type TokenType int

//nolint:revive // TOKEN_* names are intentionally ALL_CAPS, matching lexer conventions
const (
	TOKEN_EOF TokenType = iota
	TOKEN_ILLEGAL

	TOKEN_NUMBER

	TOKEN_PLUS   // +
	TOKEN_MINUS  // -
	TOKEN_STAR   // *
	TOKEN_SLASH  // /
	TOKEN_POW    // ** or ^
	TOKEN_LPAREN // (
	TOKEN_RPAREN // )
)

var tokenNames = map[TokenType]string{
	TOKEN_EOF:     "EOF",
	TOKEN_ILLEGAL: "ILLEGAL",
	TOKEN_NUMBER:  "NUMBER",
	TOKEN_PLUS:    "+",
	TOKEN_MINUS:   "-",
	TOKEN_STAR:    "*",
	TOKEN_SLASH:   "/",
	TOKEN_POW:     "**",
	TOKEN_LPAREN:  "(",
	TOKEN_RPAREN:  ")",
}

// String returns a readable name for the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token is a single lexical unit of an expression.
type Token struct {
	Type    TokenType
	Literal string
	Pos     int // byte offset in the input
}
