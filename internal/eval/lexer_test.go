package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stepwise-labs/bodmas/internal/eval"
)

func TestLexerTokenSequence(t *testing.T) {
	input := "2 + 3.5 * (4 ** 2) / -7 ^ 2"

	want := []struct {
		typ     eval.TokenType
		literal string
	}{
		{eval.TOKEN_NUMBER, "2"},
		{eval.TOKEN_PLUS, "+"},
		{eval.TOKEN_NUMBER, "3.5"},
		{eval.TOKEN_STAR, "*"},
		{eval.TOKEN_LPAREN, "("},
		{eval.TOKEN_NUMBER, "4"},
		{eval.TOKEN_POW, "**"},
		{eval.TOKEN_NUMBER, "2"},
		{eval.TOKEN_RPAREN, ")"},
		{eval.TOKEN_SLASH, "/"},
		{eval.TOKEN_MINUS, "-"},
		{eval.TOKEN_NUMBER, "7"},
		{eval.TOKEN_POW, "^"},
		{eval.TOKEN_NUMBER, "2"},
		{eval.TOKEN_EOF, ""},
	}

	l := eval.NewLexer(input)
	for i, w := range want {
		tok := l.NextToken()
		assert.Equal(t, w.typ, tok.Type, "token %d type", i)
		assert.Equal(t, w.literal, tok.Literal, "token %d literal", i)
	}
}

func TestLexerNumbers(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		literal string
	}{
		{name: "integer", input: "42", literal: "42"},
		{name: "decimal", input: "3.14", literal: "3.14"},
		{name: "trailing dot", input: "2.", literal: "2."},
		{name: "leading dot", input: ".5", literal: ".5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := eval.NewLexer(tt.input).NextToken()
			assert.Equal(t, eval.TOKEN_NUMBER, tok.Type)
			assert.Equal(t, tt.literal, tok.Literal)
		})
	}
}

func TestLexerIllegal(t *testing.T) {
	l := eval.NewLexer("2 + x")
	l.NextToken() // 2
	l.NextToken() // +
	tok := l.NextToken()
	assert.Equal(t, eval.TOKEN_ILLEGAL, tok.Type)
	assert.Equal(t, "x", tok.Literal)
	assert.Equal(t, 4, tok.Pos)
}

func TestLexerEmptyInput(t *testing.T) {
	tok := eval.NewLexer("   ").NextToken()
	assert.Equal(t, eval.TOKEN_EOF, tok.Type)
}
