package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_StringKnown(t *testing.T) {
	assert.Equal(t, "LEFT_PAREN", LeftParen.String())
	assert.Equal(t, "BANG_EQUAL", BangEqual.String())
	assert.Equal(t, "and", And.String())
	assert.Equal(t, "EOF", EOF.String())
}

func TestKind_StringUnknownFallsBackToNumeric(t *testing.T) {
	unknown := Kind(9999)
	assert.Equal(t, "Kind(9999)", unknown.String())
}

func TestKeywords_CoversAllReservedWords(t *testing.T) {
	want := []string{
		"and", "class", "else", "false", "for", "fun", "if", "nil", "or",
		"print", "return", "super", "this", "true", "var", "while",
	}
	assert.Len(t, Keywords, len(want))
	for _, w := range want {
		_, ok := Keywords[w]
		assert.True(t, ok, "missing keyword %q", w)
	}
}

func TestKeywords_NotAPrefixMatch(t *testing.T) {
	// "forest" is not the "for" keyword; the lexer only consults this
	// map after scanning a complete identifier.
	_, ok := Keywords["forest"]
	assert.False(t, ok)
}

func TestNew_BuildsTokenWithLine(t *testing.T) {
	tok := New(Number, "3", 3.0, 7)
	assert.Equal(t, Number, tok.Kind)
	assert.Equal(t, "3", tok.Lexeme)
	assert.Equal(t, 3.0, tok.Literal)
	assert.Equal(t, 7, tok.Line)
}

func TestToken_StringWithLiteral(t *testing.T) {
	tok := New(Number, "3", 3.0, 1)
	assert.Equal(t, "NUMBER 3 3", tok.String())
}

func TestToken_StringWithoutLiteral(t *testing.T) {
	tok := New(Plus, "+", nil, 1)
	assert.Equal(t, "PLUS +", tok.String())
}
