package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jasonherngwang/golox/internal/reporter"
	"github.com/jasonherngwang/golox/internal/token"
)

func scan(t *testing.T, src string) ([]token.Token, *reporter.Reporter) {
	t.Helper()
	rep := reporter.New()
	tokens := New(src, rep).ScanTokens()
	return tokens, rep
}

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestScanTokens_Punctuation(t *testing.T) {
	tokens, rep := scan(t, "(){},.-+;*")
	require.False(t, rep.HasErrors())
	assert.Equal(t, []token.Kind{
		token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
		token.Comma, token.Dot, token.Minus, token.Plus, token.Semicolon, token.Star,
		token.EOF,
	}, kinds(tokens))
}

func TestScanTokens_MaximalMunchOperators(t *testing.T) {
	tokens, rep := scan(t, "! != = == > >= < <=")
	require.False(t, rep.HasErrors())
	assert.Equal(t, []token.Kind{
		token.Bang, token.BangEqual, token.Equal, token.EqualEqual,
		token.Greater, token.GreaterEqual, token.Less, token.LessEqual, token.EOF,
	}, kinds(tokens))
}

func TestScanTokens_CommentsAndWhitespaceIgnored(t *testing.T) {
	tokens, rep := scan(t, "1 + 2 // this is a comment\n+ 3")
	require.False(t, rep.HasErrors())
	assert.Equal(t, []token.Kind{
		token.Number, token.Plus, token.Number, token.Plus, token.Number, token.EOF,
	}, kinds(tokens))
}

func TestScanTokens_StringLiteral(t *testing.T) {
	tokens, rep := scan(t, `"hello world"`)
	require.False(t, rep.HasErrors())
	require.Len(t, tokens, 2)
	assert.Equal(t, token.String, tokens[0].Kind)
	assert.Equal(t, "hello world", tokens[0].Literal)
}

func TestScanTokens_MultilineString(t *testing.T) {
	tokens, rep := scan(t, "\"line1\nline2\"\nprint 1;")
	require.False(t, rep.HasErrors())
	require.GreaterOrEqual(t, len(tokens), 2)
	assert.Equal(t, "line1\nline2", tokens[0].Literal)
	// the print token is on line 3: one newline inside the string, one after it
	var printTok token.Token
	for _, tok := range tokens {
		if tok.Kind == token.Print {
			printTok = tok
		}
	}
	assert.Equal(t, 3, printTok.Line)
}

func TestScanTokens_UnterminatedString(t *testing.T) {
	_, rep := scan(t, `"unterminated`)
	assert.True(t, rep.HasErrors())
}

func TestScanTokens_Number(t *testing.T) {
	tokens, rep := scan(t, "123 45.67")
	require.False(t, rep.HasErrors())
	require.Len(t, tokens, 3)
	assert.Equal(t, 123.0, tokens[0].Literal)
	assert.Equal(t, 45.67, tokens[1].Literal)
}

func TestScanTokens_NumberTrailingDotIsSeparate(t *testing.T) {
	// "1." has no digit after the dot, so the dot is its own token.
	tokens, rep := scan(t, "1.")
	require.False(t, rep.HasErrors())
	assert.Equal(t, []token.Kind{token.Number, token.Dot, token.EOF}, kinds(tokens))
}

func TestScanTokens_IdentifiersAndKeywords(t *testing.T) {
	tokens, rep := scan(t, "var x = foo and bar or false")
	require.False(t, rep.HasErrors())
	assert.Equal(t, []token.Kind{
		token.Var, token.Identifier, token.Equal, token.Identifier,
		token.And, token.Identifier, token.Or, token.False, token.EOF,
	}, kinds(tokens))
}

func TestScanTokens_UnknownCharacterContinuesScanning(t *testing.T) {
	tokens, rep := scan(t, "1 @ 2")
	require.True(t, rep.HasErrors())
	// scanning continues past the bad character, so both numbers surface
	require.Len(t, tokens, 3)
	assert.Equal(t, 1.0, tokens[0].Literal)
	assert.Equal(t, 2.0, tokens[1].Literal)
}

func TestScanTokens_EmptySourceIsJustEOF(t *testing.T) {
	tokens, rep := scan(t, "")
	require.False(t, rep.HasErrors())
	assert.Equal(t, []token.Kind{token.EOF}, kinds(tokens))
}
