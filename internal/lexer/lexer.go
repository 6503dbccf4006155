/*
Package lexer performs lexical analysis of Lox source code.

It scans the source text byte by byte, recognizing operators, keywords,
literals, and identifiers, and produces a flat token sequence terminated
by a single EOF token. It never uses regular expressions.
*/
package lexer

import (
	"strconv"

	"github.com/jasonherngwang/golox/internal/reporter"
	"github.com/jasonherngwang/golox/internal/token"
)

// Lexer holds the scan position over a single source string.
type Lexer struct {
	src    string
	start  int // start of the lexeme currently being scanned
	pos    int // current scan position
	line   int
	report *reporter.Reporter
}

// New creates a Lexer over src that reports scan errors to rep.
func New(src string, rep *reporter.Reporter) *Lexer {
	return &Lexer{src: src, line: 1, report: rep}
}

// ScanTokens tokenizes the entire source and returns the resulting
// sequence, always ending in exactly one EOF token. Scan errors are
// reported but do not stop scanning, so later errors still surface.
func (l *Lexer) ScanTokens() []token.Token {
	var tokens []token.Token
	for !l.atEnd() {
		l.start = l.pos
		if tok, ok := l.scanToken(); ok {
			tokens = append(tokens, tok)
		}
	}
	tokens = append(tokens, token.New(token.EOF, "", nil, l.line))
	return tokens
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

func (l *Lexer) advance() byte {
	c := l.src[l.pos]
	l.pos++
	return c
}

func (l *Lexer) peek() byte {
	if l.atEnd() {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) peekNext() byte {
	if l.pos+1 >= len(l.src) {
		return 0
	}
	return l.src[l.pos+1]
}

// match consumes the current character only if it equals expected, and
// reports whether it did; used for the maximal-munch two-char operators.
func (l *Lexer) match(expected byte) bool {
	if l.atEnd() || l.src[l.pos] != expected {
		return false
	}
	l.pos++
	return true
}

func (l *Lexer) makeToken(kind token.Kind) (token.Token, bool) {
	return token.New(kind, l.src[l.start:l.pos], nil, l.line), true
}

func (l *Lexer) makeLiteral(kind token.Kind, literal interface{}) (token.Token, bool) {
	return token.New(kind, l.src[l.start:l.pos], literal, l.line), true
}

// scanToken scans exactly one lexeme. The bool return is false when the
// character produced no token (whitespace, comments).
func (l *Lexer) scanToken() (token.Token, bool) {
	c := l.advance()
	switch c {
	case '(':
		return l.makeToken(token.LeftParen)
	case ')':
		return l.makeToken(token.RightParen)
	case '{':
		return l.makeToken(token.LeftBrace)
	case '}':
		return l.makeToken(token.RightBrace)
	case ',':
		return l.makeToken(token.Comma)
	case '.':
		return l.makeToken(token.Dot)
	case '-':
		return l.makeToken(token.Minus)
	case '+':
		return l.makeToken(token.Plus)
	case ';':
		return l.makeToken(token.Semicolon)
	case '*':
		return l.makeToken(token.Star)
	case '!':
		if l.match('=') {
			return l.makeToken(token.BangEqual)
		}
		return l.makeToken(token.Bang)
	case '=':
		if l.match('=') {
			return l.makeToken(token.EqualEqual)
		}
		return l.makeToken(token.Equal)
	case '<':
		if l.match('=') {
			return l.makeToken(token.LessEqual)
		}
		return l.makeToken(token.Less)
	case '>':
		if l.match('=') {
			return l.makeToken(token.GreaterEqual)
		}
		return l.makeToken(token.Greater)
	case '/':
		if l.match('/') {
			for l.peek() != '\n' && !l.atEnd() {
				l.advance()
			}
			return token.Token{}, false
		}
		return l.makeToken(token.Slash)
	case ' ', '\r', '\t':
		return token.Token{}, false
	case '\n':
		l.line++
		return token.Token{}, false
	case '"':
		return l.scanString()
	default:
		switch {
		case isDigit(c):
			return l.scanNumber()
		case isAlpha(c):
			return l.scanIdentifier()
		default:
			l.report.Report(reporter.Scan, l.line, "Unexpected character.")
			return token.Token{}, false
		}
	}
}

// scanString consumes a "..."-delimited string literal. Newlines inside
// the literal are permitted and update the line counter; escape
// sequences are not decoded — the stored value is verbatim.
func (l *Lexer) scanString() (token.Token, bool) {
	for l.peek() != '"' && !l.atEnd() {
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}
	if l.atEnd() {
		l.report.Report(reporter.Scan, l.line, "Unterminated string.")
		return token.Token{}, false
	}
	l.advance() // closing quote
	value := l.src[l.start+1 : l.pos-1]
	return l.makeLiteral(token.String, value)
}

func (l *Lexer) scanNumber() (token.Token, bool) {
	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance() // consume the '.'
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	value, _ := strconv.ParseFloat(l.src[l.start:l.pos], 64)
	return l.makeLiteral(token.Number, value)
}

func (l *Lexer) scanIdentifier() (token.Token, bool) {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}
	text := l.src[l.start:l.pos]
	if kind, ok := token.Keywords[text]; ok {
		return l.makeToken(kind)
	}
	return l.makeToken(token.Identifier)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
