package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jasonherngwang/golox/internal/token"
)

func tok(kind token.Kind, lexeme string) token.Token {
	return token.New(kind, lexeme, nil, 1)
}

func TestPrinter_Literal(t *testing.T) {
	p := &Printer{}
	assert.Equal(t, "nil", p.Print(&Literal{Value: nil}))
	assert.Equal(t, "true", p.Print(&Literal{Value: true}))
	assert.Equal(t, "3", p.Print(&Literal{Value: 3.0}))
	assert.Equal(t, "hi", p.Print(&Literal{Value: "hi"}))
}

func TestPrinter_BinaryAndGrouping(t *testing.T) {
	p := &Printer{}
	expr := &Binary{
		Left:  &Unary{Op: tok(token.Minus, "-"), Right: &Literal{Value: 123.0}},
		Op:    tok(token.Star, "*"),
		Right: &Grouping{Expression: &Literal{Value: 45.67}},
	}
	assert.Equal(t, "(* (- 123) (group 45.67))", p.Print(expr))
}

func TestPrinter_Call(t *testing.T) {
	p := &Printer{}
	expr := &Call{
		Callee:    &Variable{Name: tok(token.Identifier, "f")},
		Paren:     tok(token.RightParen, ")"),
		Arguments: []Expr{&Literal{Value: 1.0}, &Literal{Value: 2.0}},
	}
	assert.Equal(t, "(call f 1 2)", p.Print(expr))
}

func TestPrinter_GetSetThisSuper(t *testing.T) {
	p := &Printer{}
	obj := &Variable{Name: tok(token.Identifier, "obj")}
	assert.Equal(t, "(get field obj)", p.Print(&Get{Object: obj, Name: tok(token.Identifier, "field")}))
	assert.Equal(t, "(set field obj 1)", p.Print(&Set{Object: obj, Name: tok(token.Identifier, "field"), Value: &Literal{Value: 1.0}}))
	assert.Equal(t, "this", p.Print(&This{Keyword: tok(token.This, "this")}))
	assert.Equal(t, "(super m)", p.Print(&Super{Keyword: tok(token.Super, "super"), Method: tok(token.Identifier, "m")}))
}

func TestPrinter_LogicalAndAssign(t *testing.T) {
	p := &Printer{}
	logical := &Logical{Left: &Literal{Value: true}, Op: tok(token.And, "and"), Right: &Literal{Value: false}}
	assert.Equal(t, "(and true false)", p.Print(logical))

	assign := &Assign{Name: tok(token.Identifier, "x"), Value: &Literal{Value: 1.0}}
	assert.Equal(t, "(= x 1)", p.Print(assign))
}
