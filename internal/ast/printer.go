package ast

import (
	"fmt"
	"strings"
)

// Printer renders an expression back to a parenthesized, Lisp-like
// string. It exists so the parse -> print -> re-parse round trip (spec
// §8) is testable, and backs the CLI's `--ast` debug flag.
type Printer struct{}

// Print renders a single expression.
func (p *Printer) Print(e Expr) string {
	return e.AcceptExpr(p).(string)
}

func (p *Printer) parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		b.WriteString(e.AcceptExpr(p).(string))
	}
	b.WriteByte(')')
	return b.String()
}

func (p *Printer) VisitAssignExpr(e *Assign) interface{} {
	return p.parenthesize("= "+e.Name.Lexeme, e.Value)
}

func (p *Printer) VisitBinaryExpr(e *Binary) interface{} {
	return p.parenthesize(e.Op.Lexeme, e.Left, e.Right)
}

func (p *Printer) VisitCallExpr(e *Call) interface{} {
	return p.parenthesize("call", append([]Expr{e.Callee}, e.Arguments...)...)
}

func (p *Printer) VisitGetExpr(e *Get) interface{} {
	return p.parenthesize("get "+e.Name.Lexeme, e.Object)
}

func (p *Printer) VisitGroupingExpr(e *Grouping) interface{} {
	return p.parenthesize("group", e.Expression)
}

func (p *Printer) VisitLiteralExpr(e *Literal) interface{} {
	if e.Value == nil {
		return "nil"
	}
	switch v := e.Value.(type) {
	case float64:
		return fmt.Sprintf("%g", v)
	case string:
		return v
	case bool:
		return fmt.Sprintf("%t", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (p *Printer) VisitLogicalExpr(e *Logical) interface{} {
	return p.parenthesize(e.Op.Lexeme, e.Left, e.Right)
}

func (p *Printer) VisitSetExpr(e *Set) interface{} {
	return p.parenthesize("set "+e.Name.Lexeme, e.Object, e.Value)
}

func (p *Printer) VisitSuperExpr(e *Super) interface{} {
	return "(super " + e.Method.Lexeme + ")"
}

func (p *Printer) VisitThisExpr(e *This) interface{} {
	return "this"
}

func (p *Printer) VisitUnaryExpr(e *Unary) interface{} {
	return p.parenthesize(e.Op.Lexeme, e.Right)
}

func (p *Printer) VisitVariableExpr(e *Variable) interface{} {
	return e.Name.Lexeme
}
