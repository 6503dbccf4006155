/*
Package ast defines the Lox abstract syntax tree: the Expr and Stmt
tagged-variant families, dispatched through the visitor pattern so each
pass (resolve, interpret, print) is a single exhaustive implementation
of the corresponding Visitor interface.

Every Expr node has stable pointer identity, which is what lets the
resolver's side-table (internal/resolver) key on a *specific* use of a
variable rather than on its name.
*/
package ast

import "github.com/jasonherngwang/golox/internal/token"

// Expr is any node that can appear where a value is produced.
type Expr interface {
	AcceptExpr(v ExprVisitor) interface{}
}

// ExprVisitor is implemented once per pass over expressions.
type ExprVisitor interface {
	VisitAssignExpr(e *Assign) interface{}
	VisitBinaryExpr(e *Binary) interface{}
	VisitCallExpr(e *Call) interface{}
	VisitGetExpr(e *Get) interface{}
	VisitGroupingExpr(e *Grouping) interface{}
	VisitLiteralExpr(e *Literal) interface{}
	VisitLogicalExpr(e *Logical) interface{}
	VisitSetExpr(e *Set) interface{}
	VisitSuperExpr(e *Super) interface{}
	VisitThisExpr(e *This) interface{}
	VisitUnaryExpr(e *Unary) interface{}
	VisitVariableExpr(e *Variable) interface{}
}

// Assign is `name = value`.
type Assign struct {
	Name  token.Token
	Value Expr
}

func (e *Assign) AcceptExpr(v ExprVisitor) interface{} { return v.VisitAssignExpr(e) }

// Binary is `left op right` for arithmetic, comparison, and equality
// operators (never `and`/`or`, which are Logical).
type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (e *Binary) AcceptExpr(v ExprVisitor) interface{} { return v.VisitBinaryExpr(e) }

// Call is `callee(arguments...)`. Paren is the closing ')' token,
// recorded so runtime errors can report a line.
type Call struct {
	Callee    Expr
	Paren     token.Token
	Arguments []Expr
}

func (e *Call) AcceptExpr(v ExprVisitor) interface{} { return v.VisitCallExpr(e) }

// Get is `object.name`, a property/method read.
type Get struct {
	Object Expr
	Name   token.Token
}

func (e *Get) AcceptExpr(v ExprVisitor) interface{} { return v.VisitGetExpr(e) }

// Grouping is a parenthesized expression, kept distinct from its inner
// expression so the printer can round-trip parentheses.
type Grouping struct {
	Expression Expr
}

func (e *Grouping) AcceptExpr(v ExprVisitor) interface{} { return v.VisitGroupingExpr(e) }

// Literal is a compile-time constant: nil, bool, float64, or string.
type Literal struct {
	Value interface{}
}

func (e *Literal) AcceptExpr(v ExprVisitor) interface{} { return v.VisitLiteralExpr(e) }

// Logical is `left and right` / `left or right`; kept distinct from
// Binary because the interpreter must short-circuit it.
type Logical struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (e *Logical) AcceptExpr(v ExprVisitor) interface{} { return v.VisitLogicalExpr(e) }

// Set is `object.name = value`, a property write.
type Set struct {
	Object Expr
	Name   token.Token
	Value  Expr
}

func (e *Set) AcceptExpr(v ExprVisitor) interface{} { return v.VisitSetExpr(e) }

// Super is `super.method`.
type Super struct {
	Keyword token.Token
	Method  token.Token
}

func (e *Super) AcceptExpr(v ExprVisitor) interface{} { return v.VisitSuperExpr(e) }

// This is the `this` keyword used as an expression.
type This struct {
	Keyword token.Token
}

func (e *This) AcceptExpr(v ExprVisitor) interface{} { return v.VisitThisExpr(e) }

// Unary is `-right` or `!right`.
type Unary struct {
	Op    token.Token
	Right Expr
}

func (e *Unary) AcceptExpr(v ExprVisitor) interface{} { return v.VisitUnaryExpr(e) }

// Variable is a bare identifier used as an expression.
type Variable struct {
	Name token.Token
}

func (e *Variable) AcceptExpr(v ExprVisitor) interface{} { return v.VisitVariableExpr(e) }
