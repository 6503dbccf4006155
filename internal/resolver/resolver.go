/*
Package resolver implements the static scope-tracking pass that runs
between parsing and interpretation. It walks the AST once,
tracking a stack of lexical scopes, and for every Variable, Assign,
This, and Super expression records how many environment hops separate
its use from the scope that declares it. The interpreter consults this
side-table instead of re-deriving scope depth at run time.

Resolver errors (use-before-init, duplicate local declaration, `return`
outside a function, value-return in an initializer, `this`/`super`
misuse, self-inheriting classes) are collected through the same
reporter.Reporter the parser uses, and do not stop the walk early.
*/
package resolver

import (
	"github.com/jasonherngwang/golox/internal/ast"
	"github.com/jasonherngwang/golox/internal/reporter"
	"github.com/jasonherngwang/golox/internal/token"
)

type functionKind int

const (
	fnNone functionKind = iota
	fnFunction
	fnInitializer
	fnMethod
)

type classKind int

const (
	classNone classKind = iota
	classClass
	classSubclass
)

// Locals is the depth side-table: for each Expr node with a resolved
// local binding, the number of environment hops from the scope in
// which it is used to the scope that declares it. An expression absent
// from this map is global.
type Locals map[ast.Expr]int

// Resolver performs the single static pass over a parsed program.
type Resolver struct {
	report      *reporter.Reporter
	scopes      []map[string]bool
	locals      Locals
	currentFn   functionKind
	currentCls  classKind
}

// New creates a Resolver that reports errors to rep.
func New(rep *reporter.Reporter) *Resolver {
	return &Resolver{report: rep, locals: make(Locals)}
}

// Resolve walks an entire program and returns the populated depth
// side-table. Only meaningful to execute when rep.HasErrors() is false
// afterward.
func (r *Resolver) Resolve(statements []ast.Stmt) Locals {
	r.resolveStmts(statements)
	return r.locals
}

func (r *Resolver) resolveStmts(statements []ast.Stmt) {
	for _, s := range statements {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(s ast.Stmt) {
	s.AcceptStmt(r)
}

func (r *Resolver) resolveExpr(e ast.Expr) {
	e.AcceptExpr(r)
}

// --- scope stack ---

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return // global scope tolerates redeclaration
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.report.ReportAt(reporter.Resolve, name.Line, " at '"+name.Lexeme+"'",
			"Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal walks the scope stack from innermost outward and, if
// name is found, records its depth for expr.
func (r *Resolver) resolveLocal(expr ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
	// not found in any local scope: treat as global, do nothing.
}

func (r *Resolver) resolveFunction(fn *ast.Function, kind functionKind) {
	enclosingFn := r.currentFn
	r.currentFn = kind
	defer func() { r.currentFn = enclosingFn }()

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()
}

// --- statements ---

func (r *Resolver) VisitBlockStmt(s *ast.Block) interface{} {
	r.beginScope()
	r.resolveStmts(s.Statements)
	r.endScope()
	return nil
}

func (r *Resolver) VisitClassStmt(s *ast.Class) interface{} {
	enclosingCls := r.currentCls
	r.currentCls = classClass
	defer func() { r.currentCls = enclosingCls }()

	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.report.ReportAt(reporter.Resolve, s.Superclass.Name.Line, "", "A class can't inherit from itself.")
		}
		r.currentCls = classSubclass
		r.resolveExpr(s.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
		defer r.endScope()
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true
	defer r.endScope()

	for _, method := range s.Methods {
		kind := fnMethod
		if method.Name.Lexeme == "init" {
			kind = fnInitializer
		}
		r.resolveFunction(method, kind)
	}
	return nil
}

func (r *Resolver) VisitExpressionStmt(s *ast.Expression) interface{} {
	r.resolveExpr(s.Expression)
	return nil
}

func (r *Resolver) VisitFunctionStmt(s *ast.Function) interface{} {
	r.declare(s.Name)
	r.define(s.Name)
	r.resolveFunction(s, fnFunction)
	return nil
}

func (r *Resolver) VisitIfStmt(s *ast.If) interface{} {
	r.resolveExpr(s.Condition)
	r.resolveStmt(s.ThenBranch)
	if s.ElseBranch != nil {
		r.resolveStmt(s.ElseBranch)
	}
	return nil
}

func (r *Resolver) VisitPrintStmt(s *ast.Print) interface{} {
	r.resolveExpr(s.Expression)
	return nil
}

func (r *Resolver) VisitReturnStmt(s *ast.Return) interface{} {
	if r.currentFn == fnNone {
		r.report.ReportAt(reporter.Resolve, s.Keyword.Line, "", "Can't return from top-level code.")
	}
	if s.Value != nil {
		if r.currentFn == fnInitializer {
			r.report.ReportAt(reporter.Resolve, s.Keyword.Line, "", "Can't return a value from an initializer.")
		}
		r.resolveExpr(s.Value)
	}
	return nil
}

func (r *Resolver) VisitVarStmt(s *ast.Var) interface{} {
	r.declare(s.Name)
	if s.Initializer != nil {
		r.resolveExpr(s.Initializer)
	}
	r.define(s.Name)
	return nil
}

func (r *Resolver) VisitWhileStmt(s *ast.While) interface{} {
	r.resolveExpr(s.Condition)
	r.resolveStmt(s.Body)
	return nil
}

// --- expressions ---

func (r *Resolver) VisitAssignExpr(e *ast.Assign) interface{} {
	r.resolveExpr(e.Value)
	r.resolveLocal(e, e.Name)
	return nil
}

func (r *Resolver) VisitBinaryExpr(e *ast.Binary) interface{} {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil
}

func (r *Resolver) VisitCallExpr(e *ast.Call) interface{} {
	r.resolveExpr(e.Callee)
	for _, arg := range e.Arguments {
		r.resolveExpr(arg)
	}
	return nil
}

func (r *Resolver) VisitGetExpr(e *ast.Get) interface{} {
	r.resolveExpr(e.Object)
	return nil
}

func (r *Resolver) VisitGroupingExpr(e *ast.Grouping) interface{} {
	r.resolveExpr(e.Expression)
	return nil
}

func (r *Resolver) VisitLiteralExpr(e *ast.Literal) interface{} {
	return nil
}

func (r *Resolver) VisitLogicalExpr(e *ast.Logical) interface{} {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil
}

func (r *Resolver) VisitSetExpr(e *ast.Set) interface{} {
	r.resolveExpr(e.Value)
	r.resolveExpr(e.Object)
	return nil
}

func (r *Resolver) VisitSuperExpr(e *ast.Super) interface{} {
	switch r.currentCls {
	case classNone:
		r.report.ReportAt(reporter.Resolve, e.Keyword.Line, "", "Can't use 'super' outside of a class.")
	case classClass:
		r.report.ReportAt(reporter.Resolve, e.Keyword.Line, "", "Can't use 'super' in a class with no superclass.")
	}
	r.resolveLocal(e, e.Keyword)
	return nil
}

func (r *Resolver) VisitThisExpr(e *ast.This) interface{} {
	if r.currentCls == classNone {
		r.report.ReportAt(reporter.Resolve, e.Keyword.Line, "", "Can't use 'this' outside of a class.")
		return nil
	}
	r.resolveLocal(e, e.Keyword)
	return nil
}

func (r *Resolver) VisitUnaryExpr(e *ast.Unary) interface{} {
	r.resolveExpr(e.Right)
	return nil
}

func (r *Resolver) VisitVariableExpr(e *ast.Variable) interface{} {
	if len(r.scopes) > 0 {
		if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
			r.report.ReportAt(reporter.Resolve, e.Name.Line, " at '"+e.Name.Lexeme+"'",
				"Can't read local variable in its own initializer.")
		}
	}
	r.resolveLocal(e, e.Name)
	return nil
}
