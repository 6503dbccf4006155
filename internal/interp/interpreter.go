/*
Package interp executes a resolved Lox AST. Statements run in order
against a "current environment" pointer that block and function entry
temporarily redirect and always restore, including on error or return
unwind. Expression evaluation is ordered left before right for
Binary/Logical, callee before arguments for Call, left-to-right for
arguments, right-hand side before binding for Assign, and object
before value for Set.
*/
package interp

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/jasonherngwang/golox/internal/ast"
	"github.com/jasonherngwang/golox/internal/resolver"
	"github.com/jasonherngwang/golox/internal/token"
)

// Interpreter walks a resolved program and produces its observable
// effects: printed output and runtime errors.
type Interpreter struct {
	Globals     *Environment
	environment *Environment
	locals      resolver.Locals
	writer      io.Writer
}

// New creates an Interpreter that writes `print` output to w and has
// only the `clock` native defined in its global scope.
func New(w io.Writer) *Interpreter {
	globals := NewEnvironment(nil)
	globals.Define("clock", &clockNative{})
	return &Interpreter{Globals: globals, environment: globals, locals: make(resolver.Locals), writer: w}
}

// SetLocals adds the resolver's depth side-table to the entries from
// earlier calls (New starts with an empty table). Keys are node
// identities, so tables from separate parses never collide, and
// functions declared by an earlier program keep their depths. Every
// Variable/Assign/This/Super lookup consults it to decide between
// GetAt/AssignAt and a plain global lookup.
func (interp *Interpreter) SetLocals(locals resolver.Locals) {
	for expr, depth := range locals {
		interp.locals[expr] = depth
	}
}

// Interpret executes a program's statements in order. A RuntimeError
// raised by panic anywhere during evaluation is recovered here and
// returned as an ordinary error, aborting the remaining statements.
func (interp *Interpreter) Interpret(statements []ast.Stmt) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if rte, ok := r.(*RuntimeError); ok {
				err = rte
				return
			}
			panic(r)
		}
	}()
	for _, s := range statements {
		if cerr := interp.execute(s); cerr != nil {
			return cerr
		}
	}
	return nil
}

func (interp *Interpreter) execute(s ast.Stmt) error {
	result := s.AcceptStmt(interp)
	if result == nil {
		return nil
	}
	return result.(error)
}

func (interp *Interpreter) evaluate(e ast.Expr) interface{} {
	return e.AcceptExpr(interp)
}

// executeBlock runs statements in env, always restoring the previous
// current-environment on every exit path via defer — normal
// completion, a propagating *controlReturn, or a panicking
// *RuntimeError.
func (interp *Interpreter) executeBlock(statements []ast.Stmt, env *Environment) error {
	previous := interp.environment
	interp.environment = env
	defer func() { interp.environment = previous }()

	for _, s := range statements {
		if err := interp.execute(s); err != nil {
			return err
		}
	}
	return nil
}

// --- statements ---

func (interp *Interpreter) VisitBlockStmt(s *ast.Block) interface{} {
	return interp.executeBlock(s.Statements, NewEnvironment(interp.environment))
}

func (interp *Interpreter) VisitClassStmt(s *ast.Class) interface{} {
	var superclass *LoxClass
	if s.Superclass != nil {
		v := interp.evaluate(s.Superclass)
		sc, ok := v.(*LoxClass)
		if !ok {
			panic(&RuntimeError{Token: s.Superclass.Name, Message: "Superclass must be a class."})
		}
		superclass = sc
	}

	interp.environment.Define(s.Name.Lexeme, nil)

	if s.Superclass != nil {
		interp.environment = NewEnvironment(interp.environment)
		interp.environment.Define("super", superclass)
	}

	methods := make(map[string]*LoxFunction)
	for _, method := range s.Methods {
		methods[method.Name.Lexeme] = NewLoxFunction(method, interp.environment, method.Name.Lexeme == "init")
	}

	class := &LoxClass{Name: s.Name.Lexeme, Superclass: superclass, Methods: methods}

	if s.Superclass != nil {
		interp.environment = interp.environment.enclosing // pop the `super` scope
	}
	if err := interp.environment.Assign(s.Name, class); err != nil {
		panic(err)
	}
	return nil
}

func (interp *Interpreter) VisitExpressionStmt(s *ast.Expression) interface{} {
	interp.evaluate(s.Expression)
	return nil
}

func (interp *Interpreter) VisitFunctionStmt(s *ast.Function) interface{} {
	fn := NewLoxFunction(s, interp.environment, false)
	interp.environment.Define(s.Name.Lexeme, fn)
	return nil
}

func (interp *Interpreter) VisitIfStmt(s *ast.If) interface{} {
	if isTruthy(interp.evaluate(s.Condition)) {
		return interp.execute(s.ThenBranch)
	} else if s.ElseBranch != nil {
		return interp.execute(s.ElseBranch)
	}
	return nil
}

func (interp *Interpreter) VisitPrintStmt(s *ast.Print) interface{} {
	value := interp.evaluate(s.Expression)
	fmt.Fprintln(interp.writer, Stringify(value))
	return nil
}

func (interp *Interpreter) VisitReturnStmt(s *ast.Return) interface{} {
	var value interface{}
	if s.Value != nil {
		value = interp.evaluate(s.Value)
	}
	return &controlReturn{Value: value}
}

func (interp *Interpreter) VisitVarStmt(s *ast.Var) interface{} {
	var value interface{}
	if s.Initializer != nil {
		value = interp.evaluate(s.Initializer)
	}
	interp.environment.Define(s.Name.Lexeme, value)
	return nil
}

func (interp *Interpreter) VisitWhileStmt(s *ast.While) interface{} {
	for isTruthy(interp.evaluate(s.Condition)) {
		if err := interp.execute(s.Body); err != nil {
			return err
		}
	}
	return nil
}

// --- expressions ---

func (interp *Interpreter) VisitAssignExpr(e *ast.Assign) interface{} {
	value := interp.evaluate(e.Value)
	if distance, ok := interp.locals[e]; ok {
		interp.environment.AssignAt(distance, e.Name, value)
	} else if err := interp.Globals.Assign(e.Name, value); err != nil {
		panic(err)
	}
	return value
}

func (interp *Interpreter) VisitBinaryExpr(e *ast.Binary) interface{} {
	left := interp.evaluate(e.Left)
	right := interp.evaluate(e.Right)

	switch e.Op.Kind {
	case token.Minus:
		l, r := checkNumberOperands(e.Op, left, right)
		return l - r
	case token.Slash:
		l, r := checkNumberOperands(e.Op, left, right)
		return l / r
	case token.Star:
		l, r := checkNumberOperands(e.Op, left, right)
		return l * r
	case token.Plus:
		if ln, lok := left.(float64); lok {
			if rn, rok := right.(float64); rok {
				return ln + rn
			}
		}
		if ls, lok := left.(string); lok {
			if rs, rok := right.(string); rok {
				return ls + rs
			}
		}
		panic(&RuntimeError{Token: e.Op, Message: "Operands must be two numbers or two strings."})
	case token.Greater:
		l, r := checkNumberOperands(e.Op, left, right)
		return l > r
	case token.GreaterEqual:
		l, r := checkNumberOperands(e.Op, left, right)
		return l >= r
	case token.Less:
		l, r := checkNumberOperands(e.Op, left, right)
		return l < r
	case token.LessEqual:
		l, r := checkNumberOperands(e.Op, left, right)
		return l <= r
	case token.BangEqual:
		return !isEqual(left, right)
	case token.EqualEqual:
		return isEqual(left, right)
	}
	panic(&RuntimeError{Token: e.Op, Message: "Unreachable binary operator."})
}

func (interp *Interpreter) VisitCallExpr(e *ast.Call) interface{} {
	callee := interp.evaluate(e.Callee)

	args := make([]interface{}, len(e.Arguments))
	for i, a := range e.Arguments {
		args[i] = interp.evaluate(a)
	}

	callable, ok := callee.(Callable)
	if !ok {
		panic(&RuntimeError{Token: e.Paren, Message: "Can only call functions and classes."})
	}
	if len(args) != callable.Arity() {
		panic(&RuntimeError{Token: e.Paren, Message: fmt.Sprintf(
			"Expected %d arguments but got %d.", callable.Arity(), len(args))})
	}
	return callable.Call(interp, args)
}

func (interp *Interpreter) VisitGetExpr(e *ast.Get) interface{} {
	object := interp.evaluate(e.Object)
	instance, ok := object.(*LoxInstance)
	if !ok {
		panic(&RuntimeError{Token: e.Name, Message: "Only instances have fields."})
	}
	return instance.Get(e.Name)
}

func (interp *Interpreter) VisitGroupingExpr(e *ast.Grouping) interface{} {
	return interp.evaluate(e.Expression)
}

func (interp *Interpreter) VisitLiteralExpr(e *ast.Literal) interface{} {
	return e.Value
}

func (interp *Interpreter) VisitLogicalExpr(e *ast.Logical) interface{} {
	left := interp.evaluate(e.Left)
	if e.Op.Kind == token.Or {
		if isTruthy(left) {
			return left
		}
	} else { // and
		if !isTruthy(left) {
			return left
		}
	}
	return interp.evaluate(e.Right)
}

func (interp *Interpreter) VisitSetExpr(e *ast.Set) interface{} {
	object := interp.evaluate(e.Object)
	instance, ok := object.(*LoxInstance)
	if !ok {
		panic(&RuntimeError{Token: e.Name, Message: "Only instances have fields."})
	}
	value := interp.evaluate(e.Value)
	instance.Set(e.Name, value)
	return value
}

func (interp *Interpreter) VisitSuperExpr(e *ast.Super) interface{} {
	distance := interp.locals[e]
	superclass := interp.environment.GetAt(distance, "super").(*LoxClass)
	instance := interp.environment.GetAt(distance-1, "this").(*LoxInstance)

	method := superclass.FindMethod(e.Method.Lexeme)
	if method == nil {
		panic(&RuntimeError{Token: e.Method, Message: "Undefined property '" + e.Method.Lexeme + "'."})
	}
	return method.Bind(instance)
}

func (interp *Interpreter) VisitThisExpr(e *ast.This) interface{} {
	return interp.lookUpVariable(e.Keyword, e)
}

func (interp *Interpreter) VisitUnaryExpr(e *ast.Unary) interface{} {
	right := interp.evaluate(e.Right)
	switch e.Op.Kind {
	case token.Minus:
		n, ok := right.(float64)
		if !ok {
			panic(&RuntimeError{Token: e.Op, Message: "Operand must be a number."})
		}
		return -n
	case token.Bang:
		return !isTruthy(right)
	}
	panic(&RuntimeError{Token: e.Op, Message: "Unreachable unary operator."})
}

func (interp *Interpreter) VisitVariableExpr(e *ast.Variable) interface{} {
	return interp.lookUpVariable(e.Name, e)
}

// lookUpVariable reads name using the resolver's recorded depth for
// expr, or falls back to the global scope if expr has no entry (spec
// §4.3 "absence means global").
func (interp *Interpreter) lookUpVariable(name token.Token, expr ast.Expr) interface{} {
	if distance, ok := interp.locals[expr]; ok {
		return interp.environment.GetAt(distance, name.Lexeme)
	}
	value, err := interp.Globals.Get(name)
	if err != nil {
		panic(err)
	}
	return value
}

// --- helpers ---

func isTruthy(v interface{}) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// isEqual implements Lox's equality rule. Because Lox values are
// represented as plain Go float64/string/bool for the value types and
// as pointers for functions/classes/instances, Go's own `==` already
// gives same-type value equality for the former and reference equality
// for the latter, including IEEE NaN != NaN.
func isEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a == b
}

func checkNumberOperands(op token.Token, left, right interface{}) (float64, float64) {
	l, lok := left.(float64)
	r, rok := right.(float64)
	if !lok || !rok {
		panic(&RuntimeError{Token: op, Message: "Operands must be numbers."})
	}
	return l, r
}

// Stringify renders a Lox value the way `print` and the REPL display it.
func Stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(v)
	case float64:
		if math.IsInf(v, 1) {
			return "inf"
		}
		if math.IsInf(v, -1) {
			return "-inf"
		}
		if math.IsNaN(v) {
			return "nan"
		}
		text := strconv.FormatFloat(v, 'f', -1, 64)
		if strings.HasSuffix(text, ".0") {
			text = strings.TrimSuffix(text, ".0")
		}
		return text
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
