/*
Value representations for the Lox runtime. A Lox value is one of: nil,
bool, float64, string, *LoxFunction, *LoxClass, or *LoxInstance —
plain Go values for the four primitive cases (so they get Go's native
value semantics), and pointers for the three reference cases (so
closures, classes, and instances are shared by reference and compare
by identity).
*/
package interp

import (
	"fmt"

	"github.com/jasonherngwang/golox/internal/ast"
	"github.com/jasonherngwang/golox/internal/token"
)

// Callable is anything that can appear on the left of a Call
// expression: a LoxFunction or a LoxClass (whose "call" constructs an
// instance).
type Callable interface {
	Arity() int
	Call(interp *Interpreter, args []interface{}) interface{}
}

// RuntimeError is a Lox-level runtime error: a type mismatch, arity
// mismatch, undefined name, or similarly user-visible failure. It is
// raised by panic from deep inside expression evaluation and caught by
// a single recover at Interpreter.Interpret, which is how it threads
// back up through arbitrary nesting without needing every call site to
// check an error return.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Token.Line)
}

// controlReturn is the non-local control-flow signal for `return`.
// Unlike RuntimeError it is never raised by panic: it is threaded
// back up through ordinary Go error returns
// from Interpreter.execute / executeBlock, one nested block at a time,
// until LoxFunction.Call catches it at the enclosing function boundary.
// Keeping it a distinct type from RuntimeError (both merely implement
// error) is what lets callers tell "the function returned" apart from
// "something went wrong" without a type switch at every level.
type controlReturn struct {
	Value interface{}
}

func (c *controlReturn) Error() string { return "return" }

// LoxFunction is a user-defined function or method: its declaration
// plus the environment captured at definition time (its closure).
type LoxFunction struct {
	declaration   *ast.Function
	closure       *Environment
	isInitializer bool
}

// NewLoxFunction wraps a parsed function declaration with the
// environment it closes over.
func NewLoxFunction(declaration *ast.Function, closure *Environment, isInitializer bool) *LoxFunction {
	return &LoxFunction{declaration: declaration, closure: closure, isInitializer: isInitializer}
}

// Bind produces a new LoxFunction sharing this one's declaration, whose
// closure additionally defines `this` as instance. This is what makes
// `var m = o.method; m()` still see the right receiver even once
// extracted from o.
func (f *LoxFunction) Bind(instance *LoxInstance) *LoxFunction {
	env := NewEnvironment(f.closure)
	env.Define("this", instance)
	return NewLoxFunction(f.declaration, env, f.isInitializer)
}

func (f *LoxFunction) Arity() int {
	return len(f.declaration.Params)
}

// Call runs the function body in a fresh environment linked to its
// closure (not the caller's environment: this is what makes scoping
// lexical rather than dynamic).
func (f *LoxFunction) Call(interp *Interpreter, args []interface{}) interface{} {
	env := NewEnvironment(f.closure)
	for i, param := range f.declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	err := interp.executeBlock(f.declaration.Body, env)
	if ret, ok := err.(*controlReturn); ok {
		if f.isInitializer {
			return f.closure.GetAt(0, "this")
		}
		return ret.Value
	}
	if f.isInitializer {
		return f.closure.GetAt(0, "this")
	}
	return nil
}

func (f *LoxFunction) String() string {
	return fmt.Sprintf("<fn %s>", f.declaration.Name.Lexeme)
}

// LoxClass is a class: its name, optional superclass, and its own
// (non-inherited) methods. A LoxClass is itself Callable: calling it
// constructs an instance.
type LoxClass struct {
	Name       string
	Superclass *LoxClass
	Methods    map[string]*LoxFunction
}

// FindMethod looks up name on this class, then delegates up the
// superclass chain; the first definition found walking from the class
// upward wins.
func (c *LoxClass) FindMethod(name string) *LoxFunction {
	if m, ok := c.Methods[name]; ok {
		return m
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil
}

func (c *LoxClass) Arity() int {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

// Call constructs a fresh instance and, if the class (or an ancestor)
// defines `init`, binds and runs it with the given arguments.
func (c *LoxClass) Call(interp *Interpreter, args []interface{}) interface{} {
	instance := &LoxInstance{Class: c, Fields: make(map[string]interface{})}
	if init := c.FindMethod("init"); init != nil {
		init.Bind(instance).Call(interp, args)
	}
	return instance
}

func (c *LoxClass) String() string {
	return c.Name
}

// LoxInstance is a runtime object: a back-reference to its class and a
// dynamically-growing set of fields.
type LoxInstance struct {
	Class  *LoxClass
	Fields map[string]interface{}
}

// Get reads a property: instance fields shadow methods. A method
// lookup returns the method bound to this instance, never the raw
// unbound declaration.
func (i *LoxInstance) Get(name token.Token) interface{} {
	if v, ok := i.Fields[name.Lexeme]; ok {
		return v
	}
	if m := i.Class.FindMethod(name.Lexeme); m != nil {
		return m.Bind(i)
	}
	panic(&RuntimeError{Token: name, Message: "Undefined property '" + name.Lexeme + "'."})
}

// Set writes a field, creating it if absent (fields are dynamically
// added by assignment).
func (i *LoxInstance) Set(name token.Token, value interface{}) {
	i.Fields[name.Lexeme] = value
}

func (i *LoxInstance) String() string {
	return i.Class.Name + " instance"
}
