package interp

import (
	"github.com/jasonherngwang/golox/internal/token"
)

// Environment is a single lexical scope: a map of names to values plus
// an optional link to the enclosing (older) scope. Looking up a name
// walks outward through Enclosing until it is found or the global
// scope (Enclosing == nil) is exhausted.
type Environment struct {
	values    map[string]interface{}
	enclosing *Environment
}

// NewEnvironment creates a scope nested inside enclosing, or a fresh
// global scope when enclosing is nil.
func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{values: make(map[string]interface{}), enclosing: enclosing}
}

// Define binds name to value in this scope, overwriting any prior
// binding of the same name in this same scope: defining does not
// shadow within one scope, it overwrites.
func (e *Environment) Define(name string, value interface{}) {
	e.values[name] = value
}

// Get reads name starting from this scope and walking outward.
func (e *Environment) Get(name token.Token) (interface{}, error) {
	if v, ok := e.values[name.Lexeme]; ok {
		return v, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, &RuntimeError{Token: name, Message: "Undefined variable '" + name.Lexeme + "'."}
}

// Assign updates an existing binding of name, walking outward to find
// the scope that declared it. Assigning to a name no global scope (or
// any enclosing scope) has ever declared is a runtime error.
func (e *Environment) Assign(name token.Token, value interface{}) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = value
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}
	return &RuntimeError{Token: name, Message: "Undefined variable '" + name.Lexeme + "'."}
}

// ancestor walks exactly distance hops outward. The resolver guarantees
// distance is always in range, so this never walks past a nil link.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
	}
	return env
}

// GetAt reads name from the environment exactly distance hops outward,
// as recorded by the resolver's depth table.
func (e *Environment) GetAt(distance int, name string) interface{} {
	return e.ancestor(distance).values[name]
}

// AssignAt writes value for name in the environment exactly distance
// hops outward.
func (e *Environment) AssignAt(distance int, name token.Token, value interface{}) {
	e.ancestor(distance).values[name.Lexeme] = value
}
