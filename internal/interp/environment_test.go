package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jasonherngwang/golox/internal/token"
)

func name(lexeme string) token.Token {
	return token.New(token.Identifier, lexeme, nil, 1)
}

func TestEnvironment_DefineThenGet(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("a", 1.0)
	v, err := env.Get(name("a"))
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestEnvironment_GetWalksToEnclosing(t *testing.T) {
	outer := NewEnvironment(nil)
	outer.Define("a", "outer-value")
	inner := NewEnvironment(outer)
	v, err := inner.Get(name("a"))
	require.NoError(t, err)
	assert.Equal(t, "outer-value", v)
}

func TestEnvironment_DefineOverwritesSameScope(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("a", 1.0)
	env.Define("a", 2.0)
	v, err := env.Get(name("a"))
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
}

func TestEnvironment_UndefinedGetIsError(t *testing.T) {
	env := NewEnvironment(nil)
	_, err := env.Get(name("missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undefined variable 'missing'.")
}

func TestEnvironment_AssignUpdatesDeclaringScope(t *testing.T) {
	outer := NewEnvironment(nil)
	outer.Define("a", 1.0)
	inner := NewEnvironment(outer)
	err := inner.Assign(name("a"), 2.0)
	require.NoError(t, err)

	v, _ := outer.Get(name("a"))
	assert.Equal(t, 2.0, v)
}

func TestEnvironment_AssignUndeclaredIsError(t *testing.T) {
	env := NewEnvironment(nil)
	err := env.Assign(name("missing"), 1.0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undefined variable 'missing'.")
}

func TestEnvironment_GetAtAndAssignAt(t *testing.T) {
	global := NewEnvironment(nil)
	global.Define("a", "global")
	middle := NewEnvironment(global)
	local := NewEnvironment(middle)

	assert.Equal(t, "global", local.GetAt(2, "a"))

	local.AssignAt(2, name("a"), "updated")
	v, _ := global.Get(name("a"))
	assert.Equal(t, "updated", v)
}
