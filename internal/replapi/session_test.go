package replapi

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_RunPrintsExplicitly(t *testing.T) {
	var buf strings.Builder
	s := New(&buf)
	_, outcome, err := s.Run("print 1 + 2;")
	require.NoError(t, err)
	assert.Equal(t, OK, outcome)
	assert.Equal(t, "3\n", buf.String())
}

func TestSession_RunBareExpressionIsNotAutoPrinted(t *testing.T) {
	var buf strings.Builder
	s := New(&buf)
	_, outcome, err := s.Run("1 + 2;")
	require.NoError(t, err)
	assert.Equal(t, OK, outcome)
	assert.Empty(t, buf.String())
}

func TestSession_RunInteractiveAutoPrintsBareExpression(t *testing.T) {
	var buf strings.Builder
	s := New(&buf)
	_, outcome, err := s.RunInteractive("1 + 2")
	require.NoError(t, err)
	assert.Equal(t, OK, outcome)
	assert.Equal(t, "3\n", buf.String())
}

func TestSession_RunInteractiveDoesNotAutoPrintMultipleStatements(t *testing.T) {
	var buf strings.Builder
	s := New(&buf)
	_, outcome, err := s.RunInteractive("var a = 1; a + 1;")
	require.NoError(t, err)
	assert.Equal(t, OK, outcome)
	assert.Empty(t, buf.String())
}

func TestSession_RunClassifiesScanError(t *testing.T) {
	s := New(&strings.Builder{})
	diags, outcome, err := s.Run("@")
	assert.NoError(t, err)
	assert.Equal(t, StaticError, outcome)
	assert.NotEmpty(t, diags)
}

func TestSession_RunClassifiesParseError(t *testing.T) {
	s := New(&strings.Builder{})
	diags, outcome, err := s.Run("1 = 2;")
	assert.NoError(t, err)
	assert.Equal(t, StaticError, outcome)
	assert.NotEmpty(t, diags)
}

func TestSession_RunClassifiesResolveError(t *testing.T) {
	s := New(&strings.Builder{})
	diags, outcome, err := s.Run("return 1;")
	assert.NoError(t, err)
	assert.Equal(t, StaticError, outcome)
	assert.NotEmpty(t, diags)
}

func TestSession_RunClassifiesRuntimeError(t *testing.T) {
	s := New(&strings.Builder{})
	_, outcome, err := s.Run("print 1 + \"a\";")
	assert.Equal(t, RuntimeError, outcome)
	require.Error(t, err)
}

func TestSession_StatePersistsAcrossRunCalls(t *testing.T) {
	var buf strings.Builder
	s := New(&buf)
	_, outcome, err := s.Run("var a = 1;")
	require.NoError(t, err)
	require.Equal(t, OK, outcome)

	_, outcome, err = s.Run("print a + 1;")
	require.NoError(t, err)
	require.Equal(t, OK, outcome)
	assert.Equal(t, "2\n", buf.String())
}

func TestSession_ParseExposesASTWithoutExecuting(t *testing.T) {
	var buf strings.Builder
	s := New(&buf)
	stmts, diags := s.Parse("1 + 2;")
	assert.Empty(t, diags)
	assert.Len(t, stmts, 1)
	assert.Empty(t, buf.String())
}
