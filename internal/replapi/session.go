/*
Package replapi provides a small facade over the scan/parse/resolve/
interpret pipeline that both the CLI and the REPL share. A Session
holds the interpreter state (global bindings, prior declarations) that
must persist across multiple Run calls in REPL mode, while the
reporter and resolver are rebuilt fresh for each call.
*/
package replapi

import (
	"io"

	"github.com/jasonherngwang/golox/internal/ast"
	"github.com/jasonherngwang/golox/internal/interp"
	"github.com/jasonherngwang/golox/internal/lexer"
	"github.com/jasonherngwang/golox/internal/parser"
	"github.com/jasonherngwang/golox/internal/reporter"
	"github.com/jasonherngwang/golox/internal/resolver"
)

// Outcome classifies how a Run call ended, so callers (the CLI) can
// choose the right process exit code: 65 for a scan/parse/resolve
// error, 70 for a runtime error, 0 otherwise.
type Outcome int

const (
	OK Outcome = iota
	StaticError
	RuntimeError
)

// Session holds interpreter state (globals, environments created by
// prior lines) that must persist across multiple Run calls in REPL
// mode, while the reporter and resolver's depth table are rebuilt
// fresh for every call since they are specific to one parse.
type Session struct {
	interp *interp.Interpreter
}

// New creates a Session writing `print` output to w.
func New(w io.Writer) *Session {
	return &Session{interp: interp.New(w)}
}

// Run scans, parses, resolves, and (if no static errors occurred)
// interprets source as a sequence of statements.
func (s *Session) Run(source string) ([]reporter.Diagnostic, Outcome, error) {
	rep := reporter.New()

	lex := lexer.New(source, rep)
	tokens := lex.ScanTokens()
	if rep.HasErrors() {
		return rep.Diagnostics(), StaticError, nil
	}

	par := parser.New(tokens, rep)
	statements := par.Parse()
	if rep.HasErrors() {
		return rep.Diagnostics(), StaticError, nil
	}

	res := resolver.New(rep)
	locals := res.Resolve(statements)
	if rep.HasErrors() {
		return rep.Diagnostics(), StaticError, nil
	}

	s.interp.SetLocals(locals)
	if err := s.interp.Interpret(statements); err != nil {
		return nil, RuntimeError, err
	}
	return nil, OK, nil
}

// Parse exposes the scan+parse stages alone, for tooling (the CLI's
// `--ast` flag) that wants the tree without executing it.
func (s *Session) Parse(source string) ([]ast.Stmt, []reporter.Diagnostic) {
	rep := reporter.New()
	lex := lexer.New(source, rep)
	tokens := lex.ScanTokens()
	par := parser.New(tokens, rep)
	statements := par.Parse()
	return statements, rep.Diagnostics()
}

// RunInteractive behaves like Run, except that a line consisting of a
// single bare expression statement is auto-printed, the jlox/clox REPL
// convenience (SPEC_FULL.md "REPL last-value echo") that lets a user
// type `1 + 2` at the prompt instead of `print 1 + 2;`. Script files
// never get this treatment: only the REPL calls RunInteractive.
func (s *Session) RunInteractive(source string) ([]reporter.Diagnostic, Outcome, error) {
	rep := reporter.New()

	lex := lexer.New(source, rep)
	tokens := lex.ScanTokens()
	if rep.HasErrors() {
		return rep.Diagnostics(), StaticError, nil
	}

	par := parser.New(tokens, rep)
	statements := par.Parse()
	if rep.HasErrors() {
		// A lone expression typed without its trailing ';' is accepted.
		retry := reporter.New()
		retryStmts := parser.New(lexer.New(source+";", retry).ScanTokens(), retry).Parse()
		if retry.HasErrors() || len(retryStmts) != 1 {
			return rep.Diagnostics(), StaticError, nil
		}
		if _, ok := retryStmts[0].(*ast.Expression); !ok {
			return rep.Diagnostics(), StaticError, nil
		}
		rep, statements = retry, retryStmts
	}

	if len(statements) == 1 {
		if expr, ok := statements[0].(*ast.Expression); ok {
			statements[0] = &ast.Print{Expression: expr.Expression}
		}
	}

	res := resolver.New(rep)
	locals := res.Resolve(statements)
	if rep.HasErrors() {
		return rep.Diagnostics(), StaticError, nil
	}

	s.interp.SetLocals(locals)
	if err := s.interp.Interpret(statements); err != nil {
		return nil, RuntimeError, err
	}
	return nil, OK, nil
}
