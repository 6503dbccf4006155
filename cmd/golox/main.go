/*
Command golox is the CLI front end for the Lox interpreter. It is kept
thin: it only wires together source acquisition (file or stdin) and
the replapi.Session pipeline.

Usage:

	golox                 start the interactive REPL
	golox <script.lox>    run a script and exit
	golox --ast <script>  parse a script and print the AST of each expression
	                      statement, without running it; other statements
	                      are not printed

Exit codes: 64 on bad usage, 65 on a scan/parse/resolve error or an
unreadable file, 70 on an unrecovered runtime error, 0 otherwise.
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/jasonherngwang/golox/internal/ast"
	"github.com/jasonherngwang/golox/internal/repl"
	"github.com/jasonherngwang/golox/internal/replapi"
)

const version = "v0.1.0"

const (
	exitDataErr  = 65
	exitSoftware = 70
)

var (
	redColor = color.New(color.FgRed)
)

func main() {
	printAST := flag.Bool("ast", false, "print the parsed AST instead of executing")
	flag.Parse()

	args := flag.Args()
	switch len(args) {
	case 0:
		repl.New(version).Start(os.Stdout)
	case 1:
		if *printAST {
			os.Exit(runPrintAST(args[0]))
		}
		os.Exit(runFile(args[0]))
	default:
		fmt.Fprintln(os.Stderr, "Usage: golox [--ast] [script]")
		os.Exit(64)
	}
}

func runFile(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read file %q: %v\n", path, err)
		return exitDataErr
	}

	session := replapi.New(os.Stdout)
	diagnostics, outcome, runErr := session.Run(string(source))

	switch outcome {
	case replapi.StaticError:
		for _, d := range diagnostics {
			redColor.Fprintln(os.Stderr, d.String())
		}
		return exitDataErr
	case replapi.RuntimeError:
		redColor.Fprintln(os.Stderr, runErr.Error())
		return exitSoftware
	default:
		return 0
	}
}

func runPrintAST(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read file %q: %v\n", path, err)
		return exitDataErr
	}

	session := replapi.New(os.Stdout)
	statements, diagnostics := session.Parse(string(source))
	if len(diagnostics) > 0 {
		for _, d := range diagnostics {
			redColor.Fprintln(os.Stderr, d.String())
		}
		return exitDataErr
	}

	printer := &ast.Printer{}
	for _, stmt := range statements {
		if exprStmt, ok := stmt.(*ast.Expression); ok {
			fmt.Println(printer.Print(exprStmt.Expression))
		}
	}
	return 0
}
