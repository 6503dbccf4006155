/*
Package repl implements the interactive Read-Eval-Print Loop for golox.

It prints a banner, reads lines with readline-backed editing and
history, evaluates each line through a replapi.Session, and exits on
`.exit`. A line that is a single bare expression has its value
auto-printed, the way a calculator echoes what you typed.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/jasonherngwang/golox/internal/replapi"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const banner = `   __    ___  _  __
  / /___/ _ \| |/ /
 / / __ / / / |   /
/ /_/ // /_/ /   |
\____(_)____/_/|_|
`

// Repl holds the static display configuration for an interactive
// session.
type Repl struct {
	Banner  string
	Version string
	Prompt  string
}

// New creates a Repl with golox's banner, version, and prompt.
func New(version string) *Repl {
	return &Repl{Banner: banner, Version: version, Prompt: "lox> "}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintln(w, strings.Repeat("-", 40))
	greenColor.Fprint(w, r.Banner)
	blueColor.Fprintln(w, strings.Repeat("-", 40))
	yellowColor.Fprintln(w, "golox "+r.Version+" -- a tree-walking Lox interpreter")
	cyanColor.Fprintln(w, "Type Lox statements and press enter. Type '.exit' to quit.")
	blueColor.Fprintln(w, strings.Repeat("-", 40))
}

// Start runs the REPL main loop until EOF, an error, or '.exit'.
func (r *Repl) Start(w io.Writer) {
	r.printBanner(w)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	session := replapi.New(w)

	for {
		line, err := rl.Readline()
		if err != nil {
			w.Write([]byte("\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			return
		}
		rl.SaveHistory(line)

		r.evalLine(w, session, line)
	}
}

func (r *Repl) evalLine(w io.Writer, session *replapi.Session, line string) {
	defer func() {
		if rec := recover(); rec != nil {
			redColor.Fprintf(w, "[internal error] %v\n", rec)
		}
	}()

	diagnostics, outcome, err := session.RunInteractive(line)
	switch outcome {
	case replapi.StaticError:
		for _, d := range diagnostics {
			redColor.Fprintln(w, d.String())
		}
	case replapi.RuntimeError:
		redColor.Fprintln(w, err.Error())
	}
}
