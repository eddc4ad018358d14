// Package replloop implements the interactive boxx> prompt: read one
// line, evaluate it against a persistent environment, print the result
// or a colorized error, repeat until "exit".
package replloop

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/mpgarate/boxx/internal/boxxerr"
	"github.com/mpgarate/boxx/internal/env"
	"github.com/mpgarate/boxx/internal/interp"
	"github.com/mpgarate/boxx/internal/parser"
)

const prompt = "boxx> "

// Options configures a REPL run.
type Options struct {
	MaxIterations int
	UseColor      bool
}

// Run reads lines from in, evaluating each against a single persistent
// environment so top-level declarations accumulate across lines, and
// writes prompts/results/errors to out. It returns when the user types
// "exit" or the input stream ends.
func Run(in io.Reader, out io.Writer, opts Options) error {
	scanner := bufio.NewScanner(in)
	e := env.New()

	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := scanner.Text()
		if line == "exit" {
			return nil
		}
		if line == "" {
			continue
		}

		expr, err := parser.Parse(line)
		if err != nil {
			fmt.Fprintln(out, boxxerr.Display(boxxerr.NewParserError(err), opts.UseColor))
			continue
		}

		v, err := interp.Eval(e, out, expr, opts.MaxIterations)
		if err != nil {
			fmt.Fprintln(out, boxxerr.Display(err, opts.UseColor))
			continue
		}

		if opts.UseColor {
			fmt.Fprintln(out, color.New(color.FgGreen).Sprint(v.String()))
		} else {
			fmt.Fprintln(out, v.String())
		}
	}
}
