// Package boxx is the public embedding API: parse and evaluate a boxx
// source program in one call.
package boxx

import (
	"io"
	"os"

	"github.com/mpgarate/boxx/internal/ast"
	"github.com/mpgarate/boxx/internal/boxxerr"
	"github.com/mpgarate/boxx/internal/env"
	"github.com/mpgarate/boxx/internal/interp"
	"github.com/mpgarate/boxx/internal/parser"
)

// Option configures an Evaluate call.
type Option func(*config)

type config struct {
	maxIterations int
	stdout        io.Writer
}

// WithMaxIterations overrides the default step-count cap a single
// Evaluate call will run before failing with TooManyIterations.
func WithMaxIterations(n int) Option {
	return func(c *config) { c.maxIterations = n }
}

// WithStdout redirects the output of print expressions. Defaults to
// os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(c *config) { c.stdout = w }
}

// Evaluate parses source and evaluates it to a normal form, using a
// fresh environment for each call.
func Evaluate(source string, opts ...Option) (ast.Value, error) {
	cfg := config{
		maxIterations: interp.DefaultMaxIterations,
		stdout:        os.Stdout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	expr, err := parser.Parse(source)
	if err != nil {
		return nil, boxxerr.NewParserError(err)
	}

	e := env.New()
	return interp.Eval(e, cfg.stdout, expr, cfg.maxIterations)
}
