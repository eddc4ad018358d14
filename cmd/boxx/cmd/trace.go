package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mpgarate/boxx/internal/ast"
	"github.com/mpgarate/boxx/internal/boxxerr"
	"github.com/mpgarate/boxx/internal/env"
	"github.com/mpgarate/boxx/internal/interp"
	"github.com/mpgarate/boxx/internal/parser"
	"github.com/mpgarate/boxx/internal/tracelog"
)

var traceOut string

var traceCmd = &cobra.Command{
	Use:   "trace [file]",
	Short: "Evaluate a boxx program and record every reduction as JSON",
	Long: `Evaluate a boxx program step by step, writing a JSON trace of every
reduction (run correlation ID plus one entry per step) to --out, or to
the config file's trace_file when --out is not given, or to stdout if
neither is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTrace,
}

func init() {
	rootCmd.AddCommand(traceCmd)
	traceCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "trace inline code instead of reading from a file")
	traceCmd.Flags().StringVar(&traceOut, "out", "", "write the JSON trace to this path instead of stdout")
}

func runTrace(_ *cobra.Command, args []string) error {
	source, _, err := readSource(args)
	if err != nil {
		return err
	}

	expr, err := parser.Parse(source)
	if err != nil {
		return boxxerr.NewParserError(err)
	}

	rec := tracelog.NewRecorder()
	e := env.New()
	v, evalErr := interp.EvalTraced(e, os.Stdout, expr, cfg.MaxIterations, func(i int, term ast.Expr) {
		rec.Record(i, term)
	})

	var out io.Writer = os.Stdout
	outPath := traceOut
	if outPath == "" {
		outPath = cfg.TraceFile
	}
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating trace file: %w", err)
		}
		defer f.Close()
		out = f
	}
	fmt.Fprintln(out, rec.JSON())

	if evalErr != nil {
		fmt.Fprintln(os.Stderr, boxxerr.Display(evalErr, useColor()))
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, "result: %s (run %s, %d step(s))\n", v.String(), rec.RunID(), rec.StepCount())
	return nil
}
