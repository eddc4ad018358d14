package cmd

import (
	"fmt"
	"os"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/mpgarate/boxx/internal/boxxerr"
	"github.com/mpgarate/boxx/internal/env"
	"github.com/mpgarate/boxx/internal/interp"
	"github.com/mpgarate/boxx/internal/parser"
)

var (
	evalExpr string
	dumpAST  bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Evaluate a boxx program from a file or inline expression",
	Long: `Evaluate a boxx program to its final value.

Examples:
  boxx run program.bx
  boxx run -e "1 + 1"
  boxx run --dump-ast program.bx`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from a file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "pretty-print the parsed AST before evaluating")
}

func readSource(args []string) (source, name string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e for inline code")
}

func runScript(_ *cobra.Command, args []string) error {
	source, _, err := readSource(args)
	if err != nil {
		return err
	}

	expr, err := parser.Parse(source)
	if err != nil {
		return boxxerr.NewParserError(err)
	}

	if dumpAST {
		fmt.Fprintf(os.Stdout, "%# v\n", pretty.Formatter(expr))
	}

	e := env.New()
	v, err := interp.Eval(e, os.Stdout, expr, cfg.MaxIterations)
	if err != nil {
		fmt.Fprintln(os.Stderr, boxxerr.Display(err, useColor()))
		os.Exit(1)
	}

	fmt.Fprintln(os.Stdout, v.String())
	return nil
}
