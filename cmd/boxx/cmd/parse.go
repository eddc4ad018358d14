package cmd

import (
	"fmt"
	"os"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/mpgarate/boxx/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a boxx program and print its AST",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		source, _, err := readSource(args)
		if err != nil {
			return err
		}
		expr, err := parser.Parse(source)
		if err != nil {
			exitWithError("%v", err)
			return nil
		}
		fmt.Fprintf(os.Stdout, "%# v\n", pretty.Formatter(expr))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse inline code instead of reading from a file")
}
