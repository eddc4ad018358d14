package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mpgarate/boxx/internal/replloop"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive boxx prompt",
	Long:  `Start a read-eval-print loop over stdin, echoing each expression's result until "exit".`,
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return replloop.Run(os.Stdin, os.Stdout, replloop.Options{
			MaxIterations: cfg.MaxIterations,
			UseColor:      useColor(),
		})
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
