// Package cmd implements the boxx CLI: run, repl, lex, parse, trace,
// and version subcommands built on cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mpgarate/boxx/internal/config"
)

var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configPath string
	noColor    bool
	cfg        config.Config
)

var rootCmd = &cobra.Command{
	Use:   "boxx",
	Short: "A small-step evaluator for the boxx expression language",
	Long: `boxx evaluates a tiny dynamically-evaluated expression language:
ints, bools, arithmetic, variables, functions, and loops, by repeated
term rewriting, one reduction at a time.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config %s: %w", configPath, err)
		}
		cfg = loaded
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".boxxrc.yaml", "path to project config file")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colorized error output")
}

func useColor() bool {
	return cfg.UseColor() && !noColor
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
