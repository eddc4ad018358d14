// Command boxx is the CLI entrypoint: run, repl, lex, parse, trace,
// and version subcommands.
package main

import (
	"fmt"
	"os"

	"github.com/mpgarate/boxx/cmd/boxx/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
