package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mpgarate/boxx/internal/lexer"
	"github.com/mpgarate/boxx/internal/token"
)

var (
	showPos    bool
	onlyErrors bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a boxx program and print the resulting tokens",
	Args:  cobra.MaximumNArgs(1),
	RunE:  lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from a file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&onlyErrors, "only-errors", false, "show only illegal tokens")
}

func lexScript(_ *cobra.Command, args []string) error {
	source, _, err := readSource(args)
	if err != nil {
		return err
	}

	l := lexer.New(source)
	for {
		tok := l.NextToken()
		if !onlyErrors || tok.Type == token.ILLEGAL {
			printToken(tok)
		}
		if tok.Type == token.EOF {
			break
		}
	}

	if errs := l.Errors(); len(errs) > 0 {
		return fmt.Errorf("found %d lexical error(s)", len(errs))
	}
	return nil
}

func printToken(tok token.Token) {
	if showPos {
		fmt.Printf("[%-9s] %q @%s\n", tok.Type, tok.Literal, tok.Pos)
		return
	}
	fmt.Printf("[%-9s] %q\n", tok.Type, tok.Literal)
}
