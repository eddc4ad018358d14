package boxxerr

import (
	"errors"
	"strings"
	"testing"

	"github.com/mpgarate/boxx/internal/ast"
)

func TestParserErrorUnwraps(t *testing.T) {
	inner := errors.New("unexpected token")
	wrapped := NewParserError(inner)
	if !errors.Is(wrapped, inner) {
		t.Error("expected ParserError to unwrap to its inner error")
	}
}

func TestErrorMessagesNameTheOffendingTerm(t *testing.T) {
	term := ast.Val(ast.IntValue(1))
	err := NewInvalidTypeConversion("Bool", term)
	if err.Error() == "" {
		t.Fatal("expected a non-empty message")
	}
	if !strings.Contains(err.Error(), term.String()) {
		t.Errorf("expected message %q to name the term %s", err.Error(), term)
	}
}

func TestDisplayPlainVsColor(t *testing.T) {
	err := NewVariableNotFound("y")
	plain := Display(err, false)
	if plain != "Error: "+err.Error() {
		t.Errorf("got %q", plain)
	}
	colored := Display(err, true)
	if colored == plain {
		t.Error("expected colorized output to differ from plain output")
	}
}

func TestDisplayNilError(t *testing.T) {
	if Display(nil, false) != "" {
		t.Error("expected empty string for nil error")
	}
}
