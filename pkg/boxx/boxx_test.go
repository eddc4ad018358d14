package boxx

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/mpgarate/boxx/internal/boxxerr"
)

// scenarios is an end-to-end table: each source program evaluates to a
// deterministic rendered value or fails with a specific error kind.
var scenarios = []struct {
	name string
	src  string
}{
	{"addition", "1 + 1"},
	{"var_decl_and_use", "var x = 3; x"},
	{"named_function_call", "fn double(x) { x + x }; double(24)"},
	{"redeclaration_shadows", "let x = 5; let x = 3; x + 2"},
	{"while_loop_with_branch", "var i = 0; while (i < 10) { if (i % 2 == 0) { i = i + 1 } else { i = i + 3 } }; i"},
	{"recursive_fib_ternary", "fn fib(n) { n == 0 ? 0 : (n == 1 ? 1 : fib(n-1) + fib(n-2)) }; fib(8)"},
	{"modulus_positive_divisor", "-7 % 5"},
	{"modulus_negative_divisor", "-7 % -5"},
}

func TestEvaluateScenarios(t *testing.T) {
	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			v, err := Evaluate(s.src)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			snaps.MatchSnapshot(t, v.String())
		})
	}
}

func TestEvaluateIntegerOverflowErrorKind(t *testing.T) {
	_, err := Evaluate("9223372036854775807 + 1")
	var overflow *boxxerr.IntegerOverflowError
	if !errors.As(err, &overflow) {
		t.Fatalf("expected IntegerOverflowError, got %v", err)
	}
}

func TestEvaluateConstAssignmentErrorKind(t *testing.T) {
	_, err := Evaluate("let x = 3; x = 4")
	var invalidConst *boxxerr.InvalidConstAssignmentError
	if !errors.As(err, &invalidConst) {
		t.Fatalf("expected InvalidConstAssignmentError, got %v", err)
	}
}

func TestEvaluateVariableNotFoundErrorKind(t *testing.T) {
	_, err := Evaluate("y")
	var notFound *boxxerr.VariableNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected VariableNotFoundError, got %v", err)
	}
}

func TestEvaluateParseErrorIsWrapped(t *testing.T) {
	_, err := Evaluate("1 + ")
	var parseErr *boxxerr.ParserError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParserError, got %v", err)
	}
}

func TestEvaluateWithMaxIterations(t *testing.T) {
	_, err := Evaluate("var i = 0; while (true) { i = i + 1 }; i", WithMaxIterations(5))
	var tooMany *boxxerr.TooManyIterationsError
	if !errors.As(err, &tooMany) {
		t.Fatalf("expected TooManyIterationsError, got %v", err)
	}
}

func TestEvaluateWithStdoutCapturesPrint(t *testing.T) {
	var buf bytes.Buffer
	_, err := Evaluate("print(1 + 2)", WithStdout(&buf))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "3\n" {
		t.Errorf("got %q want %q", buf.String(), "3\n")
	}
}
