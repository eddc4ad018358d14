package interp

import (
	"bytes"
	"errors"
	"testing"

	"github.com/mpgarate/boxx/internal/ast"
	"github.com/mpgarate/boxx/internal/boxxerr"
	"github.com/mpgarate/boxx/internal/env"
)

func TestStepOnValueFails(t *testing.T) {
	e := env.New()
	var buf bytes.Buffer
	_, err := Step(e, &buf, ast.Val(ast.IntValue(1)))
	var steppingOnValue *boxxerr.SteppingOnValueError
	if !errors.As(err, &steppingOnValue) {
		t.Fatalf("expected SteppingOnValueError, got %v", err)
	}
}

func TestStepSingleReductionOfLeftOperand(t *testing.T) {
	e := env.New()
	var buf bytes.Buffer
	expr := &ast.BopExpr{
		Op: ast.Plus,
		L:  &ast.BopExpr{Op: ast.Plus, L: ast.Val(ast.IntValue(1)), R: ast.Val(ast.IntValue(2))},
		R:  ast.Val(ast.IntValue(10)),
	}
	next, err := Step(e, &buf, expr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bop, ok := next.(*ast.BopExpr)
	if !ok {
		t.Fatalf("expected *BopExpr, got %T", next)
	}
	if !ast.IsValue(bop.L) || !ast.Equal(bop.L.(*ast.ValExpr).V, ast.IntValue(3)) {
		t.Errorf("expected left operand reduced to 3, got %v", bop.L)
	}
	if !ast.IsValue(bop.R) {
		t.Errorf("expected right operand untouched as value")
	}
}

func TestStepAssignRequiresVarTarget(t *testing.T) {
	e := env.New()
	var buf bytes.Buffer
	expr := &ast.BopExpr{Op: ast.Assign, L: ast.Val(ast.IntValue(1)), R: ast.Val(ast.IntValue(2))}
	_, err := Step(e, &buf, expr)
	var typeErr *boxxerr.InvalidTypeConversionError
	if !errors.As(err, &typeErr) {
		t.Fatalf("expected InvalidTypeConversionError, got %v", err)
	}
}

func TestStepBinOpTypeMismatchIsInvalidTypeConversionNotSteppingOnValue(t *testing.T) {
	// 1 && true: both operands are already values of mismatched dynamic
	// type. This must surface as InvalidTypeConversion rather than
	// stepping further into an already-reduced operand.
	e := env.New()
	var buf bytes.Buffer
	expr := &ast.BopExpr{Op: ast.And, L: ast.Val(ast.IntValue(1)), R: ast.Val(ast.BoolValue(true))}
	_, err := Step(e, &buf, expr)
	var typeErr *boxxerr.InvalidTypeConversionError
	if !errors.As(err, &typeErr) {
		t.Fatalf("expected InvalidTypeConversionError, got %v", err)
	}
}

func TestStepSeqDiscardsLeftUnconditionally(t *testing.T) {
	e := env.New()
	var buf bytes.Buffer
	expr := &ast.BopExpr{Op: ast.Seq, L: ast.Val(ast.IntValue(1)), R: ast.Val(ast.IntValue(2))}
	next, err := Step(e, &buf, expr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ast.ExprEqual(next, ast.Val(ast.IntValue(2))) {
		t.Errorf("got %v want Val(2)", next)
	}
}

func TestStepScopeEndsScopeOnceBodyIsValue(t *testing.T) {
	e := env.New()
	e.BeginScope()
	var buf bytes.Buffer
	next, err := Step(e, &buf, &ast.ScopeExpr{X: ast.Val(ast.IntValue(5))})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Depth() != 1 {
		t.Errorf("expected scope popped, depth %d", e.Depth())
	}
	if !ast.ExprEqual(next, ast.Val(ast.IntValue(5))) {
		t.Errorf("got %v want Val(5)", next)
	}
}
