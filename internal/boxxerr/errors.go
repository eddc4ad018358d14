// Package boxxerr is the evaluator's error taxonomy: one exported type
// per RuntimeError kind in spec section 7, so callers can `errors.As` a
// specific kind instead of matching on string content.
package boxxerr

import (
	"fmt"

	"github.com/mpgarate/boxx/internal/ast"
)

// SteppingOnValueError indicates step was invoked on a normal form,
// always a caller bug, never a user-program bug.
type SteppingOnValueError struct {
	Term ast.Expr
}

func NewSteppingOnValue(term ast.Expr) *SteppingOnValueError {
	return &SteppingOnValueError{Term: term}
}

func (e *SteppingOnValueError) Error() string {
	return fmt.Sprintf(msgSteppingOnValue, e.Term)
}

// VariableNotFoundError indicates a lookup or assignment to an unbound
// identifier.
type VariableNotFoundError struct {
	Name string
}

func NewVariableNotFound(name string) *VariableNotFoundError {
	return &VariableNotFoundError{Name: name}
}

func (e *VariableNotFoundError) Error() string {
	return fmt.Sprintf(msgVariableNotFound, e.Name)
}

// InvalidConstAssignmentError indicates an assignment to a cell
// allocated with alloc_const.
type InvalidConstAssignmentError struct {
	Value ast.Value
	Name  string
}

func NewInvalidConstAssignment(v ast.Value, name string) *InvalidConstAssignmentError {
	return &InvalidConstAssignmentError{Value: v, Name: name}
}

func (e *InvalidConstAssignmentError) Error() string {
	return fmt.Sprintf(msgInvalidConstAssignment, e.Value, e.Name)
}

// InvalidTypeConversionError indicates a dynamic type mismatch at the
// point a reduction needed a specific shape (e.g. Not applied to an
// Int, or an Assign target that is not a Var).
type InvalidTypeConversionError struct {
	Expected string
	Term     ast.Expr
}

func NewInvalidTypeConversion(expected string, term ast.Expr) *InvalidTypeConversionError {
	return &InvalidTypeConversionError{Expected: expected, Term: term}
}

func (e *InvalidTypeConversionError) Error() string {
	return fmt.Sprintf(msgInvalidTypeConversion, e.Expected, e.Term)
}

// InvalidMemoryStateError indicates an internal environment invariant
// was violated, such as popping the global frame.
type InvalidMemoryStateError struct {
	Msg string
}

func NewInvalidMemoryState(msg string) *InvalidMemoryStateError {
	return &InvalidMemoryStateError{Msg: msg}
}

func (e *InvalidMemoryStateError) Error() string {
	return fmt.Sprintf(msgInvalidMemoryState, e.Msg)
}

// TooManyIterationsError indicates eval's iteration cap was exceeded,
// the signal that a program diverges, surfaced deterministically
// instead of hanging or overflowing the host stack.
type TooManyIterationsError struct {
	N int
}

func NewTooManyIterations(n int) *TooManyIterationsError {
	return &TooManyIterationsError{N: n}
}

func (e *TooManyIterationsError) Error() string {
	return fmt.Sprintf(msgTooManyIterations, e.N)
}

// IntegerOverflowError indicates a checked arithmetic operation grew
// past the representable range on the high side.
type IntegerOverflowError struct{}

func NewIntegerOverflow() *IntegerOverflowError { return &IntegerOverflowError{} }

func (e *IntegerOverflowError) Error() string { return msgIntegerOverflow }

// IntegerUnderflowError indicates a checked arithmetic operation grew
// past the representable range on the low side, or a division/modulus
// by zero.
type IntegerUnderflowError struct{}

func NewIntegerUnderflow() *IntegerUnderflowError { return &IntegerUnderflowError{} }

func (e *IntegerUnderflowError) Error() string { return msgIntegerUnderflow }

// ParserError wraps a failure from the lexer/parser boundary.
type ParserError struct {
	Inner error
}

func NewParserError(inner error) *ParserError { return &ParserError{Inner: inner} }

func (e *ParserError) Error() string { return fmt.Sprintf(msgParserError, e.Inner) }

func (e *ParserError) Unwrap() error { return e.Inner }

// UnexpectedExprError is a generic shape-mismatch error for situations
// not covered by a more specific kind (e.g. calling a value that is not
// a Func).
type UnexpectedExprError struct {
	Expected string
	Term     ast.Expr
}

func NewUnexpectedExpr(expected string, term ast.Expr) *UnexpectedExprError {
	return &UnexpectedExprError{Expected: expected, Term: term}
}

func (e *UnexpectedExprError) Error() string {
	return fmt.Sprintf(msgUnexpectedExpr, e.Expected, e.Term)
}
