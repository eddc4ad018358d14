package ast

import (
	"fmt"
	"strings"
)

// UnOp is a unary operator tag.
type UnOp int

const (
	Not UnOp = iota
	Neg
)

func (op UnOp) String() string {
	switch op {
	case Not:
		return "!"
	case Neg:
		return "-"
	default:
		return "?unop?"
	}
}

// BinOp is a binary operator tag.
type BinOp int

const (
	Plus BinOp = iota
	Minus
	Times
	Div
	Mod
	Eq
	Ne
	Lt
	Gt
	Leq
	Geq
	And
	Or
	Seq
	Assign
)

func (op BinOp) String() string {
	switch op {
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Times:
		return "*"
	case Div:
		return "/"
	case Mod:
		return "%"
	case Eq:
		return "=="
	case Ne:
		return "!="
	case Lt:
		return "<"
	case Gt:
		return ">"
	case Leq:
		return "<="
	case Geq:
		return ">="
	case And:
		return "&&"
	case Or:
		return "||"
	case Seq:
		return ";"
	case Assign:
		return "="
	default:
		return "?binop?"
	}
}

// DeclKind distinguishes mutable (`var`) from immutable (`let`) bindings.
type DeclKind int

const (
	DVar DeclKind = iota
	DConst
)

func (k DeclKind) String() string {
	if k == DConst {
		return "let"
	}
	return "var"
}

// Expr is a term of the expression language. Val is the only normal
// form; every other constructor must reduce further. Concrete types:
// *ValExpr, *Var, *UopExpr, *BopExpr, *TernaryExpr, *WhileExpr,
// *DeclExpr, *FnCallExpr, *ScopeExpr, *PrintExpr.
type Expr interface {
	exprNode()
	String() string
}

// ValExpr wraps a Value so it can appear as a term. IsValue reports
// true only for this constructor.
type ValExpr struct {
	V Value
}

func (*ValExpr) exprNode()        {}
func (e *ValExpr) String() string { return e.V.String() }

// Val is a convenience constructor for a value term.
func Val(v Value) *ValExpr { return &ValExpr{V: v} }

// IsValue reports whether e is in normal form.
func IsValue(e Expr) bool {
	_, ok := e.(*ValExpr)
	return ok
}

// Var is an identifier reference. It is never a value, even once bound.
type Var struct {
	Name string
}

func (*Var) exprNode()        {}
func (v *Var) String() string { return v.Name }

// UopExpr applies a unary operator to an operand.
type UopExpr struct {
	Op UnOp
	X  Expr
}

func (*UopExpr) exprNode() {}
func (e *UopExpr) String() string {
	return fmt.Sprintf("%s%s", e.Op, e.X)
}

// BopExpr applies a binary operator to two operands, reduced left
// first then right.
type BopExpr struct {
	Op   BinOp
	L, R Expr
}

func (*BopExpr) exprNode() {}
func (e *BopExpr) String() string {
	if e.Op == Seq {
		return fmt.Sprintf("%s; %s", e.L, e.R)
	}
	return fmt.Sprintf("(%s %s %s)", e.L, e.Op, e.R)
}

// TernaryExpr is a conditional expression: Cond ? Then : Else, or the
// if/else surface form.
type TernaryExpr struct {
	Cond, Then, Else Expr
}

func (*TernaryExpr) exprNode() {}
func (e *TernaryExpr) String() string {
	return fmt.Sprintf("(%s ? %s : %s)", e.Cond, e.Then, e.Else)
}

// WhileExpr is the five-slot while node. Cond/Body are the working
// copies the reducer rewrites in place; CondTemplate/BodyTemplate are
// the originals restored on every restart. After is the expression the
// loop rewrites to once the condition is false.
type WhileExpr struct {
	Cond, CondTemplate Expr
	Body, BodyTemplate Expr
	After              Expr
}

func (*WhileExpr) exprNode() {}
func (e *WhileExpr) String() string {
	return fmt.Sprintf("while (%s) { %s }; %s", e.CondTemplate, e.BodyTemplate, e.After)
}

// NewWhile builds a WhileExpr with both working slots initialized from
// the templates, matching the `while (c) { b } ; rest` surface form.
func NewWhile(cond, body, after Expr) *WhileExpr {
	return &WhileExpr{
		Cond:         cond,
		CondTemplate: cond,
		Body:         body,
		BodyTemplate: body,
		After:        after,
	}
}

// DeclExpr introduces a binding visible inside Body. Target must be a
// *Var; this is enforced by the parser, not re-checked at every step.
type DeclExpr struct {
	Kind   DeclKind
	Target *Var
	Init   Expr
	Body   Expr
}

func (*DeclExpr) exprNode() {}
func (e *DeclExpr) String() string {
	return fmt.Sprintf("%s %s = %s; %s", e.Kind, e.Target, e.Init, e.Body)
}

// FnCallExpr applies Callee to an ordered list of arguments.
type FnCallExpr struct {
	Callee Expr
	Args   []Expr
}

func (*FnCallExpr) exprNode() {}
func (e *FnCallExpr) String() string {
	parts := make([]string, len(e.Args))
	for i, a := range e.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", e.Callee, strings.Join(parts, ", "))
}

// ScopeExpr marks a pushed lexical frame that must be popped once X
// reduces to a value. It is produced only by the reducer, never by the
// parser.
type ScopeExpr struct {
	X Expr
}

func (*ScopeExpr) exprNode()        {}
func (e *ScopeExpr) String() string { return fmt.Sprintf("scope(%s)", e.X) }

// PrintExpr is the side-effecting print expression.
type PrintExpr struct {
	X Expr
}

func (*PrintExpr) exprNode()        {}
func (e *PrintExpr) String() string { return fmt.Sprintf("print(%s)", e.X) }
