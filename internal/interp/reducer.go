// Package interp implements the small-step reducer: Step rewrites a
// term by exactly one base-case or congruence rule; Eval drives Step to
// a normal form or a typed error.
package interp

import (
	"fmt"
	"io"
	"math"

	"github.com/mpgarate/boxx/internal/ast"
	"github.com/mpgarate/boxx/internal/boxxerr"
	"github.com/mpgarate/boxx/internal/env"
)

// Step performs exactly one reduction of expr. expr must not already be
// a value. Call Step only on non-values; Eval enforces this for
// driver loops, and tests exercising Step directly get
// SteppingOnValueError if they violate it.
//
// Evaluation is call-by-value, left-to-right, strict: for any compound
// node other than While, the leftmost non-value sub-term is reduced
// first. A While reduces its working body to a value before its working
// condition, so a loop whose condition is false from the start still
// runs its body once. Step never
// silently coerces a value to a different dynamic type; a shape it does
// not recognize becomes a typed error rather than a guess.
func Step(e *env.Env, out io.Writer, expr ast.Expr) (ast.Expr, error) {
	switch x := expr.(type) {
	case *ast.ValExpr:
		return nil, boxxerr.NewSteppingOnValue(expr)

	case *ast.Var:
		v, err := e.Get(x.Name)
		if err != nil {
			return nil, err
		}
		return ast.Val(v), nil

	case *ast.UopExpr:
		return stepUop(e, out, x)

	case *ast.BopExpr:
		return stepBop(e, out, x)

	case *ast.TernaryExpr:
		if !ast.IsValue(x.Cond) {
			cond, err := Step(e, out, x.Cond)
			if err != nil {
				return nil, err
			}
			return &ast.TernaryExpr{Cond: cond, Then: x.Then, Else: x.Else}, nil
		}
		b, ok := valueOf(x.Cond).(ast.BoolValue)
		if !ok {
			return nil, boxxerr.NewInvalidTypeConversion("Bool", x.Cond)
		}
		if bool(b) {
			return x.Then, nil
		}
		return x.Else, nil

	case *ast.DeclExpr:
		if !ast.IsValue(x.Init) {
			init, err := Step(e, out, x.Init)
			if err != nil {
				return nil, err
			}
			return &ast.DeclExpr{Kind: x.Kind, Target: x.Target, Init: init, Body: x.Body}, nil
		}
		v := valueOf(x.Init)
		if x.Kind == ast.DConst {
			e.AllocConst(x.Target.Name, v)
		} else {
			e.Alloc(x.Target.Name, v)
		}
		return x.Body, nil

	case *ast.FnCallExpr:
		return stepFnCall(e, out, x)

	case *ast.ScopeExpr:
		if ast.IsValue(x.X) {
			if err := e.EndScope(); err != nil {
				return nil, err
			}
			return x.X, nil
		}
		inner, err := Step(e, out, x.X)
		if err != nil {
			return nil, err
		}
		return &ast.ScopeExpr{X: inner}, nil

	case *ast.PrintExpr:
		if ast.IsValue(x.X) {
			fmt.Fprintln(out, valueOf(x.X).String())
			return ast.Val(ast.UndefinedValue{}), nil
		}
		inner, err := Step(e, out, x.X)
		if err != nil {
			return nil, err
		}
		return &ast.PrintExpr{X: inner}, nil

	case *ast.WhileExpr:
		return stepWhile(e, out, x)

	default:
		return nil, boxxerr.NewUnexpectedExpr("known expression", expr)
	}
}

func valueOf(e ast.Expr) ast.Value {
	return e.(*ast.ValExpr).V
}

func stepUop(e *env.Env, out io.Writer, x *ast.UopExpr) (ast.Expr, error) {
	if !ast.IsValue(x.X) {
		inner, err := Step(e, out, x.X)
		if err != nil {
			return nil, err
		}
		return &ast.UopExpr{Op: x.Op, X: inner}, nil
	}

	v := valueOf(x.X)
	switch x.Op {
	case ast.Not:
		b, ok := v.(ast.BoolValue)
		if !ok {
			return nil, boxxerr.NewInvalidTypeConversion("Bool", x.X)
		}
		return ast.Val(ast.BoolValue(!b)), nil
	case ast.Neg:
		n, ok := v.(ast.IntValue)
		if !ok {
			return nil, boxxerr.NewInvalidTypeConversion("Int", x.X)
		}
		if int64(n) == math.MinInt64 {
			return nil, errOverflow
		}
		return ast.Val(ast.IntValue(-n)), nil
	default:
		return nil, boxxerr.NewUnexpectedExpr("unary operator", x.X)
	}
}

func stepBop(e *env.Env, out io.Writer, x *ast.BopExpr) (ast.Expr, error) {
	// Assign's left operand is always a *ast.Var target, never reduced
	// in place, so this must be checked ahead of the generic left-operand
	// congruence below: a Var is never a value, so that congruence would
	// otherwise try to Step it, replacing the target with its current
	// value before stepAssign ever sees it.
	if x.Op == ast.Assign {
		return stepAssign(e, out, x)
	}

	if !ast.IsValue(x.L) {
		left, err := Step(e, out, x.L)
		if err != nil {
			return nil, err
		}
		return &ast.BopExpr{Op: x.Op, L: left, R: x.R}, nil
	}

	// Seq discards its left value unconditionally and continues with
	// the right term, whether or not it is itself a value yet.
	if x.Op == ast.Seq {
		return x.R, nil
	}

	if !ast.IsValue(x.R) {
		right, err := Step(e, out, x.R)
		if err != nil {
			return nil, err
		}
		return &ast.BopExpr{Op: x.Op, L: x.L, R: right}, nil
	}

	return applyBinOp(x.Op, x.L, x.R, valueOf(x.L), valueOf(x.R))
}

func stepAssign(e *env.Env, out io.Writer, x *ast.BopExpr) (ast.Expr, error) {
	target, ok := x.L.(*ast.Var)
	if !ok {
		return nil, boxxerr.NewInvalidTypeConversion("Var", x.L)
	}
	if !ast.IsValue(x.R) {
		right, err := Step(e, out, x.R)
		if err != nil {
			return nil, err
		}
		return &ast.BopExpr{Op: ast.Assign, L: x.L, R: right}, nil
	}
	v := valueOf(x.R)
	if err := e.Assign(target.Name, v); err != nil {
		return nil, err
	}
	return ast.Val(v), nil
}

func applyBinOp(op ast.BinOp, lterm, rterm ast.Expr, l, r ast.Value) (ast.Expr, error) {
	switch op {
	case ast.Eq:
		return ast.Val(ast.BoolValue(ast.Equal(l, r))), nil
	case ast.Ne:
		return ast.Val(ast.BoolValue(!ast.Equal(l, r))), nil
	case ast.And, ast.Or:
		lb, ok1 := l.(ast.BoolValue)
		rb, ok2 := r.(ast.BoolValue)
		if !ok1 {
			return nil, boxxerr.NewInvalidTypeConversion("Bool", lterm)
		}
		if !ok2 {
			return nil, boxxerr.NewInvalidTypeConversion("Bool", rterm)
		}
		if op == ast.And {
			return ast.Val(ast.BoolValue(lb && rb)), nil
		}
		return ast.Val(ast.BoolValue(lb || rb)), nil
	default:
		li, ok1 := l.(ast.IntValue)
		ri, ok2 := r.(ast.IntValue)
		if !ok1 {
			return nil, boxxerr.NewInvalidTypeConversion("Int", lterm)
		}
		if !ok2 {
			return nil, boxxerr.NewInvalidTypeConversion("Int", rterm)
		}
		return applyIntOp(op, int64(li), int64(ri))
	}
}

func applyIntOp(op ast.BinOp, a, b int64) (ast.Expr, error) {
	switch op {
	case ast.Lt:
		return ast.Val(ast.BoolValue(a < b)), nil
	case ast.Gt:
		return ast.Val(ast.BoolValue(a > b)), nil
	case ast.Leq:
		return ast.Val(ast.BoolValue(a <= b)), nil
	case ast.Geq:
		return ast.Val(ast.BoolValue(a >= b)), nil
	case ast.Plus:
		n, ok := checkedAdd(a, b)
		if !ok {
			return nil, errOverflow
		}
		return ast.Val(ast.IntValue(n)), nil
	case ast.Minus:
		n, ok := checkedSub(a, b)
		if !ok {
			return nil, errUnderflow
		}
		return ast.Val(ast.IntValue(n)), nil
	case ast.Times:
		n, ok := checkedMul(a, b)
		if !ok {
			return nil, errOverflow
		}
		return ast.Val(ast.IntValue(n)), nil
	case ast.Div:
		n, ok := checkedDiv(a, b)
		if !ok {
			return nil, errUnderflow
		}
		return ast.Val(ast.IntValue(n)), nil
	case ast.Mod:
		n, err := mathModulus(a, b)
		if err != nil {
			return nil, err
		}
		return ast.Val(ast.IntValue(n)), nil
	default:
		return nil, boxxerr.NewUnexpectedExpr("binary operator", ast.Val(ast.IntValue(a)))
	}
}

func stepFnCall(e *env.Env, out io.Writer, x *ast.FnCallExpr) (ast.Expr, error) {
	if !ast.IsValue(x.Callee) {
		callee, err := Step(e, out, x.Callee)
		if err != nil {
			return nil, err
		}
		return &ast.FnCallExpr{Callee: callee, Args: x.Args}, nil
	}

	fn, ok := valueOf(x.Callee).(*ast.FuncValue)
	if !ok {
		return nil, boxxerr.NewUnexpectedExpr("Func", x.Callee)
	}

	for i, arg := range x.Args {
		if !ast.IsValue(arg) {
			stepped, err := Step(e, out, arg)
			if err != nil {
				return nil, err
			}
			newArgs := make([]ast.Expr, len(x.Args))
			copy(newArgs, x.Args)
			newArgs[i] = stepped
			return &ast.FnCallExpr{Callee: x.Callee, Args: newArgs}, nil
		}
	}

	return beta(e, fn, x.Args)
}

// beta performs function application: push a frame, bind each
// parameter to its (by-value) argument truncated to the shorter list,
// bind the function's own name for recursion if named, and rewrite to
// Scope(body) so the pushed frame is popped exactly once the body
// becomes a value.
func beta(e *env.Env, fn *ast.FuncValue, args []ast.Expr) (ast.Expr, error) {
	e.BeginScope()

	n := len(fn.Params)
	if len(args) < n {
		n = len(args)
	}
	for i := 0; i < n; i++ {
		param, ok := fn.Params[i].(*ast.Var)
		if !ok {
			return nil, boxxerr.NewInvalidTypeConversion("Var", fn.Params[i])
		}
		e.Alloc(param.Name, valueOf(args[i]))
	}

	if fn.Name != nil {
		e.Alloc(fn.Name.Name, fn)
	}

	return &ast.ScopeExpr{X: fn.Body}, nil
}

func stepWhile(e *env.Env, out io.Writer, x *ast.WhileExpr) (ast.Expr, error) {
	if ast.IsValue(x.Cond) {
		b, ok := valueOf(x.Cond).(ast.BoolValue)
		if !ok {
			return nil, boxxerr.NewInvalidTypeConversion("Bool", x.Cond)
		}
		if bool(b) {
			return ast.NewWhile(x.CondTemplate, x.BodyTemplate, x.After), nil
		}
		return x.After, nil
	}

	if ast.IsValue(x.Body) {
		cond, err := Step(e, out, x.Cond)
		if err != nil {
			return nil, err
		}
		return &ast.WhileExpr{
			Cond: cond, CondTemplate: x.CondTemplate,
			Body: x.Body, BodyTemplate: x.BodyTemplate,
			After: x.After,
		}, nil
	}

	body, err := Step(e, out, x.Body)
	if err != nil {
		return nil, err
	}
	return &ast.WhileExpr{
		Cond: x.Cond, CondTemplate: x.CondTemplate,
		Body: body, BodyTemplate: x.BodyTemplate,
		After: x.After,
	}, nil
}
