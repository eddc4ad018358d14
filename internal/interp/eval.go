package interp

import (
	"io"

	"github.com/mpgarate/boxx/internal/ast"
	"github.com/mpgarate/boxx/internal/boxxerr"
	"github.com/mpgarate/boxx/internal/env"
)

// DefaultMaxIterations bounds how many Step calls Eval will perform
// before giving up on a diverging program, per spec section 5.3.
const DefaultMaxIterations = 1_000_000_000

// Eval drives expr to a normal form by repeated Step calls against e,
// writing any Print output to out. It returns TooManyIterationsError
// if maxIter steps pass without reaching a value.
func Eval(e *env.Env, out io.Writer, expr ast.Expr, maxIter int) (ast.Value, error) {
	return EvalTraced(e, out, expr, maxIter, nil)
}

// TraceFunc observes one reduction: i is the step count before it ran,
// term is the term about to be stepped.
type TraceFunc func(i int, term ast.Expr)

// EvalTraced is Eval with an optional per-step observer, used by the
// CLI's trace command to record each reduction without the core reducer
// depending on any tracing concern.
func EvalTraced(e *env.Env, out io.Writer, expr ast.Expr, maxIter int, onStep TraceFunc) (ast.Value, error) {
	cur := expr
	for i := 0; ; i++ {
		if ast.IsValue(cur) {
			return cur.(*ast.ValExpr).V, nil
		}
		if i >= maxIter {
			return nil, boxxerr.NewTooManyIterations(maxIter)
		}
		if onStep != nil {
			onStep(i, cur)
		}
		next, err := Step(e, out, cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
}
