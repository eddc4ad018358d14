package ast

// Equal reports structural equality between two values. Int and Bool
// compare by underlying value; Undefined values are always equal to
// each other; Func values compare structurally on their AST (optional
// name, parameter list, body) rather than by identity. Comparing
// values of different dynamic types (e.g. an Int against a Bool) is
// false, never an error. This is the Eq/Ne base case's contract.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case IntValue:
		bv, ok := b.(IntValue)
		return ok && av == bv
	case BoolValue:
		bv, ok := b.(BoolValue)
		return ok && av == bv
	case UndefinedValue:
		_, ok := b.(UndefinedValue)
		return ok
	case *FuncValue:
		bv, ok := b.(*FuncValue)
		return ok && funcEqual(av, bv)
	default:
		return false
	}
}

func funcEqual(a, b *FuncValue) bool {
	if (a.Name == nil) != (b.Name == nil) {
		return false
	}
	if a.Name != nil && a.Name.Name != b.Name.Name {
		return false
	}
	if len(a.Params) != len(b.Params) {
		return false
	}
	for i := range a.Params {
		if !ExprEqual(a.Params[i], b.Params[i]) {
			return false
		}
	}
	return ExprEqual(a.Body, b.Body)
}

// ExprEqual reports structural equality between two terms, recursing
// into their sub-terms. A WhileExpr is compared on its templates and
// After only; its working Cond/Body slots are not compared. It
// underlies Func value equality and is useful
// in tests that assert a particular reduction shape.
func ExprEqual(a, b Expr) bool {
	switch av := a.(type) {
	case *ValExpr:
		bv, ok := b.(*ValExpr)
		return ok && Equal(av.V, bv.V)
	case *Var:
		bv, ok := b.(*Var)
		return ok && av.Name == bv.Name
	case *UopExpr:
		bv, ok := b.(*UopExpr)
		return ok && av.Op == bv.Op && ExprEqual(av.X, bv.X)
	case *BopExpr:
		bv, ok := b.(*BopExpr)
		return ok && av.Op == bv.Op && ExprEqual(av.L, bv.L) && ExprEqual(av.R, bv.R)
	case *TernaryExpr:
		bv, ok := b.(*TernaryExpr)
		return ok && ExprEqual(av.Cond, bv.Cond) && ExprEqual(av.Then, bv.Then) && ExprEqual(av.Else, bv.Else)
	case *WhileExpr:
		bv, ok := b.(*WhileExpr)
		return ok &&
			ExprEqual(av.CondTemplate, bv.CondTemplate) &&
			ExprEqual(av.BodyTemplate, bv.BodyTemplate) &&
			ExprEqual(av.After, bv.After)
	case *DeclExpr:
		bv, ok := b.(*DeclExpr)
		return ok && av.Kind == bv.Kind && ExprEqual(av.Target, bv.Target) &&
			ExprEqual(av.Init, bv.Init) && ExprEqual(av.Body, bv.Body)
	case *FnCallExpr:
		bv, ok := b.(*FnCallExpr)
		if !ok || len(av.Args) != len(bv.Args) || !ExprEqual(av.Callee, bv.Callee) {
			return false
		}
		for i := range av.Args {
			if !ExprEqual(av.Args[i], bv.Args[i]) {
				return false
			}
		}
		return true
	case *ScopeExpr:
		bv, ok := b.(*ScopeExpr)
		return ok && ExprEqual(av.X, bv.X)
	case *PrintExpr:
		bv, ok := b.(*PrintExpr)
		return ok && ExprEqual(av.X, bv.X)
	default:
		return false
	}
}
