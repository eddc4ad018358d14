package ast

import "testing"

func TestEqualAcrossDifferentTypesIsFalse(t *testing.T) {
	if Equal(IntValue(1), BoolValue(true)) {
		t.Error("expected Int and Bool to compare unequal, not error")
	}
}

func TestEqualUndefinedAlwaysEqual(t *testing.T) {
	if !Equal(UndefinedValue{}, UndefinedValue{}) {
		t.Error("expected two Undefined values to be equal")
	}
}

func TestEqualFuncStructural(t *testing.T) {
	a := &FuncValue{Params: []Expr{&Var{Name: "x"}}, Body: &Var{Name: "x"}}
	b := &FuncValue{Params: []Expr{&Var{Name: "x"}}, Body: &Var{Name: "x"}}
	if !Equal(a, b) {
		t.Error("expected structurally identical anonymous functions to be equal")
	}

	c := &FuncValue{Params: []Expr{&Var{Name: "y"}}, Body: &Var{Name: "y"}}
	if Equal(a, c) {
		t.Error("expected functions with different parameter names to be unequal")
	}
}

func TestExprEqualWhileComparesTemplates(t *testing.T) {
	w1 := NewWhile(Val(BoolValue(true)), Val(IntValue(1)), Val(IntValue(2)))
	w2 := NewWhile(Val(BoolValue(true)), Val(IntValue(1)), Val(IntValue(2)))
	if !ExprEqual(w1, w2) {
		t.Error("expected two freshly constructed while loops to be structurally equal")
	}
}

func TestIsValue(t *testing.T) {
	if !IsValue(Val(IntValue(1))) {
		t.Error("expected ValExpr to be a value")
	}
	if IsValue(&Var{Name: "x"}) {
		t.Error("expected Var to not be a value")
	}
}
