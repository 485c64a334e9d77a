package types

import "testing"

func TestFuncTypesNotAssignable(t *testing.T) {
	sig := NewFunc([]*Var{NewParam(NoPos, "a", Typ[Int], 0)}, Typ[Int])
	tests := []struct {
		name string
		v, t Type
	}{
		{"same_sig", sig, sig},
		{"sig_to_int", sig, Typ[Int]},
		{"int_to_sig", Typ[Int], sig},
		{"nil", nil, Typ[Int]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if AssignableTo(tt.v, tt.t) {
				t.Errorf("AssignableTo(%v, %v) = true", tt.v, tt.t)
			}
		})
	}
}

func TestAssignableTo(t *testing.T) {
	tests := []struct {
		v, t BasicKind
		want bool
	}{
		{Int, Int, true},
		{Float, Float, true},
		{String, String, true},
		{Int, Float, true}, // promotion
		{Float, Int, false},
		{String, Int, false},
		{Int, String, false},
		{Void, Int, false},
		{Int, Void, false},
		{Void, Void, false},
		{Invalid, Int, false},
	}

	for _, tt := range tests {
		V, T := Typ[tt.v], Typ[tt.t]
		if got := AssignableTo(V, T); got != tt.want {
			t.Errorf("AssignableTo(%v, %v) = %v, want %v", V, T, got, tt.want)
		}
	}
}

func TestPromote(t *testing.T) {
	tests := []struct {
		x, y, want BasicKind
	}{
		{Int, Int, Int},
		{Int, Float, Float},
		{Float, Int, Float},
		{Float, Float, Float},
	}

	for _, tt := range tests {
		if got := Promote(Typ[tt.x], Typ[tt.y]); got != Typ[tt.want] {
			t.Errorf("Promote(%v, %v) = %v, want %v", Typ[tt.x], Typ[tt.y], got, Typ[tt.want])
		}
	}
}

func TestPredicates(t *testing.T) {
	if !IsNumeric(Typ[Int]) || !IsNumeric(Typ[Float]) || IsNumeric(Typ[String]) {
		t.Error("IsNumeric wrong")
	}
	if !IsString(Typ[String]) || IsString(Typ[Int]) {
		t.Error("IsString wrong")
	}
	if !IsVoid(Typ[Void]) || IsVoid(Typ[Int]) {
		t.Error("IsVoid wrong")
	}
	if !IsInvalid(nil) || !IsInvalid(Typ[Invalid]) || IsInvalid(Typ[Int]) {
		t.Error("IsInvalid wrong")
	}
	sig := NewFunc(nil, Typ[Int])
	if IsNumeric(sig) || IsInteger(sig) {
		t.Error("function type reported as numeric")
	}
}
