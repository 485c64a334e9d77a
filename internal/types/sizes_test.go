package types

import (
	"testing"

	"github.com/you-not-fish/mjs/internal/rtabi"
)

func TestSizeof(t *testing.T) {
	tests := []struct {
		typ  Type
		want int64
	}{
		{Typ[Int], rtabi.WidthInt},
		{Typ[Float], rtabi.WidthFloat},
		{Typ[String], rtabi.WidthString},
		{Typ[Void], 0},
		{NewFunc(nil, Typ[Int]), 0},
	}

	for _, tt := range tests {
		if got := DefaultSizes.Sizeof(tt.typ); got != tt.want {
			t.Errorf("Sizeof(%v) = %d, want %d", tt.typ, got, tt.want)
		}
	}
}

func TestLayout(t *testing.T) {
	s := NewScope(nil, NoPos, "program")
	a := NewGlobal(NoPos, "a", Typ[Int])
	msg := NewGlobal(NoPos, "msg", Typ[String])
	f := NewFuncObj(NoPos, "f")
	f.SetSignature(NewFunc(nil, Typ[Void]))
	x := NewGlobal(NoPos, "x", Typ[Float])
	for _, obj := range []Object{a, msg, f, x} {
		s.Insert(obj)
	}

	total := DefaultSizes.Layout(s)

	if a.Offset() != 0 || msg.Offset() != 1 || f.Offset() != 65 || x.Offset() != 65 {
		t.Errorf("offsets a=%d msg=%d f=%d x=%d, want 0 1 65 65", a.Offset(), msg.Offset(), f.Offset(), x.Offset())
	}
	if total != 66 {
		t.Errorf("total width = %d, want 66", total)
	}
}
