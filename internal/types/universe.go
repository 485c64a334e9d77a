package types

import "github.com/you-not-fish/mjs/internal/syntax"

// NoPos is the position of predeclared objects.
var NoPos syntax.Pos

// Universe holds the type keywords int, float, string and void.
// The checker resolves a type keyword by looking it up here; nothing else
// is predeclared, so read and write are statements rather than functions.
var Universe = NewScope(nil, NoPos, "universe")

func init() {
	for _, kind := range []BasicKind{Int, Float, String, Void} {
		Universe.Insert(NewTypeName(NoPos, Typ[kind].name, Typ[kind]))
	}
}
