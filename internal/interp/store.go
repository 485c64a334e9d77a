package interp

import (
	"github.com/google/btree"
)

// Binding is one named value of the global store.
type Binding struct {
	Name  string
	Value Value
}

// Store is the global store: every global variable of a running program,
// ordered by name. There is exactly one store per run and it is shared by
// every active call.
type Store struct {
	tree *btree.BTreeG[Binding]
}

func lessBinding(a, b Binding) bool { return a.Name < b.Name }

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{tree: btree.NewG(8, lessBinding)}
}

// Set stores v under name, replacing any previous value.
func (s *Store) Set(name string, v Value) {
	s.tree.ReplaceOrInsert(Binding{Name: name, Value: v})
}

// Get returns the value stored under name.
func (s *Store) Get(name string) (Value, bool) {
	b, ok := s.tree.Get(Binding{Name: name})
	return b.Value, ok
}

// Len returns the number of globals in the store.
func (s *Store) Len() int {
	return s.tree.Len()
}

// Snapshot returns every binding in name order.
func (s *Store) Snapshot() []Binding {
	list := make([]Binding, 0, s.tree.Len())
	s.tree.Ascend(func(b Binding) bool {
		list = append(list, b)
		return true
	})
	return list
}
