package solver

import (
	"sort"

	"go-countdown/pkg/expr"
)

// Pool is the multiset of dealt numbers a state has not used yet, kept
// sorted ascending.
type Pool []int

// NewPool copies and sorts the given numbers.
func NewPool(numbers []int) Pool {
	pool := make(Pool, len(numbers))
	copy(pool, numbers)
	sort.Ints(pool)
	return pool
}

// Without returns a copy of the pool with the element at index i removed.
// The receiver is never modified.
func (p Pool) Without(i int) Pool {
	out := make(Pool, 0, len(p)-1)
	out = append(out, p[:i]...)
	return append(out, p[i+1:]...)
}

func (p Pool) Empty() bool {
	return len(p) == 0
}

// State pairs a candidate expression with the numbers still available to
// extend it. States are never mutated after creation; expansion always
// derives fresh ones.
type State struct {
	Tree      expr.Node
	Remaining Pool
}

// Key is the canonical rendering of the state's tree. States with equal
// keys are equivalent no matter how they were built.
func (s *State) Key() string {
	return s.Tree.String()
}
