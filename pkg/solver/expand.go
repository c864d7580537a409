package solver

import "go-countdown/pkg/expr"

// ExpandPolicy selects which leaf positions of a tree are grafted onto
// when a state is expanded.
type ExpandPolicy int

const (
	// ExpandAllLeaves grafts onto every leaf position, reaching every
	// expression shape.
	ExpandAllLeaves ExpandPolicy = iota

	// ExpandFirstLeaf grafts only onto the leftmost leaf. Much cheaper,
	// but many expression shapes are never generated.
	ExpandFirstLeaf
)

// expander derives successor states. Depth-first searches reverse the
// pool and operator iteration order so the most recently pushed states
// mirror the breadth-first front.
type expander struct {
	depthFirst bool
	policy     ExpandPolicy
}

// Successors returns every state derivable from s by replacing one leaf
// (value v) with an operator node combining v and one number n drawn from
// the pool. Non-commutative operators also yield the mirrored orientation.
// Every pool element gets a turn as n.
func (e expander) Successors(s *State) []*State {
	if s.Remaining.Empty() {
		return nil
	}

	positions := expr.Leaves(s.Tree)
	if e.policy == ExpandFirstLeaf {
		positions = 1
	}

	// 4 operators plus 2 mirrored orientations per (leaf, number) pair.
	out := make([]*State, 0, positions*len(s.Remaining)*6)
	for pos := 0; pos < positions; pos++ {
		out = e.appendLeaf(out, s, pos)
	}
	return out
}

func (e expander) appendLeaf(out []*State, s *State, pos int) []*State {
	for step := range s.Remaining {
		i := step
		if e.depthFirst {
			i = len(s.Remaining) - 1 - step
		}
		n := s.Remaining[i]
		rest := s.Remaining.Without(i)

		for _, op := range e.operators() {
			out = append(out, &State{
				Tree:      graft(s.Tree, pos, op, n, false),
				Remaining: rest,
			})
			if !op.Commutative() {
				out = append(out, &State{
					Tree:      graft(s.Tree, pos, op, n, true),
					Remaining: rest,
				})
			}
		}
	}
	return out
}

func (e expander) operators() []expr.Operator {
	ops := expr.Operators()
	if e.depthFirst {
		for i, j := 0, len(ops)-1; i < j; i, j = i+1, j-1 {
			ops[i], ops[j] = ops[j], ops[i]
		}
	}
	return ops
}

// graft copies tree with the leaf at position pos (left-to-right order)
// replaced by an operator node over that leaf and n. mirrored puts n on
// the left.
func graft(tree expr.Node, pos int, op expr.Operator, n int, mirrored bool) expr.Node {
	out, _ := replaceLeaf(tree, pos, 0, func(leaf *expr.NumberNode) expr.Node {
		if mirrored {
			return expr.NewOp(op, expr.Num(n), leaf.Clone())
		}
		return expr.NewOp(op, leaf.Clone(), expr.Num(n))
	})
	return out
}

// replaceLeaf rebuilds the tree, swapping the leaf at index target for
// the node built from it. The leaf counter is threaded through the return
// value; next is the index of the first leaf under this subtree.
func replaceLeaf(tree expr.Node, target, next int, build func(*expr.NumberNode) expr.Node) (expr.Node, int) {
	switch t := tree.(type) {
	case *expr.NumberNode:
		if next == target {
			return build(t), next + 1
		}
		return t.Clone(), next + 1
	case *expr.OperatorNode:
		left, after := replaceLeaf(t.Left, target, next, build)
		right, after := replaceLeaf(t.Right, target, after, build)
		return expr.NewOp(t.Op, left, right), after
	}
	return tree, next
}
