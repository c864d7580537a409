package expr

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func eval(t *testing.T, n Node) int {
	t.Helper()
	v, err := n.Eval()
	if err != nil {
		t.Fatalf("Eval() of %s failed: %v", n, err)
	}
	return v
}

func TestLeafEval(t *testing.T) {
	is := is.New(t)
	is.Equal(eval(t, Num(7)), 7)
	is.Equal(Num(7).String(), "7")
}

func TestAddMul(t *testing.T) {
	is := is.New(t)
	is.Equal(eval(t, NewOp(Add, Num(5), Num(6))), 11)
	is.Equal(eval(t, NewOp(Mul, Num(5), Num(6))), 30)
}

func TestSubtract(t *testing.T) {
	is := is.New(t)

	is.Equal(eval(t, NewOp(Sub, Num(5), Num(3))), 2)

	_, err := NewOp(Sub, Num(3), Num(5)).Eval()
	is.True(errors.Is(err, ErrNonPositiveResult))

	// A zero intermediate is useless and disallowed as well.
	_, err = NewOp(Sub, Num(4), Num(4)).Eval()
	is.True(errors.Is(err, ErrNonPositiveResult))
}

func TestDivide(t *testing.T) {
	is := is.New(t)

	is.Equal(eval(t, NewOp(Div, Num(6), Num(3))), 2)

	_, err := NewOp(Div, Num(7), Num(2)).Eval()
	is.True(errors.Is(err, ErrDivisionRemainder))

	_, err = NewOp(Div, Num(6), Num(0)).Eval()
	is.True(errors.Is(err, ErrDivisionByZero))
}

func TestErrorStopsAtFirstBadSubtree(t *testing.T) {
	is := is.New(t)

	// (3 - 5) * (6 / 0): the left subtree fails first.
	tree := NewOp(Mul, NewOp(Sub, Num(3), Num(5)), NewOp(Div, Num(6), Num(0)))
	_, err := tree.Eval()
	is.True(errors.Is(err, ErrNonPositiveResult))
}

func TestRenderPrecedence(t *testing.T) {
	is := is.New(t)

	// Weaker child under a stronger parent gets brackets.
	tree := NewOp(Mul, NewOp(Sub, Num(5), Num(3)), Num(7))
	is.Equal(tree.String(), "(5 - 3) * 7")
	is.Equal(eval(t, tree), 14)

	// Stronger child under a weaker parent does not.
	is.Equal(NewOp(Add, NewOp(Mul, Num(2), Num(3)), Num(1)).String(), "2 * 3 + 1")

	// Equal precedence does not either.
	is.Equal(NewOp(Sub, NewOp(Add, Num(5), Num(3)), Num(2)).String(), "5 + 3 - 2")
	is.Equal(NewOp(Div, NewOp(Mul, Num(5), Num(4)), Num(2)).String(), "5 * 4 / 2")
}

func TestCloneIndependence(t *testing.T) {
	is := is.New(t)

	tree := NewOp(Mul, NewOp(Sub, Num(5), Num(3)), Num(7))
	clone := tree.Clone()

	is.Equal(clone.String(), tree.String())
	is.Equal(eval(t, clone), eval(t, tree))

	// Mutating a leaf of the clone must not reach the original.
	clone.(*OperatorNode).Left.(*OperatorNode).Left.(*NumberNode).Value = 100
	is.Equal(eval(t, tree), 14)
	is.Equal(eval(t, clone), (100-3)*7)
}

func TestLeaves(t *testing.T) {
	is := is.New(t)
	is.Equal(Leaves(Num(1)), 1)
	is.Equal(Leaves(NewOp(Add, Num(1), Num(2))), 2)
	is.Equal(Leaves(NewOp(Mul, NewOp(Sub, Num(5), Num(3)), Num(7))), 3)
}
