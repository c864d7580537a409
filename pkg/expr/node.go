package expr

import (
	"errors"
	"fmt"
	"strconv"
)

// Evaluation errors. Intermediate and final results must be positive
// integers, so a subtraction that does not stay above zero or a division
// that does not divide evenly rules the candidate out.
var (
	ErrDivisionByZero    = errors.New("division by zero")
	ErrDivisionRemainder = errors.New("division leaves a remainder")
	ErrNonPositiveResult = errors.New("result must be positive")
)

// Node is a subtree of a candidate expression. There are exactly two
// implementations: NumberNode (a leaf) and OperatorNode (a strictly
// binary inner node).
//
// The tree for (5 + 3) * 7 looks like this:
//
//	        OperatorNode *
//	        /            \
//	 OperatorNode +    NumberNode 7
//	 /            \
//	NumberNode 5   NumberNode 3
type Node interface {
	// Eval computes the value of the subtree, or reports one of the
	// evaluation errors above.
	Eval() (int, error)

	// Clone returns a deep copy sharing no nodes with the original.
	Clone() Node

	// String renders the subtree as an infix expression with minimal
	// parenthesization. Trees that render identically are considered
	// equivalent.
	fmt.Stringer
}

// NumberNode is a leaf holding one of the dealt numbers.
type NumberNode struct {
	Value int
}

// Num returns a leaf with the given value.
func Num(value int) *NumberNode {
	return &NumberNode{Value: value}
}

func (n *NumberNode) Eval() (int, error) {
	return n.Value, nil
}

func (n *NumberNode) Clone() Node {
	return &NumberNode{Value: n.Value}
}

func (n *NumberNode) String() string {
	return strconv.Itoa(n.Value)
}

// OperatorNode applies an operator to the values of its two subtrees.
type OperatorNode struct {
	Op    Operator
	Left  Node
	Right Node
}

// NewOp builds an operator node over the given subtrees.
func NewOp(op Operator, left, right Node) *OperatorNode {
	return &OperatorNode{Op: op, Left: left, Right: right}
}

func (n *OperatorNode) Eval() (int, error) {
	left, err := n.Left.Eval()
	if err != nil {
		return 0, err
	}
	right, err := n.Right.Eval()
	if err != nil {
		return 0, err
	}

	switch n.Op {
	case Add:
		return left + right, nil
	case Sub:
		if left <= right {
			return 0, ErrNonPositiveResult
		}
		return left - right, nil
	case Mul:
		return left * right, nil
	default:
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		if left%right != 0 {
			return 0, ErrDivisionRemainder
		}
		return left / right, nil
	}
}

func (n *OperatorNode) Clone() Node {
	return &OperatorNode{Op: n.Op, Left: n.Left.Clone(), Right: n.Right.Clone()}
}

func (n *OperatorNode) String() string {
	return n.operand(n.Left) + " " + n.Op.String() + " " + n.operand(n.Right)
}

// operand renders a child subtree, bracketed iff the child binds weaker
// than this node.
func (n *OperatorNode) operand(child Node) string {
	if inner, ok := child.(*OperatorNode); ok && inner.Op.Precedence() < n.Op.Precedence() {
		return "(" + inner.String() + ")"
	}
	return child.String()
}

// Leaves counts the leaf nodes of the tree, which equals the number of
// dealt numbers the expression uses.
func Leaves(n Node) int {
	switch n := n.(type) {
	case *NumberNode:
		return 1
	case *OperatorNode:
		return Leaves(n.Left) + Leaves(n.Right)
	}
	return 0
}
