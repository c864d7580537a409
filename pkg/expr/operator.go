package expr

import "lukechampine.com/frand"

// Operator is one of the four arithmetic operators allowed in the numbers
// round.
type Operator uint8

const (
	Add Operator = iota
	Sub
	Mul
	Div
)

var opSymbols = [...]string{"+", "-", "*", "/"}

// Operators returns the operators in their fixed generation order.
func Operators() []Operator {
	return []Operator{Add, Sub, Mul, Div}
}

// RandomOperator draws an operator from the given source.
func RandomOperator(rng *frand.RNG) Operator {
	return Operator(rng.Intn(len(opSymbols)))
}

func (op Operator) String() string {
	return opSymbols[op]
}

// Commutative reports whether operand order is irrelevant for this
// operator (Add and Mul).
func (op Operator) Commutative() bool {
	return op == Add || op == Mul
}

// Precedence of the operator under the usual arithmetic conventions,
// 2 for Mul/Div and 1 for Add/Sub. Used only for rendering.
func (op Operator) Precedence() int {
	if op == Mul || op == Div {
		return 2
	}
	return 1
}
