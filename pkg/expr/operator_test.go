package expr

import (
	"testing"

	"github.com/matryer/is"
	"lukechampine.com/frand"
)

func TestOperatorProperties(t *testing.T) {
	is := is.New(t)

	is.Equal(Add.String(), "+")
	is.Equal(Sub.String(), "-")
	is.Equal(Mul.String(), "*")
	is.Equal(Div.String(), "/")

	is.True(Add.Commutative())
	is.True(Mul.Commutative())
	is.True(!Sub.Commutative())
	is.True(!Div.Commutative())

	is.Equal(Add.Precedence(), 1)
	is.Equal(Sub.Precedence(), 1)
	is.Equal(Mul.Precedence(), 2)
	is.Equal(Div.Precedence(), 2)
}

func TestOperatorsOrder(t *testing.T) {
	is := is.New(t)
	is.Equal(Operators(), []Operator{Add, Sub, Mul, Div})

	// Callers may reorder their copy without touching the source.
	ops := Operators()
	ops[0], ops[3] = ops[3], ops[0]
	is.Equal(Operators()[0], Add)
}

func TestRandomOperator(t *testing.T) {
	is := is.New(t)
	rng := frand.New()
	for i := 0; i < 100; i++ {
		op := RandomOperator(rng)
		is.True(op <= Div)
	}
}
