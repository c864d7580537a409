package solver

import (
	"encoding/json"
	"math"
	"strings"
)

// Limits bound the search externally without altering its semantics: a
// truncated search still reports the best state seen so far.
type Limits struct {
	States   uint32 // maximum number of popped states
	Movetime int    // time budget in milliseconds
	Infinite bool
}

const (
	DefaultStateLimit    uint32 = math.MaxUint32
	DefaultMovetimeLimit int    = -1
)

func DefaultLimits() *Limits {
	return &Limits{
		States:   DefaultStateLimit,
		Movetime: DefaultMovetimeLimit,
		Infinite: true,
	}
}

// Set the maximum number of states the engine may pop and evaluate
func (l *Limits) SetStates(states uint32) *Limits {
	l.States = states
	l.Infinite = false
	return l
}

// Set the maximum time for the engine to think, in milliseconds
func (l *Limits) SetMovetime(movetime int) *Limits {
	l.Movetime = movetime
	l.Infinite = false
	return l
}

func (l *Limits) SetInfinite(infinite bool) {
	l.Infinite = infinite
}

func (l Limits) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(l)
	return builder.String()
}
