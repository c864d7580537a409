// Package solver explores the space of candidate expressions for a
// numbers round. Starting from one single-leaf state per dealt number, it
// repeatedly pops a state, evaluates it, and grafts operator nodes onto
// its leaves using the numbers it has not consumed yet, until an exact
// match is popped or the space is exhausted.
package solver

import (
	"context"
	"math"

	"github.com/rs/zerolog/log"

	"go-countdown/pkg/expr"
)

// Game is the read-only view of a dealt round. The engine never validates
// it; callers own that precondition.
type Game interface {
	Numbers() []int
	Target() int
}

// Mode is the queue discipline of the search.
type Mode int

const (
	// BreadthFirst pops from the front, visiting states in increasing
	// leaf-count order.
	BreadthFirst Mode = iota

	// DepthFirst pops from the back, driving one candidate to six leaves
	// before backtracking.
	DepthFirst
)

func (m Mode) String() string {
	if m == DepthFirst {
		return "depth-first"
	}
	return "breadth-first"
}

// Result is the outcome of a search. Found is false only in the
// degenerate case where no popped state evaluated at all.
type Result struct {
	Expr       expr.Node
	Value      int
	Dist       int
	Found      bool
	Exact      bool
	StopReason StopReason
}

// Engine owns the work queue, the visited set, and the best-so-far
// tracker. A single goroutine drives it; only Limiter.SetStop may be
// called from elsewhere.
type Engine struct {
	game     Game
	Limiter  *Limiter
	listener *StatsListener
	policy   ExpandPolicy

	queue   []*State
	visited map[string]struct{}

	best     expr.Node
	bestVal  int
	bestDist int

	popped   uint32
	dedup    int
	maxDepth int
	sps      uint32
}

func New(game Game) *Engine {
	listener := NewStatsListener()
	return &Engine{
		game:     game,
		Limiter:  NewLimiter(),
		listener: &listener,
	}
}

// SetExpandPolicy selects how many leaf positions each expansion pass
// grafts onto. The default, ExpandAllLeaves, reaches every expression
// shape.
func (e *Engine) SetExpandPolicy(policy ExpandPolicy) {
	e.policy = policy
}

func (e *Engine) SetLimits(limits *Limits) {
	e.Limiter.SetLimits(limits)
}

func (e *Engine) SetListener(listener StatsListener) {
	*e.listener = listener
}

func (e *Engine) StatsListener() *StatsListener {
	return e.listener
}

// Number of states popped and evaluated during the last search
func (e *Engine) Popped() int {
	return int(e.popped)
}

// Number of popped states discarded as duplicates of a visited key
func (e *Engine) DedupHits() int {
	return e.dedup
}

// Largest leaf count among popped states
func (e *Engine) MaxDepth() int {
	return e.maxDepth
}

// Popped states per second
func (e *Engine) Sps() uint32 {
	return e.sps
}

// Solve runs the search until an exact match is popped, the space is
// exhausted, the limits trip, or ctx is cancelled. It always returns the
// best state seen so far; evaluation errors never escape.
func (e *Engine) Solve(ctx context.Context, mode Mode) Result {
	e.Limiter.SetContext(ctx)
	e.setup()

	exp := expander{depthFirst: mode == DepthFirst, policy: e.policy}
	target := e.game.Target()

	log.Debug().
		Ints("numbers", e.game.Numbers()).
		Int("target", target).
		Stringer("mode", mode).
		Msg("solve-start")

	for len(e.queue) > 0 {
		if !e.Limiter.Ok(e.popped) {
			break
		}

		var state *State
		if mode == DepthFirst {
			state = e.queue[len(e.queue)-1]
			e.queue = e.queue[:len(e.queue)-1]
		} else {
			state = e.queue[0]
			e.queue = e.queue[1:]
		}

		key := state.Key()
		if _, seen := e.visited[key]; seen {
			e.dedup++
			continue
		}
		e.visited[key] = struct{}{}

		e.popped++
		e.sps = e.popped * 1000 / e.Limiter.Elapsed()
		if depth := expr.Leaves(state.Tree); depth > e.maxDepth {
			e.maxDepth = depth
		}

		value, err := state.Tree.Eval()
		if err != nil {
			// An arithmetically illegal subtree stays illegal no matter
			// what is grafted onto its leaves, so the branch ends here.
			e.invoke(e.listener.onCycle, e.listener.nCycles)
			continue
		}

		if value == target {
			e.best, e.bestVal, e.bestDist = state.Tree, value, 0
			e.Limiter.setReason(StopSolved)
			return e.finish()
		}
		if dist := abs(value - target); dist < e.bestDist {
			e.best, e.bestVal, e.bestDist = state.Tree, value, dist
			e.invoke(e.listener.onBest, 1)
		}

		if !state.Remaining.Empty() {
			e.queue = append(e.queue, exp.Successors(state)...)
		}

		e.invoke(e.listener.onCycle, e.listener.nCycles)
	}

	if e.Limiter.StopReason() == StopNone {
		e.Limiter.setReason(StopExhausted)
	}
	return e.finish()
}

// setup seeds the queue with one single-leaf state per dealt number, the
// other five forming its pool. Single-leaf states are real candidates, a
// bare number may already match.
func (e *Engine) setup() {
	e.Limiter.Reset()

	numbers := e.game.Numbers()
	e.queue = make([]*State, len(numbers))
	for i, n := range numbers {
		rest := make([]int, 0, len(numbers)-1)
		rest = append(rest, numbers[:i]...)
		rest = append(rest, numbers[i+1:]...)
		e.queue[i] = &State{Tree: expr.Num(n), Remaining: NewPool(rest)}
	}

	e.visited = make(map[string]struct{})
	e.best = nil
	e.bestVal = 0
	e.bestDist = math.MaxInt
	e.popped = 0
	e.dedup = 0
	e.maxDepth = 0
	e.sps = 0
}

func (e *Engine) finish() Result {
	result := Result{
		Dist:       -1,
		StopReason: e.Limiter.StopReason(),
	}
	if e.best != nil {
		result.Expr = e.best
		result.Value = e.bestVal
		result.Dist = e.bestDist
		result.Found = true
		result.Exact = e.bestDist == 0
	}

	log.Debug().
		Stringer("stop", result.StopReason).
		Int("popped", e.Popped()).
		Int("dedup", e.dedup).
		Int("depth", e.maxDepth).
		Msg("solve-end")

	e.invoke(e.listener.onStop, 1)
	return result
}

// invoke calls f with a fresh stats snapshot, every interval pops.
func (e *Engine) invoke(f ListenerFunc, interval int) {
	if f == nil || int(e.popped)%interval != 0 {
		return
	}

	stats := ListenerStats{
		Popped:     e.Popped(),
		Queue:      len(e.queue),
		Visited:    len(e.visited),
		Depth:      e.maxDepth,
		BestDist:   e.bestDist,
		TimeMs:     int(e.Limiter.Elapsed()),
		Sps:        e.sps,
		StopReason: e.Limiter.StopReason(),
	}
	if e.best != nil {
		stats.Best = e.best.String()
	} else {
		stats.BestDist = -1
	}
	f(stats)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
