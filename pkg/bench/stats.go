package bench

import (
	"sync/atomic"

	"go-countdown/pkg/solver"
)

// ArenaStats aggregates game outcomes across workers; counters are
// atomic so workers can report without coordination.
type ArenaStats struct {
	solved   uint32
	missed   uint32
	states   uint64
	missDist uint64
}

func (as *ArenaStats) Total() int {
	return as.Solved() + as.Missed()
}

// Games that reached the target exactly
func (as *ArenaStats) Solved() int {
	return int(atomic.LoadUint32(&as.solved))
}

// Games that ended on a best-effort candidate
func (as *ArenaStats) Missed() int {
	return int(atomic.LoadUint32(&as.missed))
}

// States popped across all games
func (as *ArenaStats) States() int64 {
	return int64(atomic.LoadUint64(&as.states))
}

// Average distance from the target among missed games
func (as *ArenaStats) AvgMissDist() float64 {
	missed := as.Missed()
	if missed == 0 {
		return 0
	}
	return float64(atomic.LoadUint64(&as.missDist)) / float64(missed)
}

func (as *ArenaStats) add(result solver.Result, popped int) {
	atomic.AddUint64(&as.states, uint64(popped))
	if result.Exact {
		atomic.AddUint32(&as.solved, 1)
		return
	}
	atomic.AddUint32(&as.missed, 1)
	if result.Found {
		atomic.AddUint64(&as.missDist, uint64(result.Dist))
	}
}
