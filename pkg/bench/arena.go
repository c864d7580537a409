// Package bench runs batches of numbers rounds through the solver and
// aggregates the outcomes. Whole games are sharded across workers; each
// game still runs on the plain single-threaded engine, so per-game
// search semantics are untouched.
package bench

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"go-countdown/pkg/solver"
)

type Arena struct {
	mode     solver.Mode
	limits   *solver.Limits
	policy   solver.ExpandPolicy
	workers  int
	listener ListenerLike
	stats    ArenaStats
}

func NewArena(mode solver.Mode, limits *solver.Limits, workers int) *Arena {
	return &Arena{
		mode:    mode,
		limits:  limits,
		workers: max(1, workers),
	}
}

func (a *Arena) SetExpandPolicy(policy solver.ExpandPolicy) {
	a.policy = policy
}

func (a *Arena) SetListener(listener ListenerLike) {
	a.listener = listener
}

func (a *Arena) Stats() *ArenaStats {
	return &a.stats
}

// Run solves every game and returns the aggregate summary. Cancelling
// ctx stops the workers between games and mid-search.
func (a *Arena) Run(ctx context.Context, games []solver.Game) (SummaryInfo, error) {
	a.stats = ArenaStats{}
	start := time.Now()

	grp, ctx := errgroup.WithContext(ctx)
	for id := 0; id < a.workers; id++ {
		id := id
		grp.Go(func() error {
			return a.work(ctx, id, games)
		})
	}
	err := grp.Wait()

	summary := SummaryInfo{
		TotalGames:  a.stats.Total(),
		Solved:      a.stats.Solved(),
		Missed:      a.stats.Missed(),
		AvgMissDist: a.stats.AvgMissDist(),
		States:      a.stats.States(),
		ElapsedMs:   time.Since(start).Milliseconds(),
		Workers:     a.workers,
	}
	if a.listener != nil {
		a.listener.OnFinishedWork(summary)
	}
	return summary, err
}

// work solves games[id], games[id+workers], ... so the shards are
// disjoint without a shared cursor.
func (a *Arena) work(ctx context.Context, id int, games []solver.Game) error {
	info := WorkerInfo{WorkerID: id, NGames: (len(games) + a.workers - 1) / a.workers}

	for i := id; i < len(games); i += a.workers {
		if err := ctx.Err(); err != nil {
			return err
		}

		engine := solver.New(games[i])
		engine.SetLimits(a.limits)
		engine.SetExpandPolicy(a.policy)

		result := engine.Solve(ctx, a.mode)
		a.stats.add(result, engine.Popped())

		info.FinishedGames++
		if result.Exact {
			info.Solved++
		} else {
			info.Missed++
		}
		if s, ok := games[i].(interface{ String() string }); ok {
			info.LastGame = s.String()
		}
		if result.Found {
			info.LastBest = result.Expr.String()
		}
		if a.listener != nil {
			a.listener.OnFinishedGame(info)
		}
	}
	return nil
}
