package bench

import "github.com/rs/zerolog/log"

// WorkerInfo is the running tally of a single worker, reported after
// every finished game. Workers own their info, so no synchronization is
// needed inside callbacks.
type WorkerInfo struct {
	WorkerID      int
	NGames        int
	FinishedGames int
	Solved        int
	Missed        int
	LastGame      string
	LastBest      string
}

// SummaryInfo describes a whole arena run.
type SummaryInfo struct {
	TotalGames  int     `json:"total_games"`
	Solved      int     `json:"solved"`
	Missed      int     `json:"missed"`
	AvgMissDist float64 `json:"avg_miss_dist"`
	States      int64   `json:"states"`
	ElapsedMs   int64   `json:"elapsed_ms"`
	Workers     int     `json:"workers"`
}

type ListenerLike interface {
	OnFinishedGame(info WorkerInfo)
	OnFinishedWork(summary SummaryInfo)
}

// LogListener reports arena progress through the global logger.
type LogListener struct{}

func (LogListener) OnFinishedGame(info WorkerInfo) {
	log.Debug().
		Int("worker", info.WorkerID).
		Int("finished", info.FinishedGames).
		Int("solved", info.Solved).
		Str("game", info.LastGame).
		Str("best", info.LastBest).
		Msg("arena-game")
}

func (LogListener) OnFinishedWork(summary SummaryInfo) {
	log.Info().
		Int("games", summary.TotalGames).
		Int("solved", summary.Solved).
		Int("missed", summary.Missed).
		Float64("avg_miss_dist", summary.AvgMissDist).
		Int64("states", summary.States).
		Int64("elapsed_ms", summary.ElapsedMs).
		Msg("arena-summary")
}
