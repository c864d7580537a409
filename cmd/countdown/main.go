package main

import (
	"context"
	"encoding/binary"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/muesli/termenv"
	"github.com/namsral/flag"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"go-countdown/pkg/bench"
	"go-countdown/pkg/game"
	"go-countdown/pkg/solver"
)

type config struct {
	numbers       string
	target        int
	large         int
	seed          int64
	mode          string
	firstLeafOnly bool
	maxStates     uint
	movetime      int
	bench         int
	jobs          int
	debug         bool
}

func (c *config) load(args []string) error {
	fs := flag.NewFlagSet("countdown", flag.ContinueOnError)
	fs.StringVar(&c.numbers, "numbers", "", "comma-separated deal, e.g. 1,10,25,50,4,4; empty draws a random one")
	fs.IntVar(&c.target, "target", 0, "target in [100, 999]; 0 draws a random one")
	fs.IntVar(&c.large, "large", -1, "big numbers in a random deal (0-4, -1 picks at random)")
	fs.Int64Var(&c.seed, "seed", 0, "seed for random deals; 0 uses an unpredictable one")
	fs.StringVar(&c.mode, "mode", "bfs", "queue discipline: bfs or dfs")
	fs.BoolVar(&c.firstLeafOnly, "first-leaf-only", false, "graft onto the leftmost leaf position only")
	fs.UintVar(&c.maxStates, "max-states", 0, "stop after evaluating this many states (0 = unlimited)")
	fs.IntVar(&c.movetime, "movetime", -1, "time budget in milliseconds (-1 = unlimited)")
	fs.IntVar(&c.bench, "bench", 0, "solve this many random games and report aggregates")
	fs.IntVar(&c.jobs, "jobs", runtime.NumCPU(), "concurrent games in bench mode")
	fs.BoolVar(&c.debug, "debug", false, "debug logging")
	return fs.Parse(args)
}

func main() {
	var cfg config
	if err := cfg.load(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	mode := solver.BreadthFirst
	if cfg.mode == "dfs" {
		mode = solver.DepthFirst
	}

	limits := solver.DefaultLimits()
	if cfg.maxStates > 0 {
		limits.SetStates(uint32(cfg.maxStates))
	}
	if cfg.movetime >= 0 {
		limits.SetMovetime(cfg.movetime)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if cfg.bench > 0 {
		if err := runBench(ctx, cfg, mode, limits); err != nil {
			log.Fatal().Err(err).Msg("bench failed")
		}
		return
	}

	g, err := makeGame(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid game")
	}
	fmt.Println(g)

	engine := solver.New(g)
	engine.SetLimits(limits)
	if cfg.firstLeafOnly {
		engine.SetExpandPolicy(solver.ExpandFirstLeaf)
	}

	start := time.Now()
	result := engine.Solve(ctx, mode)
	printResult(result, time.Since(start), engine.Popped())
}

func makeGame(cfg config) (*game.Game, error) {
	if cfg.numbers == "" {
		return game.Generate(newRNG(cfg.seed), cfg.large)
	}

	numbers, err := parseNumbers(cfg.numbers)
	if err != nil {
		return nil, err
	}
	target := cfg.target
	if target == 0 {
		target = 100 + newRNG(cfg.seed).Intn(900)
	}
	return game.New(numbers, target)
}

func parseNumbers(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	numbers := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %w", part, err)
		}
		numbers[i] = n
	}
	return numbers, nil
}

func newRNG(seed int64) *frand.RNG {
	if seed == 0 {
		return frand.New()
	}
	key := make([]byte, 32)
	binary.LittleEndian.PutUint64(key, uint64(seed))
	return frand.NewCustom(key, 1024, 12)
}

func printResult(result solver.Result, elapsed time.Duration, popped int) {
	profile := termenv.ColorProfile()

	if !result.Found {
		fmt.Println(termenv.String("no candidate evaluated").Foreground(profile.Color("1")))
		return
	}

	verdict := termenv.String("exact").Foreground(profile.Color("2")).Bold()
	if !result.Exact {
		verdict = termenv.String(fmt.Sprintf("off by %d", result.Dist)).Foreground(profile.Color("3"))
	}

	fmt.Printf("%s = %d  [%s, %d states in %s, stop: %s]\n",
		result.Expr, result.Value, verdict,
		popped, elapsed.Round(time.Millisecond), result.StopReason)
}

// runBench deals cfg.bench random games and pushes them through the
// arena.
func runBench(ctx context.Context, cfg config, mode solver.Mode, limits *solver.Limits) error {
	rng := newRNG(cfg.seed)
	games := make([]solver.Game, cfg.bench)
	for i := range games {
		g, err := game.Generate(rng, cfg.large)
		if err != nil {
			return err
		}
		games[i] = g
	}

	arena := bench.NewArena(mode, limits, cfg.jobs)
	arena.SetListener(bench.LogListener{})
	if cfg.firstLeafOnly {
		arena.SetExpandPolicy(solver.ExpandFirstLeaf)
	}

	summary, err := arena.Run(ctx, games)
	if err != nil {
		return err
	}

	fmt.Printf("games %d  solved %d  missed %d  avg miss dist %.1f  states %d  elapsed %dms\n",
		summary.TotalGames, summary.Solved, summary.Missed,
		summary.AvgMissDist, summary.States, summary.ElapsedMs)
	return nil
}
