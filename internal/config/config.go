// Package config parses and validates the command-line surface for the
// scorefour driver: which agent plays each side and how it is tuned.
package config

import (
	"flag"
	"fmt"

	"scorefour/internal/agent"
	"scorefour/internal/mcts"
)

// PlayerConfig is one side's resolved agent settings.
type PlayerConfig struct {
	Kind agent.Kind
	Cfg  agent.Config
}

// Config is the fully parsed and validated command-line surface.
type Config struct {
	Player1  PlayerConfig
	Player2  PlayerConfig
	NoBoard  bool
	NoResult bool
}

// Parse builds Config from args (typically os.Args[1:]) using a private
// FlagSet, so repeated calls in tests never collide on flag.CommandLine the
// way the original driver's package-level flag.StringVar in init() would.
func Parse(args []string) (*Config, error) {
	fs := flag.NewFlagSet("scorefour", flag.ContinueOnError)

	player1 := fs.String("player1", "h", "agent for black: h (human), r (random), m (alpha-beta), c (mcts)")
	player2 := fs.String("player2", "c", "agent for white: h (human), r (random), m (alpha-beta), c (mcts)")
	depth1 := fs.Int("player1-depth", 6, "alpha-beta search depth for player1 (kind m)")
	depth2 := fs.Int("player2-depth", 6, "alpha-beta search depth for player2 (kind m)")

	iterations := fs.Int("mcts-iterations", 0, "mcts simulation budget, shared default for both players")
	timeMs := fs.Int("mcts-time-ms", 1000, "mcts time budget in milliseconds, shared default for both players")
	threads := fs.Int("mcts-threads", 0, "mcts worker count, shared default for both players (<=0: GOMAXPROCS)")
	c := fs.Float64("mcts-c", 0, "mcts UCT exploration constant, shared default (<=0: sqrt(2))")
	rolloutDepth := fs.Int("mcts-rollout-depth", 0, "mcts rollout depth cutoff, shared default (<=0: 64)")
	maxNodes := fs.Int("mcts-max-nodes", 0, "mcts per-worker arena node cap, shared default (<=0: auto)")
	verbose := fs.Bool("mcts-verbose", false, "log mcts search statistics")
	seed := fs.Uint64("mcts-seed", 0, "mcts/random PRNG seed, shared default (0: auto-seed)")

	iterations1 := fs.Int("player1-mcts-iterations", 0, "override mcts-iterations for player1")
	iterations2 := fs.Int("player2-mcts-iterations", 0, "override mcts-iterations for player2")
	timeMs1 := fs.Int("player1-mcts-time-ms", 0, "override mcts-time-ms for player1")
	timeMs2 := fs.Int("player2-mcts-time-ms", 0, "override mcts-time-ms for player2")
	seed1 := fs.Uint64("player1-mcts-seed", 0, "override mcts-seed for player1")
	seed2 := fs.Uint64("player2-mcts-seed", 0, "override mcts-seed for player2")

	noBoard := fs.Bool("no-board", false, "suppress board output after each move")
	noResult := fs.Bool("no-result", false, "suppress the final result line")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	base := mcts.Config{
		Iterations:      *iterations,
		TimeMs:          *timeMs,
		Threads:         *threads,
		C:               *c,
		RolloutMaxDepth: *rolloutDepth,
		MaxNodes:        *maxNodes,
		Verbose:         *verbose,
		Seed:            *seed,
	}

	mctsCfg1 := base
	if *iterations1 > 0 {
		mctsCfg1.Iterations = *iterations1
	}
	if *timeMs1 > 0 {
		mctsCfg1.TimeMs = *timeMs1
	}
	if *seed1 != 0 {
		mctsCfg1.Seed = *seed1
	}

	mctsCfg2 := base
	if *iterations2 > 0 {
		mctsCfg2.Iterations = *iterations2
	}
	if *timeMs2 > 0 {
		mctsCfg2.TimeMs = *timeMs2
	}
	if *seed2 != 0 {
		mctsCfg2.Seed = *seed2
	}

	kind1, err := agent.ParseKind(*player1)
	if err != nil {
		return nil, fmt.Errorf("player1: %w", err)
	}
	kind2, err := agent.ParseKind(*player2)
	if err != nil {
		return nil, fmt.Errorf("player2: %w", err)
	}

	cfg := &Config{
		Player1: PlayerConfig{
			Kind: kind1,
			Cfg:  agent.Config{Depth: *depth1, MCTS: mctsCfg1, Seed: mctsCfg1.Seed},
		},
		Player2: PlayerConfig{
			Kind: kind2,
			Cfg:  agent.Config{Depth: *depth2, MCTS: mctsCfg2, Seed: mctsCfg2.Seed},
		},
		NoBoard:  *noBoard,
		NoResult: *noResult,
	}

	if err := validatePlayer("player1", cfg.Player1); err != nil {
		return nil, err
	}
	if err := validatePlayer("player2", cfg.Player2); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validatePlayer(label string, pc PlayerConfig) error {
	switch pc.Kind {
	case agent.AlphaBeta:
		if pc.Cfg.Depth <= 0 {
			return fmt.Errorf("%s: alpha-beta requires a positive depth (got %d)", label, pc.Cfg.Depth)
		}
	case agent.MCTS:
		if pc.Cfg.MCTS.Iterations <= 0 && pc.Cfg.MCTS.TimeMs <= 0 {
			return fmt.Errorf("%s: mcts requires --mcts-iterations or --mcts-time-ms greater than zero", label)
		}
	}
	return nil
}
