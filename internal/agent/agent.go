// Package agent provides the uniform move-selection surface the driver
// dispatches through, regardless of whether a human, a random source, the
// alpha-beta searcher, or the MCTS searcher is on move.
package agent

import (
	"fmt"

	"scorefour/internal/alphabeta"
	"scorefour/internal/mcts"
	"scorefour/internal/position"
	"scorefour/internal/rng"
)

// Kind identifies which implementation backs an Agent.
type Kind int

const (
	Human Kind = iota
	Random
	AlphaBeta
	MCTS
)

func (k Kind) String() string {
	switch k {
	case Human:
		return "human"
	case Random:
		return "random"
	case AlphaBeta:
		return "alphabeta"
	case MCTS:
		return "mcts"
	default:
		return "unknown"
	}
}

// Agent chooses a move for the side to play in pos. Human is not a real
// implementation of this interface; the driver intercepts Kind == Human
// before ever calling Choose and reads a move from its own input surface
// instead.
type Agent interface {
	Choose(pos position.Position, side position.Side) uint64
}

// Config bundles every per-agent knob a Kind might need. Only the fields
// relevant to the chosen Kind are consulted.
type Config struct {
	Depth int
	MCTS  mcts.Config
	Seed  uint64
}

// New validates cfg against kind and constructs the corresponding Agent.
// Human returns a nil Agent and no error; the driver must special-case it.
func New(kind Kind, cfg Config) (Agent, error) {
	switch kind {
	case Human:
		return nil, nil
	case Random:
		return &randomAgent{src: rng.New(cfg.Seed)}, nil
	case AlphaBeta:
		if cfg.Depth <= 0 {
			return nil, fmt.Errorf("agent: alphabeta requires a positive depth, got %d", cfg.Depth)
		}
		return alphabeta.New(cfg.Depth), nil
	case MCTS:
		if cfg.MCTS.Iterations <= 0 && cfg.MCTS.TimeMs <= 0 {
			return nil, fmt.Errorf("agent: mcts requires a positive iteration count or time bound")
		}
		return mcts.New(cfg.MCTS), nil
	default:
		return nil, fmt.Errorf("agent: unknown kind %d", kind)
	}
}

// randomAgent plays a uniformly random legal move; it also backs the MCTS
// degenerate fallback conceptually (that fallback is inlined in
// internal/mcts so it can reuse the search's own seed).
type randomAgent struct {
	src *rng.Source
}

func (r *randomAgent) Choose(pos position.Position, side position.Side) uint64 {
	moves := pos.LegalMoves()
	if len(moves) == 0 {
		return 0
	}
	return moves[r.src.IntN(len(moves))]
}

// ParseKind maps a CLI agent tag to a Kind, per the §6 CLI surface contract.
func ParseKind(tag string) (Kind, error) {
	switch tag {
	case "h":
		return Human, nil
	case "r":
		return Random, nil
	case "m":
		return AlphaBeta, nil
	case "c":
		return MCTS, nil
	default:
		return 0, fmt.Errorf("agent: unrecognized agent tag %q (want h, r, m, or c)", tag)
	}
}
