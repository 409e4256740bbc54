package mcts

import (
	"math"

	"scorefour/internal/eval"
	"scorefour/internal/position"
	"scorefour/internal/rng"
)

// simulate returns a reward in [0, 1] relative to rootSide: 1 for a root
// win, 0 for a root loss, 0.5 for a draw, and a static-eval-derived value in
// between when the rollout hits its depth cutoff without a decision.
func simulate(n *node, rootSide position.Side, cfg Config, src *rng.Source) float64 {
	if n.terminal != position.Ongoing {
		return terminalReward(n.terminal, rootSide)
	}

	pos := position.Position{B: n.b, W: n.w}
	side := n.side
	for depth := 0; depth < cfg.RolloutMaxDepth; depth++ {
		legal := pos.LegalMoves()
		if len(legal) == 0 {
			return 0.5
		}
		move := pickRolloutMove(pos, side, legal, src)
		pos = position.Apply(pos, side, move)
		if position.IncrementalWin(pos, side, move) {
			if side == rootSide {
				return 1
			}
			return 0
		}
		side = side.Opponent()
	}

	s := eval.Static(pos, rootSide)
	return clamp01(0.5 + 0.25*math.Tanh(float64(s)/20))
}

func terminalReward(result position.Result, rootSide position.Side) float64 {
	switch result {
	case position.Draw:
		return 0.5
	case position.BlackWin:
		if rootSide == position.Black {
			return 1
		}
		return 0
	case position.WhiteWin:
		if rootSide == position.White {
			return 1
		}
		return 0
	default:
		return 0.5
	}
}

// pickRolloutMove implements the heuristic policy: take an immediate win if
// one exists, otherwise block the opponent's immediate win, otherwise play
// uniformly at random.
func pickRolloutMove(pos position.Position, side position.Side, legal []uint64, src *rng.Source) uint64 {
	for _, mv := range legal {
		if position.WouldWin(pos, side, mv) {
			return mv
		}
	}
	opp := side.Opponent()
	for _, mv := range legal {
		if position.WouldWin(pos, opp, mv) {
			return mv
		}
	}
	return legal[src.IntN(len(legal))]
}
