// Package eval provides the fast static evaluator shared by the alpha-beta
// and MCTS agents: a coarse terminal-aware score used for move ordering and
// for the MCTS rollout depth-cutoff heuristic.
package eval

import (
	"scorefour/internal/bitset"
	"scorefour/internal/position"
)

// Win and Lose are the terminal payoffs returned for a decided position.
const (
	Win  = 100
	Lose = -100
)

// Static scores pos from the perspective of side my. If pos is terminal the
// result is the ±100/0 terminal payoff; otherwise it sums +1 for every line
// owned only by my stones and -1 for every line owned only by the
// opponent's, ignoring empty and mixed lines.
func Static(pos position.Position, my position.Side) int {
	switch pos.Result() {
	case position.BlackWin:
		if my == position.Black {
			return Win
		}
		return Lose
	case position.WhiteWin:
		if my == position.White {
			return Win
		}
		return Lose
	case position.Draw:
		return 0
	}

	myBoard := pos.Board(my)
	oppBoard := pos.Board(my.Opponent())
	score := 0
	for _, mask := range bitset.Lines() {
		myOnLine := myBoard & mask
		oppOnLine := oppBoard & mask
		switch {
		case myOnLine != 0 && oppOnLine == 0:
			score++
		case oppOnLine != 0 && myOnLine == 0:
			score--
		}
	}
	return score
}
