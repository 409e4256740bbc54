// Package alphabeta implements the depth-limited negamax alpha-beta agent,
// with per-node move ordering from the static evaluator and root children
// evaluated in parallel, one goroutine per child, via errgroup.
package alphabeta

import (
	"context"
	"sort"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"scorefour/internal/eval"
	"scorefour/internal/position"
)

const (
	infinity = 10000
)

// Agent is the alpha-beta move-selection agent for a fixed search depth.
type Agent struct {
	Depth int
}

// New constructs an alpha-beta agent. depth must be > 0; callers validate
// this at configuration time (spec's "m requires its depth flag > 0").
func New(depth int) *Agent {
	return &Agent{Depth: depth}
}

type rootResult struct {
	move  uint64
	score int
}

// Choose returns the move that maximizes the negamax value over the root's
// children, evaluated independently and in parallel (no shared mutable
// state crosses the goroutine boundary). Ties break toward the lowest cell
// index, which falls out of generation order.
func (a *Agent) Choose(pos position.Position, side position.Side) uint64 {
	moves := pos.LegalMoves()
	if len(moves) == 0 {
		return 0
	}

	results := make([]rootResult, len(moves))
	g, _ := errgroup.WithContext(context.Background())
	for i, move := range moves {
		i, move := i, move
		g.Go(func() error {
			child := position.Apply(pos, side, move)
			score := alphabeta(child, a.Depth-1, -infinity, infinity, side.Opponent(), side)
			results[i] = rootResult{move: move, score: score}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("alphabeta root search failed")
	}

	best := results[0]
	for _, r := range results[1:] {
		if r.score > best.score {
			best = r
		}
	}
	log.Debug().Int("depth", a.Depth).Int("score", best.score).Msg("alphabeta chose move")
	return best.move
}

// alphabeta evaluates pos at depth d with window [alpha, beta] and toMove to
// play. Scores are always from the fixed root player me's perspective: the
// node maximizes when toMove == me and minimizes otherwise.
func alphabeta(pos position.Position, d int, alpha, beta int, toMove, me position.Side) int {
	if d == 0 || pos.Result() != position.Ongoing {
		return eval.Static(pos, me)
	}

	moves := pos.LegalMoves()
	if len(moves) == 0 {
		return eval.Static(pos, me)
	}

	children := make([]position.Position, len(moves))
	scores := make([]int, len(moves))
	for i, m := range moves {
		children[i] = position.Apply(pos, toMove, m)
		scores[i] = eval.Static(children[i], me)
	}
	order := make([]int, len(moves))
	for i := range order {
		order[i] = i
	}
	maximizing := toMove == me
	sort.SliceStable(order, func(i, j int) bool {
		if maximizing {
			return scores[order[i]] > scores[order[j]]
		}
		return scores[order[i]] < scores[order[j]]
	})

	if maximizing {
		best := -infinity - 1
		for _, idx := range order {
			v := alphabeta(children[idx], d-1, alpha, beta, toMove.Opponent(), me)
			if v > best {
				best = v
			}
			if best > alpha {
				alpha = best
			}
			if alpha >= beta {
				break
			}
		}
		return best
	}

	best := infinity + 1
	for _, idx := range order {
		v := alphabeta(children[idx], d-1, alpha, beta, toMove.Opponent(), me)
		if v < best {
			best = v
		}
		if best < beta {
			beta = best
		}
		if alpha >= beta {
			break
		}
	}
	return best
}
