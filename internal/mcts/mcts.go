package mcts

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"scorefour/internal/position"
	"scorefour/internal/rng"
)

// Agent is the root-parallel MCTS move-selection agent.
type Agent struct {
	Cfg Config
}

// New constructs an MCTS agent. Callers validate at configuration time that
// at least one of Cfg.Iterations/Cfg.TimeMs is positive.
func New(cfg Config) *Agent {
	return &Agent{Cfg: cfg.withDefaults()}
}

type workerOutcome struct {
	stats   []rootChildStat
	skipped bool
}

// Choose runs Cfg.Threads independent searches from pos and returns the
// legal move with the greatest combined visit count across workers, the
// combined win rate breaking ties, in that order; a uniform random legal
// move is the fallback if every worker's arena failed before producing any
// statistics.
func (a *Agent) Choose(pos position.Position, side position.Side) uint64 {
	legal := pos.LegalMoves()
	if len(legal) == 0 {
		return 0
	}

	cfg := a.Cfg
	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}
	if threads < 1 {
		threads = 1
	}
	nodeCap := resolveNodeCap(cfg, threads)

	var deadline time.Time
	if cfg.TimeMs > 0 {
		deadline = time.Now().Add(time.Duration(cfg.TimeMs) * time.Millisecond)
	}

	baseSeed := cfg.Seed
	if baseSeed == 0 {
		baseSeed = rng.New(0).Uint64()
	}

	var simsDone atomic.Uint64
	outcomes := make([]workerOutcome, threads)

	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < threads; w++ {
		w := w
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					log.Warn().Int("worker", w).Interface("panic", r).Msg("mcts worker arena allocation failed, dropping its contribution")
					outcomes[w] = workerOutcome{skipped: true}
				}
			}()
			src := rng.NewSeeded(baseSeed, w)
			stats := runWorker(pos, side, cfg, nodeCap, deadline, &simsDone, src)
			outcomes[w] = workerOutcome{stats: stats}
			return nil
		})
	}
	_ = g.Wait()

	totalVisits := make([]uint64, 16)
	totalWins := make([]float64, 16)
	for _, o := range outcomes {
		if o.skipped {
			continue
		}
		for _, s := range o.stats {
			col := columnIndex(s.move)
			totalVisits[col] += s.visits
			totalWins[col] += s.reward
		}
	}

	var best uint64
	bestVisits := uint64(0)
	bestRate := -1.0
	found := false
	for _, mv := range legal {
		col := columnIndex(mv)
		v := totalVisits[col]
		if v == 0 {
			continue
		}
		rate := totalWins[col] / float64(v)
		if !found || v > bestVisits || (v == bestVisits && rate > bestRate) {
			found = true
			best = mv
			bestVisits = v
			bestRate = rate
		}
	}
	if !found {
		log.Warn().Msg("mcts search produced no statistics, falling back to a uniform random legal move")
		return legal[rng.NewSeeded(baseSeed, threads).IntN(len(legal))]
	}

	if cfg.Verbose {
		log.Info().Uint64("visits", bestVisits).Float64("winRate", bestRate).Msg("mcts chose move")
	}
	return best
}

// runWorker runs one worker's private search to an iteration or time bound
// and returns its root children's statistics. It never returns an error
// itself; arena-allocation failures are recovered and logged by the caller.
func runWorker(root position.Position, side position.Side, cfg Config, nodeCap int, deadline time.Time, simsDone *atomic.Uint64, src *rng.Source) []rootChildStat {
	a := newArena(nodeCap, newRootNode(root, side))
	sinceBatch := 0

	checkBudget := func() bool {
		if cfg.Iterations > 0 && simsDone.Load() >= uint64(cfg.Iterations) {
			return false
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			return false
		}
		return true
	}

	for checkBudget() {
		leaf, expandable := selectLeaf(a, cfg.C)
		simNode := leaf
		if expandable {
			if idx, ok := expand(a, leaf, src.IntN); ok {
				simNode = idx
			}
		}
		reward := simulate(a.at(simNode), side, cfg, src)
		backprop(a, simNode, reward)

		sinceBatch++
		if sinceBatch >= batchSize {
			simsDone.Add(uint64(sinceBatch))
			sinceBatch = 0
		}
		if a.full() && a.at(0).childCt == 0 {
			break
		}
	}
	if sinceBatch > 0 {
		simsDone.Add(uint64(sinceBatch))
	}

	return collectRootStats(a)
}
