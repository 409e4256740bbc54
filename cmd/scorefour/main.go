// Command scorefour plays a game of Score Four between two configurable
// agents: human, uniform random, depth-limited alpha-beta, or root-parallel
// MCTS, on the 4×4×4 lattice.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"scorefour/internal/agent"
	"scorefour/internal/bitset"
	"scorefour/internal/config"
	"scorefour/internal/position"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		log.Error().Err(err).Msg("configuration error")
		os.Exit(1)
	}

	a1, err := agent.New(cfg.Player1.Kind, cfg.Player1.Cfg)
	if err != nil {
		log.Error().Err(err).Msg("configuration error")
		os.Exit(1)
	}
	a2, err := agent.New(cfg.Player2.Kind, cfg.Player2.Cfg)
	if err != nil {
		log.Error().Err(err).Msg("configuration error")
		os.Exit(1)
	}

	g := &driver{
		cfg:     cfg,
		agents:  [2]agent.Agent{a1, a2},
		kinds:   [2]agent.Kind{cfg.Player1.Kind, cfg.Player2.Kind},
		reader:  bufio.NewReader(os.Stdin),
		pos:     position.Position{},
		current: position.Black,
	}
	g.run()
}

// driver is the thin game loop: alternate turns, apply the chosen move,
// check for a terminal result, and render the board as four stacked floors.
type driver struct {
	cfg     *config.Config
	agents  [2]agent.Agent
	kinds   [2]agent.Kind
	reader  *bufio.Reader
	pos     position.Position
	current position.Side
}

func (g *driver) run() {
	for {
		if !g.cfg.NoBoard {
			printBoard(g.pos)
		}
		result := g.pos.Result()
		if result != position.Ongoing {
			if !g.cfg.NoResult {
				printResult(result)
			}
			return
		}

		move := g.chooseMove()
		g.pos = position.Apply(g.pos, g.current, move)
		g.current = g.current.Opponent()
	}
}

func (g *driver) chooseMove() uint64 {
	idx := playerIndex(g.current)
	if g.kinds[idx] == agent.Human {
		return g.readHumanMove()
	}
	return g.agents[idx].Choose(g.pos, g.current)
}

func playerIndex(s position.Side) int {
	if s == position.Black {
		return 0
	}
	return 1
}

func (g *driver) readHumanMove() uint64 {
	legal := g.pos.LegalMask()
	for {
		fmt.Printf("%s to move (row col, 0-3 0-3): ", sideLabel(g.current))
		var row, col int
		if _, err := fmt.Fscan(g.reader, &row, &col); err != nil {
			fmt.Println("invalid input, expected two integers")
			g.reader = bufio.NewReader(os.Stdin)
			continue
		}
		if row < 0 || row > 3 || col < 0 || col > 3 {
			fmt.Println("row and column must be in 0..3")
			continue
		}
		move, ok := columnMove(legal, row, col)
		if !ok {
			fmt.Println("that column is full")
			continue
		}
		return move
	}
}

// columnMove finds the single legal cell, if any, in the column (row, col)
// across all four floors: gravity means at most one floor per column is
// ever legal at a time.
func columnMove(legal uint64, row, col int) (uint64, bool) {
	for floor := 0; floor < 4; floor++ {
		cell := floor*16 + row*4 + col
		bit := bitset.BitOf(cell)
		if legal&bit != 0 {
			return bit, true
		}
	}
	return 0, false
}

func sideLabel(s position.Side) string {
	if s == position.Black {
		return "Black"
	}
	return "White"
}

func printBoard(pos position.Position) {
	for floor := 0; floor < 4; floor++ {
		fmt.Printf("floor %d\n", floor)
		for row := 0; row < 4; row++ {
			for col := 0; col < 4; col++ {
				cell := floor*16 + row*4 + col
				bit := bitset.BitOf(cell)
				switch {
				case pos.B&bit != 0:
					fmt.Print(" B")
				case pos.W&bit != 0:
					fmt.Print(" W")
				default:
					fmt.Print(" .")
				}
			}
			fmt.Println()
		}
	}
	fmt.Println()
}

func printResult(result position.Result) {
	switch result {
	case position.BlackWin:
		fmt.Println("Black wins")
	case position.WhiteWin:
		fmt.Println("White wins")
	case position.Draw:
		fmt.Println("Draw")
	}
}
