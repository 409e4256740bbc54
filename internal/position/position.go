// Package position implements the dual-bitboard Score Four position: gravity
// legal-move derivation, move application, and terminal detection.
package position

import (
	"scorefour/internal/bitset"
)

// Side identifies a player.
type Side int

const (
	Black Side = iota
	White
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == Black {
		return White
	}
	return Black
}

// Result classifies a position.
type Result int

const (
	Ongoing Result = iota
	BlackWin
	WhiteWin
	Draw
)

// Position is a pair of 64-bit occupancy bitboards, one per side. Bit i (0 =
// MSB, 63 = LSB) denotes cell i; cells 0..15 are the ground floor of the
// gravity stack (no supporter needed), 48..63 the highest floor, and bit i is
// vertically adjacent to bit i+16.
type Position struct {
	B uint64 // Black's occupancy
	W uint64 // White's occupancy
}

// Board returns the side's occupancy bitboard.
func (p Position) Board(s Side) uint64 {
	if s == Black {
		return p.B
	}
	return p.W
}

// Occupied returns the combined occupancy of both sides.
func (p Position) Occupied() uint64 {
	return p.B | p.W
}

// LegalMask returns a bitboard with one bit set for every legal move: an
// unoccupied cell whose supporter (the cell directly below it, bit index
// i-16) is occupied, or which is on the ground floor itself.
func (p Position) LegalMask() uint64 {
	occ := p.Occupied()
	return ((occ >> 16) ^ occ) ^ bitset.GroundFloorMask
}

// LegalMoves returns the legal move bits in ascending cell-index order.
func (p Position) LegalMoves() []uint64 {
	mask := p.LegalMask()
	moves := make([]uint64, 0, 16)
	for cell := 0; cell < bitset.NumCells; cell++ {
		bit := bitset.BitOf(cell)
		if mask&bit != 0 {
			moves = append(moves, bit)
		}
	}
	return moves
}

// Apply returns the position after placing a single move bit for side s.
// move must be a member of p.LegalMask(); behavior is otherwise undefined
// (an engine precondition violation, per the contract).
func Apply(p Position, s Side, move uint64) Position {
	if s == Black {
		p.B |= move
	} else {
		p.W |= move
	}
	return p
}

// Result performs the full 76-mask scan used at decision boundaries. Inner
// search loops should prefer IncrementalWin for the hot path.
func (p Position) Result() Result {
	for _, mask := range bitset.Lines() {
		if p.B&mask == mask {
			return BlackWin
		}
		if p.W&mask == mask {
			return WhiteWin
		}
	}
	if p.LegalMask() == 0 {
		return Draw
	}
	return Ongoing
}

// IncrementalWin checks only the lines passing through the just-played cell
// for side s's occupancy. This is the hot path inside MCTS rollouts and
// expansion and MUST agree with the full Result() scan.
func IncrementalWin(p Position, s Side, move uint64) bool {
	return linesThroughComplete(p.Board(s), move)
}

// WouldWin reports whether side would complete a line by playing move,
// without applying it to p. Used by the MCTS rollout policy to check
// immediate wins/blocks for a candidate cell before committing to it.
func WouldWin(p Position, s Side, move uint64) bool {
	return linesThroughComplete(p.Board(s)|move, move)
}

func linesThroughComplete(board, move uint64) bool {
	cell := bitset.IndexOf(move)
	for _, li := range bitset.LinesThrough(cell) {
		mask := bitset.LineAt(li)
		if board&mask == mask {
			return true
		}
	}
	return false
}
