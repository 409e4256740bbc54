package main

import (
	"testing"

	"scorefour/internal/bitset"
	"scorefour/internal/position"
)

func TestColumnMoveFindsLowestOpenFloor(t *testing.T) {
	// Column (row=0, col=0) is cells 0, 16, 32, 48. Cell 0 is occupied, so
	// the legal mask (as LegalMask would produce) has only cell 16 open
	// there.
	legal := bitset.BitOf(16)
	move, ok := columnMove(legal, 0, 0)
	if !ok || move != bitset.BitOf(16) {
		t.Errorf("columnMove = (%#016x, %v), want (%#016x, true)", move, ok, bitset.BitOf(16))
	}
}

func TestColumnMoveReportsFullColumn(t *testing.T) {
	legal := bitset.BitOf(5) // some other column entirely
	if _, ok := columnMove(legal, 0, 0); ok {
		t.Error("columnMove should report false when no floor of the column is legal")
	}
}

func TestPlayerIndex(t *testing.T) {
	if playerIndex(position.Black) != 0 {
		t.Error("playerIndex(Black) should be 0")
	}
	if playerIndex(position.White) != 1 {
		t.Error("playerIndex(White) should be 1")
	}
}

func TestSideLabel(t *testing.T) {
	if sideLabel(position.Black) != "Black" {
		t.Error(`sideLabel(Black) should be "Black"`)
	}
	if sideLabel(position.White) != "White" {
		t.Error(`sideLabel(White) should be "White"`)
	}
}
