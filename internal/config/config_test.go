package config

import (
	"testing"

	"scorefour/internal/agent"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) returned error: %v", err)
	}
	if cfg.Player1.Kind != agent.Human {
		t.Errorf("default player1 kind = %v, want Human", cfg.Player1.Kind)
	}
	if cfg.Player2.Kind != agent.MCTS {
		t.Errorf("default player2 kind = %v, want MCTS", cfg.Player2.Kind)
	}
	if cfg.Player2.Cfg.MCTS.TimeMs != 1000 {
		t.Errorf("default mcts-time-ms = %d, want 1000", cfg.Player2.Cfg.MCTS.TimeMs)
	}
	if cfg.NoBoard || cfg.NoResult {
		t.Error("no-board and no-result should default to false")
	}
}

func TestParseAgentTags(t *testing.T) {
	cfg, err := Parse([]string{"--player1=m", "--player2=r"})
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if cfg.Player1.Kind != agent.AlphaBeta {
		t.Errorf("player1 kind = %v, want AlphaBeta", cfg.Player1.Kind)
	}
	if cfg.Player2.Kind != agent.Random {
		t.Errorf("player2 kind = %v, want Random", cfg.Player2.Kind)
	}
}

func TestParseRejectsUnknownAgentTag(t *testing.T) {
	if _, err := Parse([]string{"--player1=zzz"}); err == nil {
		t.Error("Parse with an invalid --player1 tag should return an error")
	}
}

func TestParseRejectsAlphaBetaWithoutDepth(t *testing.T) {
	if _, err := Parse([]string{"--player1=m", "--player1-depth=0"}); err == nil {
		t.Error("Parse with --player1-depth=0 for an alpha-beta player should return an error")
	}
}

func TestParseRejectsMCTSWithoutBudget(t *testing.T) {
	_, err := Parse([]string{"--player2=c", "--mcts-time-ms=0", "--mcts-iterations=0"})
	if err == nil {
		t.Error("Parse with both mcts budgets zeroed should return an error")
	}
}

func TestParsePerPlayerMCTSOverride(t *testing.T) {
	cfg, err := Parse([]string{
		"--player1=c", "--player2=c",
		"--mcts-time-ms=500",
		"--player1-mcts-iterations=300",
	})
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if cfg.Player1.Cfg.MCTS.Iterations != 300 {
		t.Errorf("player1 mcts iterations = %d, want 300 (override)", cfg.Player1.Cfg.MCTS.Iterations)
	}
	if cfg.Player2.Cfg.MCTS.Iterations != 0 {
		t.Errorf("player2 mcts iterations = %d, want 0 (no override)", cfg.Player2.Cfg.MCTS.Iterations)
	}
	if cfg.Player1.Cfg.MCTS.TimeMs != 500 || cfg.Player2.Cfg.MCTS.TimeMs != 500 {
		t.Error("both players should inherit the shared --mcts-time-ms when not overridden")
	}
}

func TestParseNoBoardAndNoResultFlags(t *testing.T) {
	cfg, err := Parse([]string{"--no-board", "--no-result"})
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if !cfg.NoBoard || !cfg.NoResult {
		t.Error("--no-board and --no-result should both be honored")
	}
}

func TestParseRejectsUnknownFlag(t *testing.T) {
	if _, err := Parse([]string{"--not-a-real-flag"}); err == nil {
		t.Error("Parse with an unrecognized flag should return an error")
	}
}
