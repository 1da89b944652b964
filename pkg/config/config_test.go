package config

import (
	"testing"

	"sudoku-solver/internal/sudokucore"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"SUDOKU_STACK_DEPTH", "SUDOKU_WORKERS", "SUDOKU_RULES", "SUDOKU_PORT", "SUDOKU_PUZZLES_FILE"} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StackDepth != sudokucore.MaxStackDepth {
		t.Errorf("StackDepth = %d, want %d", cfg.StackDepth, sudokucore.MaxStackDepth)
	}
	if cfg.Rules != sudokucore.Regular {
		t.Errorf("Rules = %v, want Regular", cfg.Rules)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
}

func TestLoadRejectsStackDepthAboveCap(t *testing.T) {
	clearEnv(t)
	t.Setenv("SUDOKU_STACK_DEPTH", "35")
	if _, err := Load(); err == nil {
		t.Fatal("expected an error for SUDOKU_STACK_DEPTH above MaxStackDepth")
	}
}

func TestLoadParsesRules(t *testing.T) {
	clearEnv(t)
	t.Setenv("SUDOKU_RULES", "multiple")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Rules != sudokucore.Multiple {
		t.Errorf("Rules = %v, want Multiple", cfg.Rules)
	}
}

func TestLoadRejectsUnknownRules(t *testing.T) {
	clearEnv(t)
	t.Setenv("SUDOKU_RULES", "bogus")
	if _, err := Load(); err == nil {
		t.Fatal("expected an error for an unknown SUDOKU_RULES value")
	}
}
