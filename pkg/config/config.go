// Package config loads the ambient configuration for cmd/solve and
// cmd/benchserver from environment variables. sudokucore itself takes no
// configuration — it is a pure function of its inputs — this package
// governs the surrounding layers only: worker count, stack-depth cap,
// uniqueness rules, and transport settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"sudoku-solver/internal/sudokucore"
	"sudoku-solver/pkg/constants"
)

// Rules is sudokucore.Rules; Load parses it from the SUDOKU_RULES string.
type Rules = sudokucore.Rules

// Config holds every environment-driven setting the ambient layers need.
type Config struct {
	StackDepth  int
	Workers     int
	Rules       Rules
	Port        string
	PuzzlesFile string
}

// Load reads configuration from environment variables, applying defaults
// and validating SUDOKU_STACK_DEPTH against sudokucore.MaxStackDepth.
func Load() (*Config, error) {
	stackDepth, err := getEnvInt("SUDOKU_STACK_DEPTH", sudokucore.MaxStackDepth)
	if err != nil {
		return nil, fmt.Errorf("SUDOKU_STACK_DEPTH: %w", err)
	}
	if stackDepth > sudokucore.MaxStackDepth {
		return nil, errors.New("SUDOKU_STACK_DEPTH exceeds the engine's compiled-in MaxStackDepth")
	}
	if stackDepth <= 0 {
		return nil, errors.New("SUDOKU_STACK_DEPTH must be positive")
	}

	workers, err := getEnvInt("SUDOKU_WORKERS", runtime.NumCPU())
	if err != nil {
		return nil, fmt.Errorf("SUDOKU_WORKERS: %w", err)
	}
	if workers <= 0 {
		return nil, errors.New("SUDOKU_WORKERS must be positive")
	}

	rules, err := parseRules(getEnv("SUDOKU_RULES", "regular"))
	if err != nil {
		return nil, err
	}

	return &Config{
		StackDepth:  stackDepth,
		Workers:     workers,
		Rules:       rules,
		Port:        getEnv("SUDOKU_PORT", constants.DefaultPort),
		PuzzlesFile: getEnv("SUDOKU_PUZZLES_FILE", constants.DefaultPuzzlesFile),
	}, nil
}

func parseRules(s string) (Rules, error) {
	switch s {
	case "regular":
		return sudokucore.Regular, nil
	case "findone":
		return sudokucore.FindOne, nil
	case "multiple":
		return sudokucore.Multiple, nil
	default:
		return 0, errors.New("SUDOKU_RULES must be one of regular, findone, multiple")
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return fallback, nil
	}
	return strconv.Atoi(val)
}
