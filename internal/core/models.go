// Package core holds the shared view-model types the HTTP transport layer
// serializes, kept separate from sudokucore's own types so the wire format
// can evolve independently of the engine's internal representation.
package core

// CellRef identifies one of the 81 cells by row/column, for API responses
// that need to point at a specific cell.
type CellRef struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// ConflictView mirrors verifier.Conflict for JSON responses, replacing its
// flat cell indices with row/column pairs.
type ConflictView struct {
	Cell1 CellRef `json:"cell1"`
	Cell2 CellRef `json:"cell2"`
	Digit int     `json:"digit"`
	Unit  string  `json:"unit"`
}

// SolveRequest is the body of POST /api/solve.
type SolveRequest struct {
	Grid  string `json:"grid"`            // 81 ASCII bytes: '1'-'9' or '0'/'.'
	Rules string `json:"rules,omitempty"` // "regular" (default), "findone", "multiple"
}

// SolveResponse is the body returned by POST /api/solve.
type SolveResponse struct {
	Output                string         `json:"output"`
	Solved                bool           `json:"solved"`
	Unique                bool           `json:"unique"`
	Verified              bool           `json:"verified"`
	UsedAssumedUniqueness bool           `json:"used_assumed_uniqueness"`
	Conflicts             []ConflictView `json:"conflicts,omitempty"`
	Error                 string         `json:"error,omitempty"`
}

// StatsResponse is the body returned by GET /api/stats: a point-in-time
// snapshot of the shared sudokucore.Stats counters.
type StatsResponse struct {
	Solved                    int64 `json:"solved"`
	Unsolved                  int64 `json:"unsolved"`
	NoGuess                   int64 `json:"no_guess"`
	Guesses                   int64 `json:"guesses"`
	Backtracks                int64 `json:"backtracks"`
	PastNaked                 int64 `json:"past_naked"`
	TriadsResolved            int64 `json:"triads_resolved"`
	TriadUpdates              int64 `json:"triad_updates"`
	DigitsEnteredAndRetracted int64 `json:"digits_entered_and_retracted"`
	BugCount                  int64 `json:"bug_count"`
	NonUnique                 int64 `json:"non_unique"`
	Verified                  int64 `json:"verified"`
	NotVerified               int64 `json:"not_verified"`
}
