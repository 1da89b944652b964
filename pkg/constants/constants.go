// Package constants holds grid-size and tuning constants shared across the
// ambient layers.
package constants

// Grid constants.
const (
	GridSize   = 9
	BoxSize    = 3
	TotalCells = 81
	MinGivens  = 17
)

// Triad constants.
const (
	TriadsPerBand  = 27
	TriadCellCount = 3
)

// Default ambient settings, mirrored by pkg/config when the corresponding
// environment variable is unset.
const (
	DefaultStackDepth  = 34
	DefaultPort        = "8080"
	DefaultPuzzlesFile = "/data/puzzles.txt"
)

// APIVersion identifies the benchserver's HTTP surface.
const APIVersion = "0.1.0"
