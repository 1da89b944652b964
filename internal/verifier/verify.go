// Package verifier provides an external, independent check that a solved
// grid is actually a valid Sudoku solution: every row, column, and box
// contains each digit 1-9 exactly once. It exists because sudokucore's own
// internal consistency (GridState invariants, Stack discipline) proves the
// engine didn't corrupt itself, but not that its output is the textbook
// definition of a solved puzzle, so this check stays external to the core.
// The HTTP transport uses it under Rules Regular, where sudokucore itself
// does not verify its output.
package verifier

// Conflict identifies two cells holding the same digit in a unit that
// forbids the repeat.
type Conflict struct {
	Cell1, Cell2 int
	Digit        int
	Unit         string // "row", "column", or "box"
}

// Verify reports whether grid is a complete, valid Sudoku solution: every
// cell holds a digit '1'..'9' and no row, column, or box repeats one.
func Verify(grid [81]byte) bool {
	for _, c := range grid {
		if c < '1' || c > '9' {
			return false
		}
	}
	return len(FindConflicts(grid)) == 0
}

// FindConflicts returns every duplicate-digit conflict in grid, across
// rows, columns, and boxes. Empty cells ('0' or '.') are ignored, so this
// can also be used to validate a partially-filled grid.
func FindConflicts(grid [81]byte) []Conflict {
	var conflicts []Conflict

	checkUnit := func(cells [9]int, unit string) {
		var positions [10][]int // digit -> cell indices within this unit
		for _, c := range cells {
			v := grid[c]
			if v < '1' || v > '9' {
				continue
			}
			d := int(v - '0')
			positions[d] = append(positions[d], c)
		}
		for d := 1; d <= 9; d++ {
			cs := positions[d]
			for i := 0; i < len(cs); i++ {
				for j := i + 1; j < len(cs); j++ {
					conflicts = append(conflicts, Conflict{Cell1: cs[i], Cell2: cs[j], Digit: d, Unit: unit})
				}
			}
		}
	}

	for row := 0; row < 9; row++ {
		var cells [9]int
		for col := 0; col < 9; col++ {
			cells[col] = row*9 + col
		}
		checkUnit(cells, "row")
	}
	for col := 0; col < 9; col++ {
		var cells [9]int
		for row := 0; row < 9; row++ {
			cells[row] = row*9 + col
		}
		checkUnit(cells, "column")
	}
	for box := 0; box < 9; box++ {
		boxRow, boxCol := (box/3)*3, (box%3)*3
		var cells [9]int
		k := 0
		for r := boxRow; r < boxRow+3; r++ {
			for c := boxCol; c < boxCol+3; c++ {
				cells[k] = r*9 + c
				k++
			}
		}
		checkUnit(cells, "box")
	}

	return conflicts
}
