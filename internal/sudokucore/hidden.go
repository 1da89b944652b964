package sudokucore

// HiddenSingleScan looks for a digit that has exactly one legal position
// left within some unit. Columns are scanned first, then rows, then boxes;
// the order is fixed so that run statistics stay deterministic across
// calls on the same grid. Unlike a hint generator that stops at the first
// move, this commits every hidden single it finds, cascading any naked
// singles the commits create, and surfaces a contradiction if a unit is
// missing a digit entirely or two digits are each a hidden single in the
// same cell.
func HiddenSingleScan(g *GridState, checkBack bool) (bool, error) {
	any := false

	for col := 0; col < 9; col++ {
		changed, err := scanUnitHiddenSingles(g, ColIndices[col], checkBack)
		if err != nil {
			return any, err
		}
		any = any || changed
	}
	for row := 0; row < 9; row++ {
		changed, err := scanUnitHiddenSingles(g, RowIndices[row], checkBack)
		if err != nil {
			return any, err
		}
		any = any || changed
	}
	for box := 0; box < 9; box++ {
		changed, err := scanUnitHiddenSingles(g, BoxIndices[box], checkBack)
		if err != nil {
			return any, err
		}
		any = any || changed
	}

	return any, nil
}

// RowIndices, ColIndices, BoxIndices give the 9 cell indices of unit k.
var (
	RowIndices [9][9]int
	ColIndices [9][9]int
	BoxIndices [9][9]int
)

func init() {
	for i := 0; i < 81; i++ {
		// Computed directly rather than read from RowOf/ColOf/BoxOf: this
		// init runs before tables.go's, which fills those tables.
		r, c := i/9, i%9
		b := (r/3)*3 + c/3
		RowIndices[r][c] = i
		ColIndices[c][r] = i
		// within a box, slot = local row*3+local col
		localRow, localCol := (i/9)%3, (i%9)%3
		BoxIndices[b][localRow*3+localCol] = i
	}
}

// scanUnitHiddenSingles finds, commits, and validates hidden singles within
// one 9-cell unit.
func scanUnitHiddenSingles(g *GridState, cells [9]int, checkBack bool) (bool, error) {
	var present uint16
	for _, c := range cells {
		present |= g.Candidates[c]
	}
	if present != fullCandidates && checkBack {
		return false, contradiction{"unit is missing a digit"}
	}

	var assignedDigit [9]int // per-slot hidden-single digit found so far, 0 = none

	for d := 1; d <= 9; d++ {
		dbit := bit(d)
		count := 0
		pos := -1
		for slot, c := range cells {
			if !g.Unlocked.Bit(c) {
				continue
			}
			if g.Candidates[c]&dbit != 0 {
				count++
				pos = slot
			}
		}
		if count != 1 {
			continue
		}
		if assignedDigit[pos] != 0 && assignedDigit[pos] != d {
			return false, contradiction{"cell has two hidden singles in the same unit"}
		}
		assignedDigit[pos] = d
	}

	any := false
	for slot, d := range assignedDigit {
		if d == 0 {
			continue
		}
		c := cells[slot]
		if !g.Unlocked.Bit(c) {
			continue
		}
		if err := commit(g, c, d); err != nil {
			return any, err
		}
		any = true
	}
	return any, nil
}
