package sudokucore

// RunBug recognizes the end-game bi-value universal grave pattern and its
// +1 pivot: a bare BUG proves the puzzle has more than one solution; a
// BUG+1 pivot is a single cell whose extra third candidate is forced,
// letting the search commit it outright instead of guessing.

// bugOutcome reports what BugDetector did.
type bugOutcome int

const (
	bugNone bugOutcome = iota
	bugCommitted
	bugNonUnique
)

// RunBug runs the BUG check. It is only worth calling when the unlocked
// cell count is small; the driver is responsible for that gate so this
// function stays a pure pattern check.
func RunBug(g *GridState) (bugOutcome, error) {
	n := g.Unlocked.Popcount()
	if n == 0 {
		return bugNone, nil
	}

	bivalueCount := 0
	var oddCell = -1
	for i := 0; i < 81; i++ {
		if !g.Unlocked.Bit(i) {
			continue
		}
		switch popcount16(g.Candidates[i]) {
		case 2:
			bivalueCount++
		default:
			if oddCell != -1 {
				// More than one non-bivalue unlocked cell: not a BUG/BUG+1
				// pattern at all.
				return bugNone, nil
			}
			oddCell = i
		}
	}

	if oddCell == -1 && bivalueCount == n {
		// Every unlocked cell is bivalue: a bare BUG. At least two solutions
		// exist by construction (swap every bivalue pair's two digits along
		// a consistent orientation). The caller decides how to treat this
		// under the active Rules.
		return bugNonUnique, nil
	}

	if oddCell == -1 || bivalueCount != n-1 {
		return bugNone, nil
	}

	cand := g.Candidates[oddCell]
	if popcount16(cand) != 3 {
		return bugNone, nil
	}

	row, col, box := RowOf[oddCell], ColOf[oddCell], BoxOf[oddCell]
	for d := 1; d <= 9; d++ {
		db := bit(d)
		if cand&db == 0 {
			continue
		}
		rowCount, colCount, boxCount := 0, 0, 0
		for _, c := range peerList[oddCell] {
			if g.Candidates[c]&db == 0 {
				continue
			}
			if RowOf[c] == row {
				rowCount++
			}
			if ColOf[c] == col {
				colCount++
			}
			if BoxOf[c] == box {
				boxCount++
			}
		}
		// Including oddCell itself, a digit that forms a valid BUG+1 pivot
		// appears 3 times total in its row, its column or its box; the
		// first candidate digit meeting any of the three is committed.
		if rowCount+1 == 3 || colCount+1 == 3 || boxCount+1 == 3 {
			if err := commit(g, oddCell, d); err != nil {
				return bugNone, err
			}
			return bugCommitted, nil
		}
	}
	return bugNone, nil
}
