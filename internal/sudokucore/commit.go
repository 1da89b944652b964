package sudokucore

// NakedSingleScan walks the grid for cells with exactly one remaining
// candidate and commits them. Returns (anyCommitted, err); err is non-nil
// on contradiction (an unlocked cell with zero candidates). Any peer that
// becomes a singleton while committing is committed within the same pass
// via the commit() cascade, so a single call to NakedSingleScan drains all
// currently-available naked singles.
//
// checkBack gates the empty-cell guard: at stack depth 0 under Rules
// Regular, the puzzle is trusted to have a valid unique solution, so an
// empty-candidate cell can only appear after a contradiction that a deeper
// guess already introduced, never from the initial clues alone. Skipping
// the guard there changes nothing observable on a valid input; it only
// avoids the branch.
func NakedSingleScan(g *GridState, checkBack bool) (bool, error) {
	any := false
	for i := 0; i < 81; i++ {
		if !g.Unlocked.Bit(i) {
			continue
		}
		c := g.Candidates[i]
		if c == 0 {
			if !checkBack {
				continue
			}
			return any, contradiction{"cell has no candidates"}
		}
		d, ok := onlyBit(c)
		if !ok {
			continue
		}
		if err := commit(g, i, d); err != nil {
			return any, err
		}
		any = true
	}
	return any, nil
}
