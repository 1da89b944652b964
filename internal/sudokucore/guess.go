package sudokucore

// Guesser chooses a branch point and pushes a new GridState. The preferred
// strategy picks a triad with 4 candidates split two forced / two optional;
// the fallback picks a bivalue cell, or (rarely) the unlocked cell with the
// fewest candidates. Both branches stay legal: one of them necessarily
// holds the true solution.

// eliminateFromCells clears elimBit from every unlocked cell in cells,
// cascading any resulting singleton through commit. Returns a
// contradiction if a cell's candidates become empty.
func eliminateFromCells(g *GridState, cells []int, elimBit uint16) error {
	for _, c := range cells {
		if !g.Unlocked.Bit(c) {
			continue
		}
		before := g.Candidates[c]
		if before&elimBit == 0 {
			continue
		}
		after := before &^ elimBit
		g.Candidates[c] = after
		g.Updated.Set(c)
		if after == 0 {
			return contradiction{"guess elimination emptied a cell"}
		}
		if d, ok := onlyBit(after); ok {
			if err := commit(g, c, d); err != nil {
				return err
			}
		}
	}
	return nil
}

// selectTriadGuess looks for a triad with exactly 4 candidates, 2 forced
// (in its must-set) and 2 optional, with at least 2 unlocked cells. Returns
// ok=false if none qualifies.
func selectTriadGuess(g *GridState) (kind, t int, optional [2]uint16, ok bool) {
	for k := 0; k < 2; k++ {
		unlocked := g.TriadsUnlocked[k]
		cellsTable, _, _ := triadTablesFor(k)
		for unlocked != 0 {
			ti := trailingZeros32(unlocked)
			unlocked &^= 1 << uint(ti)

			cand, must := tmustForTriad(g, k, ti)
			if popcount16(cand) != 4 {
				continue
			}
			opt := cand &^ must
			if popcount16(must) != 2 || popcount16(opt) != 2 {
				continue
			}
			unlockedCells := 0
			for _, c := range cellsTable[ti] {
				if g.Unlocked.Bit(c) {
					unlockedCells++
				}
			}
			if unlockedCells < 2 {
				continue
			}
			var opts [2]uint16
			n := 0
			for d := 1; d <= 9; d++ {
				db := bit(d)
				if opt&db != 0 {
					opts[n] = db
					n++
				}
			}
			return k, ti, opts, true
		}
	}
	return 0, 0, [2]uint16{}, false
}

// selectBivalueGuess returns the first unlocked bivalue cell, or if none
// exists, the unlocked cell with the fewest candidates (minimum 2, since a
// singleton would already have been committed as a naked single).
func selectBivalueGuess(g *GridState) (cell int, lowBit, highBit uint16, ok bool) {
	best := -1
	bestCount := 10
	for i := 0; i < 81; i++ {
		if !g.Unlocked.Bit(i) {
			continue
		}
		c := popcount16(g.Candidates[i])
		if c == 2 {
			best = i
			bestCount = 2
			break
		}
		if c < bestCount {
			best = i
			bestCount = c
		}
	}
	if best == -1 {
		return 0, 0, 0, false
	}
	cand := g.Candidates[best]
	var lo, hi uint16
	for d := 1; d <= 9; d++ {
		db := bit(d)
		if cand&db == 0 {
			continue
		}
		if lo == 0 {
			lo = db
		}
		hi = db
	}
	return best, lo, hi, true
}

// Guess performs one guess/branch step: it pushes stack[sp+1] and eliminates
// a candidate from each of the two resulting branches so both remain legal.
// Returns an error if the elimination it applies to the new child
// immediately contradicts (the caller backtracks in that case; the parent
// branch, having received the other elimination, is left ready to resume).
func Guess(stack *Stack, stats *Stats) error {
	parent := stack.Top()

	for i := 0; i < 81; i++ {
		if parent.Unlocked.Bit(i) && parent.Candidates[i] == 0 {
			// An unlocked cell with no candidates is a contradiction, not a
			// guess target: selectBivalueGuess would otherwise pick it (its
			// popcount of 0 beats every real candidate count) and eliminate
			// bit 0 from it on both branches, a silent no-op that pushes an
			// unchanged child and loops forever.
			return contradiction{"cell has no remaining candidates"}
		}
	}

	if kind, t, optional, ok := selectTriadGuess(parent); ok {
		cellsTable, _, _ := triadTablesFor(kind)
		cells := cellsTable[t][:]

		child := stack.Push()
		stats.addGuesses(1)
		childErr := eliminateFromCells(child, cells, optional[0])
		if err := eliminateFromCells(parent, cells, optional[1]); err != nil {
			return err
		}
		return childErr
	}

	cell, lo, hi, ok := selectBivalueGuess(parent)
	if !ok {
		return contradiction{"no unlocked cell available to guess"}
	}

	child := stack.Push()
	stats.addGuesses(1)
	childErr := eliminateFromCells(child, []int{cell}, lo)
	if err := eliminateFromCells(parent, []int{cell}, hi); err != nil {
		return err
	}
	return childErr
}

func trailingZeros32(x uint32) int {
	n := 0
	for x&1 == 0 {
		x >>= 1
		n++
	}
	return n
}
