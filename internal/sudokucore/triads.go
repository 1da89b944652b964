package sudokucore

// A triad is the 3-cell intersection of a row (or column) with a box;
// there are 27 of each kind. This engine computes each triad's candidate
// set directly from the grid (RowTriadCells/ColTriadCells, tables.go) and
// runs the must/must-not propagation below, which generalizes the two
// classic locked-candidate techniques: a pointing pair/triple is the case
// where a resolved or heavily-constrained triad forces an elimination in
// its line, and a box/line reduction is the mirror case forcing an
// elimination in its box.

func triadCandidates(g *GridState, cells [3]int) uint16 {
	return g.Candidates[cells[0]] | g.Candidates[cells[1]] | g.Candidates[cells[2]]
}

// RunTriads executes one pass of triad resolution (Part A) and
// locked-candidate elimination (Part B) over both row and column triads.
// Returns true if any candidate was eliminated, in which case the driver
// re-enters at PropagationDriver step 1. A triad that newly resolves is
// counted in stats.TriadsResolved but does not by itself count as a change.
func RunTriads(g *GridState, stats *Stats) (bool, error) {
	changedRow, err := runTriadBand(g, RowTriadCells[:], rowTriadRowPeers[:], rowTriadBoxPeers[:], &g.TriadsUnlocked[0], stats)
	if err != nil {
		return false, err
	}
	changedCol, err := runTriadBand(g, ColTriadCells[:], colTriadColPeers[:], colTriadBoxPeers[:], &g.TriadsUnlocked[1], stats)
	if err != nil {
		return false, err
	}
	return changedRow || changedCol, nil
}

// runTriadBand runs Part A + Part B for all 27 triads of one kind (row or
// column). linePeers gives, per triad, the two other triads sharing its
// line (row-peers for row triads, col-peers for column triads); boxPeers
// gives the two other triads sharing its box.
func runTriadBand(g *GridState, cells [][3]int, linePeers, boxPeers [][2]int, unlocked *uint32, stats *Stats) (bool, error) {
	var cand [27]uint16
	for t := 0; t < 27; t++ {
		cand[t] = triadCandidates(g, cells[t])
	}

	// Part A: resolution. A triad whose candidate set has exactly 3
	// candidates is a naked triple specialized to a box/line intersection:
	// clear its unlocked bit.
	for t := 0; t < 27; t++ {
		if *unlocked&(1<<uint(t)) == 0 {
			continue
		}
		if popcount16(cand[t]) == 3 {
			*unlocked &^= 1 << uint(t)
			stats.addTriadResolved(1)
		}
	}

	// Part B: must / must-not propagation, box-peers first then line-peers.
	var tmust [27]uint16
	var tmustnt [27]uint16
	for t := 0; t < 27; t++ {
		tmustnt[t] = fullCandidates &^ cand[t]
	}

	for t := 0; t < 27; t++ {
		bp := boxPeers[t]
		lp := linePeers[t]

		// A digit must occur in t if it appears in neither box-peer
		// (vertical claim, in row-triad terms) ...
		for d := 1; d <= 9; d++ {
			db := bit(d)
			if cand[bp[0]]&db == 0 && cand[bp[1]]&db == 0 {
				tmust[t] |= db
			}
			// ... or if it appears in neither line-peer (horizontal claim).
			if cand[lp[0]]&db == 0 && cand[lp[1]]&db == 0 {
				tmust[t] |= db
			}
		}
		if popcount16(cand[t]) == 3 {
			tmust[t] |= cand[t]
		}
	}

	// Propagate: every triad's peers must exclude what it musts.
	for t := 0; t < 27; t++ {
		if tmust[t] == 0 {
			continue
		}
		for _, p := range boxPeers[t] {
			tmustnt[p] |= tmust[t]
		}
		for _, p := range linePeers[t] {
			tmustnt[p] |= tmust[t]
		}
	}

	changed := false
	for t := 0; t < 27; t++ {
		elim := tmustnt[t] & cand[t]
		if elim == 0 {
			continue
		}
		for _, c := range cells[t] {
			if !g.Unlocked.Bit(c) {
				continue
			}
			before := g.Candidates[c]
			after := before &^ elim
			if after == before {
				continue
			}
			if after == 0 {
				return changed, contradiction{"triad elimination emptied a cell"}
			}
			g.Candidates[c] = after
			g.Updated.Set(c)
			changed = true
			if d, ok := onlyBit(after); ok {
				if err := commit(g, c, d); err != nil {
					return changed, err
				}
			}
		}
	}

	return changed, nil
}

// tmustForTriad exposes a triad's must-set, used by the guesser to find a
// triad with exactly 4 candidates split 2 forced / 2 optional. It
// recomputes must/mustnt for a single band rather than caching them across
// calls — the guesser only runs when propagation has already reached a
// fixed point, so this happens at most once per guess.
func tmustForTriad(g *GridState, kind int, t int) (cand uint16, must uint16) {
	cells, linePeers, boxPeers := triadTablesFor(kind)
	cand = triadCandidates(g, cells[t])
	bp := boxPeers[t]
	lp := linePeers[t]
	for d := 1; d <= 9; d++ {
		db := bit(d)
		if triadCandidates(g, cells[bp[0]])&db == 0 && triadCandidates(g, cells[bp[1]])&db == 0 {
			must |= db
		}
		if triadCandidates(g, cells[lp[0]])&db == 0 && triadCandidates(g, cells[lp[1]])&db == 0 {
			must |= db
		}
	}
	if popcount16(cand) == 3 {
		must |= cand
	}
	return cand, must
}

func triadTablesFor(kind int) ([27][3]int, [][2]int, [][2]int) {
	if kind == 0 {
		return RowTriadCells, rowTriadRowPeers[:], rowTriadBoxPeers[:]
	}
	return ColTriadCells, colTriadColPeers[:], colTriadBoxPeers[:]
}
