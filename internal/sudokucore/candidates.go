package sudokucore

// CandidateGrid operations. The grid itself is GridState.Candidates — 81
// parallel 9-bit masks, laid out so a vectorized build could swap these
// scalar loops for wide OR/popcount/compare intrinsics without changing
// any caller.

// contradiction is returned by propagators to signal that the current
// GridState is inconsistent and the driver must backtrack.
type contradiction struct{ reason string }

func (c contradiction) Error() string { return c.reason }

// commit fixes cell i to the single digit d: clears Unlocked, narrows the
// candidate mask to the singleton, and eliminates d from every unlocked
// peer, cascading any peer that becomes a singleton as a result. Returns a
// non-nil contradiction if any peer's candidates become empty; a unit that
// loses a digit is left for HiddenSingleScan to detect.
func commit(g *GridState, i, d int) error {
	dbit := bit(d)
	g.Unlocked.Clear(i)
	g.Candidates[i] = dbit
	g.Updated.OrWith(PeerMask[i])
	g.Updated.Set(i)

	// Cascade queue of peers that become singletons while eliminating.
	var queue [20]int
	qn := 0

	for _, p := range peerList[i] {
		if !g.Unlocked.Bit(p) {
			continue
		}
		before := g.Candidates[p]
		if before&dbit == 0 {
			continue
		}
		after := before &^ dbit
		g.Candidates[p] = after
		if after == 0 {
			return contradiction{"cell has no remaining candidates"}
		}
		if _, ok := onlyBit(after); ok {
			queue[qn] = p
			qn++
		}
	}

	for k := 0; k < qn; k++ {
		p := queue[k]
		if !g.Unlocked.Bit(p) {
			continue // already committed by an earlier cascade step
		}
		d2, ok := onlyBit(g.Candidates[p])
		if !ok {
			continue
		}
		if err := commit(g, p, d2); err != nil {
			return err
		}
	}
	return nil
}
