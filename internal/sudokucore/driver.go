package sudokucore

// Solve is the top-level solve loop: repeatedly apply propagators in
// priority order (naked single > hidden single > triad elimination/
// resolution > BUG > guess) until the puzzle is solved or proven
// unsolvable, backtracking on contradiction via an explicit, preallocated
// guess stack rather than Go-level recursion.

// Rules selects how Solve treats uniqueness.
type Rules int

const (
	// Regular assumes the puzzle has a unique solution and stops at the
	// first one found; it also skips the empty-cell/unit-missing-digit
	// guards at stack depth 0 (see NakedSingleScan/HiddenSingleScan's
	// checkBack parameter).
	Regular Rules = iota
	// FindOne behaves like Regular but does not assume uniqueness, so the
	// back-check guards run at every depth.
	FindOne
	// Multiple continues searching after the first solution to certify
	// uniqueness.
	Multiple
)

// Status is the outcome of a Solve call.
type Status struct {
	Solved                bool
	Unique                bool
	Verified              bool
	UsedAssumedUniqueness bool
}

// TraceEvent is one step of the optional debug trace.
type TraceEvent struct {
	Kind  string // "guess", "backtrack", "bug", "solved-seeking-second", "solved"
	Cell  int
	Digit int
	Depth int
}

// TraceFunc is called for each notable driver step when non-nil. Solve
// checks it for nil once per loop iteration, not per cell, so a nil trace
// costs nothing beyond that single branch per iteration.
type TraceFunc func(TraceEvent)

// Solve runs the full constraint-propagation-with-backtracking search
// against input, writing the solved grid (or the untouched input, if no
// solution exists) to output.
func Solve(input *[81]byte, output *[81]byte, stack *Stack, rules Rules, line uint32, stats *Stats, trace TraceFunc) Status {
	stack.Reset()
	g := stack.Top()

	if !Initialize(input, g) {
		*output = *input
		stats.Unsolved.Add(1)
		return Status{}
	}

	uniqueCheckMode := false
	var firstSolution [81]byte
	haveFirst := false
	guessedAny := false

	// giveUp is called whenever the stack is exhausted (backtrack fails at
	// depth 0). If a first solution was already found (we are in
	// uniqueCheckMode searching for a second one), that first solution
	// stands and is certified unique; otherwise the puzzle has no solution.
	giveUp := func() Status {
		stack.Reset()
		if haveFirst {
			*output = firstSolution
			stats.Solved.Add(1)
			stats.Verified.Add(1)
			return Status{Solved: true, Unique: true, Verified: true}
		}
		*output = *input
		stats.Unsolved.Add(1)
		return Status{}
	}

	for {
		g = stack.Top()
		checkBack := g.StackPointer > 0 || rules != Regular || uniqueCheckMode

		if g.Unlocked.Empty() {
			if rules == Multiple && !uniqueCheckMode {
				if trace != nil {
					trace(TraceEvent{Kind: "solved-seeking-second", Depth: g.StackPointer})
				}
				firstSolution = renderOutput(g)
				haveFirst = true
				uniqueCheckMode = true
				if !backtrack(stack, stats, trace) {
					return giveUp()
				}
				continue
			}

			*output = renderOutput(g)
			stats.Solved.Add(1)
			if !guessedAny {
				stats.NoGuess.Add(1)
			}

			unique := !uniqueCheckMode
			if uniqueCheckMode {
				stats.NonUnique.Add(1)
			}

			verified := false
			if rules != Regular {
				verified = verifySolution(g)
				if verified {
					stats.Verified.Add(1)
				} else {
					stats.NotVerified.Add(1)
				}
			}

			if trace != nil {
				trace(TraceEvent{Kind: "solved", Depth: g.StackPointer})
			}

			// The stack is reset to depth 0 before every return, whether or
			// not this solve needed any guesses.
			stack.Reset()
			return Status{
				Solved:                true,
				Unique:                unique,
				Verified:              verified,
				UsedAssumedUniqueness: rules == Regular,
			}
		}

		if changed, err := NakedSingleScan(g, checkBack); err != nil {
			if !backtrack(stack, stats, trace) {
				return giveUp()
			}
			continue
		} else if changed {
			stats.addPastNaked(1)
			continue
		}

		if changed, err := HiddenSingleScan(g, checkBack); err != nil {
			if !backtrack(stack, stats, trace) {
				return giveUp()
			}
			continue
		} else if changed {
			continue
		}

		if changed, err := RunTriads(g, stats); err != nil {
			if !backtrack(stack, stats, trace) {
				return giveUp()
			}
			continue
		} else if changed {
			stats.addTriadUpdates(1)
			continue
		}

		if g.Unlocked.Popcount() <= 23 {
			outcome, err := RunBug(g)
			if err != nil {
				if !backtrack(stack, stats, trace) {
					return giveUp()
				}
				continue
			}
			switch outcome {
			case bugCommitted:
				stats.addBug(1)
				if trace != nil {
					trace(TraceEvent{Kind: "bug", Depth: g.StackPointer})
				}
				continue
			case bugNonUnique:
				stats.addBug(1)
				if rules == Multiple {
					g.MultipleSolutionsExist = true
				}
				// An anomaly, but not fatal: fall through to the guess step
				// below under every Rules mode, so the search still finds a
				// legal branch to continue from.
			}
		}

		if err := Guess(stack, stats); err != nil {
			if !backtrack(stack, stats, trace) {
				return giveUp()
			}
			continue
		}
		guessedAny = true
		if trace != nil {
			trace(TraceEvent{Kind: "guess", Depth: stack.Depth()})
		}
	}
}

// backtrack pops the stack, accounting for the commits it discards in the
// DigitsEnteredAndRetracted counter. Returns false if the stack is already
// at depth 0 (the puzzle is unsolvable).
func backtrack(stack *Stack, stats *Stats, trace TraceFunc) bool {
	if stack.sp == 0 {
		return false
	}
	child := &stack.frames[stack.sp]
	parent := &stack.frames[stack.sp-1]
	retracted := 0
	for i := 0; i < 81; i++ {
		if !child.Unlocked.Bit(i) && parent.Unlocked.Bit(i) {
			retracted++
		}
	}
	stats.addRetracted(int64(retracted))
	stats.addBacktracks(1)
	stack.sp--
	if trace != nil {
		trace(TraceEvent{Kind: "backtrack", Depth: stack.sp})
	}
	return true
}

// renderOutput converts a fully-committed GridState into ASCII digit bytes.
func renderOutput(g *GridState) [81]byte {
	var out [81]byte
	for i := 0; i < 81; i++ {
		d, _ := onlyBit(g.Candidates[i])
		out[i] = byte('0' + d)
	}
	return out
}

// verifySolution checks that every row, column and box contains each digit
// 1-9 exactly once. Used for the Status.Verified field under non-Regular
// rules; a fuller, independent check lives in the separate verifier package.
func verifySolution(g *GridState) bool {
	for u := 0; u < 9; u++ {
		var rowSeen, colSeen, boxSeen uint16
		for k := 0; k < 9; k++ {
			rc := RowIndices[u][k]
			cc := ColIndices[u][k]
			bc := BoxIndices[u][k]
			rd, ok := onlyBit(g.Candidates[rc])
			if !ok {
				return false
			}
			rowSeen |= bit(rd)
			cd, ok := onlyBit(g.Candidates[cc])
			if !ok {
				return false
			}
			colSeen |= bit(cd)
			bd, ok := onlyBit(g.Candidates[bc])
			if !ok {
				return false
			}
			boxSeen |= bit(bd)
		}
		if rowSeen != fullCandidates || colSeen != fullCandidates || boxSeen != fullCandidates {
			return false
		}
	}
	return true
}
