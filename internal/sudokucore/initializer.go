package sudokucore

// Initializer converts an input clue grid into the first GridState of a
// solve. Eliminations are batched per digit rather than done peer-by-peer
// per clue cell: for puzzles with >=17 clues, grouping every clue sharing a
// digit into one combined mask and sweeping it across the grid once beats
// walking each clue's peer list individually.

// ErrBadInput describes an input byte outside '1'..'9', '0', or '.'.
// Initialize does not return it: it reports such input by returning false.
type ErrBadInput struct{ Pos int }

func (e ErrBadInput) Error() string {
	return "sudokucore: invalid input byte at position"
}

// isDigitByte reports whether c is an ASCII clue digit '1'..'9'.
func isDigitByte(c byte) bool { return c >= '1' && c <= '9' }

// isEmptyByte reports whether c denotes an empty cell.
func isEmptyByte(c byte) bool { return c == '0' || c == '.' }

// Initialize builds GridState 0 from an 81-byte ASCII grid (clue digits
// '1'..'9', empty cells '0' or '.'). Returns false if any byte is out of
// that alphabet — format validation is otherwise caller (solverio)
// territory, but the core still guards its own invariant rather than
// producing an undefined GridState.
func Initialize(input *[81]byte, g *GridState) bool {
	g.Candidates = [81]uint16{}
	g.Unlocked = BitField128{}
	g.Updated = FullBoard
	g.TriadsUnlocked[0] = 0x7FFFFFF // 27 bits
	g.TriadsUnlocked[1] = 0x7FFFFFF
	g.StackPointer = 0
	g.MultipleSolutionsExist = false

	var digitMask [9]BitField128 // peers(i) U {i} for every clue cell with digit d
	var clueDigit [81]int        // 0 = no clue

	for i := 0; i < 81; i++ {
		c := input[i]
		switch {
		case isDigitByte(c):
			d := int(c - '0')
			g.Candidates[i] = bit(d)
			clueDigit[i] = d
		case isEmptyByte(c):
			g.Candidates[i] = fullCandidates
			g.Unlocked.Set(i)
		default:
			return false
		}
	}

	for i := 0; i < 81; i++ {
		if d := clueDigit[i]; d != 0 {
			digitMask[d-1].OrWith(PeerMask[i])
			digitMask[d-1].Set(i)
		}
	}

	// Apply the staged per-digit batch: for every unlocked cell touched by
	// digit d's mask, clear bit d. This is equivalent to, but cheaper than,
	// eliminating peer-by-peer from each individual clue cell.
	for d := 1; d <= 9; d++ {
		m := digitMask[d-1]
		dbit := bit(d)
		for i := 0; i < 81; i++ {
			if !g.Unlocked.Bit(i) {
				continue
			}
			if !m.Bit(i) {
				continue
			}
			g.Candidates[i] &^= dbit
		}
	}

	// A clue set whose peers collectively carry all 9 digits onto a single
	// non-clue cell leaves that cell with zero candidates. That cell is
	// never touched by commit()'s cascade (it was never a singleton to
	// commit from), so nothing else ever catches this: report it here.
	for i := 0; i < 81; i++ {
		if g.Unlocked.Bit(i) && g.Candidates[i] == 0 {
			return false
		}
	}

	return true
}
