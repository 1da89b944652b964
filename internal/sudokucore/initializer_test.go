package sudokucore

import "testing"

func TestInitializeRejectsInvalidByte(t *testing.T) {
	var input [81]byte
	copy(input[:], emptyGrid)
	input[40] = 'x'

	var g GridState
	if Initialize(&input, &g) {
		t.Errorf("expected Initialize to reject a non-digit, non-dot byte")
	}
}

func TestInitializeAcceptsDotAsEmpty(t *testing.T) {
	var input [81]byte
	copy(input[:], emptyGrid)
	input[0] = '.'

	var g GridState
	if !Initialize(&input, &g) {
		t.Fatalf("Initialize should accept '.' as an empty cell")
	}
	if !g.Unlocked.Bit(0) {
		t.Errorf("cell 0 should be unlocked when given as '.'")
	}
}

func TestInitializeLocksClueCellsAndNarrowsPeers(t *testing.T) {
	var input [81]byte
	copy(input[:], minimal17ClueGrid)

	var g GridState
	if !Initialize(&input, &g) {
		t.Fatalf("Initialize rejected a well-formed grid")
	}

	for i := 0; i < 81; i++ {
		c := input[i]
		if c != '0' {
			if g.Unlocked.Bit(i) {
				t.Errorf("clue cell %d should not be unlocked", i)
			}
			want := bit(int(c - '0'))
			if g.Candidates[i] != want {
				t.Errorf("clue cell %d candidates = %09b, want singleton %09b", i, g.Candidates[i], want)
			}
		}
	}
}

func TestInitializeSetsTriadsFullyUnlocked(t *testing.T) {
	var input [81]byte
	copy(input[:], emptyGrid)

	var g GridState
	if !Initialize(&input, &g) {
		t.Fatalf("Initialize rejected the empty grid")
	}
	if g.TriadsUnlocked[0] != 0x7FFFFFF || g.TriadsUnlocked[1] != 0x7FFFFFF {
		t.Errorf("TriadsUnlocked = %#x/%#x, want all 27 bits set in both", g.TriadsUnlocked[0], g.TriadsUnlocked[1])
	}
}
