package solverio

import (
	"bytes"
	"strings"
	"testing"
)

var validLine = strings.Repeat("1", 81)

func TestScanPuzzlesSkipsLeadingComments(t *testing.T) {
	input := "# comment line\n// another one\n" + validLine + "\n"
	puzzles, err := ScanPuzzles(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ScanPuzzles: %v", err)
	}
	if len(puzzles) != 1 {
		t.Fatalf("got %d puzzles, want 1", len(puzzles))
	}
	if puzzles[0].Grid != strToGrid(validLine) {
		t.Fatalf("grid mismatch")
	}
}

func TestScanPuzzlesRejectsCRLF(t *testing.T) {
	input := validLine + "\r\n"
	_, err := ScanPuzzles(strings.NewReader(input))
	if err == nil {
		t.Fatal("expected CRLF rejection, got nil error")
	}
}

func TestScanPuzzlesRejectsBadLineAfterGrid(t *testing.T) {
	input := validLine + "\n" + "short\n"
	_, err := ScanPuzzles(strings.NewReader(input))
	if err == nil {
		t.Fatal("expected error for malformed line after a valid grid line")
	}
}

func TestScanPuzzlesAcceptsDotAndZeroEmpty(t *testing.T) {
	dotLine := strings.Repeat(".", 40) + strings.Repeat("0", 41)
	puzzles, err := ScanPuzzles(strings.NewReader(dotLine + "\n"))
	if err != nil {
		t.Fatalf("ScanPuzzles: %v", err)
	}
	if len(puzzles) != 1 {
		t.Fatalf("got %d puzzles, want 1", len(puzzles))
	}
}

func TestWriteSolutionsRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	pairs := []SolutionPair{
		{Input: strToGrid(validLine), Solution: strToGrid(validLine)},
	}
	if err := WriteSolutions(&buf, pairs); err != nil {
		t.Fatalf("WriteSolutions: %v", err)
	}
	line := buf.String()
	if len(line) != SolutionLineLen {
		t.Fatalf("line length = %d, want %d", len(line), SolutionLineLen)
	}
	if line[81] != ',' {
		t.Fatalf("expected comma separator at offset 81, got %q", line[81])
	}
	if line[len(line)-1] != '\n' {
		t.Fatalf("expected trailing newline")
	}
}

func strToGrid(s string) [81]byte {
	var g [81]byte
	copy(g[:], s)
	return g
}
