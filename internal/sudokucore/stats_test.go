package sudokucore

import "testing"

func TestStatsSnapshotMirrorsCounters(t *testing.T) {
	var s Stats
	s.Solved.Add(3)
	s.addGuesses(2)
	s.addBacktracks(1)
	s.addBug(4)

	snap := s.Snapshot()
	if snap.Solved != 3 {
		t.Errorf("Snapshot.Solved = %d, want 3", snap.Solved)
	}
	if snap.Guesses != 2 {
		t.Errorf("Snapshot.Guesses = %d, want 2", snap.Guesses)
	}
	if snap.Backtracks != 1 {
		t.Errorf("Snapshot.Backtracks = %d, want 1", snap.Backtracks)
	}
	if snap.BugCount != 4 {
		t.Errorf("Snapshot.BugCount = %d, want 4", snap.BugCount)
	}
}

func TestStatsSnapshotIsAPointInTimeCopy(t *testing.T) {
	var s Stats
	snap := s.Snapshot()
	s.Solved.Add(1)

	if snap.Solved != 0 {
		t.Errorf("earlier snapshot should not observe later updates, got %d", snap.Solved)
	}
}
