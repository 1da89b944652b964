package sudokucore

import "sync/atomic"

// Stats holds the exported, atomic, monotone-increasing run counters. Only
// these counters are shared across workers — all per-puzzle state stays
// exclusive to a single worker's Stack, so a struct of atomics passed by
// reference is the only piece of shared mutable state in the solve path.
type Stats struct {
	Solved                    atomic.Int64
	Unsolved                  atomic.Int64
	NoGuess                   atomic.Int64
	Guesses                   atomic.Int64
	Backtracks                atomic.Int64
	PastNaked                 atomic.Int64
	TriadsResolved            atomic.Int64
	TriadUpdates              atomic.Int64
	DigitsEnteredAndRetracted atomic.Int64
	BugCount                  atomic.Int64
	NonUnique                 atomic.Int64
	Verified                  atomic.Int64
	NotVerified               atomic.Int64
}

func (s *Stats) addGuesses(n int64)       { s.Guesses.Add(n) }
func (s *Stats) addBacktracks(n int64)    { s.Backtracks.Add(n) }
func (s *Stats) addPastNaked(n int64)     { s.PastNaked.Add(n) }
func (s *Stats) addTriadResolved(n int64) { s.TriadsResolved.Add(n) }
func (s *Stats) addTriadUpdates(n int64)  { s.TriadUpdates.Add(n) }
func (s *Stats) addRetracted(n int64)     { s.DigitsEnteredAndRetracted.Add(n) }
func (s *Stats) addBug(n int64)           { s.BugCount.Add(n) }

// Snapshot is a point-in-time copy of Stats suitable for JSON encoding
// (atomic.Int64 itself is not safely copyable by value across goroutines
// while live, so callers that need to serialize counters — e.g. the
// benchserver /stats endpoint — should read through Snapshot rather than
// copying a Stats value directly).
type Snapshot struct {
	Solved, Unsolved, NoGuess, Guesses, Backtracks                int64
	PastNaked, TriadsResolved, TriadUpdates                       int64
	DigitsEnteredAndRetracted, BugCount, NonUnique                int64
	Verified, NotVerified                                         int64
}

func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		Solved:                    s.Solved.Load(),
		Unsolved:                  s.Unsolved.Load(),
		NoGuess:                   s.NoGuess.Load(),
		Guesses:                   s.Guesses.Load(),
		Backtracks:                s.Backtracks.Load(),
		PastNaked:                 s.PastNaked.Load(),
		TriadsResolved:            s.TriadsResolved.Load(),
		TriadUpdates:              s.TriadUpdates.Load(),
		DigitsEnteredAndRetracted: s.DigitsEnteredAndRetracted.Load(),
		BugCount:                  s.BugCount.Load(),
		NonUnique:                 s.NonUnique.Load(),
		Verified:                  s.Verified.Load(),
		NotVerified:               s.NotVerified.Load(),
	}
}
