package sudokucore

// MaxStackDepth is the hard cap on guess/backtrack nesting. Empirically a
// 17-clue puzzle corpus never exceeds 28 levels of nesting; 34 leaves
// headroom. Exceeding it is a fatal, non-recoverable condition.
const MaxStackDepth = 34

// GridState is one stack frame: the full candidate grid plus the small
// amount of auxiliary bookkeeping the propagators need. It is POD — no
// owned heap pointers, no slices — so pushing a frame is a plain value copy
// and frames are never individually allocated or freed.
type GridState struct {
	Candidates [81]uint16

	// Unlocked marks cells with more than one candidate (not yet committed).
	Unlocked BitField128

	// Updated accumulates cells whose candidate mask has changed. commit and
	// the triad/guess eliminations set bits in it; no propagator reads it and
	// nothing clears it during a solve, so every pass rescans the whole grid.
	Updated BitField128

	// TriadsUnlocked[0] is the 27-bit bitmap of row triads whose candidate
	// set still has more than 3 candidates; TriadsUnlocked[1] is the same
	// for column triads.
	TriadsUnlocked [2]uint32

	// StackPointer is this frame's depth in the search stack.
	StackPointer int

	// MultipleSolutionsExist is a sticky flag set when RunBug reports a bare
	// BUG while running under Rules Multiple.
	MultipleSolutionsExist bool
}

// Stack is the fixed-size, preallocated array of search frames a single
// worker owns for its entire lifetime. No heap allocation happens when
// pushing or popping: pushing copies the parent byte-wise into the next
// slot, popping is just decrementing SP.
type Stack struct {
	frames [MaxStackDepth]GridState
	sp     int
}

// Reset rewinds the stack to depth 0 without touching frame contents; the
// caller (Initializer) is responsible for populating frame 0 fresh.
func (s *Stack) Reset() {
	s.sp = 0
}

// Top returns the current frame.
func (s *Stack) Top() *GridState {
	return &s.frames[s.sp]
}

// Depth returns the current stack pointer.
func (s *Stack) Depth() int {
	return s.sp
}

// Push copies the current frame into the next slot and returns it. Panics
// if the stack is already at MaxStackDepth - 1: a fatal, programmer/tuning
// error, never triggered by a valid 9x9 puzzle within the documented
// empirical bound.
func (s *Stack) Push() *GridState {
	if s.sp+1 >= MaxStackDepth {
		panic("sudokucore: guess stack exceeded MaxStackDepth")
	}
	parent := &s.frames[s.sp]
	s.sp++
	child := &s.frames[s.sp]
	*child = *parent
	child.StackPointer = s.sp
	return child
}

// Pop discards the current frame and returns to the parent. It is a no-op
// at depth 0 (the caller must check Depth() > 0 before concluding
// unsolvability).
func (s *Stack) Pop() *GridState {
	if s.sp > 0 {
		s.sp--
	}
	return &s.frames[s.sp]
}
