package sudokucore

import "testing"

func TestStackPushCopiesParentByValue(t *testing.T) {
	var stack Stack
	stack.Reset()
	parent := stack.Top()
	parent.Candidates[0] = bit(3)

	child := stack.Push()
	if stack.Depth() != 1 {
		t.Fatalf("Depth() = %d, want 1 after one Push", stack.Depth())
	}
	if child.Candidates[0] != bit(3) {
		t.Errorf("child frame did not inherit parent's candidates")
	}
	if child.StackPointer != 1 {
		t.Errorf("child.StackPointer = %d, want 1", child.StackPointer)
	}

	// Mutating the child must not affect the parent frame still on the
	// stack: Push must be a byte-wise copy, not a shared pointer.
	child.Candidates[0] = bit(7)
	if stack.frames[0].Candidates[0] != bit(3) {
		t.Errorf("mutating the child frame leaked back into the parent frame")
	}
}

func TestStackPopReturnsToParent(t *testing.T) {
	var stack Stack
	stack.Reset()
	stack.Push()
	stack.Push()
	if stack.Depth() != 2 {
		t.Fatalf("Depth() = %d, want 2", stack.Depth())
	}

	stack.Pop()
	if stack.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1 after one Pop", stack.Depth())
	}
}

func TestStackPopAtDepthZeroIsNoOp(t *testing.T) {
	var stack Stack
	stack.Reset()
	stack.Pop()
	if stack.Depth() != 0 {
		t.Errorf("Depth() = %d, want 0 (Pop at depth 0 must be a no-op)", stack.Depth())
	}
}

func TestStackPushPanicsAtMaxDepth(t *testing.T) {
	var stack Stack
	stack.Reset()
	defer func() {
		if recover() == nil {
			t.Errorf("expected Push to panic once MaxStackDepth is exceeded")
		}
	}()
	for i := 0; i < MaxStackDepth; i++ {
		stack.Push()
	}
}

func TestBacktrackFailsAtDepthZero(t *testing.T) {
	var stack Stack
	var stats Stats
	stack.Reset()
	if backtrack(&stack, &stats, nil) {
		t.Errorf("backtrack at depth 0 should return false")
	}
}

func TestBacktrackPopsAndCountsRetractions(t *testing.T) {
	var stack Stack
	var stats Stats
	stack.Reset()
	parent := stack.Top()
	parent.Unlocked.Set(5)

	child := stack.Push()
	child.Unlocked.Clear(5) // simulate committing cell 5 inside the guess branch

	if !backtrack(&stack, &stats, nil) {
		t.Fatalf("backtrack should succeed from depth 1")
	}
	if stack.Depth() != 0 {
		t.Errorf("Depth() = %d, want 0 after backtrack", stack.Depth())
	}
	if stats.DigitsEnteredAndRetracted.Load() != 1 {
		t.Errorf("DigitsEnteredAndRetracted = %d, want 1", stats.DigitsEnteredAndRetracted.Load())
	}
	if stats.Backtracks.Load() != 1 {
		t.Errorf("Backtracks = %d, want 1", stats.Backtracks.Load())
	}
}

func TestBacktrackEmitsTraceEvent(t *testing.T) {
	var stack Stack
	var stats Stats
	stack.Reset()
	stack.Push()

	var events []TraceEvent
	backtrack(&stack, &stats, func(e TraceEvent) { events = append(events, e) })

	if len(events) != 1 || events[0].Kind != "backtrack" {
		t.Errorf("expected one backtrack trace event, got %+v", events)
	}
}
