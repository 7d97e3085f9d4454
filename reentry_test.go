package coop

import "testing"

func TestReentryFirstEntryNotReentered(t *testing.T) {
	var guard ReentryGuard

	scope := guard.Enter()
	defer scope.Exit()

	if scope.Reentered() {
		t.Fatalf("first scope reports reentered")
	}
	if guard.Depth() != 1 {
		t.Fatalf("depth: want 1, got %d", guard.Depth())
	}
}

func TestReentryNestedScopes(t *testing.T) {
	var guard ReentryGuard

	outer := guard.Enter()
	inner := guard.Enter()

	if outer.Reentered() {
		t.Fatalf("outer scope reports reentered")
	}
	if !inner.Reentered() {
		t.Fatalf("inner scope does not report reentered")
	}

	inner.Exit()

	// A third scope while the outer is still alive is still a reentry.
	third := guard.Enter()
	if !third.Reentered() {
		t.Fatalf("scope opened under a live outer scope does not report reentered")
	}
	third.Exit()
	outer.Exit()

	if guard.Depth() != 0 {
		t.Fatalf("depth after all exits: want 0, got %d", guard.Depth())
	}

	// With everything closed the next scope is a first entry again.
	fresh := guard.Enter()
	defer fresh.Exit()
	if fresh.Reentered() {
		t.Fatalf("fresh scope after full unwind reports reentered")
	}
}

func TestReentryCapturedAtEnter(t *testing.T) {
	var guard ReentryGuard

	outer := guard.Enter()
	inner := guard.Enter()
	inner.Exit()
	outer.Exit()

	// Reentered reflects construction time only.
	if outer.Reentered() {
		t.Fatalf("outer flipped to reentered after the fact")
	}
	if !inner.Reentered() {
		t.Fatalf("inner lost its reentered flag after exit")
	}
}

func TestReentryGuardedFunction(t *testing.T) {
	var guard ReentryGuard
	depthRecords := []int{}

	var step func(remaining int)
	step = func(remaining int) {
		scope := guard.Enter()
		defer scope.Exit()
		if scope.Reentered() {
			// Early return: the deferred Exit must still fire.
			return
		}
		depthRecords = append(depthRecords, guard.Depth())
		if remaining > 0 {
			step(remaining - 1)
		}
	}

	step(3)
	if len(depthRecords) != 1 {
		t.Fatalf("guarded body ran %d times, want 1", len(depthRecords))
	}
	if guard.Depth() != 0 {
		t.Fatalf("depth after guarded recursion: want 0, got %d", guard.Depth())
	}

	// The guard is reusable after the recursion fully unwound.
	step(0)
	if len(depthRecords) != 2 {
		t.Fatalf("guarded body did not run again after unwind")
	}
}

func TestReentryDeepRecursionCountsCorrectly(t *testing.T) {
	var guard ReentryGuard

	scopes := make([]ReentryScope, 0, 5)
	for i := 0; i < 5; i++ {
		scopes = append(scopes, guard.Enter())
	}
	if guard.Depth() != 5 {
		t.Fatalf("depth: want 5, got %d", guard.Depth())
	}
	for i := len(scopes) - 1; i >= 0; i-- {
		scopes[i].Exit()
	}
	if guard.Depth() != 0 {
		t.Fatalf("depth after unwind: want 0, got %d", guard.Depth())
	}
}
