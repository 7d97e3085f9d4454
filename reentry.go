package coop

// ReentryGuard detects recursive entry into a single call site. A
// function owns one guard for the call site (shared across invocations)
// and opens one scope per invocation; when the scope reports Reentered
// the function should return immediately instead of running its body.
//
// This matters in cooperative code because a pump callback runs at
// arbitrary call depth: a task serviced from inside a delay can end up
// calling back into itself through an intervening wait. The guard only
// distinguishes first entry from any deeper entry; arbitrarily deep
// recursion still counts up and down correctly.
//
// The zero value is ready to use. Single logical thread only, like the
// rest of the package. The guard is a wait-independent primitive: it
// knows nothing about Context.
type ReentryGuard struct {
	depth int
}

// Depth returns the number of currently open scopes.
func (g *ReentryGuard) Depth() int {
	if g == nil {
		return 0
	}
	return g.depth
}

// Enter opens a scope on the guard and captures whether this invocation
// is nested inside an already-active one. Pair every Enter with exactly
// one Exit, normally deferred:
//
//	scope := guard.Enter()
//	defer scope.Exit()
//	if scope.Reentered() {
//	    return
//	}
func (g *ReentryGuard) Enter() ReentryScope {
	if g == nil {
		return ReentryScope{}
	}
	g.depth++
	return ReentryScope{guard: g, reentered: g.depth > 1}
}

// ReentryScope is the per-invocation handle produced by Enter.
type ReentryScope struct {
	guard     *ReentryGuard
	reentered bool
}

// Exit closes the scope, restoring the guard's depth to its pre-entry
// value. Deferring it covers every exit path, early returns included.
func (s ReentryScope) Exit() {
	if s.guard != nil {
		s.guard.depth--
	}
}

// Reentered reports whether the scope was opened while another scope on
// the same guard was still alive. The answer is captured at Enter and
// never changes for the lifetime of the scope.
func (s ReentryScope) Reentered() bool {
	return s.reentered
}
