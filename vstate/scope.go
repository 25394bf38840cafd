package vstate

import "sync"

// CleanupScope is a container-scoped disposal context tying together the
// event listeners and child element handles that belong to one view-state
// subtree, so unmounting a component or a reconciled list item releases
// everything beneath it in one call. Adapted from
// _examples/ozanturksever-uiwgo/reactivity/scope.go's CleanupScope, repurposed
// from reactive-effect cleanup to element-handle/listener lifecycle; a mutex
// replaces the original's bare fields since Go tests may exercise handles
// from more than one goroutine, unlike the single-threaded JS runtime it was
// written for.
type CleanupScope struct {
	mu sync.Mutex

	parent    *CleanupScope
	children  []*CleanupScope
	disposers []func()
	disposed  bool
}

// NewCleanupScope creates a scope registered under parent, if parent is
// non-nil. Disposing parent disposes every scope registered under it.
func NewCleanupScope(parent *CleanupScope) *CleanupScope {
	s := &CleanupScope{parent: parent}
	if parent != nil {
		parent.mu.Lock()
		parent.children = append(parent.children, s)
		parent.mu.Unlock()
	}
	return s
}

// OnCleanup registers fn to run when the scope is disposed. Runs fn
// immediately if the scope is already disposed.
func (s *CleanupScope) OnCleanup(fn func()) {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		fn()
		return
	}
	s.disposers = append(s.disposers, fn)
	s.mu.Unlock()
}

// Dispose disposes all child scopes, then runs this scope's own disposers
// in registration order. Idempotent.
func (s *CleanupScope) Dispose() {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	s.disposed = true
	children := s.children
	disposers := s.disposers
	s.children = nil
	s.disposers = nil
	s.mu.Unlock()

	for _, c := range children {
		c.Dispose()
	}
	for _, d := range disposers {
		d()
	}
}

// Disposed reports whether Dispose has already run.
func (s *CleanupScope) Disposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposed
}
