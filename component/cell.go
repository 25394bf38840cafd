package component

import (
	"sync"
	"weak"
)

// ShouldRender is a callback's verdict on whether its state change requires
// a re-render, mirroring the original's ShouldRender enum — a value the
// framework cannot ignore (unlike a bare bool, returning this from every
// callback keeps "did I forget to ask for a render" visible at every call
// site).
type ShouldRender int

const (
	ShouldRenderNo ShouldRender = iota
	ShouldRenderYes
)

// MountStatus tracks whether a component's root is currently attached.
type MountStatus int

const (
	StatusUnmounted MountStatus = iota
	StatusMounted
	StatusPermanentlyMounted
)

// cell is the Go equivalent of the original's CompInstance<C> wrapped in
// Rc<RefCell<_>>: owned state plus a "currently borrowed" guard standing in
// for RefCell's runtime borrow check. A plain bool behind a mutex serves the
// same purpose try_borrow_mut serves there — reject a second concurrent
// mutation rather than deadlock or corrupt state.
type cell[S any] struct {
	mu       sync.Mutex
	borrowed bool

	state        *S
	update       func(*S)
	status       MountStatus
	renderedOnce bool
}

func (c *cell[S]) tryBorrow() (release func(), ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.borrowed {
		return nil, false
	}
	c.borrowed = true
	return func() {
		c.mu.Lock()
		c.borrowed = false
		c.mu.Unlock()
	}, true
}

// Owner holds the one strong reference to a mounted component's state,
// standing in for the original's RcComp<C>. Callers keep the Owner alive
// for as long as the component should exist; dropping every Owner (and
// letting it be garbage collected) is how a component "unmounts" its state,
// after which every Handle derived from it upgrades to nothing.
type Owner[S any] struct {
	cell *cell[S]
}

// Handle is a non-owning reference to a mounted component, standing in for
// the original's Comp<C> (a Weak<RefCell<_>>). It is what callback closures
// capture, so a callback surviving past its component's lifetime (e.g. a
// stale event listener on a DOM node that was never cleaned up) becomes a
// silent no-op instead of a dangling access — built on the standard
// library's weak package (Go 1.24+), the direct analogue of Rust's Weak<T>.
type Handle[S any] struct {
	ptr weak.Pointer[cell[S]]
}

// Handle derives a non-owning reference to this owner's component.
func (o *Owner[S]) Handle() Handle[S] {
	return Handle[S]{ptr: weak.Make(o.cell)}
}

// State returns the live state pointer for direct, synchronous access (e.g.
// immediately after Mount, before any event has fired). Callers must not
// retain the pointer past the current call stack the way a callback would;
// use a callback for anything that runs later.
func (o *Owner[S]) State() *S {
	return o.cell.state
}

func (h Handle[S]) upgrade() (*cell[S], bool) {
	c := h.ptr.Value()
	return c, c != nil
}
