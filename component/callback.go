package component

// invoke runs run against the component behind handle following the
// original's Comp::execute_callback exactly: claim (or don't) drain rights
// before touching the component, try to borrow its state, and on success
// run the callback, apply its ShouldRender verdict, release the borrow,
// then — only if this call claimed drain rights — drain whatever further
// callbacks got deferred while state was borrowed. If the borrow fails
// (this call is re-entrant: it was triggered by a render or callback that
// is itself still executing against the same component), the call is
// queued instead of run, to be picked up by the drain loop once the
// currently-running callback finishes. If the component has already been
// dropped, this is a no-op, not a panic — see Handle's doc comment. If run,
// the render, or a drained callback panics, the borrow and (if held) the
// drain rights are released before the panic continues to propagate.
func invoke[S any](handle Handle[S], run func(*S) ShouldRender) {
	ownsDrain := claimDrainRights()
	var release func()
	defer func() {
		if r := recover(); r != nil {
			if release != nil {
				release()
			}
			if ownsDrain {
				globalQueue.mu.Lock()
				globalQueue.willBeExecuted = false
				globalQueue.mu.Unlock()
			}
			panic(r)
		}
	}()

	c, ok := handle.upgrade()
	if !ok {
		drainQueue(ownsDrain)
		return
	}

	release, ok = c.tryBorrow()
	if !ok {
		deferCallback(func() { invoke(handle, run) })
		return
	}

	sr := run(c.state)
	if sr == ShouldRenderYes && c.update != nil {
		c.update(c.state)
	}
	c.renderedOnce = true
	release()
	release = nil

	drainQueue(ownsDrain)
}

// NewCallback builds a zero-argument event handler bound to a component: on
// invocation it mutates state via f and, if f returns ShouldRenderYes, runs
// the component's render function. Collapses the original's Cb/CbMut split
// (const vs mutable access to C) into one shape — Go has no borrow checker
// to enforce "this callback promised not to mutate", so the distinction
// carries no safety benefit here.
func NewCallback[S any](handle Handle[S], f func(*S) ShouldRender) func() {
	return func() {
		invoke(handle, f)
	}
}

// NewCallbackArg builds a one-argument event handler bound to a component,
// for handlers that need the triggering value (a dom.Event, a changed
// input's new value, a list item's data). Collapses the original's
// CbArg/CbArgMut/CbDroppedArg/CbDroppedArgMut split the same way
// NewCallback collapses Cb/CbMut — a handler that doesn't need arg simply
// doesn't reference it in f, which is what CbDroppedArg existed for.
func NewCallbackArg[S any, A any](handle Handle[S], f func(*S, A) ShouldRender) func(A) {
	return func(arg A) {
		invoke(handle, func(s *S) ShouldRender { return f(s, arg) })
	}
}

// NewCallbackOnce is NewCallback under a name documenting intended
// single-use (e.g. a timer or fetch completion). The original's
// CallbackFnOnce exists because an FnOnce closure can move owned data out
// of itself, which the type system then forbids calling twice; Go closures
// have no such linear-use enforcement, so nothing stops a second call here
// — the name is a contract with the caller, not an enforced one.
func NewCallbackOnce[S any](handle Handle[S], f func(*S) ShouldRender) func() {
	return NewCallback(handle, f)
}

// NewCallbackOnceArg is the one-argument counterpart to NewCallbackOnce.
func NewCallbackOnceArg[S any, A any](handle Handle[S], f func(*S, A) ShouldRender) func(A) {
	return NewCallbackArg(handle, f)
}
