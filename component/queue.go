// Package component is the component runtime (§4.E): component state
// ownership, callback dispatch, and the update queue that gives callbacks
// at-most-one-update-in-flight, FIFO-ordered re-entrancy handling. Grounded
// directly on original_source/src/component/mod.rs's UPDATE_QUEUE/
// will_be_executed mechanism and original_source/src/callback.rs's
// CallbackFn queue/execute split.
package component

import "sync"

// updateQueue is the package-level equivalent of the original's thread-local
// UPDATE_QUEUE: exactly one callback invocation at a time is "responsible"
// for draining whatever further callbacks get deferred while components are
// borrowed, and every deferred callback runs in the order it was deferred.
type updateQueue struct {
	mu             sync.Mutex
	willBeExecuted bool
	pending        []func()
}

var globalQueue updateQueue

// claimDrainRights reports whether the caller is the one responsible for
// draining the queue once its own callback finishes running. Exactly one
// concurrent caller gets true; everyone else gets false and must trust that
// caller to drain whatever they defer.
func claimDrainRights() bool {
	globalQueue.mu.Lock()
	defer globalQueue.mu.Unlock()
	if globalQueue.willBeExecuted {
		return false
	}
	globalQueue.willBeExecuted = true
	return true
}

// deferCallback enqueues f to run once the current drain-rights holder
// finishes its own callback and starts draining.
func deferCallback(f func()) {
	globalQueue.mu.Lock()
	globalQueue.pending = append(globalQueue.pending, f)
	globalQueue.mu.Unlock()
}

// drainQueue runs every deferred callback, in FIFO order, until the queue is
// empty, then releases drain rights. A no-op if the caller did not hold
// drain rights (claimDrainRights returned false for them).
func drainQueue(heldDrainRights bool) {
	if !heldDrainRights {
		return
	}
	for {
		globalQueue.mu.Lock()
		if len(globalQueue.pending) == 0 {
			globalQueue.willBeExecuted = false
			globalQueue.mu.Unlock()
			return
		}
		f := globalQueue.pending[0]
		globalQueue.pending = globalQueue.pending[1:]
		globalQueue.mu.Unlock()
		f()
	}
}
