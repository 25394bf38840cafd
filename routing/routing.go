// Package routing is the external location-source interface (§6): a
// component can ask for the current location and subscribe to changes
// without knowing whether it's backed by the browser's History API, a
// hash-based router, or a fixed location in tests. Trimmed from
// _examples/ozanturksever-uiwgo/router/state.go's Location/Subscriber/
// LocationState down to the two operations named here — the teacher's
// router (path matching, nested routes, History API wiring) is out of
// scope.
package routing

// Location describes where the application currently is.
type Location struct {
	Pathname string
	Search   string
	Hash     string
	State    any
}

// Subscription cancels a location subscription.
type Subscription interface {
	Unsubscribe()
}

// Adapter is a source of location changes.
type Adapter interface {
	CurrentLocation() Location
	Subscribe(func(Location)) Subscription
}

// NoopAdapter is an Adapter that never changes location and never notifies
// subscribers — for applications, and tests, with no routing concern.
type NoopAdapter struct {
	Location Location
}

func (n NoopAdapter) CurrentLocation() Location { return n.Location }

func (n NoopAdapter) Subscribe(func(Location)) Subscription {
	return noopSubscription{}
}

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}
