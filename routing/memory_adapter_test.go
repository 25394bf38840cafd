package routing_test

import (
	"testing"

	"github.com/aclueless/spair/routing"
	"github.com/stretchr/testify/assert"
)

func TestMemoryAdapterCurrentLocation(t *testing.T) {
	a := routing.NewMemoryAdapter(routing.Location{Pathname: "/home"})
	assert.Equal(t, "/home", a.CurrentLocation().Pathname)
}

func TestMemoryAdapterNavigateNotifiesSubscribers(t *testing.T) {
	a := routing.NewMemoryAdapter(routing.Location{Pathname: "/"})
	var seen []string
	a.Subscribe(func(loc routing.Location) {
		seen = append(seen, loc.Pathname)
	})

	a.Navigate(routing.Location{Pathname: "/about"})
	a.Navigate(routing.Location{Pathname: "/contact"})

	assert.Equal(t, []string{"/about", "/contact"}, seen)
	assert.Equal(t, "/contact", a.CurrentLocation().Pathname)
}

func TestMemoryAdapterUnsubscribeStopsNotifications(t *testing.T) {
	a := routing.NewMemoryAdapter(routing.Location{Pathname: "/"})
	calls := 0
	sub := a.Subscribe(func(loc routing.Location) { calls++ })

	a.Navigate(routing.Location{Pathname: "/one"})
	sub.Unsubscribe()
	a.Navigate(routing.Location{Pathname: "/two"})

	assert.Equal(t, 1, calls)
}

func TestMemoryAdapterUnsubscribeIsIdempotent(t *testing.T) {
	a := routing.NewMemoryAdapter(routing.Location{Pathname: "/"})
	sub := a.Subscribe(func(loc routing.Location) {})

	assert.NotPanics(t, func() {
		sub.Unsubscribe()
		sub.Unsubscribe()
	})
}

func TestMemoryAdapterSubscriberMayReenterCurrentLocation(t *testing.T) {
	// A subscriber calling CurrentLocation() from inside its own callback
	// must not deadlock: Navigate releases its write lock before notifying.
	a := routing.NewMemoryAdapter(routing.Location{Pathname: "/"})
	var readBack string
	a.Subscribe(func(loc routing.Location) {
		readBack = a.CurrentLocation().Pathname
	})

	done := make(chan struct{})
	go func() {
		a.Navigate(routing.Location{Pathname: "/reentrant"})
		close(done)
	}()
	<-done

	assert.Equal(t, "/reentrant", readBack)
}

func TestMemoryAdapterMultipleSubscribersAllNotified(t *testing.T) {
	a := routing.NewMemoryAdapter(routing.Location{Pathname: "/"})
	var a1, a2 int
	a.Subscribe(func(loc routing.Location) { a1++ })
	a.Subscribe(func(loc routing.Location) { a2++ })

	a.Navigate(routing.Location{Pathname: "/x"})

	assert.Equal(t, 1, a1)
	assert.Equal(t, 1, a2)
}

func TestNoopAdapterNeverNotifiesAndReturnsFixedLocation(t *testing.T) {
	a := routing.NoopAdapter{Location: routing.Location{Pathname: "/fixed"}}
	called := false
	sub := a.Subscribe(func(loc routing.Location) { called = true })

	assert.Equal(t, "/fixed", a.CurrentLocation().Pathname)
	assert.False(t, called)
	assert.NotPanics(t, func() { sub.Unsubscribe() })
}
