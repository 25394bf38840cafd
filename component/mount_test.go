package component_test

import (
	"runtime"
	"testing"

	"github.com/aclueless/spair/component"
	"github.com/aclueless/spair/dom"
	"github.com/aclueless/spair/routing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFakeRootDoc returns a fake dom.Document whose root is a <div id=id>,
// so Mount's GetElementByID(id) call succeeds.
func newFakeRootDoc(t *testing.T, id string) dom.Document {
	t.Helper()
	doc := dom.NewDocument()
	root := doc.CreateElement("div")
	root.SetAttr("id", id)
	dom.AttachRoot(doc, root)
	return doc
}

func TestMountFailsWhenRootElementMissing(t *testing.T) {
	doc := dom.NewDocument() // root is a bare "html" element, no matching id

	_, err := component.Mount[counterState]("missing", func(h component.Handle[counterState]) *counterState {
		return &counterState{handle: h}
	}, func(s *counterState) {}, component.WithDocument(doc))

	assert.Error(t, err)
}

func TestMountRendersExactlyOnce(t *testing.T) {
	doc := newFakeRootDoc(t, "app")
	renders := 0

	owner, err := component.Mount[counterState]("app", func(h component.Handle[counterState]) *counterState {
		return &counterState{handle: h}
	}, func(s *counterState) {
		renders++
	}, component.WithDocument(doc))

	require.NoError(t, err)
	assert.Equal(t, 1, renders)
	assert.NotNil(t, owner.State())
}

func TestMountWithRoutingDispatchesInitialLocation(t *testing.T) {
	doc := newFakeRootDoc(t, "app")
	adapter := routing.NewMemoryAdapter(routing.Location{Pathname: "/start"})
	var seen []string

	owner, unsubscribe, err := component.MountWithRouting[counterState]("app",
		func(h component.Handle[counterState]) *counterState {
			return &counterState{handle: h}
		},
		func(s *counterState) {},
		func(s *counterState, loc routing.Location) component.ShouldRender {
			seen = append(seen, loc.Pathname)
			return component.ShouldRenderNo
		},
		adapter,
		component.WithDocument(doc),
	)
	require.NoError(t, err)
	defer unsubscribe()

	assert.Equal(t, []string{"/start"}, seen)

	adapter.Navigate(routing.Location{Pathname: "/next"})
	assert.Equal(t, []string{"/start", "/next"}, seen)
	_ = owner
}

func TestMountWithRoutingUnsubscribeStopsFurtherDispatch(t *testing.T) {
	doc := newFakeRootDoc(t, "app")
	adapter := routing.NewMemoryAdapter(routing.Location{Pathname: "/start"})
	calls := 0

	owner, unsubscribe, err := component.MountWithRouting[counterState]("app",
		func(h component.Handle[counterState]) *counterState {
			return &counterState{handle: h}
		},
		func(s *counterState) {},
		func(s *counterState, loc routing.Location) component.ShouldRender {
			calls++
			return component.ShouldRenderNo
		},
		adapter,
		component.WithDocument(doc),
	)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	unsubscribe()
	adapter.Navigate(routing.Location{Pathname: "/after-unsubscribe"})
	assert.Equal(t, 1, calls, "no dispatch should reach an unsubscribed component")
	runtime.KeepAlive(owner)
}

func TestHandleUpgradeFailsAfterOwnerIsCollected(t *testing.T) {
	doc := newFakeRootDoc(t, "app")

	makeHandle := func() component.Handle[counterState] {
		owner, err := component.Mount[counterState]("app", func(h component.Handle[counterState]) *counterState {
			return &counterState{handle: h}
		}, func(s *counterState) {}, component.WithDocument(doc))
		require.NoError(t, err)
		return owner.State().handle
	}

	handle := makeHandle()

	for i := 0; i < 5 && !handleIsDead(handle); i++ {
		runtime.GC()
	}

	cb := component.NewCallback(handle, func(s *counterState) component.ShouldRender {
		s.count++
		return component.ShouldRenderYes
	})
	assert.NotPanics(t, func() { cb() }, "a callback on a collected component must be a no-op, not a panic")
}

// handleIsDead is a best-effort probe: it runs a callback that would mutate
// a marker if the component were alive, then reports whether the mutation
// happened. Since the owner above is unreachable once makeHandle returns,
// repeated GC cycles make the underlying weak.Pointer eventually clear.
func handleIsDead(handle component.Handle[counterState]) bool {
	probed := false
	cb := component.NewCallback(handle, func(s *counterState) component.ShouldRender {
		probed = true
		return component.ShouldRenderNo
	})
	cb()
	return !probed
}
