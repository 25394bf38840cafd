package component

import (
	"fmt"

	"github.com/aclueless/spair/dom"
	"github.com/aclueless/spair/logutil"
	"github.com/aclueless/spair/routing"
)

// mountConfig collects Mount's optional settings, built via the
// MountOption functional-option pattern — grounded on
// _examples/ozanturksever-uiwgo/action package's "...Option" variadic
// constructors, the one reusable idea kept from that dropped package.
type mountConfig struct {
	doc dom.Document
}

// MountOption configures a Mount or MountWithRouting call.
type MountOption func(*mountConfig)

// WithDocument overrides the document Mount resolves the root element id
// against. Tests pass a fresh dom.NewDocument() this way instead of relying
// on a single global document.
func WithDocument(doc dom.Document) MountOption {
	return func(c *mountConfig) { c.doc = doc }
}

func resolveConfig(opts []MountOption) mountConfig {
	cfg := mountConfig{doc: dom.NewDocument()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Mount attaches a component to the element identified by rootID: it builds
// the component's state via makeState (which receives a Handle so the
// state can build its own callbacks), renders it once, and returns an Owner
// the caller must keep alive for as long as the component should exist.
// Grounded on _examples/ozanturksever-uiwgo/comps/comps.go's Mount (resolve
// root element, build state, first render) and
// original_source/src/component/mod.rs's RcComp::first_render (run under
// drain-rights bookkeeping so any update_component() call made during the
// first render is handled correctly rather than silently dropped).
func Mount[S any](rootID string, makeState func(Handle[S]) *S, render func(*S), opts ...MountOption) (*Owner[S], error) {
	cfg := resolveConfig(opts)

	root, ok := cfg.doc.GetElementByID(rootID)
	if !ok {
		return nil, fmt.Errorf("component: no element with id %q to mount into", rootID)
	}

	owner := &Owner[S]{cell: &cell[S]{status: StatusPermanentlyMounted, update: render}}
	handle := owner.Handle()

	state := makeState(handle)
	owner.cell.state = state

	ownsDrain := claimDrainRights()
	render(state)
	owner.cell.renderedOnce = true
	drainQueue(ownsDrain)

	_ = root
	logutil.Logf("component: mounted into #%s", rootID)
	return owner, nil
}

// MountWithRouting is Mount plus a subscription to adapter's location
// changes: onRoute runs against the component's state every time the
// location changes (including once, synchronously, for the location
// current at mount time), the same way setRoute runs for
// original_source's register_routing_callback. The returned func
// unsubscribes from the adapter; callers should call it when tearing the
// component down, alongside dropping the Owner.
func MountWithRouting[S any](
	rootID string,
	makeState func(Handle[S]) *S,
	render func(*S),
	onRoute func(*S, routing.Location) ShouldRender,
	adapter routing.Adapter,
	opts ...MountOption,
) (*Owner[S], func(), error) {
	cfg := resolveConfig(opts)

	root, ok := cfg.doc.GetElementByID(rootID)
	if !ok {
		return nil, nil, fmt.Errorf("component: no element with id %q to mount into", rootID)
	}
	_ = root

	owner := &Owner[S]{cell: &cell[S]{status: StatusPermanentlyMounted, update: render}}
	handle := owner.Handle()

	state := makeState(handle)
	owner.cell.state = state

	sub := adapter.Subscribe(func(loc routing.Location) {
		invoke(handle, func(s *S) ShouldRender { return onRoute(s, loc) })
	})

	ownsDrain := claimDrainRights()
	sr := onRoute(state, adapter.CurrentLocation())
	if sr == ShouldRenderYes {
		render(state)
	} else if !owner.cell.renderedOnce {
		render(state)
	}
	owner.cell.renderedOnce = true
	drainQueue(ownsDrain)

	logutil.Logf("component: mounted into #%s with routing", rootID)
	return owner, sub.Unsubscribe, nil
}
