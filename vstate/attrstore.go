package vstate

import (
	"math"

	"github.com/aclueless/spair/dom"
	"github.com/aclueless/spair/logutil"
)

// SlotKind identifies what a slot in an AttrStore holds. Once a slot is
// written the first time, its kind is fixed for the lifetime of the view
// instance (§4.D) — the update pass must visit attributes in exactly the
// order the create pass did, so a later write of a different kind at the
// same index means the view-state/update-pass visit order has diverged and
// is a defect, not a value to tolerate.
type SlotKind int

const (
	SlotBool SlotKind = iota
	SlotI32
	SlotF64
	SlotStr
	SlotOptStr
	SlotEvent
)

const f64Epsilon = 1e-9

type slot struct {
	kind SlotKind

	b        bool
	i        int32
	f        float64
	s        string
	optStr   *string
	listener dom.Listener
}

// AttrStore is the indexed, non-keyed store of per-attribute diff state
// backing one ElementHandle (§4.D): one slot per dynamic attribute/listener
// the template declares, visited in the same order on every update. Grounded
// on original_source/src/dom/attributes.rs's AttributeList and its
// check_*_attribute family. An indexed slice gives O(1) positional access
// with no hashing or key lookups, matching what that Rust source does with a
// plain Vec.
type AttrStore struct {
	slots []slot
}

// NewAttrStore allocates a store sized for capacity dynamic attributes —
// the count the template's create pass will populate.
func NewAttrStore(capacity int) *AttrStore {
	return &AttrStore{slots: make([]slot, 0, capacity)}
}

// Len reports how many slots have been written so far.
func (s *AttrStore) Len() int { return len(s.slots) }

// slotFor resolves the slot backing index for a write of the given kind. The
// third return value reports whether the write may proceed at all: a slot
// that changed kind or an index past the store's current length is a
// generated-code contract violation (§7), not a value to tolerate — it is
// logged and the operation is skipped so the rest of the update pass
// continues, rather than panicking the whole pass.
func (s *AttrStore) slotFor(index int, kind SlotKind) (sl *slot, created bool, ok bool) {
	switch {
	case index == len(s.slots):
		s.slots = append(s.slots, slot{kind: kind})
		return &s.slots[index], true, true
	case index < len(s.slots):
		sl := &s.slots[index]
		if sl.kind != kind {
			logutil.Logf("vstate: attribute slot %d changed kind from %v to %v — create/update visit order diverged, skipping write\n", index, sl.kind, kind)
			return nil, false, false
		}
		return sl, false, true
	default:
		logutil.Logf("vstate: attribute slot %d written past store length %d — create/update visit order diverged, skipping write\n", index, len(s.slots))
		return nil, false, false
	}
}

// SetBool writes a boolean-attribute slot, returning whether the value
// changed from what was stored there before (always true on first write).
func (s *AttrStore) SetBool(index int, value bool) bool {
	sl, created, ok := s.slotFor(index, SlotBool)
	if !ok {
		return false
	}
	if created {
		sl.b = value
		return true
	}
	if sl.b == value {
		return false
	}
	sl.b = value
	return true
}

// SetI32 writes an integer-attribute slot.
func (s *AttrStore) SetI32(index int, value int32) bool {
	sl, created, ok := s.slotFor(index, SlotI32)
	if !ok {
		return false
	}
	if created {
		sl.i = value
		return true
	}
	if sl.i == value {
		return false
	}
	sl.i = value
	return true
}

// SetF64 writes a float-attribute slot, comparing with an epsilon the way
// attributes.rs compares its F64 variant rather than by exact equality.
func (s *AttrStore) SetF64(index int, value float64) bool {
	sl, created, ok := s.slotFor(index, SlotF64)
	if !ok {
		return false
	}
	if created {
		sl.f = value
		return true
	}
	if math.Abs(sl.f-value) < f64Epsilon {
		return false
	}
	sl.f = value
	return true
}

// SetStr writes a string-attribute slot.
func (s *AttrStore) SetStr(index int, value string) bool {
	sl, created, ok := s.slotFor(index, SlotStr)
	if !ok {
		return false
	}
	if created {
		sl.s = value
		return true
	}
	if sl.s == value {
		return false
	}
	sl.s = value
	return true
}

// SetOptStr writes an optional-string slot (a string attribute that may be
// entirely absent, such as a `<select>`'s selected `<option>` value cache).
// nil and nil compare equal; otherwise the pointed-to values are compared.
func (s *AttrStore) SetOptStr(index int, value *string) bool {
	sl, created, ok := s.slotFor(index, SlotOptStr)
	if !ok {
		return false
	}
	if created {
		sl.optStr = value
		return true
	}
	switch {
	case sl.optStr == nil && value == nil:
		return false
	case sl.optStr == nil || value == nil:
		sl.optStr = value
		return true
	case *sl.optStr == *value:
		return false
	default:
		sl.optStr = value
		return true
	}
}

// SetOptStrForSelect writes a `<select>` element's cached option-string
// slot. Per the deferred-write rule for `<select>.value` (§9 open question),
// the slot is always cleared to null before the new value is written and
// the call always reports a change, regardless of what was previously
// stored — the actual `select.value` DOM write this backs happens later, as
// the last operation of the enclosing element's update (see
// ElementHandle.FlushSelectValue).
func (s *AttrStore) SetOptStrForSelect(index int, value *string) bool {
	sl, created, ok := s.slotFor(index, SlotOptStr)
	if !ok {
		return false
	}
	if created {
		sl.optStr = value
		return true
	}
	sl.optStr = nil
	sl.optStr = value
	return true
}

// SetEvent installs a new listener at index, removing whatever listener was
// previously stored there. install is called to obtain the replacement so
// the caller controls how it attaches to the live element. Event-listener
// slots are not change-detected by value: the callback closure's identity
// changes on every create/update pass that reaches it (it captures the
// current render's state), so it is always reinstalled.
func (s *AttrStore) SetEvent(index int, install func() dom.Listener) {
	sl, created, ok := s.slotFor(index, SlotEvent)
	if !ok {
		return
	}
	if !created && sl.listener != nil {
		sl.listener.Remove()
	}
	sl.listener = install()
}

// RemoveAllListeners removes every event listener this store owns. Called
// when the owning ElementHandle's scope is disposed.
func (s *AttrStore) RemoveAllListeners() {
	for i := range s.slots {
		if s.slots[i].kind == SlotEvent && s.slots[i].listener != nil {
			s.slots[i].listener.Remove()
			s.slots[i].listener = nil
		}
	}
}
