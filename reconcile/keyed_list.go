package reconcile

import "github.com/aclueless/spair/dom"

// KeyedList reconciles a live sequence of View instances against a new
// slice of data items identified by a stable key, minimizing both the
// number of DOM moves and the number of (re)creations (§4.F). Ported from
// original_source/src/render/base/keyed_list.rs's KeyedListUpdater: a
// common-prefix scan, a common-suffix scan, then — for whatever range
// remains unmatched in the middle — a longest-increasing-subsequence diff
// that keeps the largest possible run of existing items untouched and moves
// only the rest. The original additionally fast-paths a lone forward- or
// backward-moved item before falling back to the LIS diff; that fast path is
// not reproduced here; the LIS diff already produces the same minimal move
// set for a single relocated item; it is an optimization for avoiding the
// map/LIS bookkeeping on the common case, not a behavioral difference.
type KeyedList[K comparable, D any, V View] struct {
	parent    dom.Element
	endMarker dom.Node // stable anchor after the list's last item; nil means "append at parent's end"

	keyFn    func(D) K
	createFn func(D) V
	updateFn func(V, D)

	items []keyedEntry[K, V]
}

type keyedEntry[K comparable, V View] struct {
	key  K
	view V
}

// NewKeyedList creates an empty keyed-list reconciler that mounts items
// into parent, immediately before endMarker (or at parent's end, if
// endMarker is nil).
func NewKeyedList[K comparable, D any, V View](
	parent dom.Element,
	endMarker dom.Node,
	keyFn func(D) K,
	createFn func(D) V,
	updateFn func(V, D),
) *KeyedList[K, D, V] {
	return &KeyedList[K, D, V]{
		parent:    parent,
		endMarker: endMarker,
		keyFn:     keyFn,
		createFn:  createFn,
		updateFn:  updateFn,
	}
}

// Len reports how many items are currently mounted.
func (kl *KeyedList[K, D, V]) Len() int { return len(kl.items) }

// Views returns the current items' view-state instances in list order.
func (kl *KeyedList[K, D, V]) Views() []V {
	out := make([]V, len(kl.items))
	for i, e := range kl.items {
		out[i] = e.view
	}
	return out
}

// Update reconciles the list against data, creating, updating, moving, and
// removing items as needed.
func (kl *KeyedList[K, D, V]) Update(data []D) {
	newKeys := make([]K, len(data))
	for i, d := range data {
		newKeys[i] = kl.keyFn(d)
	}

	oldLen := len(kl.items)
	newLen := len(data)

	start := 0
	for start < oldLen && start < newLen && kl.items[start].key == newKeys[start] {
		kl.updateFn(kl.items[start].view, data[start])
		start++
	}

	oldEnd := oldLen - 1
	newEnd := newLen - 1
	for oldEnd >= start && newEnd >= start && kl.items[oldEnd].key == newKeys[newEnd] {
		kl.updateFn(kl.items[oldEnd].view, data[newEnd])
		oldEnd--
		newEnd--
	}

	switch {
	case start > oldEnd && start <= newEnd:
		kl.insertRun(data, newKeys, start, newEnd, oldEnd)
		return
	case start > newEnd && start <= oldEnd:
		kl.removeRun(start, oldEnd)
		return
	case start > oldEnd && start > newEnd:
		return
	}

	kl.diffMiddle(data, newKeys, start, oldEnd, newEnd)
}

// anchorAfter returns the DOM node that currently sits immediately after
// the old item at oldIdx (oldIdx may be -1, meaning "before the first old
// item"), based on kl.items as it stood before this Update call began
// mutating it.
func (kl *KeyedList[K, D, V]) anchorAfter(oldIdx int) dom.Node {
	if oldIdx+1 < len(kl.items) {
		return kl.items[oldIdx+1].view.Node()
	}
	return kl.endMarker
}

// insertRun inserts data[newStart..newEnd] as brand-new items, in order,
// immediately before whatever currently follows the old item at oldEnd.
func (kl *KeyedList[K, D, V]) insertRun(data []D, newKeys []K, newStart, newEnd, oldEnd int) {
	anchor := kl.anchorAfter(oldEnd)
	inserted := make([]keyedEntry[K, V], newEnd-newStart+1)
	for i := newEnd; i >= newStart; i-- {
		v := kl.createFn(data[i])
		v.InsertBefore(kl.parent, anchor)
		inserted[i-newStart] = keyedEntry[K, V]{key: newKeys[i], view: v}
		anchor = v.Node()
	}
	kl.items = spliceEntries(kl.items, newStart, inserted)
}

// removeRun removes the old items in [oldStart, oldEnd] from both the DOM
// and kl.items.
func (kl *KeyedList[K, D, V]) removeRun(oldStart, oldEnd int) {
	for i := oldEnd; i >= oldStart; i-- {
		kl.items[i].view.Remove()
	}
	kl.items = append(kl.items[:oldStart], kl.items[oldEnd+1:]...)
}

// diffMiddle reconciles the still-unmatched middle range
// old[start..oldEnd] against new[start..newEnd] by key, via a
// longest-increasing-subsequence diff that keeps the longest possible run of
// old items in their current DOM position.
func (kl *KeyedList[K, D, V]) diffMiddle(data []D, newKeys []K, start, oldEnd, newEnd int) {
	oldMiddle := kl.items[start : oldEnd+1]
	newMiddleKeys := newKeys[start : newEnd+1]
	newMiddleData := data[start : newEnd+1]

	keyToOldIdx := make(map[K]int, len(oldMiddle))
	for i, e := range oldMiddle {
		keyToOldIdx[e.key] = i
	}

	oldIdxForNew := make([]int, len(newMiddleData))
	consumed := make([]bool, len(oldMiddle))
	for j, k := range newMiddleKeys {
		if idx, ok := keyToOldIdx[k]; ok && !consumed[idx] {
			oldIdxForNew[j] = idx
			consumed[idx] = true
		} else {
			oldIdxForNew[j] = -1
		}
	}

	// lisPositions doesn't know about our -1 "brand new item" sentinel, so the
	// matched (non-negative) entries are filtered out first and the resulting
	// positions mapped back — the same trick LongestIncreasingSubsequence
	// uses — otherwise a -1 can be selected into the chosen subsequence and
	// displace a real item that should have stayed in place (§4.F.6c: the LIS
	// is computed only over matched items).
	var matchedValues []int
	var matchedPositions []int
	for pos, v := range oldIdxForNew {
		if v >= 0 {
			matchedValues = append(matchedValues, v)
			matchedPositions = append(matchedPositions, pos)
		}
	}
	keep := make(map[int]bool, len(matchedPositions))
	for _, idx := range lisPositions(matchedValues) {
		keep[matchedPositions[idx]] = true
	}

	newMiddle := make([]keyedEntry[K, V], len(newMiddleData))
	anchor := kl.anchorAfter(oldEnd)
	for j := len(newMiddleData) - 1; j >= 0; j-- {
		oldIdx := oldIdxForNew[j]
		var view V
		if oldIdx < 0 {
			view = kl.createFn(newMiddleData[j])
			view.InsertBefore(kl.parent, anchor)
		} else {
			view = oldMiddle[oldIdx].view
			kl.updateFn(view, newMiddleData[j])
			if !keep[j] {
				view.InsertBefore(kl.parent, anchor)
			}
		}
		newMiddle[j] = keyedEntry[K, V]{key: newMiddleKeys[j], view: view}
		anchor = view.Node()
	}

	for i, e := range oldMiddle {
		if !consumed[i] {
			e.view.Remove()
		}
	}

	kl.items = append(kl.items[:start:start], append(newMiddle, kl.items[oldEnd+1:]...)...)
}

func spliceEntries[K comparable, V View](items []keyedEntry[K, V], at int, insert []keyedEntry[K, V]) []keyedEntry[K, V] {
	out := make([]keyedEntry[K, V], 0, len(items)+len(insert))
	out = append(out, items[:at]...)
	out = append(out, insert...)
	out = append(out, items[at:]...)
	return out
}

// Clear removes every item from the list.
func (kl *KeyedList[K, D, V]) Clear() {
	for _, e := range kl.items {
		e.view.Remove()
	}
	kl.items = nil
}
