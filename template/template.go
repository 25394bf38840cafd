// Package template is the template cache (§4.B): parse a static HTML
// fragment once, then clone its DOM subtree cheaply for every new view
// instance instead of re-parsing or re-building it element by element.
// Grounded on _examples/ozanturksever-uiwgo/comps/comps.go's Mount, which
// builds its first DOM from an HTML string via `container.SetInnerHTML`, and
// on original_source/src/dom/nodes.rs's ListItemTemplate clone-prototype
// idea for cheaply stamping out repeated list items.
package template

import "github.com/aclueless/spair/dom"

// Template owns one piece of static HTML: it parses it into a detached
// fragment the first time it is needed and keeps that fragment around as
// the clone source for every subsequent instantiation.
type Template struct {
	html string

	doc         dom.Document
	initialized bool
	fragment    dom.Element
}

// New returns a template over the given HTML source. Parsing is deferred
// until the first CloneRoot, CloneChildren or Fragment call (lazy, so
// building a registry of templates up front costs nothing until each one is
// actually used).
func New(doc dom.Document, html string) *Template {
	return &Template{html: html, doc: doc}
}

func (t *Template) ensureParsed() {
	if t.initialized {
		return
	}
	t.fragment = t.doc.ParseFragment(t.html)
	t.initialized = true
}

// Fragment returns the template's detached, parsed root. Calling code must
// not mutate it in place; it is the clone source for every instance.
func (t *Template) Fragment() dom.Element {
	t.ensureParsed()
	return t.fragment
}

// CloneRoot clones the template's single root element (the template's HTML
// must have exactly one top-level element) into a fresh, detached element
// ready to be inserted into a live document.
func (t *Template) CloneRoot() dom.Element {
	t.ensureParsed()
	first, ok := t.fragment.FirstChild().AsElement()
	if !ok {
		panic("template: fragment has no root element")
	}
	return first.CloneNode(true)
}

// CloneChildren clones every top-level node of the template's fragment in
// order, for templates that represent a run of sibling nodes rather than a
// single root (such as list-item markup that is itself a sibling run). The
// reconcile package does not call it; list items come from the createFn its
// callers supply.
func (t *Template) CloneChildren() []dom.Node {
	t.ensureParsed()
	var out []dom.Node
	for n := t.fragment.FirstChild(); n != nil; n = n.NextSibling() {
		out = append(out, t.cloneNode(n))
	}
	return out
}

// cloneNode clones a single top-level fragment node. Element cloning goes
// through the adapter's native CloneNode; text and comment nodes have no
// clone operation of their own in the adapter surface (native cloneNode is
// element-oriented in practice here), so they are duplicated by reading
// their data and creating a fresh node of the same kind.
func (t *Template) cloneNode(n dom.Node) dom.Node {
	if el, ok := n.AsElement(); ok {
		return el.CloneNode(true)
	}
	if txt, ok := n.AsText(); ok {
		return t.doc.CreateText(txt.Data())
	}
	if c, ok := n.AsComment(); ok {
		return t.doc.CreateComment(c.Data())
	}
	return n
}
