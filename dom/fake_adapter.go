//go:build !js || !wasm

package dom

import "github.com/aclueless/spair/internal/fakedom"

// NewDocument returns a fresh in-memory document backed by internal/fakedom,
// used for every test that does not run under js/wasm.
func NewDocument() Document {
	return &fakeDocument{doc: fakedom.NewDocument()}
}

// WrapFakeNode adapts a raw *fakedom.Node into a dom.Node/Element/Text/
// Comment, for tests that build fake trees directly with internal/fakedom
// and then hand them to code that expects the dom interfaces.
func WrapFakeNode(n *fakedom.Node) Node {
	return wrapFake(n)
}

// FakeDispatch synchronously fires eventType on el's registered listeners.
// Test-only: simulates a user interaction without a browser.
func FakeDispatch(el Element, eventType string) {
	el.(*fakeNode).n.Dispatch(eventType)
}

// AttachRoot makes el the document's root, so GetElementByID can find it and
// anything appended under it. Test-only: a real document's root is fixed at
// the page's <html> element.
func AttachRoot(doc Document, el Element) {
	doc.(*fakeDocument).doc.Attach(el.(*fakeNode).n)
}

type fakeDocument struct {
	doc *fakedom.Document
}

func (d *fakeDocument) CreateElement(tag string) Element {
	return wrapFake(d.doc.CreateElement(tag)).(Element)
}

func (d *fakeDocument) CreateText(data string) Text {
	return wrapFake(d.doc.CreateText(data)).(Text)
}

func (d *fakeDocument) CreateComment(data string) Comment {
	return wrapFake(d.doc.CreateComment(data)).(Comment)
}

func (d *fakeDocument) ParseFragment(html string) Element {
	return wrapFake(d.doc.ParseFragment(html)).(Element)
}

func (d *fakeDocument) GetElementByID(id string) (Element, bool) {
	n, ok := d.doc.GetElementByID(id)
	if !ok {
		return nil, false
	}
	return wrapFake(n).(Element), true
}

// fakeNode wraps a *fakedom.Node and implements Node, Element, Text and
// Comment uniformly (dispatching on Kind), mirroring how fakedom itself
// keeps one struct for all three node kinds.
type fakeNode struct {
	n *fakedom.Node
}

func wrapFake(n *fakedom.Node) Node {
	if n == nil {
		return nil
	}
	return &fakeNode{n: n}
}

func (f *fakeNode) Kind() Kind {
	switch f.n.Kind {
	case fakedom.KindElement:
		return KindElement
	case fakedom.KindText:
		return KindText
	default:
		return KindComment
	}
}

func (f *fakeNode) FirstChild() Node  { return wrapFake(f.n.FirstChild()) }
func (f *fakeNode) NextSibling() Node { return wrapFake(f.n.NextSibling()) }
func (f *fakeNode) ParentNode() Node  { return wrapFake(f.n.ParentNode()) }

func (f *fakeNode) AsElement() (Element, bool) {
	if f.n.Kind != fakedom.KindElement {
		return nil, false
	}
	return f, true
}

func (f *fakeNode) AsText() (Text, bool) {
	if f.n.Kind != fakedom.KindText {
		return nil, false
	}
	return f, true
}

func (f *fakeNode) AsComment() (Comment, bool) {
	if f.n.Kind != fakedom.KindComment {
		return nil, false
	}
	return f, true
}

func (f *fakeNode) Remove() { f.n.Remove() }

func (f *fakeNode) TagName() string { return f.n.Tag }

func (f *fakeNode) SetAttr(name, value string) { f.n.SetAttr(name, value) }
func (f *fakeNode) RemoveAttr(name string)      { f.n.RemoveAttr(name) }
func (f *fakeNode) GetAttr(name string) (string, bool) {
	return f.n.GetAttr(name)
}

func (f *fakeNode) SetBoolProp(name string, value bool) { f.n.SetBoolProp(name, value) }
func (f *fakeNode) SetValueProp(name, value string)     { f.n.SetValueProp(name, value) }

func (f *fakeNode) AppendChild(child Node) {
	f.n.AppendChild(unwrapFake(child))
}

func (f *fakeNode) InsertBefore(child Node, before Node) {
	f.n.InsertBefore(unwrapFake(child), unwrapFake(before))
}

func (f *fakeNode) RemoveChild(child Node) {
	f.n.RemoveChild(unwrapFake(child))
}

func (f *fakeNode) AddEventListener(name string, fn func(Event)) Listener {
	l := f.n.AddEventListener(name, func(ev *fakedom.Event) {
		fn(&fakeEvent{ev: ev})
	})
	return &fakeListener{l: l}
}

func (f *fakeNode) CloneNode(deep bool) Element {
	return wrapFake(f.n.CloneNode(deep)).(Element)
}

func (f *fakeNode) InnerHTML() string          { return f.n.InnerHTML() }
func (f *fakeNode) SetInnerHTML(html string)   { f.n.SetInnerHTML(html) }

func (f *fakeNode) Data() string       { return f.n.Data }
func (f *fakeNode) SetData(v string)   { f.n.Data = v }

func unwrapFake(n Node) *fakedom.Node {
	if n == nil {
		return nil
	}
	return n.(*fakeNode).n
}

type fakeListener struct {
	l *fakedom.Listener
}

func (l *fakeListener) Remove() { l.l.Remove() }

type fakeEvent struct {
	ev *fakedom.Event
}

func (e *fakeEvent) Type() string          { return e.ev.TypeName }
func (e *fakeEvent) Target() Element       { return wrapFake(e.ev.Target).(Element) }
func (e *fakeEvent) PreventDefault()       { e.ev.PreventDefault() }
func (e *fakeEvent) StopPropagation()      { e.ev.StopPropagation() }
