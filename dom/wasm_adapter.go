//go:build js && wasm

package dom

import (
	"strings"
	"syscall/js"

	"github.com/aclueless/spair/logutil"
	domv2 "honnef.co/go/js/dom/v2"
)

// NewDocument returns the adapter wrapping the browser's global document,
// obtained through honnef.co/go/js/dom/v2 the same way
// _examples/ozanturksever-uiwgo/dom/dom.go does (dom.GetWindow().Document()).
// Node traversal and mutation below go through the underlying js.Value
// directly, the way that file's ElementBuilder falls back to
// element.Underlying().Call(...) for anything dom/v2 doesn't expose typed
// (addEventListener/removeEventListener, property writes).
func NewDocument() Document {
	return &wasmDocument{v: domv2.GetWindow().Document().Underlying()}
}

// logHostPanic recovers from a panicking host call (a thrown JS exception,
// surfaced by syscall/js as a Go panic), logs it via logutil and lets the
// caller return its zero value — matching the package doc's "log and
// swallow host errors" contract (§4.A) the same way
// _examples/ozanturksever-uiwgo/dom/inline_events.go recovers around every
// inline event handler it installs.
func logHostPanic(op string) {
	if r := recover(); r != nil {
		logutil.Logf("dom: host call %s failed: %v\n", op, r)
	}
}

type wasmDocument struct {
	v js.Value
}

func (d *wasmDocument) CreateElement(tag string) (el Element) {
	defer logHostPanic("createElement")
	return wrap(d.v.Call("createElement", tag)).(Element)
}

func (d *wasmDocument) CreateText(data string) (t Text) {
	defer logHostPanic("createTextNode")
	return wrap(d.v.Call("createTextNode", data)).(Text)
}

func (d *wasmDocument) CreateComment(data string) (c Comment) {
	defer logHostPanic("createComment")
	return wrap(d.v.Call("createComment", data)).(Comment)
}

// ParseFragment parses html by assigning it as innerHTML of a detached
// container element and handing that container back as the fragment root,
// mirroring template.Template's "parse once, clone the result" model (§4.B).
func (d *wasmDocument) ParseFragment(html string) (el Element) {
	defer logHostPanic("parseFragment")
	container := d.v.Call("createElement", "div")
	container.Set("innerHTML", html)
	return wrap(container).(Element)
}

func (d *wasmDocument) GetElementByID(id string) (el Element, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logutil.Logf("dom: host call %s failed: %v\n", "getElementById", r)
			el, ok = nil, false
		}
	}()
	found := d.v.Call("getElementById", id)
	if found.IsNull() || found.IsUndefined() {
		return nil, false
	}
	return wrap(found).(Element), true
}

// node adapts a raw js.Value DOM node into Node/Element/Text/Comment,
// dispatching on the DOM's own nodeType the way fakeNode dispatches on
// fakedom.Kind.
type node struct {
	v js.Value
}

func wrap(v js.Value) Node {
	if v.IsNull() || v.IsUndefined() {
		return nil
	}
	return &node{v: v}
}

const (
	domNodeTypeElement = 1
	domNodeTypeText    = 3
	domNodeTypeComment = 8
)

func (n *node) Kind() (k Kind) {
	defer func() {
		if r := recover(); r != nil {
			logutil.Logf("dom: host call %s failed: %v\n", "nodeType", r)
			k = KindElement
		}
	}()
	switch n.v.Get("nodeType").Int() {
	case domNodeTypeText:
		return KindText
	case domNodeTypeComment:
		return KindComment
	default:
		return KindElement
	}
}

func (n *node) FirstChild() (c Node) {
	defer logHostPanic("firstChild")
	return wrap(n.v.Get("firstChild"))
}

func (n *node) NextSibling() (s Node) {
	defer logHostPanic("nextSibling")
	return wrap(n.v.Get("nextSibling"))
}

func (n *node) ParentNode() (p Node) {
	defer logHostPanic("parentNode")
	return wrap(n.v.Get("parentNode"))
}

func (n *node) AsElement() (Element, bool) {
	if n.Kind() != KindElement {
		return nil, false
	}
	return n, true
}

func (n *node) AsText() (Text, bool) {
	if n.Kind() != KindText {
		return nil, false
	}
	return n, true
}

func (n *node) AsComment() (Comment, bool) {
	if n.Kind() != KindComment {
		return nil, false
	}
	return n, true
}

func (n *node) Remove() {
	defer logHostPanic("remove")
	if n.v.Get("remove").Type() == js.TypeFunction {
		n.v.Call("remove")
		return
	}
	if parent := n.v.Get("parentNode"); !parent.IsNull() {
		parent.Call("removeChild", n.v)
	}
}

func (n *node) TagName() (tag string) {
	defer logHostPanic("tagName")
	return strings.ToLower(n.v.Get("tagName").String())
}

func (n *node) SetAttr(name, value string) { defer logHostPanic("setAttribute"); n.v.Call("setAttribute", name, value) }
func (n *node) RemoveAttr(name string)      { defer logHostPanic("removeAttribute"); n.v.Call("removeAttribute", name) }

func (n *node) GetAttr(name string) (value string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logutil.Logf("dom: host call %s failed: %v\n", "getAttribute", r)
			value, ok = "", false
		}
	}()
	if !n.v.Call("hasAttribute", name).Bool() {
		return "", false
	}
	return n.v.Call("getAttribute", name).String(), true
}

func (n *node) SetBoolProp(name string, value bool) { defer logHostPanic("setBoolProp"); n.v.Set(name, value) }
func (n *node) SetValueProp(name, value string)     { defer logHostPanic("setValueProp"); n.v.Set(name, value) }

func (n *node) AppendChild(child Node) {
	defer logHostPanic("appendChild")
	n.v.Call("appendChild", child.(*node).v)
}

func (n *node) InsertBefore(child Node, before Node) {
	if before == nil {
		n.AppendChild(child)
		return
	}
	defer logHostPanic("insertBefore")
	n.v.Call("insertBefore", child.(*node).v, before.(*node).v)
}

func (n *node) RemoveChild(child Node) {
	defer logHostPanic("removeChild")
	n.v.Call("removeChild", child.(*node).v)
}

func (n *node) AddEventListener(name string, fn func(Event)) (l Listener) {
	defer func() {
		if r := recover(); r != nil {
			logutil.Logf("dom: host call %s failed: %v\n", "addEventListener", r)
			l = &wasmListener{}
		}
	}()
	jsFunc := js.FuncOf(func(this js.Value, args []js.Value) any {
		defer func() {
			if r := recover(); r != nil {
				logutil.Logf("dom: event handler for %s panicked: %v\n", name, r)
			}
		}()
		fn(&wasmEvent{v: args[0]})
		return nil
	})
	n.v.Call("addEventListener", name, jsFunc)
	return &wasmListener{v: n.v, name: name, fn: jsFunc}
}

func (n *node) CloneNode(deep bool) (el Element) {
	defer logHostPanic("cloneNode")
	return wrap(n.v.Call("cloneNode", deep)).(Element)
}

func (n *node) InnerHTML() (html string) {
	defer logHostPanic("innerHTML")
	return n.v.Get("innerHTML").String()
}

func (n *node) SetInnerHTML(html string) { defer logHostPanic("innerHTML"); n.v.Set("innerHTML", html) }

func (n *node) Data() (data string) { defer logHostPanic("data"); return n.v.Get("data").String() }
func (n *node) SetData(v string)    { defer logHostPanic("data"); n.v.Set("data", v) }

type wasmListener struct {
	v    js.Value
	name string
	fn   js.Func
}

func (l *wasmListener) Remove() {
	if l.name == "" {
		return // a listener that failed to install in the first place
	}
	defer logHostPanic("removeEventListener")
	l.v.Call("removeEventListener", l.name, l.fn)
	l.fn.Release()
}

type wasmEvent struct {
	v js.Value
}

func (e *wasmEvent) Type() (t string) { defer logHostPanic("type"); return e.v.Get("type").String() }
func (e *wasmEvent) Target() (el Element) {
	defer logHostPanic("target")
	return wrap(e.v.Get("target")).(Element)
}
func (e *wasmEvent) PreventDefault()  { defer logHostPanic("preventDefault"); e.v.Call("preventDefault") }
func (e *wasmEvent) StopPropagation() { defer logHostPanic("stopPropagation"); e.v.Call("stopPropagation") }
