package fakedom_test

import (
	"testing"

	"github.com/aclueless/spair/internal/fakedom"
	"github.com/stretchr/testify/assert"
)

func TestAppendInsertRemove(t *testing.T) {
	root := fakedom.NewElement("ul")
	a := fakedom.NewElement("li")
	b := fakedom.NewElement("li")
	c := fakedom.NewElement("li")

	root.AppendChild(a)
	root.AppendChild(c)
	root.InsertBefore(b, c)

	assert.Equal(t, []*fakedom.Node{a, b, c}, root.Children)

	root.RemoveChild(b)
	assert.Equal(t, []*fakedom.Node{a, c}, root.Children)

	a.Remove()
	assert.Nil(t, a.ParentNode())
	assert.Equal(t, []*fakedom.Node{c}, root.Children)
}

func TestDispatchStopsOnStopPropagation(t *testing.T) {
	el := fakedom.NewElement("div")
	var calls []int
	el.AddEventListener("click", func(ev *fakedom.Event) {
		calls = append(calls, 1)
		ev.StopPropagation()
	})
	el.AddEventListener("click", func(ev *fakedom.Event) {
		calls = append(calls, 2)
	})

	el.Dispatch("click")
	assert.Equal(t, []int{1}, calls)
}

func TestListenerRemoveIsIdempotent(t *testing.T) {
	el := fakedom.NewElement("div")
	fired := 0
	l := el.AddEventListener("click", func(ev *fakedom.Event) { fired++ })

	l.Remove()
	l.Remove()
	el.Dispatch("click")
	assert.Equal(t, 0, fired)
}

func TestParseFragmentNested(t *testing.T) {
	frag := fakedom.NewDocument().ParseFragment(`<div id="x"><p>hello <b>world</b></p><br></div>`)
	div := frag.FirstChild()
	assert.Equal(t, "div", div.Tag)
	id, ok := div.GetAttr("id")
	assert.True(t, ok)
	assert.Equal(t, "x", id)

	p := div.FirstChild()
	assert.Equal(t, "p", p.Tag)
	assert.Len(t, p.Children, 2)
	assert.Equal(t, fakedom.KindText, p.Children[0].Kind)
	assert.Equal(t, "hello ", p.Children[0].Data)
	assert.Equal(t, "b", p.Children[1].Tag)

	br := div.Children[1]
	assert.Equal(t, "br", br.Tag)
	assert.Empty(t, br.Children)
}

func TestCloneNodeDoesNotCloneListeners(t *testing.T) {
	el := fakedom.NewElement("button")
	fired := 0
	el.AddEventListener("click", func(ev *fakedom.Event) { fired++ })

	clone := el.CloneNode(false)
	clone.Dispatch("click")
	assert.Equal(t, 0, fired)
}

func TestInnerHTMLRoundTrip(t *testing.T) {
	doc := fakedom.NewDocument()
	root := doc.CreateElement("div")
	root.SetInnerHTML(`<span class="a">x</span>`)
	assert.Equal(t, `<span class="a">x</span>`, root.InnerHTML())
}

func TestGetElementByIDSearchesWholeTree(t *testing.T) {
	doc := fakedom.NewDocument()
	root := doc.CreateElement("div")
	child := doc.CreateElement("span")
	child.SetAttr("id", "target")
	root.AppendChild(child)
	doc.Attach(root)

	found, ok := doc.GetElementByID("target")
	assert.True(t, ok)
	assert.Same(t, child, found)
}
