package reconcile_test

import (
	"testing"

	"github.com/aclueless/spair/dom"
	"github.com/aclueless/spair/reconcile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loggedTag int

const (
	tagLoggedOut loggedTag = iota
	tagLoggedIn
)

func TestMatchArmCreatesOnFirstSwitch(t *testing.T) {
	doc := dom.NewDocument()
	parent := doc.CreateElement("div")
	arm := reconcile.NewMatchArm[loggedTag](parent, nil)

	view, created := arm.Switch(tagLoggedOut, func() reconcile.View {
		el := doc.CreateElement("button")
		el.SetInnerHTML("Log in")
		return &item{el: el}
	})
	require.True(t, created)
	require.NotNil(t, view)
	child, ok := parent.FirstChild().AsElement()
	require.True(t, ok)
	assert.Equal(t, "button", child.TagName())
}

func TestMatchArmSameTagReusesView(t *testing.T) {
	doc := dom.NewDocument()
	parent := doc.CreateElement("div")
	arm := reconcile.NewMatchArm[loggedTag](parent, nil)

	first, _ := arm.Switch(tagLoggedOut, func() reconcile.View {
		return &item{el: doc.CreateElement("button")}
	})
	second, created := arm.Switch(tagLoggedOut, func() reconcile.View {
		t.Fatal("createFn must not run when the tag is unchanged")
		return nil
	})
	assert.False(t, created)
	assert.Same(t, first, second)
}

func TestMatchArmTagChangeDisposesOldView(t *testing.T) {
	doc := dom.NewDocument()
	parent := doc.CreateElement("div")
	arm := reconcile.NewMatchArm[loggedTag](parent, nil)

	arm.Switch(tagLoggedOut, func() reconcile.View {
		el := doc.CreateElement("button")
		el.SetInnerHTML("Log in")
		return &item{el: el}
	})
	arm.Switch(tagLoggedIn, func() reconcile.View {
		el := doc.CreateElement("span")
		el.SetInnerHTML("Welcome")
		return &item{el: el}
	})

	child, ok := parent.FirstChild().AsElement()
	require.True(t, ok)
	assert.Equal(t, "span", child.TagName())
	assert.Nil(t, child.NextSibling())
}

type arithTag int

const (
	tagA arithTag = iota
	tagB
)

func TestMatchArmSwitchAThenBKeepsMarkerPositionStable(t *testing.T) {
	doc := dom.NewDocument()
	parent := doc.CreateElement("div")
	marker := doc.CreateComment("match-arm")
	parent.AppendChild(marker)
	footer, ok := doc.CreateElement("footer").AsElement()
	require.True(t, ok)
	parent.AppendChild(footer)

	arm := reconcile.NewMatchArm[arithTag](parent, marker)

	arm.Switch(tagA, func() reconcile.View {
		el := doc.CreateElement("span")
		el.SetInnerHTML("a")
		return &item{el: el}
	})

	first, ok := parent.FirstChild().AsElement()
	require.True(t, ok)
	assert.Equal(t, "span", first.TagName())
	assert.Equal(t, dom.KindComment, first.NextSibling().Kind())

	arm.Switch(tagB, func() reconcile.View {
		el := doc.CreateElement("div")
		textNode := doc.CreateText("x")
		el.AppendChild(textNode)
		return &item{el: el}
	})

	first, ok = parent.FirstChild().AsElement()
	require.True(t, ok)
	assert.Equal(t, "div", first.TagName(), "span must be removed and div inserted before the marker")

	markerNode := first.NextSibling()
	require.Equal(t, dom.KindComment, markerNode.Kind())
	after, ok := markerNode.NextSibling().AsElement()
	require.True(t, ok)
	assert.Equal(t, "footer", after.TagName(), "marker's position relative to trailing siblings must be unchanged")
}
