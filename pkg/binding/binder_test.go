package binding

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/motion/pkg/dom"
	"github.com/go-drift/motion/pkg/reactive"
)

func TestBindingsWaitForInstall(t *testing.T) {
	doc := dom.NewDocument()
	root := doc.Root().Append("div", "counter")
	count := reactive.NewCell(41)

	b := New("w")
	Text(b, dom.KeyRef(root, "value"), count, strconv.Itoa)

	count.Set(42)
	value := root.Append("span", "value")
	assert.Empty(t, value.Text(), "projection must not run before install")

	b.Install()
	assert.Equal(t, "42", value.Text())

	count.Set(43)
	assert.Equal(t, "43", value.Text())
}

func TestClassSwitchAndDerived(t *testing.T) {
	doc := dom.NewDocument()
	root := doc.Root().Append("button", "toggle")
	on := reactive.NewCell(false)
	label := reactive.Map[bool, string](on, func(v bool) string {
		if v {
			return "dark"
		}
		return "light"
	})

	b := New("w")
	ClassSwitch(b, dom.NodeRef(root), on, "bg-on", "bg-off")
	Text(b, dom.NodeRef(root), label, nil)
	b.Install()

	assert.True(t, root.HasClass("bg-off"))
	assert.Equal(t, "light", root.Text())

	on.Set(true)
	assert.True(t, root.HasClass("bg-on"))
	assert.False(t, root.HasClass("bg-off"))
	assert.Equal(t, "dark", root.Text())
}

func TestMissingTargetIsSkipped(t *testing.T) {
	doc := dom.NewDocument()
	root := doc.Root().Append("div", "w")
	cell := reactive.NewCell(1.0)

	b := New("w")
	Prop(b, dom.KeyRef(root, "gone"), "opacity", cell)
	require.NotPanics(t, b.Install)
	require.NotPanics(t, func() { cell.Set(0.5) })
}

func TestCloseStopsProjection(t *testing.T) {
	doc := dom.NewDocument()
	root := doc.Root().Append("div", "w")
	cell := reactive.NewCell("a")

	b := New("w")
	Attr(b, dom.NodeRef(root), "data-value", cell, nil)
	b.Install()
	b.Close()
	cell.Set("b")

	v, _ := root.Attr("data-value")
	assert.Equal(t, "a", v)
	assert.Equal(t, 0, cell.SubscriberCount())
}
