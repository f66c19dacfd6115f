// Package dom provides the render target that widgets project their state into.
//
// The tree is opaque to widget logic: bindings and animations write to it,
// nothing reads it back as a source of truth. Every write is recorded in the
// document [Journal] together with the writer that issued it.
package dom

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/go-drift/motion/pkg/graphics"
)

// Node is one element in the render tree.
type Node struct {
	doc      *Document
	id       int
	key      string
	tag      string
	text     string
	attrs    map[string]string
	classes  map[string]struct{}
	props    map[string]float64
	colors   map[string]graphics.Color
	parent   *Node
	children []*Node
	attached bool
}

// ID returns the document-unique node id.
func (n *Node) ID() int { return n.id }

// Key returns the lookup key assigned at creation ("knob", "chip-3").
func (n *Node) Key() string { return n.key }

// Tag returns the element tag.
func (n *Node) Tag() string { return n.tag }

// Text returns the text content.
func (n *Node) Text() string { return n.text }

// Parent returns the parent node, or nil for roots and detached nodes.
func (n *Node) Parent() *Node { return n.parent }

// Children returns a copy of the child list.
func (n *Node) Children() []*Node { return slices.Clone(n.children) }

// Attached reports whether the node is reachable from the document root.
func (n *Node) Attached() bool { return n.attached }

// Attr returns an attribute value.
func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// HasClass reports whether class is set.
func (n *Node) HasClass(class string) bool {
	_, ok := n.classes[class]
	return ok
}

// Classes returns the sorted class list.
func (n *Node) Classes() []string {
	return slices.Sorted(maps.Keys(n.classes))
}

// Prop returns a numeric style property and whether it was ever written.
func (n *Node) Prop(name string) (float64, bool) {
	v, ok := n.props[name]
	return v, ok
}

// PropOr returns a numeric style property or fallback when unset.
func (n *Node) PropOr(name string, fallback float64) float64 {
	if v, ok := n.props[name]; ok {
		return v
	}
	return fallback
}

// Color returns a color style property.
func (n *Node) Color(name string) (graphics.Color, bool) {
	c, ok := n.colors[name]
	return c, ok
}

// Attrs returns a copy of the attributes.
func (n *Node) Attrs() map[string]string { return maps.Clone(n.attrs) }

// Props returns a copy of the numeric style properties.
func (n *Node) Props() map[string]float64 { return maps.Clone(n.props) }

// Colors returns a copy of the color style properties.
func (n *Node) Colors() map[string]graphics.Color { return maps.Clone(n.colors) }

// SetText replaces the text content.
func (n *Node) SetText(writer Writer, text string) {
	n.text = text
	n.doc.journal.record(writer, n, "text", text)
}

// SetAttr sets an attribute.
func (n *Node) SetAttr(writer Writer, name, value string) {
	n.attrs[name] = value
	n.doc.journal.record(writer, n, "attr:"+name, value)
}

// SetClass adds or removes a class.
func (n *Node) SetClass(writer Writer, class string, on bool) {
	if on {
		n.classes[class] = struct{}{}
	} else {
		delete(n.classes, class)
	}
	n.doc.journal.record(writer, n, "class:"+class, strconv.FormatBool(on))
}

// SetProp writes a numeric style property (scale, opacity, x, ...).
func (n *Node) SetProp(writer Writer, name string, value float64) {
	n.props[name] = value
	n.doc.journal.record(writer, n, name, strconv.FormatFloat(value, 'f', 4, 64))
}

// SetColor writes a color style property.
func (n *Node) SetColor(writer Writer, name string, c graphics.Color) {
	n.colors[name] = c
	n.doc.journal.record(writer, n, name, c.Hex())
}

// Append creates a child element with key and appends it.
func (n *Node) Append(tag, key string) *Node {
	child := n.doc.newNode(tag, key)
	child.parent = n
	n.children = append(n.children, child)
	child.setAttached(n.attached)
	return child
}

// Insert creates a child element at index.
func (n *Node) Insert(index int, tag, key string) *Node {
	child := n.doc.newNode(tag, key)
	child.parent = n
	index = min(max(index, 0), len(n.children))
	n.children = slices.Insert(n.children, index, child)
	child.setAttached(n.attached)
	return child
}

// Remove detaches the node and its subtree. Removing a detached node is a no-op.
func (n *Node) Remove() {
	if n.parent != nil {
		siblings := n.parent.children
		if i := slices.Index(siblings, n); i >= 0 {
			n.parent.children = slices.Delete(siblings, i, i+1)
		}
		n.parent = nil
	}
	n.setAttached(false)
}

// Find returns the first node in the subtree (n included) with key.
func (n *Node) Find(key string) *Node {
	if n.key == key {
		return n
	}
	for _, c := range n.children {
		if found := c.Find(key); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every descendant whose key has prefix.
func (n *Node) FindAll(prefix string) []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(cur *Node) {
		if strings.HasPrefix(cur.key, prefix) {
			out = append(out, cur)
		}
		for _, c := range cur.children {
			walk(c)
		}
	}
	walk(n)
	return out
}

func (n *Node) setAttached(attached bool) {
	n.attached = attached
	for _, c := range n.children {
		c.setAttached(attached)
	}
}

func (n *Node) render(w io.Writer, depth int) {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString("<")
	sb.WriteString(n.tag)
	if n.key != "" {
		fmt.Fprintf(&sb, " #%s", n.key)
	}
	if len(n.classes) > 0 {
		fmt.Fprintf(&sb, " .%s", strings.Join(n.Classes(), "."))
	}
	for _, name := range slices.Sorted(maps.Keys(n.attrs)) {
		fmt.Fprintf(&sb, " %s=%q", name, n.attrs[name])
	}
	for _, name := range slices.Sorted(maps.Keys(n.props)) {
		fmt.Fprintf(&sb, " %s=%s", name, strconv.FormatFloat(n.props[name], 'f', 2, 64))
	}
	for _, name := range slices.Sorted(maps.Keys(n.colors)) {
		fmt.Fprintf(&sb, " %s=%s", name, n.colors[name].Hex())
	}
	sb.WriteString(">")
	if n.text != "" {
		sb.WriteString(" ")
		sb.WriteString(n.text)
	}
	sb.WriteString("\n")
	io.WriteString(w, sb.String())
	for _, c := range n.children {
		c.render(w, depth+1)
	}
}
