package dom

import (
	"io"
	"strings"

	"github.com/go-drift/motion/pkg/graphics"
)

// Writer identifies who issued a write ("bind", "handle:7").
type Writer string

// Document owns a node tree.
type Document struct {
	root    *Node
	nextID  int
	journal *Journal
}

// NewDocument creates a document with an attached root node.
func NewDocument() *Document {
	doc := &Document{journal: &Journal{}}
	doc.root = doc.newNode("root", "")
	doc.root.attached = true
	return doc
}

// Root returns the root node.
func (d *Document) Root() *Node { return d.root }

// Journal returns the write log.
func (d *Document) Journal() *Journal { return d.journal }

// Render writes a deterministic text dump of the attached tree.
func (d *Document) Render(w io.Writer) {
	d.root.render(w, 0)
}

// String renders the tree to a string.
func (d *Document) String() string {
	var sb strings.Builder
	d.Render(&sb)
	return sb.String()
}

func (d *Document) newNode(tag, key string) *Node {
	d.nextID++
	return &Node{
		doc:     d,
		id:      d.nextID,
		key:     key,
		tag:     tag,
		attrs:   make(map[string]string),
		classes: make(map[string]struct{}),
		props:   make(map[string]float64),
		colors:  make(map[string]graphics.Color),
	}
}

// Ref resolves a render target lazily, at write time.
//
// A ref never keeps a removed node alive as a target: resolving a ref whose
// node is missing or detached fails, and callers skip the write.
type Ref struct {
	root  *Node
	scope func() *Node
	key   string
	node  *Node
}

// KeyRef refers to the node with key under root.
func KeyRef(root *Node, key string) Ref {
	return Ref{root: root, key: key}
}

// ScopedRef refers to the node with key under whatever scope returns at
// resolve time. Widgets build refs before their subtree exists; the scope
// is nil until mount and the ref fails to resolve until then.
func ScopedRef(scope func() *Node, key string) Ref {
	return Ref{scope: scope, key: key}
}

// NodeRef refers to a specific node.
func NodeRef(n *Node) Ref {
	ref := Ref{node: n}
	if n != nil {
		ref.key = n.key
	}
	return ref
}

// Resolve returns the target node if it exists and is attached.
func (r Ref) Resolve() (*Node, bool) {
	n := r.node
	if n == nil {
		root := r.root
		if r.scope != nil {
			root = r.scope()
		}
		if root != nil {
			n = root.Find(r.key)
		}
	}
	if n == nil || !n.Attached() {
		return nil, false
	}
	return n, true
}

// Key returns the key the ref resolves by.
func (r Ref) Key() string { return r.key }

// Entry is one recorded write.
type Entry struct {
	Seq    int
	Writer Writer
	NodeID int
	Key    string
	Field  string
	Value  string
}

// Journal records writes in order.
type Journal struct {
	entries []Entry
	enabled bool
}

// Enable starts recording. Recording is off by default.
func (j *Journal) Enable() { j.enabled = true }

// Entries returns a copy of the recorded writes.
func (j *Journal) Entries() []Entry {
	return append([]Entry(nil), j.entries...)
}

// By returns the writes issued by writer.
func (j *Journal) By(writer Writer) []Entry {
	var out []Entry
	for _, e := range j.entries {
		if e.Writer == writer {
			out = append(out, e)
		}
	}
	return out
}

// Reset drops every recorded write.
func (j *Journal) Reset() { j.entries = nil }

func (j *Journal) record(writer Writer, n *Node, field, value string) {
	if !j.enabled {
		return
	}
	j.entries = append(j.entries, Entry{
		Seq:    len(j.entries) + 1,
		Writer: writer,
		NodeID: n.id,
		Key:    n.key,
		Field:  field,
		Value:  value,
	})
}
