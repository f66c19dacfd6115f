// Package binding projects reactive state onto the render tree.
//
// A Binder collects bindings while a widget is being constructed and
// installs them once its nodes exist. Installation runs every projection
// once, then re-runs each one whenever its source commits. Bindings only
// ever write presentation; they never read or start animations.
package binding

import (
	"fmt"

	"github.com/go-drift/motion/pkg/dom"
	"github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/reactive"
)

// Writer tags binder writes in the document journal.
const Writer dom.Writer = "bind"

type binding struct {
	source reactive.Source
	ref    dom.Ref
	apply  func(n *dom.Node)
}

// Binder owns the bindings of one widget instance.
type Binder struct {
	widget    string
	pending   []binding
	subs      reactive.Subscriptions
	installed bool
	closed    bool
}

// New creates a binder for the widget with the given id.
func New(widget string) *Binder {
	return &Binder{widget: widget}
}

// Text binds a node's text content to src.
func Text[T any](b *Binder, ref dom.Ref, src reactive.Readable[T], format func(T) string) {
	if format == nil {
		format = func(v T) string { return fmt.Sprint(v) }
	}
	b.add(src, ref, func(n *dom.Node) { n.SetText(Writer, format(src.Value())) })
}

// Attr binds an attribute to src.
func Attr[T any](b *Binder, ref dom.Ref, name string, src reactive.Readable[T], format func(T) string) {
	if format == nil {
		format = func(v T) string { return fmt.Sprint(v) }
	}
	b.add(src, ref, func(n *dom.Node) { n.SetAttr(Writer, name, format(src.Value())) })
}

// Class toggles class on the node while src is true.
func Class(b *Binder, ref dom.Ref, class string, src reactive.Readable[bool]) {
	b.add(src, ref, func(n *dom.Node) { n.SetClass(Writer, class, src.Value()) })
}

// ClassSwitch sets on while src is true and off otherwise.
func ClassSwitch(b *Binder, ref dom.Ref, src reactive.Readable[bool], on, off string) {
	b.add(src, ref, func(n *dom.Node) {
		v := src.Value()
		n.SetClass(Writer, on, v)
		n.SetClass(Writer, off, !v)
	})
}

// Prop binds a numeric style property for values that are not animated.
func Prop(b *Binder, ref dom.Ref, name string, src reactive.Readable[float64]) {
	b.add(src, ref, func(n *dom.Node) { n.SetProp(Writer, name, src.Value()) })
}

// Install runs every pending projection and subscribes it to its source.
// Bindings added after Install are installed immediately.
func (b *Binder) Install() {
	if b.installed || b.closed {
		return
	}
	b.installed = true
	pending := b.pending
	b.pending = nil
	for _, bd := range pending {
		b.install(bd)
	}
}

// Installed reports whether Install has run.
func (b *Binder) Installed() bool { return b.installed }

// Close removes every subscription. Projections stop running.
func (b *Binder) Close() {
	b.closed = true
	b.pending = nil
	b.subs.Unsubscribe()
}

func (b *Binder) add(src reactive.Source, ref dom.Ref, apply func(*dom.Node)) {
	if b.closed {
		return
	}
	bd := binding{source: src, ref: ref, apply: apply}
	if !b.installed {
		b.pending = append(b.pending, bd)
		return
	}
	b.install(bd)
}

func (b *Binder) install(bd binding) {
	run := func() {
		n, ok := bd.ref.Resolve()
		if !ok {
			errors.Report(errors.MissingTarget("binding.apply", b.widget, bd.ref.Key()))
			return
		}
		bd.apply(n)
	}
	run()
	b.subs.Add(bd.source.Watch(run))
}
