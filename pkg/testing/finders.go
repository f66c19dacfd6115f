package testing

import (
	"fmt"
	"strings"

	"github.com/go-drift/motion/pkg/dom"
)

// Finder locates nodes in a document.
type Finder interface {
	// Evaluate returns all matching nodes under root (depth-first pre-order).
	Evaluate(root *dom.Node) []*dom.Node
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	nodes  []*dom.Node
	finder Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() *dom.Node {
	if len(r.nodes) == 0 {
		panic(fmt.Sprintf("Finder found no nodes: %s", r.description()))
	}
	return r.nodes[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() *dom.Node {
	if len(r.nodes) == 0 {
		return nil
	}
	return r.nodes[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) *dom.Node {
	if index < 0 || index >= len(r.nodes) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.nodes), r.description()))
	}
	return r.nodes[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []*dom.Node {
	return r.nodes
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.nodes)
}

// Exists reports whether at least one node matched.
func (r FinderResult) Exists() bool {
	return len(r.nodes) > 0
}

// Texts returns the text of every match.
func (r FinderResult) Texts() []string {
	out := make([]string, len(r.nodes))
	for i, n := range r.nodes {
		out[i] = n.Text()
	}
	return out
}

func (r FinderResult) description() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

type predicateFinder struct {
	fn   func(*dom.Node) bool
	desc string
}

func (f *predicateFinder) Evaluate(root *dom.Node) []*dom.Node {
	return collectMatches(root, f.fn)
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByKey matches nodes with the exact key.
func ByKey(key string) Finder {
	return &predicateFinder{
		fn:   func(n *dom.Node) bool { return n.Key() == key },
		desc: fmt.Sprintf("ByKey(%q)", key),
	}
}

// ByKeyPrefix matches nodes whose key starts with prefix ("chip-", "particle-").
func ByKeyPrefix(prefix string) Finder {
	return &predicateFinder{
		fn:   func(n *dom.Node) bool { return n.Key() != "" && strings.HasPrefix(n.Key(), prefix) },
		desc: fmt.Sprintf("ByKeyPrefix(%q)", prefix),
	}
}

// ByTag matches nodes with the given tag.
func ByTag(tag string) Finder {
	return &predicateFinder{
		fn:   func(n *dom.Node) bool { return n.Tag() == tag },
		desc: fmt.Sprintf("ByTag(%q)", tag),
	}
}

// ByClass matches nodes carrying class.
func ByClass(class string) Finder {
	return &predicateFinder{
		fn:   func(n *dom.Node) bool { return n.HasClass(class) },
		desc: fmt.Sprintf("ByClass(%q)", class),
	}
}

// ByText matches nodes with exact text.
func ByText(text string) Finder {
	return &predicateFinder{
		fn:   func(n *dom.Node) bool { return n.Text() == text },
		desc: fmt.Sprintf("ByText(%q)", text),
	}
}

// ByTextContaining matches nodes whose text contains substring.
func ByTextContaining(substring string) Finder {
	return &predicateFinder{
		fn:   func(n *dom.Node) bool { return strings.Contains(n.Text(), substring) },
		desc: fmt.Sprintf("ByTextContaining(%q)", substring),
	}
}

// ByPredicate matches nodes satisfying fn.
func ByPredicate(fn func(*dom.Node) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate(...)"}
}

// descendantFinder finds nodes matching 'matching' that are descendants
// of nodes matching 'of'.
type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(root *dom.Node) []*dom.Node {
	var results []*dom.Node
	seen := make(map[*dom.Node]bool)
	for _, ancestor := range f.of.Evaluate(root) {
		for _, child := range ancestor.Children() {
			for _, match := range f.matching.Evaluate(child) {
				if !seen[match] {
					seen[match] = true
					results = append(results, match)
				}
			}
		}
	}
	return results
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant matches nodes found by matching inside the subtrees of nodes
// found by of. The ancestors themselves are excluded.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}

func collectMatches(root *dom.Node, predicate func(*dom.Node) bool) []*dom.Node {
	var results []*dom.Node
	walkTree(root, func(n *dom.Node) bool {
		if predicate(n) {
			results = append(results, n)
		}
		return true
	})
	return results
}

// walkTree performs a depth-first pre-order traversal.
// The visitor returns false to stop descending.
func walkTree(root *dom.Node, visitor func(*dom.Node) bool) {
	if root == nil || !visitor(root) {
		return
	}
	for _, child := range root.Children() {
		walkTree(child, visitor)
	}
}
