package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/motion/pkg/dom"
)

// UpdateSnapshotsEnv makes MatchesFile rewrite golden files instead of
// comparing against them when set to "1".
const UpdateSnapshotsEnv = "MOTION_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures a document subtree.
type Snapshot struct {
	Tree *SnapshotNode `json:"tree"`
}

// SnapshotNode is one serialized node. Numeric properties are rounded to
// two decimals so frame timing noise does not churn golden files.
type SnapshotNode struct {
	Tag      string             `json:"tag"`
	Key      string             `json:"key,omitempty"`
	Text     string             `json:"text,omitempty"`
	Classes  []string           `json:"classes,omitempty"`
	Attrs    map[string]string  `json:"attrs,omitempty"`
	Props    map[string]float64 `json:"props,omitempty"`
	Colors   map[string]string  `json:"colors,omitempty"`
	Children []*SnapshotNode    `json:"children,omitempty"`
}

// CaptureSnapshot serializes the subtree rooted at root.
func CaptureSnapshot(root *dom.Node) *Snapshot {
	return &Snapshot{Tree: captureNode(root)}
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When MOTION_UPDATE_SNAPSHOTS=1
// is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateSnapshotsEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateSnapshotsEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: %s=1 go test -run %s", path, diff, UpdateSnapshotsEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff between this snapshot and other. Returns
// empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return unifiedDiff(string(b), string(a))
}

func captureNode(n *dom.Node) *SnapshotNode {
	if n == nil {
		return nil
	}
	out := &SnapshotNode{
		Tag:     n.Tag(),
		Key:     n.Key(),
		Text:    n.Text(),
		Classes: n.Classes(),
	}
	if attrs := n.Attrs(); len(attrs) > 0 {
		out.Attrs = attrs
	}
	if props := n.Props(); len(props) > 0 {
		out.Props = make(map[string]float64, len(props))
		for name, v := range props {
			out.Props[name] = round2(v)
		}
	}
	if colors := n.Colors(); len(colors) > 0 {
		out.Colors = make(map[string]string, len(colors))
		for name, c := range colors {
			out.Colors[name] = c.Hex()
		}
	}
	if len(out.Classes) == 0 {
		out.Classes = nil
	}
	for _, child := range n.Children() {
		out.Children = append(out.Children, captureNode(child))
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &s, nil
}

// unifiedDiff produces a simple line-by-line diff.
func unifiedDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	for i := range max(len(expectedLines), len(actualLines)) {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e != a {
			if i < len(expectedLines) {
				fmt.Fprintf(&buf, "-%s\n", e)
			}
			if i < len(actualLines) {
				fmt.Fprintf(&buf, "+%s\n", a)
			}
		}
	}

	return buf.String()
}
