// Package config loads motion scenario files.
//
// A scenario names the widgets to build and the input steps to replay
// against them:
//
//	version: v1
//	frame: 16ms
//	widgets:
//	  - id: tags
//	    kind: chips
//	    chips: [React, TypeScript]
//	steps:
//	  - widget: tags
//	    action: input
//	    arg: Vue
//	  - widget: tags
//	    action: key
//	    arg: Enter
//	  - wait: 300ms
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/motion/pkg/widgets"
)

// SupportedMajor is the scenario format major version this build reads.
const SupportedMajor = "v1"

// DefaultFrame is the frame interval when a scenario does not set one.
const DefaultFrame = 16 * time.Millisecond

// ErrUnsupportedVersion is returned for scenarios written for another major version.
var ErrUnsupportedVersion = errors.New("unsupported scenario version")

// Scenario is a parsed motion.yaml.
type Scenario struct {
	Version string        `yaml:"version,omitempty"`
	Frame   time.Duration `yaml:"frame,omitempty"`
	Widgets []Widget      `yaml:"widgets"`
	Steps   []Step        `yaml:"steps"`
}

// Widget declares one widget instance and its initial inputs. Only the
// fields meaningful for Kind are read.
type Widget struct {
	ID      string `yaml:"id"`
	Kind    string `yaml:"kind"`
	Variant string `yaml:"variant,omitempty"`

	On       bool           `yaml:"on,omitempty"`
	Liked    bool           `yaml:"liked,omitempty"`
	Count    *int           `yaml:"count,omitempty"`
	Value    int            `yaml:"value,omitempty"`
	Rating   int            `yaml:"rating,omitempty"`
	Progress int            `yaml:"progress,omitempty"`
	Chips    []string       `yaml:"chips,omitempty"`
	Tasks    []widgets.Task `yaml:"tasks,omitempty"`
}

// Step is either an action on a widget or a pause.
type Step struct {
	Widget string        `yaml:"widget,omitempty"`
	Action string        `yaml:"action,omitempty"`
	Arg    string        `yaml:"arg,omitempty"`
	Wait   time.Duration `yaml:"wait,omitempty"`
}

// Load reads and validates the scenario at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return Parse(data)
}

// LoadOptional reads the scenario at path, or returns [Default] when path
// is empty or does not exist.
func LoadOptional(path string) (*Scenario, error) {
	if path == "" {
		return Default(), nil
	}
	sc, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return sc, err
}

// Parse decodes and validates a scenario document.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := sc.resolve(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Default is the built-in scenario: every widget, one interaction each.
func Default() *Scenario {
	sc := &Scenario{
		Widgets: []Widget{
			{ID: "toggle", Kind: "toggle"},
			{ID: "like", Kind: "like"},
			{ID: "star", Kind: "like-variant", Variant: "star"},
			{ID: "counter", Kind: "counter"},
			{ID: "rating", Kind: "rating"},
			{ID: "chips", Kind: "chips", Chips: widgets.DefaultChips},
			{ID: "progress", Kind: "progress"},
			{ID: "tasks", Kind: "tasks", Tasks: widgets.DefaultTasks()},
			{ID: "pulse", Kind: "pulse"},
			{ID: "card", Kind: "hover-card"},
			{ID: "spinner", Kind: "spinner"},
		},
		Steps: []Step{
			{Widget: "toggle", Action: "click"},
			{Widget: "like", Action: "click"},
			{Widget: "star", Action: "click"},
			{Widget: "counter", Action: "increment"},
			{Widget: "counter", Action: "increment"},
			{Widget: "rating", Action: "click", Arg: "4"},
			{Widget: "chips", Action: "input", Arg: "Vue"},
			{Widget: "chips", Action: "key", Arg: "Enter"},
			{Widget: "tasks", Action: "toggle", Arg: "1"},
			{Widget: "card", Action: "enter"},
			{Widget: "progress", Action: "start"},
			{Wait: 3 * time.Second},
			{Widget: "chips", Action: "key", Arg: "Backspace"},
			{Wait: 500 * time.Millisecond},
		},
	}
	if err := sc.resolve(); err != nil {
		panic(err)
	}
	return sc
}

func (sc *Scenario) resolve() error {
	v := strings.TrimSpace(sc.Version)
	if v == "" {
		v = SupportedMajor
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedVersion, sc.Version)
	}
	if semver.Major(v) != SupportedMajor {
		return fmt.Errorf("%w: %s (this build reads %s)", ErrUnsupportedVersion, v, SupportedMajor)
	}
	sc.Version = semver.Canonical(v)

	if sc.Frame <= 0 {
		sc.Frame = DefaultFrame
	}

	ids := make(map[string]bool, len(sc.Widgets))
	for i, w := range sc.Widgets {
		if strings.TrimSpace(w.ID) == "" {
			return fmt.Errorf("widget %d: missing id", i)
		}
		if ids[w.ID] {
			return fmt.Errorf("widget %q: duplicate id", w.ID)
		}
		if w.Kind == "" {
			return fmt.Errorf("widget %q: missing kind", w.ID)
		}
		ids[w.ID] = true
	}
	for i, st := range sc.Steps {
		switch {
		case st.Widget == "" && st.Wait <= 0:
			return fmt.Errorf("step %d: needs a widget or a wait", i)
		case st.Widget != "" && !ids[st.Widget]:
			return fmt.Errorf("step %d: unknown widget %q", i, st.Widget)
		case st.Widget != "" && st.Action == "":
			return fmt.Errorf("step %d: missing action", i)
		}
	}
	return nil
}
