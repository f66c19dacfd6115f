package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/go-drift/motion/cmd/motion/internal/config"
	"github.com/go-drift/motion/cmd/motion/internal/scenario"
	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/dom"
)

// showFrame is the interval between frames in the terminal showcase.
const showFrame = 16 * time.Millisecond

const maxShownEvents = 6

var showCmd = &cobra.Command{
	Use:   "show [scenario.yaml]",
	Short: "Play with the widgets in the terminal",
	Long: `Mounts the widgets of a scenario (or every widget, without an argument)
and renders their node trees live. Tab switches widgets; the keys listed
at the bottom drive the selected one.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		sc, err := config.LoadOptional(path)
		if err != nil {
			return err
		}
		lipgloss.SetColorProfile(termenv.EnvColorProfile())

		m, err := newShowModel(sc)
		if err != nil {
			return err
		}
		defer m.dispose()
		_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

type frameMsg time.Time

func nextFrame() tea.Cmd {
	return tea.Tick(showFrame, func(t time.Time) tea.Msg { return frameMsg(t) })
}

type showStyles struct {
	tab, activeTab lipgloss.Style
	key, class     lipgloss.Style
	prop, text     lipgloss.Style
	event, help    lipgloss.Style
	body           lipgloss.Style
}

func newShowStyles() showStyles {
	return showStyles{
		tab:       lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#9ca3af")),
		activeTab: lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#3b82f6")),
		key:       lipgloss.NewStyle().Bold(true),
		class:     lipgloss.NewStyle().Foreground(lipgloss.Color("#a78bfa")),
		prop:      lipgloss.NewStyle().Foreground(lipgloss.Color("#22d3ee")),
		text:      lipgloss.NewStyle().Foreground(lipgloss.Color("#fbbf24")),
		event:     lipgloss.NewStyle().Foreground(lipgloss.Color("#34d399")),
		help:      lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280")),
		body:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

type keyBinding struct {
	key, label  string
	action, arg string
}

// showBindings maps keys to widget actions per kind. Chip input editing is
// handled separately.
var showBindings = map[string][]keyBinding{
	"toggle":       {{"space", "toggle", "click", ""}},
	"like":         {{"space", "like", "click", ""}},
	"like-variant": {{"space", "like", "click", ""}},
	"counter":      {{"+", "increment", "increment", ""}, {"-", "decrement", "decrement", ""}, {"0", "reset", "reset", ""}},
	"rating": {
		{"1", "rate 1", "click", "1"}, {"2", "rate 2", "click", "2"}, {"3", "rate 3", "click", "3"},
		{"4", "rate 4", "click", "4"}, {"5", "rate 5", "click", "5"},
	},
	"progress":   {{"s", "start", "start", ""}, {"r", "reset", "reset", ""}},
	"tasks":      {{"1", "task 1", "toggle", "1"}, {"2", "task 2", "toggle", "2"}, {"3", "task 3", "toggle", "3"}},
	"pulse":      {{"space", "click", "click", ""}},
	"hover-card": {{"e", "enter", "enter", ""}, {"l", "leave", "leave", ""}, {"space", "click", "click", ""}},
}

type showModel struct {
	doc      *dom.Document
	widgets  []*scenario.Widget
	selected int
	input    map[string]string // chip input buffers by widget id
	events   []string
	err      string
	styles   showStyles
}

func newShowModel(sc *config.Scenario) (*showModel, error) {
	m := &showModel{
		doc:    dom.NewDocument(),
		input:  make(map[string]string),
		styles: newShowStyles(),
	}
	emit := func(widget, name string, v any) {
		line := fmt.Sprintf("%s %s", widget, name)
		if v != struct{}{} {
			line += fmt.Sprintf(" %+v", v)
		}
		m.events = append(m.events, line)
		if len(m.events) > maxShownEvents {
			m.events = m.events[len(m.events)-maxShownEvents:]
		}
	}
	for _, cfg := range sc.Widgets {
		w, err := scenario.Build(cfg, emit)
		if err != nil {
			m.dispose()
			return nil, err
		}
		w.Mount(m.doc.Root())
		m.widgets = append(m.widgets, w)
	}
	if len(m.widgets) == 0 {
		return nil, fmt.Errorf("scenario has no widgets")
	}
	return m, nil
}

func (m *showModel) dispose() {
	for _, w := range m.widgets {
		w.Dispose()
	}
}

func (m *showModel) Init() tea.Cmd {
	return nextFrame()
}

func (m *showModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		animation.StepTickers()
		return m, nextFrame()
	case tea.KeyMsg:
		return m, m.handleKey(msg.String())
	}
	return m, nil
}

func (m *showModel) handleKey(key string) tea.Cmd {
	switch key {
	case "ctrl+c", "esc":
		return tea.Quit
	case "tab", "right":
		m.selected = (m.selected + 1) % len(m.widgets)
		return nil
	case "shift+tab", "left":
		m.selected = (m.selected + len(m.widgets) - 1) % len(m.widgets)
		return nil
	}

	w := m.widgets[m.selected]
	if key == " " {
		key = "space"
	}
	if w.Kind == "chips" {
		m.editChips(w, key)
		return nil
	}
	if key == "q" {
		return tea.Quit
	}
	for _, b := range showBindings[w.Kind] {
		if b.key == key {
			m.do(w, b.action, b.arg)
		}
	}
	return nil
}

func (m *showModel) editChips(w *scenario.Widget, key string) {
	buf := m.input[w.ID]
	switch key {
	case "enter":
		m.do(w, "key", "Enter")
		buf = ""
	case "backspace":
		if buf == "" {
			m.do(w, "key", "Backspace")
			return
		}
		buf = buf[:len(buf)-1]
		m.do(w, "input", buf)
	case "space":
		buf += " "
		m.do(w, "input", buf)
	default:
		if len([]rune(key)) != 1 {
			return
		}
		buf += key
		m.do(w, "input", buf)
	}
	m.input[w.ID] = buf
}

func (m *showModel) do(w *scenario.Widget, action, arg string) {
	m.err = ""
	if err := w.Do(action, arg); err != nil {
		m.err = err.Error()
	}
}

func (m *showModel) View() string {
	st := m.styles
	var b strings.Builder

	tabs := make([]string, len(m.widgets))
	for i, w := range m.widgets {
		style := st.tab
		if i == m.selected {
			style = st.activeTab
		}
		tabs[i] = style.Render(w.ID)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n")

	w := m.widgets[m.selected]
	var tree strings.Builder
	if root := w.Instance().Root(); root != nil {
		m.renderNode(&tree, root, 0)
	}
	b.WriteString(st.body.Render(strings.TrimRight(tree.String(), "\n")))
	b.WriteString("\n")

	if w.Kind == "chips" {
		fmt.Fprintf(&b, "input: %s_\n", m.input[w.ID])
	}
	for _, e := range m.events {
		b.WriteString(st.event.Render("• "+e) + "\n")
	}
	if m.err != "" {
		b.WriteString(m.err + "\n")
	}
	b.WriteString(st.help.Render(m.help(w)))
	return b.String()
}

func (m *showModel) help(w *scenario.Widget) string {
	parts := []string{"tab next", "shift+tab prev"}
	if w.Kind == "chips" {
		parts = append(parts, "type to edit", "enter add", "backspace remove")
	}
	for _, b := range showBindings[w.Kind] {
		parts = append(parts, b.key+" "+b.label)
	}
	parts = append(parts, "esc quit")
	return strings.Join(parts, " · ")
}

func (m *showModel) renderNode(b *strings.Builder, n *dom.Node, depth int) {
	st := m.styles
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(st.key.Render(n.Tag() + "#" + n.Key()))
	for _, c := range n.Classes() {
		b.WriteString(" " + st.class.Render("."+c))
	}
	props := n.Props()
	for _, name := range sortedKeys(props) {
		b.WriteString(" " + st.prop.Render(fmt.Sprintf("%s=%.2f", name, props[name])))
	}
	colors := n.Colors()
	for _, name := range sortedKeys(colors) {
		hex := colors[name].Hex()
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
		b.WriteString(fmt.Sprintf(" %s=%s%s", name, swatch, hex))
	}
	if t := n.Text(); t != "" {
		b.WriteString(" " + st.text.Render(fmt.Sprintf("%q", t)))
	}
	b.WriteString("\n")
	for _, c := range n.Children() {
		m.renderNode(b, c, depth+1)
	}
}
