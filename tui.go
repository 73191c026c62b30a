// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/avltree/avl"
	"github.com/cybrota/avltree/kinds"
	"github.com/patrickmn/go-cache"
)

const emptyTreeHint = "Type values and press enter to grow the tree..."

// keyMap holds the bindings of the interactive editor
type keyMap struct {
	Insert key.Binding
	Order  key.Binding
	Copy   key.Binding
	Reset  key.Binding
	Help   key.Binding
	Up     key.Binding
	Down   key.Binding
	PgUp   key.Binding
	PgDown key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Insert: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "insert")),
		Order:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next order")),
		Copy:   key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy traversal")),
		Reset:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),
		Help:   key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Up:     key.NewBinding(key.WithKeys("up")),
		Down:   key.NewBinding(key.WithKeys("down")),
		PgUp:   key.NewBinding(key.WithKeys("pgup")),
		PgDown: key.NewBinding(key.WithKeys("pgdown")),
		Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

// footer lists the bindings shown under the panels
func (k keyMap) footer() []key.Binding {
	return []key.Binding{k.Insert, k.Order, k.Copy, k.Reset, k.Help, k.Quit}
}

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	input   textinput.Model
	diagram viewport.Model
	help    viewport.Model

	// Data
	manager  *kinds.Manager
	kindName string
	session  kinds.Session // nil until the first insert picks a kind
	renders  *cache.Cache
	config   *Config
	orders   []avl.Order

	// State
	orderIndex    int
	showHelp      bool
	status        string
	statusIsError bool
	lastRotations []kinds.RotationEvent

	keys            keyMap
	styles          *Styles
	glamourRenderer *glamour.TermRenderer
	copyFn          func(string) error

	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	InputPrompt    lipgloss.Style
	Traversal      lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles derives the styles from the detected color scheme
func NewStyles(scheme *ColorScheme) *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.BorderFocus).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.Border),
		Title: lipgloss.NewStyle().
			Foreground(scheme.Primary).
			Padding(0, 1).
			Bold(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(scheme.Accent).
			Bold(true),
		Traversal: lipgloss.NewStyle().
			Foreground(scheme.Text),
		HelpKey: lipgloss.NewStyle().
			Foreground(scheme.TextMuted).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(scheme.TextMuted),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(scheme.Success).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(scheme.Error).
			Bold(true),
	}
}

// InitialModel creates the initial model. kindName may be "auto".
func InitialModel(manager *kinds.Manager, kindName string, renders *cache.Cache, config *Config) Model {
	ti := textinput.New()
	ti.Placeholder = "63 2 -10 ..."
	ti.Prompt = "➜ "
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 50

	diagram := viewport.New(0, 0)
	diagram.SetContent(emptyTreeHint)

	orders, err := config.TraversalOrders()
	if err != nil || len(orders) == 0 {
		orders = avl.Orders
	}

	scheme := GetColorScheme()
	ti.PromptStyle = lipgloss.NewStyle().Foreground(scheme.Accent).Bold(true)

	return Model{
		input:    ti,
		diagram:  diagram,
		help:     viewport.New(0, 0),
		manager:  manager,
		kindName: kindName,
		renders:  renders,
		config:   config,
		orders:   orders,
		keys:     newKeyMap(),
		styles:   NewStyles(scheme),
		copyFn:   clipboardWrite,
	}
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Insert):
			m.insertLine(m.input.Value())
			return m, nil
		case key.Matches(msg, m.keys.Order):
			m.orderIndex = (m.orderIndex + 1) % len(m.orders)
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			m.copyTraversal()
			return m, nil
		case key.Matches(msg, m.keys.Reset):
			m.reset()
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.toggleHelp()
			return m, nil
		case key.Matches(msg, m.keys.Up):
			m.activeViewport().LineUp(1)
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.activeViewport().LineDown(1)
			return m, nil
		case key.Matches(msg, m.keys.PgUp):
			vp := m.activeViewport()
			vp.LineUp(vp.Height)
			return m, nil
		case key.Matches(msg, m.keys.PgDown):
			vp := m.activeViewport()
			vp.LineDown(vp.Height)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) activeViewport() *viewport.Model {
	if m.showHelp {
		return &m.help
	}
	return &m.diagram
}

func (m Model) currentOrder() avl.Order {
	return m.orders[m.orderIndex]
}

// insertLine tokenizes line and inserts each value. The first insert of a
// session decides its kind.
func (m *Model) insertLine(line string) {
	tokens, err := kinds.Tokenize(line)
	if err != nil {
		m.setError(err)
		return
	}
	if len(tokens) == 0 {
		return
	}

	if m.session == nil {
		kind, err := m.manager.Resolve(m.kindName, tokens)
		if err != nil {
			m.setError(err)
			return
		}
		m.session = kind.NewSession(m.config.SessionConfig())
	}

	events, err := kinds.InsertTokens(m.session, tokens)
	m.lastRotations = m.lastRotations[:0]
	seenBefore := 0
	for _, ev := range events {
		m.lastRotations = append(m.lastRotations, ev.Rotations...)
		if ev.SeenBefore {
			seenBefore++
		}
	}
	m.refreshDiagram()

	if err != nil {
		m.setError(err)
		return
	}
	m.input.Reset()

	msg := fmt.Sprintf("inserted %d %s value(s)", len(events), m.session.Kind())
	if seenBefore > 0 {
		msg += fmt.Sprintf(", %d probably seen before", seenBefore)
	}
	m.setStatus(msg)
}

func (m *Model) refreshDiagram() {
	if m.session == nil || m.session.Len() == 0 {
		m.diagram.SetContent(emptyTreeHint)
		return
	}
	m.diagram.SetContent(strings.Join(m.session.Diagram(), "\n"))
}

// traversal returns the rendering of the current order, memoised per tree
// revision.
func (m Model) traversal() string {
	if m.session == nil {
		return ""
	}
	return renderWithCache(m.renders, m.session, m.currentOrder())
}

func (m *Model) copyTraversal() {
	if m.session == nil || m.session.Len() == 0 {
		m.setStatus("nothing to copy yet")
		return
	}
	if err := m.copyFn(m.traversal()); err != nil {
		m.setError(fmt.Errorf("failed to copy to clipboard: %w", err))
		return
	}
	m.setStatus(fmt.Sprintf("📋 copied %s traversal", m.currentOrder()))
}

func (m *Model) reset() {
	m.session = nil
	m.lastRotations = nil
	m.renders.Flush()
	m.input.Reset()
	m.refreshDiagram()
	m.setStatus("tree cleared")
}

func (m *Model) toggleHelp() {
	m.showHelp = !m.showHelp
	if !m.showHelp {
		return
	}
	if m.glamourRenderer == nil {
		m.glamourRenderer, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(72),
		)
	}
	text := usageMarkdown()
	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(text); err == nil {
			text = rendered
		}
	}
	m.help.SetContent(text)
	m.help.GotoTop()
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusIsError = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusIsError = true
}

func (m *Model) updateLayout() {
	panelWidth := m.width - 4
	m.input.Width = panelWidth - 6

	// input box (3), traversal box (3), borders (6), status and footer (3)
	bodyHeight := m.height - 15
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	m.diagram.Width = panelWidth
	m.diagram.Height = bodyHeight
	m.help.Width = panelWidth
	m.help.Height = bodyHeight
}

// View renders the input, diagram (or help) and traversal panels
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 30 || m.height < 16 {
		return "Terminal too small. Please resize your terminal."
	}

	boxWidth := m.width - 2

	inputBox := m.styles.BorderFocused.
		Width(boxWidth).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(m.inputTitle()),
			m.input.View(),
		))

	var body string
	if m.showHelp {
		body = m.styles.BorderFocused.
			Width(boxWidth).
			Render(lipgloss.JoinVertical(
				lipgloss.Left,
				m.styles.Title.Render(" 📖 Help "),
				m.help.View(),
			))
	} else {
		body = m.styles.BorderBlurred.
			Width(boxWidth).
			Render(lipgloss.JoinVertical(
				lipgloss.Left,
				m.styles.Title.Render(" 🌳 Tree "+m.treeSummary()),
				m.diagram.View(),
			))
	}

	traversalBox := m.styles.BorderBlurred.
		Width(boxWidth).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(fmt.Sprintf(" 🔁 %s (%d/%d) ", m.currentOrder(), m.orderIndex+1, len(m.orders))),
			m.styles.Traversal.Width(boxWidth-2).Render(m.traversal()),
		))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		inputBox,
		body,
		traversalBox,
		m.renderStatus(),
		m.renderFooter(),
	)
}

func (m Model) inputTitle() string {
	kind := m.kindName
	if m.session != nil {
		kind = m.session.Kind()
	}
	return fmt.Sprintf(" ✏️  Values (%s) ", kind)
}

func (m Model) treeSummary() string {
	if m.session == nil {
		return "(empty) "
	}
	return fmt.Sprintf("(size %d, height %d) ", m.session.Len(), m.session.Height())
}

func (m Model) renderStatus() string {
	var parts []string
	if m.status != "" {
		if m.statusIsError {
			parts = append(parts, m.styles.ErrorMessage.Render("❌ "+m.status))
		} else {
			parts = append(parts, m.styles.SuccessMessage.Render(m.status))
		}
	}
	if len(m.lastRotations) > 0 {
		rots := make([]string, len(m.lastRotations))
		for i, r := range m.lastRotations {
			rots[i] = r.String()
		}
		parts = append(parts, m.styles.HelpDesc.Render("rotations: "+strings.Join(rots, ", ")))
	}
	return lipgloss.NewStyle().Padding(0, 0, 0, 2).Render(strings.Join(parts, "  "))
}

func (m Model) renderFooter() string {
	var helpEntries []string
	for _, b := range m.keys.footer() {
		h := b.Help()
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(h.Key),
				m.styles.HelpDesc.Render(h.Desc)))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// runTUI starts the Bubble Tea application
func runTUI(manager *kinds.Manager, kindName string, renders *cache.Cache, config *Config) error {
	InitializeColors()

	model := InitialModel(manager, kindName, renders, config)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
