package editor

import (
	"log"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/flavono123/schemabuilder/internal/field"
	"github.com/flavono123/schemabuilder/internal/ui/event"
	"github.com/flavono123/schemabuilder/internal/ui/theme"
)

const (
	EDITOR_WIDTH_RATIO          = 0.5
	EDITOR_HEIGHT_BOTTOM_MARGIN = 4 // topbar 1 + border top, down 2 + status 1
	EDITOR_CURSOR_TOP           = 0
	EDITOR_NAME_MAX_LENGTH      = 64
)

// Model edits the field tree it was given. Every mutation is followed by an
// event.TreeChangedMsg so the owner can re-derive the preview.
type Model struct {
	focus bool
	tree  *field.Tree

	vp     viewport.Model
	style  lipgloss.Style
	cursor int
	lines  []*Line

	editing bool
	input   textinput.Model

	keys keyMap
	help help.Model
}

func NewModel(tree *field.Tree) *Model {
	input := textinput.New()
	input.Placeholder = "Field name"
	input.Prompt = ""
	input.CharLimit = EDITOR_NAME_MAX_LENGTH
	input.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Blue())

	m := &Model{
		focus: true,
		tree:  tree,
		vp:    viewport.New(0, 0),
		style: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(theme.Blue()),
		cursor: EDITOR_CURSOR_TOP,
		input:  input,
		keys:   newKeyMap(),
		help:   help.New(),
	}
	m.buildLines()

	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.vp.Width = int(float64(msg.Width) * EDITOR_WIDTH_RATIO)
		m.vp.Height = msg.Height - EDITOR_HEIGHT_BOTTOM_MARGIN
		m.scrollToCursor()
	case tea.KeyMsg:
		if m.editing {
			return m, m.updateInput(msg)
		}
		return m, m.handleKey(msg)
	default:
		if m.editing {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.up):
		m.setCursor(m.cursor - 1)
	case key.Matches(msg, m.keys.down):
		m.setCursor(m.cursor + 1)
	case key.Matches(msg, m.keys.addRoot):
		return m.add("")
	case key.Matches(msg, m.keys.addChild):
		cur := m.CurrentField()
		if cur == nil || !cur.Foldable() {
			return event.SetStatus(event.Warn, "only nested fields can own children")
		}
		if !cur.Enabled {
			return event.SetStatus(event.Warn, "enable the field before adding children")
		}
		return m.add(cur.ID)
	case key.Matches(msg, m.keys.rename):
		if m.CurrentField() != nil {
			return m.startEditing()
		}
	case key.Matches(msg, m.keys.cycleType):
		if cur := m.CurrentField(); cur != nil {
			m.tree.Update(cur.ID, field.NewPatch().WithType(cur.Type.Next()))
			return m.changed()
		}
	case key.Matches(msg, m.keys.toggle):
		if cur := m.CurrentField(); cur != nil {
			m.tree.Update(cur.ID, field.NewPatch().WithEnabled(!cur.Enabled))
			return m.changed()
		}
	case key.Matches(msg, m.keys.moveUp):
		return m.move(-1)
	case key.Matches(msg, m.keys.moveDown):
		return m.move(1)
	case key.Matches(msg, m.keys.remove):
		if cur := m.CurrentField(); cur != nil {
			log.Printf("deleting field %s (%q)", cur.ID, cur.Name)
			m.tree.Delete(cur.ID)
			return m.changed()
		}
	}

	return nil
}

func (m *Model) updateInput(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.commit):
		cur := m.CurrentField()
		// read before stopEditing resets the input
		name := m.input.Value()
		m.stopEditing()
		if cur == nil {
			return nil
		}
		m.tree.Update(cur.ID, field.NewPatch().WithName(name))
		return m.changed()
	case key.Matches(msg, m.keys.cancel):
		m.stopEditing()
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) View() string {
	m.vp.SetContent(m.render())

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTopBar(),
		m.style.Render(m.vp.View()),
	)
}

func (m *Model) HelpView() string {
	return m.help.View(m.keys)
}

func (m *Model) Focus() tea.Cmd {
	m.focus = true
	m.style = m.style.Border(lipgloss.ThickBorder()).BorderForeground(theme.Blue())
	return nil
}

func (m *Model) Blur() {
	m.focus = false
	m.stopEditing()
	m.style = m.style.Border(lipgloss.NormalBorder()).BorderForeground(theme.Overlay0())
}

func (m *Model) Editing() bool {
	return m.editing
}

// CurrentField is the field under the cursor, nil for an empty tree.
func (m *Model) CurrentField() *field.Field {
	if m.cursor < 0 || m.cursor >= len(m.lines) {
		return nil
	}
	return m.lines[m.cursor].field
}

// SelectField moves the cursor onto id, expanding nothing; hidden fields
// are not selectable.
func (m *Model) SelectField(id string) bool {
	for _, line := range m.lines {
		if line.field.ID == id {
			m.setCursor(line.index)
			return true
		}
	}
	return false
}

// Refresh rebuilds the lines after the tree was changed elsewhere.
func (m *Model) Refresh() {
	m.rebuildKeepingCursor()
}

func (m *Model) add(parentID string) tea.Cmd {
	f := m.tree.Add(parentID)
	log.Printf("added field %s under %q", f.ID, parentID)
	m.buildLines()
	m.SelectField(f.ID)

	return tea.Batch(event.TreeChanged, m.startEditing())
}

func (m *Model) move(delta int) tea.Cmd {
	cur := m.CurrentField()
	if cur == nil {
		return nil
	}
	m.tree.Move(cur.ID, delta)
	return m.changed()
}

func (m *Model) changed() tea.Cmd {
	m.rebuildKeepingCursor()
	return event.TreeChanged
}

func (m *Model) startEditing() tea.Cmd {
	cur := m.CurrentField()
	if cur == nil {
		return nil
	}
	m.editing = true
	m.input.SetValue(cur.Name)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *Model) stopEditing() {
	m.editing = false
	m.input.Blur()
	m.input.Reset()
}

func (m *Model) rebuildKeepingCursor() {
	cur := m.CurrentField()
	prev := m.cursor
	m.buildLines()
	if cur != nil && m.SelectField(cur.ID) {
		return
	}
	m.setCursor(prev)
}

// children of disabled or non nested fields are not listed
func (m *Model) buildLines() {
	m.lines = []*Line{}
	m.tree.Walk(func(f *field.Field, depth int) bool {
		m.lines = append(m.lines, newLine(f, depth, len(m.lines)))
		return f.Foldable() && f.Enabled
	})
}

func (m *Model) setCursor(index int) {
	m.cursor = max(EDITOR_CURSOR_TOP, min(index, len(m.lines)-1))
	if len(m.lines) == 0 {
		m.cursor = EDITOR_CURSOR_TOP
	}
	m.scrollToCursor()
}

func (m *Model) scrollToCursor() {
	if m.vp.Height <= 0 {
		return
	}
	m.vp.SetContent(m.render())
	if m.cursor < m.vp.YOffset {
		m.vp.SetYOffset(m.cursor)
	} else if m.cursor >= m.vp.YOffset+m.vp.Height {
		m.vp.SetYOffset(m.cursor - m.vp.Height + 1)
	}
}

func (m *Model) render() string {
	if len(m.lines) == 0 {
		return lipgloss.NewStyle().Foreground(theme.Overlay0()).Render("no fields, press n to add one")
	}

	var result strings.Builder
	leftPadding := len(strconv.Itoa(len(m.lines)))
	for _, line := range m.lines {
		cursored := line.index == m.cursor
		name := line.renderName()
		if cursored && m.editing {
			name = m.input.View()
		}
		result.WriteString(line.render(leftPadding, cursored, !m.focus, name) + "\n")
	}

	return strings.TrimSuffix(result.String(), "\n")
}

func (m *Model) renderTopBar() string {
	title := lipgloss.NewStyle().Margin(0, 1).Render("fields")
	count := lipgloss.NewStyle().Foreground(theme.Blue()).Render(strconv.Itoa(m.tree.Len()))
	return lipgloss.JoinHorizontal(lipgloss.Left, title, count)
}
