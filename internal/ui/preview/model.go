package preview

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/flavono123/schemabuilder/internal/field"
	"github.com/flavono123/schemabuilder/internal/schema"
	"github.com/flavono123/schemabuilder/internal/ui/theme"
)

const (
	PREVIEW_WIDTH_RATIO          = 0.5
	PREVIEW_HEIGHT_BOTTOM_MARGIN = 4
)

// Model shows the formatted schema of the tree and scrolls it when focused.
type Model struct {
	focus   bool
	vp      viewport.Model
	style   lipgloss.Style
	opts    []schema.FormatOption
	content string
}

func NewModel(opts ...schema.FormatOption) *Model {
	m := &Model{
		focus: false,
		vp:    viewport.New(0, 0),
		style: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(theme.Overlay0()),
		opts: opts,
	}
	m.SetFields(nil)
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.vp.Width = msg.Width - int(float64(msg.Width)*(1-PREVIEW_WIDTH_RATIO))
		m.vp.Height = msg.Height - PREVIEW_HEIGHT_BOTTOM_MARGIN
	case tea.KeyMsg:
		if m.focus {
			m.vp, cmd = m.vp.Update(msg)
		}
	}

	return m, cmd
}

func (m *Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Margin(0, 1).Render("preview"),
		m.style.Render(m.vp.View()),
	)
}

// SetFields re-derives the rendered schema from fields.
func (m *Model) SetFields(fields []*field.Field) {
	m.content = schema.Render(fields, m.opts...)
	m.vp.SetContent(m.content)
}

func (m *Model) Content() string {
	return m.content
}

func (m *Model) Focus() tea.Cmd {
	m.focus = true
	m.style = m.style.Border(lipgloss.ThickBorder()).BorderForeground(theme.Blue())
	return nil
}

func (m *Model) Blur() {
	m.focus = false
	m.style = m.style.Border(lipgloss.NormalBorder()).BorderForeground(theme.Overlay0())
}
