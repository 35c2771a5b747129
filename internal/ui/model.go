package ui

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/flavono123/schemabuilder/internal/field"
	"github.com/flavono123/schemabuilder/internal/schema"
	"github.com/flavono123/schemabuilder/internal/ui/editor"
	"github.com/flavono123/schemabuilder/internal/ui/event"
	"github.com/flavono123/schemabuilder/internal/ui/finder"
	"github.com/flavono123/schemabuilder/internal/ui/preview"
	"github.com/flavono123/schemabuilder/internal/ui/theme"
)

type sessionState uint

const (
	editorView sessionState = iota
	previewView
)

type Options struct {
	BareMarkers bool
}

type mainModel struct {
	state sessionState
	keys  keyMap
	help  help.Model

	tree    *field.Tree
	editor  *editor.Model
	preview *preview.Model
	finder  *finder.Model

	width  int
	height int

	status        string
	statusKind    event.Status
	statusVisible bool
}

func InitModel(opts Options) *mainModel {
	formatOpts := []schema.FormatOption{}
	if opts.BareMarkers {
		formatOpts = append(formatOpts, schema.WithBareMarkers())
	}

	tree := field.NewTree()
	return &mainModel{
		state:   editorView,
		keys:    newKeyMap(),
		help:    help.New(),
		tree:    tree,
		editor:  editor.NewModel(tree),
		preview: preview.NewModel(formatOpts...),
		finder:  finder.NewModel(),
		width:   WIDTH,
		height:  HEIGHT,
	}
}

func (m *mainModel) Init() tea.Cmd {
	return nil
}

func (m *mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.editor.Update(msg)
		m.preview.Update(msg)
		m.finder.Update(msg)
		return m, nil
	case event.TreeChangedMsg:
		m.preview.SetFields(m.tree.Roots())
		return m, nil
	case event.PickFieldMsg:
		m.focusEditor()
		if !m.editor.SelectField(msg.ID) {
			return m, event.SetStatus(event.Warn, "field is no longer listed")
		}
		return m, nil
	case event.HideFinderMsg:
		return m, nil
	case event.SetStatusMsg:
		m.status = msg.Message
		m.statusKind = msg.Status
		m.statusVisible = true
		return m, event.ShowStatus()
	case event.HideStatusMsg:
		m.statusVisible = false
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.finder.Visible() {
			_, cmd := m.finder.Update(msg)
			return m, cmd
		}
		if m.state == editorView && m.editor.Editing() {
			_, cmd := m.editor.Update(msg)
			return m, cmd
		}

		switch {
		case key.Matches(msg, m.keys.quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.tabView):
			if m.state == editorView {
				m.focusPreview()
			} else {
				m.focusEditor()
			}
			return m, nil
		case key.Matches(msg, m.keys.find):
			return m, m.finder.Show(m.tree)
		case key.Matches(msg, m.keys.submit):
			return m, m.submit()
		}

		if m.state == editorView {
			_, cmd := m.editor.Update(msg)
			cmds = append(cmds, cmd)
		} else {
			_, cmd := m.preview.Update(msg)
			cmds = append(cmds, cmd)
		}
	default:
		if m.finder.Visible() {
			_, cmd := m.finder.Update(msg)
			cmds = append(cmds, cmd)
		} else if m.editor.Editing() {
			_, cmd := m.editor.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *mainModel) View() string {
	if m.finder.Visible() {
		return lipgloss.Place(
			m.width,
			m.height,
			lipgloss.Center,
			UPPER_20,
			m.finder.View(),
			lipgloss.WithWhitespaceBackground(theme.Mantle()),
		)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.editor.View(),
			m.preview.View(),
		),
		m.renderStatusBar(),
	)
}

func (m *mainModel) submit() tea.Cmd {
	data, err := schema.Submit(m.tree.Roots())
	if err != nil {
		log.Printf("failed to submit schema: %v", err)
		return event.SetStatus(event.Error, err.Error())
	}

	log.Printf("schema submitted:\n%s", data)
	return event.SetStatus(event.Info, fmt.Sprintf("submitted %d bytes", len(data)))
}

func (m *mainModel) focusEditor() {
	m.state = editorView
	m.preview.Blur()
	m.editor.Focus()
}

func (m *mainModel) focusPreview() {
	m.state = previewView
	m.editor.Blur()
	m.preview.Focus()
}

func (m *mainModel) renderStatusBar() string {
	if m.statusVisible {
		return m.statusStyle().Render(m.status)
	}

	location := ""
	if cur := m.editor.CurrentField(); cur != nil {
		if loc, ok := schema.Location(m.tree, cur.ID); ok {
			location = loc
		} else {
			location = "(not generated)"
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Left,
		lipgloss.NewStyle().Foreground(theme.Teal()).Margin(0, 1).Render(location),
		m.currentHelpView(),
	)
}

func (m *mainModel) currentHelpView() string {
	if m.state == editorView {
		return lipgloss.JoinHorizontal(lipgloss.Left, m.editor.HelpView(), " ", m.help.View(m.keys))
	}
	return m.help.View(m.keys)
}

func (m *mainModel) statusStyle() lipgloss.Style {
	style := lipgloss.NewStyle().Margin(0, 1)
	switch m.statusKind {
	case event.Error:
		return style.Foreground(theme.Red())
	case event.Warn:
		return style.Foreground(theme.Yellow())
	default:
		return style.Foreground(theme.Green())
	}
}
