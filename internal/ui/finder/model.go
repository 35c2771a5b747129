package finder

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/flavono123/schemabuilder/internal/field"
	"github.com/flavono123/schemabuilder/internal/ui/event"
	"github.com/flavono123/schemabuilder/internal/ui/theme"
)

const (
	FINDER_WIDTH_DIV                 = 3
	FINDER_SEARCH_RESULTS_MAX_HEIGHT = 10
	FINDER_SCROLL_STEP               = 1
)

// Model is a fuzzy finder over the named fields currently listed by the tree.
type Model struct {
	keys          keyMap
	visible       bool
	style         lipgloss.Style
	items         items
	input         textinput.Model
	searchResults searchResults
	srViewport    viewport.Model
	cursor        int
}

func NewModel() *Model {
	ti := textinput.New()
	ti.Placeholder = "Find a field..."
	ti.Prompt = "/ "
	ti.Width = 30

	return &Model{
		keys:  newKeyMap(),
		style: lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(theme.Mauve()),
		input: ti,
		srViewport: viewport.New(
			0, FINDER_SEARCH_RESULTS_MAX_HEIGHT,
		),
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.srViewport.Width = size.Width / FINDER_WIDTH_DIV
		m.srViewport.Height = FINDER_SEARCH_RESULTS_MAX_HEIGHT
		return m, nil
	}

	if !m.visible {
		return m, nil
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch {
		case key.Matches(keyMsg, m.keys.up):
			if m.cursor > 0 {
				m.cursor--
			}
			m.setSearchResults(m.filtered())
			return m, nil
		case key.Matches(keyMsg, m.keys.down):
			if m.cursor < len(m.filtered())-1 {
				m.cursor++
			}
			m.setSearchResults(m.filtered())
			return m, nil
		case key.Matches(keyMsg, m.keys.pick):
			filtered := m.filtered()
			if len(filtered) == 0 {
				return m, nil
			}
			id := filtered[m.cursor].id
			m.Hide()
			return m, func() tea.Msg {
				return event.PickFieldMsg{ID: id}
			}
		case key.Matches(keyMsg, m.keys.hide):
			m.Hide()
			return m, func() tea.Msg {
				return event.HideFinderMsg{}
			}
		}
	}

	prevInputValue := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	if prevInputValue != m.input.Value() {
		m.cursor = 0
		m.setSearchResults(m.filtered())
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) View() string {
	inputStyle := lipgloss.NewStyle().Margin(0, 0, 1, 0)
	m.srViewport.SetContent(m.searchResults.string(m.srViewport.Width))
	return m.style.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			inputStyle.Render(m.input.View()),
			m.srViewport.View(),
		),
	)
}

// Show collects the named fields listed by the editor and resets the query.
func (m *Model) Show(tree *field.Tree) tea.Cmd {
	m.items = collect(tree)
	m.visible = true
	m.input.Reset()
	m.cursor = 0
	m.setSearchResults(m.items)
	return m.input.Focus()
}

func (m *Model) Hide() {
	m.visible = false
	m.input.Blur()
}

func (m *Model) Visible() bool {
	return m.visible
}

func (m *Model) filtered() items {
	return m.items.filter(m.input.Value())
}

func (m *Model) setSearchResults(items items) {
	var results searchResults
	for index, it := range items {
		results = append(results, searchResult{
			item:    it,
			hovered: m.cursor == index,
		})
	}
	m.searchResults = results
	m.srViewport.SetContent(results.string(m.srViewport.Width))

	if m.cursor < m.srViewport.YOffset {
		m.srViewport.SetYOffset(m.cursor)
	} else if m.cursor >= m.srViewport.YOffset+FINDER_SEARCH_RESULTS_MAX_HEIGHT {
		m.srViewport.SetYOffset(m.cursor - FINDER_SEARCH_RESULTS_MAX_HEIGHT + 1)
	}
}

// subcomponents(not model)
type item struct {
	id    string
	label string // dotted ancestor path
	t     field.Type
}

type items []item

func collect(tree *field.Tree) items {
	var result items
	path := []string{}
	tree.Walk(func(f *field.Field, depth int) bool {
		path = append(path[:depth], f.Name)
		if f.Name != "" {
			result = append(result, item{
				id:    f.ID,
				label: strings.Join(path, "."),
				t:     f.Type,
			})
		}
		return f.Foldable() && f.Enabled
	})
	return result
}

func (its items) String(i int) string {
	return its[i].label
}

func (its items) Len() int {
	return len(its)
}

func (its items) filter(query string) items {
	if query == "" {
		return its
	}

	var result items
	for _, match := range fuzzy.FindFrom(query, its) {
		result = append(result, its[match.Index])
	}
	return result
}

type searchResult struct {
	item    item
	hovered bool
}

type searchResults []searchResult

func (i item) render(width int) string {
	l := lipgloss.NewStyle().
		MaxWidth(width).
		Padding(0, 0, 0, 1)
	g := lipgloss.NewStyle().Foreground(theme.Subtext1())
	return l.Render(lipgloss.JoinHorizontal(
		lipgloss.Left,
		i.label,
		" ",
		g.Render(i.t.String()),
	))
}

func (sr searchResult) render(width int) string {
	style := lipgloss.NewStyle()
	if sr.hovered {
		style = style.Background(theme.Surface1())
	}
	return style.Render(sr.item.render(width))
}

func (sr searchResults) string(width int) string {
	if len(sr) == 0 {
		return lipgloss.NewStyle().Foreground(theme.Overlay0()).Render("No results found.")
	}

	var result []string
	for _, r := range sr {
		result = append(result, r.render(width))
	}
	return strings.Join(result, "\n")
}
