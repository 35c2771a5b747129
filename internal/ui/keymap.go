package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/flavono123/schemabuilder/internal/ui/finder"
)

// main
type keyMap struct {
	quit    key.Binding
	tabView key.Binding
	find    key.Binding
	submit  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		tabView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch fields/preview"),
		),
		find: finder.Toggle(),
		submit: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "submit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.tabView,
		k.find,
		k.submit,
		k.quit,
	}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{}, // only render short help
	}
}
