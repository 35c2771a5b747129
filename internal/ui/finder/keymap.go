package finder

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up     key.Binding
	down   key.Binding
	pick   key.Binding
	hide   key.Binding
	toggle key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:   key.NewBinding(key.WithKeys("up")),
		down: key.NewBinding(key.WithKeys("down")),
		pick: key.NewBinding(key.WithKeys("enter")),
		hide: key.NewBinding(key.WithKeys("esc")),
		toggle: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "find"),
		),
	}
}

// Toggle is the binding the owner uses to show the finder.
func Toggle() key.Binding {
	return newKeyMap().toggle
}
