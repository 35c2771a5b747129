package event

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// editor -> root, after any tree mutation
type TreeChangedMsg struct{}

// finder -> root
type PickFieldMsg struct {
	ID string
}

// finder(hiding) -> root
type HideFinderMsg struct{}

// -> root

type Status uint

const (
	Error Status = iota
	Warn
	Info
)

type SetStatusMsg struct {
	Message string
	Status  Status
}

const statusDuration = time.Millisecond * 1060

func ShowStatus() tea.Cmd {
	return tea.Tick(statusDuration, func(t time.Time) tea.Msg {
		return HideStatusMsg{}
	})
}

type HideStatusMsg struct{}

func TreeChanged() tea.Msg {
	return TreeChangedMsg{}
}

func SetStatus(status Status, message string) tea.Cmd {
	return func() tea.Msg {
		return SetStatusMsg{Message: message, Status: status}
	}
}
