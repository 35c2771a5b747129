package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const cmdTimeout = 20 * time.Millisecond

// run executes cmd and returns its messages. Commands that wait (ticks,
// cursor blinks) are dropped.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	select {
	case msg := <-ch:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var msgs []tea.Msg
			for _, c := range batch {
				msgs = append(msgs, run(c)...)
			}
			return msgs
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(cmdTimeout):
		return nil
	}
}

func send(m tea.Model, msgs ...tea.Msg) {
	queue := msgs
	for len(queue) > 0 {
		msg := queue[0]
		queue = queue[1:]
		_, cmd := m.Update(msg)
		queue = append(queue, run(cmd)...)
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enterKey     = tea.KeyMsg{Type: tea.KeyEnter}
	escKey       = tea.KeyMsg{Type: tea.KeyEsc}
	tabKey       = tea.KeyMsg{Type: tea.KeyTab}
	upKey        = tea.KeyMsg{Type: tea.KeyUp}
	downKey      = tea.KeyMsg{Type: tea.KeyDown}
	shiftDownKey = tea.KeyMsg{Type: tea.KeyShiftDown}
	spaceKey     = runes(" ")
)

// addField adds a root field (or a child of the cursor field) and names it.
func addField(m tea.Model, trigger string, name string, typeSteps int) {
	send(m, runes(trigger), runes(name), enterKey)
	for i := 0; i < typeSteps; i++ {
		send(m, runes("t"))
	}
}
