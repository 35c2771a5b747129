package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/flavono123/schemabuilder/internal/field"
	"github.com/flavono123/schemabuilder/internal/ui/theme"
)

type Line struct {
	field *field.Field
	depth int
	index int
}

func newLine(f *field.Field, depth int, index int) *Line {
	return &Line{field: f, depth: depth, index: index}
}

// name is rendered by the caller while the line is being renamed
func (l *Line) render(leftPadding int, cursored bool, blurred bool, name string) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Left,
		l.number(leftPadding),
		l.indent(),
		l.cursor(cursored, blurred),
		l.toggle(),
		" ",
		name,
		l.fieldType(),
	)
}

func (l *Line) renderName() string {
	style := lipgloss.NewStyle().Foreground(theme.Green())
	if !l.field.Enabled {
		style = style.Foreground(theme.Overlay0()).Strikethrough(true)
	}
	if l.field.Name == "" {
		return lipgloss.NewStyle().Foreground(theme.Overlay0()).Italic(true).Render("unnamed")
	}
	return style.Render(l.field.Name)
}

func (l *Line) fieldType() string {
	style := lipgloss.NewStyle().Foreground(theme.Peach())
	return style.Render(fmt.Sprintf("<%s>", l.field.Type))
}

func (l *Line) number(leftPadding int) string {
	number := lipgloss.NewStyle().Foreground(theme.Overlay0())
	fmtStr := fmt.Sprintf("%%%dd ", leftPadding)
	return number.Render(fmt.Sprintf(fmtStr, l.index+1))
}

func (l *Line) indent() string {
	return strings.Repeat(" ", l.depth*2)
}

func (l *Line) cursor(cursored bool, blurred bool) string {
	style := lipgloss.NewStyle().Foreground(theme.Blue()).Bold(true)
	if blurred {
		style = style.Foreground(theme.Overlay0()).Bold(false)
	}
	if cursored {
		return style.Render(">")
	}
	return style.Render(" ")
}

func (l *Line) toggle() string {
	style := lipgloss.NewStyle().Foreground(theme.Subtext1())
	if l.field.Enabled {
		return style.Render("◉")
	}
	return style.Render("○")
}
