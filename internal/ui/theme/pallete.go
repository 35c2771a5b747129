package theme

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

var (
	theme       = catppuccin.Mocha
	flavourName = "mocha"
)

// SetFlavour switches the palette. Unknown names keep the current one.
func SetFlavour(name string) {
	switch name {
	case "mocha":
		theme = catppuccin.Mocha
	case "latte":
		theme = catppuccin.Latte
	case "frappe":
		theme = catppuccin.Frappe
	case "macchiato":
		theme = catppuccin.Macchiato
	default:
		return
	}
	flavourName = name
}

func Flavour() string { return flavourName }

func Red() lipgloss.Color      { return lipgloss.Color(theme.Red().Hex) }
func Peach() lipgloss.Color    { return lipgloss.Color(theme.Peach().Hex) }
func Yellow() lipgloss.Color   { return lipgloss.Color(theme.Yellow().Hex) }
func Green() lipgloss.Color    { return lipgloss.Color(theme.Green().Hex) }
func Teal() lipgloss.Color     { return lipgloss.Color(theme.Teal().Hex) }
func Blue() lipgloss.Color     { return lipgloss.Color(theme.Blue().Hex) }
func Mauve() lipgloss.Color    { return lipgloss.Color(theme.Mauve().Hex) }
func Text() lipgloss.Color     { return lipgloss.Color(theme.Text().Hex) }
func Subtext1() lipgloss.Color { return lipgloss.Color(theme.Subtext1().Hex) }
func Overlay0() lipgloss.Color { return lipgloss.Color(theme.Overlay0().Hex) }
func Surface1() lipgloss.Color { return lipgloss.Color(theme.Surface1().Hex) }
func Mantle() lipgloss.Color   { return lipgloss.Color(theme.Mantle().Hex) }
