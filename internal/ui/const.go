package ui

const (
	//longing for https://github.com/charmbracelet/bubbles/pull/240
	UPPER_20 = 0.8

	WIDTH  = 120
	HEIGHT = 32
)
