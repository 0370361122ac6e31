package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary   = lipgloss.Color("205")
	colorSecondary = lipgloss.Color("241")
	colorSuccess   = lipgloss.Color("42")
	colorWarning   = lipgloss.Color("214")
	colorText      = lipgloss.Color("252")

	styleTitle    = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	styleSubtle   = lipgloss.NewStyle().Foreground(colorSecondary)
	styleText     = lipgloss.NewStyle().Foreground(colorText)
	styleDone     = lipgloss.NewStyle().Foreground(colorSecondary).Strikethrough(true)
	styleStat     = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	styleFilter   = lipgloss.NewStyle().Foreground(colorSecondary)
	styleFilterOn = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	styleCursor   = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	styleCheck    = lipgloss.NewStyle().Foreground(colorSuccess)
	styleClear    = lipgloss.NewStyle().Foreground(colorWarning)

	styleInputBox = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorSecondary).
			Padding(0, 1)

	styleInputBoxFocused = styleInputBox.
				BorderForeground(colorPrimary)
)
