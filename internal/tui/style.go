package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// ANSI palette. Missing keys are red and diverging values yellow everywhere.
const (
	colorAccent  = lipgloss.Color("6")
	colorOK      = lipgloss.Color("2")
	colorDiverge = lipgloss.Color("3")
	colorMissing = lipgloss.Color("1")
	colorDim     = lipgloss.Color("8")
	colorLabel   = lipgloss.Color("4")
	colorHeading = lipgloss.Color("5")
)

var (
	bold = lipgloss.NewStyle().Bold(true)

	HeaderStyle  = bold.Foreground(colorAccent)
	SuccessStyle = bold.Foreground(colorOK)
	WarningStyle = bold.Foreground(colorDiverge)
	ErrorStyle   = bold.Foreground(colorMissing)
	LabelStyle   = bold.Foreground(colorLabel)
	MutedStyle   = lipgloss.NewStyle().Foreground(colorDim)
	KeyStyle     = lipgloss.NewStyle().Foreground(colorAccent)

	CellStyle        = lipgloss.NewStyle().Padding(0, 1)
	TableHeaderStyle = CellStyle.Bold(true).Foreground(colorHeading)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2)
)

// Panel frames content in a rounded border of the given color.
func Panel(content string, border lipgloss.TerminalColor) string {
	return panelStyle.BorderForeground(border).Render(content)
}

func Header(text string) string  { return HeaderStyle.Render(text) }
func Success(text string) string { return SuccessStyle.Render(text) }
func Warning(text string) string { return WarningStyle.Render(text) }
func Error(text string) string   { return ErrorStyle.Render(text) }
func Muted(text string) string   { return MutedStyle.Render(text) }
func Key(text string) string     { return KeyStyle.Render(text) }
func Label(text string) string   { return LabelStyle.Render(text) }
