package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary = lipgloss.Color("39")
	ColorSuccess = lipgloss.Color("42")
	ColorDanger  = lipgloss.Color("196")
	ColorMuted   = lipgloss.Color("241")

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	UrgentStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Bold(true)

	FundedStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ShortStyle = lipgloss.NewStyle().
			Foreground(ColorDanger)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ValueStyle = lipgloss.NewStyle().
			Bold(true)

	GuiltFreeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess).
			MarginTop(1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Bold(true)
)
