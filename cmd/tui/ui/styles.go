package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	Primary   = lipgloss.Color("#7C5CFF") // Violet
	Secondary = lipgloss.Color("#A18CFF") // Light violet
	Accent    = lipgloss.Color("#FF8A5C") // Warm orange
	Success   = lipgloss.Color("#3DDC97") // Green
	Warning   = lipgloss.Color("#FFC75C") // Amber
	Danger    = lipgloss.Color("#FF5C7A") // Red-pink
	Muted     = lipgloss.Color("#7A8699") // Gray-blue
	Text      = lipgloss.Color("#ECEFF4") // Off-white
	BgDark    = lipgloss.Color("#14121F") // Near-black violet
	BgLight   = lipgloss.Color("#262136") // Dark violet

	TitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Padding(0, 1)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2).
			MarginTop(1)

	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(Accent).
				Bold(true).
				PaddingLeft(2)

	ItemStyle = lipgloss.NewStyle().
			Foreground(Text).
			PaddingLeft(2)

	InfoStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)

	InputStyle = lipgloss.NewStyle().
			Foreground(Text).
			Border(lipgloss.NormalBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	FocusedInputStyle = lipgloss.NewStyle().
				Foreground(Text).
				Border(lipgloss.NormalBorder()).
				BorderForeground(Accent).
				Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Width(20)

	ValueStyle = lipgloss.NewStyle().
			Foreground(Text).
			Bold(true)

	PaidStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	PendingStyle = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	OverdueStyle = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)
)
