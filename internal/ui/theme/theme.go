// Package theme holds the lipgloss styles shared by the CLI output.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — calm, readable on dark terminals
var (
	Primary   = lipgloss.Color("#FBBF24") // Amber (German word)
	Secondary = lipgloss.Color("#38BDF8") // Sky (translation)
	Success   = lipgloss.Color("#22C55E") // Green (achievements)
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	German = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	English = lipgloss.NewStyle().
		Foreground(Secondary)

	Pronunciation = lipgloss.NewStyle().
			Foreground(TextDim).
			Italic(true)

	Example = lipgloss.NewStyle().
		Foreground(Text)

	ExampleDim = lipgloss.NewStyle().
			Foreground(TextDim)

	Label = lipgloss.NewStyle().
		Foreground(TextDim)

	Value = lipgloss.NewStyle().
		Foreground(Text).
		Bold(true)

	Achievement = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	Warning = lipgloss.NewStyle().
		Foreground(Error)
)

// Card frames a word for display between refreshes.
var Card = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Border).
	Padding(1, 3)
