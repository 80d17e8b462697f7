package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — muted parchment-and-ink, fits the letter-game mood
var (
	Primary   = lipgloss.Color("#D97706") // Amber
	Secondary = lipgloss.Color("#0EA5E9") // Sky
	Success   = lipgloss.Color("#22C55E") // Green
	Warning   = lipgloss.Color("#EAB308") // Yellow
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Dim = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)
)

// Step state badges
var (
	BadgeLocked = lipgloss.NewStyle().
			Foreground(TextDim)

	BadgeActive = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	BadgeReady = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	BadgeScheduled = lipgloss.NewStyle().
			Foreground(Warning)

	BadgeSent = lipgloss.NewStyle().
			Foreground(Success)

	BadgeDelivered = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	BadgeFailed = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)
)
