// Package theme holds the palette and shared styles of the sorter UI. The
// colors are also used by the image export, so they stay plain hex values.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Herds and their predicted regions.
var (
	ClassA  = lipgloss.Color("#38BDF8") // sky
	ClassB  = lipgloss.Color("#F97316") // orange
	RegionA = lipgloss.Color("#0C2A3D") // predicted-A backdrop
	RegionB = lipgloss.Color("#3A1D0C") // predicted-B backdrop
)

// Board.
var (
	Primary      = lipgloss.Color("#8B5CF6") // purple
	Secondary    = lipgloss.Color("#14B8A6") // teal
	Accent       = lipgloss.Color("#FACC15") // fence yellow
	ThresholdBar = Accent
	Success      = lipgloss.Color("#22C55E")
	Error        = lipgloss.Color("#F43F5E")

	ArcadeYellow = lipgloss.Color("#FDE047") // marquee
	ArcadeCyan   = lipgloss.Color("#22D3EE") // scoreboard
)

// Surfaces and text.
var (
	Text    = lipgloss.Color("#F8FAFC")
	TextDim = lipgloss.Color("#94A3B8")
	BgDark  = lipgloss.Color("#0F172A")
	BgCard  = lipgloss.Color("#1E293B")
	Border  = lipgloss.Color("#334155")
)

var (
	Title = lipgloss.NewStyle().Foreground(Primary).Bold(true).Align(lipgloss.Center)
	Body  = lipgloss.NewStyle().Foreground(Text)
	Hint  = lipgloss.NewStyle().Foreground(TextDim).Italic(true)

	// Card frames the score and parameter panels.
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)

	Selected   = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Unselected = lipgloss.NewStyle().Foreground(Text)

	// Correct and Incorrect color classified and misclassified counts.
	Correct   = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Incorrect = lipgloss.NewStyle().Foreground(Error).Bold(true)

	ProgressFilled = lipgloss.NewStyle().Background(Secondary)
	ProgressEmpty  = lipgloss.NewStyle().Background(Border)
)
