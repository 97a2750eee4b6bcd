package tui

import "github.com/charmbracelet/lipgloss"

var (
	Blue   = lipgloss.Color("#3B82F6")
	Green  = lipgloss.Color("#2AFFAA")
	Red    = lipgloss.Color("#FF5555")
	Muted  = lipgloss.Color("#6C7280")
	Text   = lipgloss.Color("#ECEFF4")
	Border = lipgloss.Color("#262831")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Blue).
			MarginBottom(1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Text).
			Background(Blue).
			Padding(0, 2)

	tabStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 2)

	labelStyle = lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			Width(24)

	hintStyle = lipgloss.NewStyle().Foreground(Muted)

	resultStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Green).
			Padding(0, 1).
			MarginTop(1)

	totalStyle = lipgloss.NewStyle().Bold(true).Foreground(Green)

	noticeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Red).
			Border(lipgloss.NormalBorder()).
			BorderForeground(Red).
			Padding(0, 1).
			MarginTop(1)

	historyStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1).
			MarginTop(1)
)
