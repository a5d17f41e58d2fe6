package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	PrimaryColor   = lipgloss.Color("#A78BFA") // Purple
	SecondaryColor = lipgloss.Color("#10B981") // Green
	WarningColor   = lipgloss.Color("#F59E0B") // Amber
	ErrorColor     = lipgloss.Color("#F87171") // Red
	MutedColor     = lipgloss.Color("#9CA3AF") // Gray
	TextColor      = lipgloss.Color("#F9FAFB") // Light text
	BorderColor    = lipgloss.Color("#6B7280") // Gray

	// Convenience styles for colors
	Primary   = lipgloss.NewStyle().Foreground(PrimaryColor)
	Secondary = lipgloss.NewStyle().Foreground(SecondaryColor)
	Warning   = lipgloss.NewStyle().Foreground(WarningColor)
	Error     = lipgloss.NewStyle().Foreground(ErrorColor)
	Muted     = lipgloss.NewStyle().Foreground(MutedColor)
	Text      = lipgloss.NewStyle().Foreground(TextColor)

	// Title is used for the run header line
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor)

	// TeamHeader labels each team block
	TeamHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(SecondaryColor)

	// TeamBlock frames one team's member table
	TeamBlock = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	// CostLine renders the final cost summary
	CostLine = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	// UnratedHeader labels the unrated-players report
	UnratedHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(WarningColor)
)
