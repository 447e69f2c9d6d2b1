package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")

	// Grammatical gender colors, the usual flashcard convention
	Masculine = lipgloss.Color("#3B82F6") // Blue
	Feminine  = lipgloss.Color("#EF4444") // Red
	Neuter    = lipgloss.Color("#10B981") // Green

	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Word list
	WordRow = lipgloss.NewStyle()

	WordSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	Translation = lipgloss.NewStyle().
			Foreground(Muted)

	Due = lipgloss.NewStyle().
		Foreground(Warning).
		Bold(true)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	StatusText = lipgloss.NewStyle().
			Foreground(Muted)

	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Muted).
			Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// ArticleColor returns the color for a German article
func ArticleColor(article string) lipgloss.Color {
	switch article {
	case "der":
		return Masculine
	case "die":
		return Feminine
	case "das":
		return Neuter
	default:
		return Muted
	}
}

// Article renders an article in its gender color
func Article(article string) string {
	return lipgloss.NewStyle().Foreground(ArticleColor(article)).Render(article)
}
