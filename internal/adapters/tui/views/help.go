package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"wortkiste/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg { return SwitchToWordsMsg{} }
		}
	}
	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Wortkiste Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Navigation"))
	b.WriteString("\n")
	for _, k := range []key.Binding{WordsKeys.Up, WordsKeys.Down, WordsKeys.NextPage, WordsKeys.PrevPage} {
		b.WriteString(helpLine(k))
	}
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Words"))
	b.WriteString("\n")
	for _, k := range []key.Binding{WordsKeys.Filter, WordsKeys.Clear, WordsKeys.Copy, WordsKeys.Delete, WordsKeys.Reload} {
		b.WriteString(helpLine(k))
	}
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine(WordsKeys.Help))
	b.WriteString(helpLine(WordsKeys.Quit))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Articles"))
	b.WriteString("\n  ")
	b.WriteString(styles.Article("der"))
	b.WriteString("  ")
	b.WriteString(styles.Article("die"))
	b.WriteString("  ")
	b.WriteString(styles.Article("das"))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(k key.Binding) string {
	h := k.Help()
	return "  " + styles.HelpKey.Render(padRight(h.Key, 12)) + styles.HelpDesc.Render(h.Desc) + "\n"
}

func padRight(s string, length int) string {
	n := len([]rune(s))
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}
