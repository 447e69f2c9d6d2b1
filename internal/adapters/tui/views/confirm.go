package views

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"wortkiste/internal/adapters/tui/styles"
	"wortkiste/internal/application/commands"
	"wortkiste/internal/ports"
)

// ConfirmKeyMap defines key bindings for confirmation views
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

var ConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// DeleteModel asks before deleting a word
type DeleteModel struct {
	ViewState
	repo   ports.WordRepository
	wordID int64
	label  string
}

func NewDeleteModel(repo ports.WordRepository) *DeleteModel {
	return &DeleteModel{repo: repo}
}

// SetTarget sets the word to delete
func (m *DeleteModel) SetTarget(id int64, label string) {
	m.wordID = id
	m.label = label
	m.ClearMessage()
}

func (m *DeleteModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the confirmation view
func (m *DeleteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case errMsg:
		m.SetMessage(msg.err.Error(), true)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, ConfirmKeys.Cancel):
			return m, func() tea.Msg { return SwitchToWordsMsg{} }
		case key.Matches(msg, ConfirmKeys.Confirm):
			return m, m.delete(m.wordID)
		}
	}
	return m, nil
}

func (m *DeleteModel) delete(id int64) tea.Cmd {
	return func() tea.Msg {
		result, err := commands.NewDeleteWordCommand(m.repo, id).Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return WordDeletedMsg{Message: result.Message}
	}
}

// View renders the confirmation prompt
func (m *DeleteModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Delete word"))
	b.WriteString("\n\n")
	b.WriteString(styles.InputLabel.Render("Delete:"))
	b.WriteString(" ")
	b.WriteString(m.label)
	b.WriteString("\n\n")

	b.WriteString(styles.MutedText.Render("This cannot be undone."))
	b.WriteString(" ")
	b.WriteString(styles.HelpKey.Render("y"))
	b.WriteString(styles.HelpDesc.Render(" to confirm, "))
	b.WriteString(styles.HelpKey.Render("n"))
	b.WriteString(styles.HelpDesc.Render(" to cancel"))

	if m.Message != "" {
		b.WriteString("\n\n")
		b.WriteString(styles.ErrorMsg.Render(m.Message))
	}

	return styles.App.Render(b.String())
}
