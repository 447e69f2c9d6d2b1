package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"wortkiste/internal/adapters/tui/views"
	"wortkiste/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewWords ViewState = iota
	ViewDelete
	ViewHelp
)

// App is the main TUI application model
type App struct {
	state  ViewState
	words  *views.WordsModel
	delete *views.DeleteModel
	help   *views.HelpModel
}

// NewApp creates a new TUI application. clip receives the translation of
// the selected word.
func NewApp(repo ports.WordRepository, clip views.CopyFunc) *App {
	return &App{
		state:  ViewWords,
		words:  views.NewWordsModel(repo, clip),
		delete: views.NewDeleteModel(repo),
		help:   views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.words.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.words.SetSize(msg.Width, msg.Height)
		a.delete.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToDeleteMsg:
		a.state = ViewDelete
		a.delete.SetTarget(msg.WordID, msg.Label)
		return a, nil

	case views.SwitchToWordsMsg:
		a.state = ViewWords
		return a, nil

	case views.WordDeletedMsg:
		a.state = ViewWords
		a.words.SetMessage(msg.Message, false)
		return a, a.words.Reload()
	}

	var cmd tea.Cmd
	switch a.state {
	case ViewWords:
		_, cmd = a.words.Update(msg)
	case ViewDelete:
		_, cmd = a.delete.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewDelete:
		return a.delete.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.words.View()
	}
}

// State returns the active view
func (a *App) State() ViewState {
	return a.state
}
