package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"wortkiste/internal/adapters/tui/styles"
	"wortkiste/internal/application/commands"
	"wortkiste/internal/domain"
	"wortkiste/internal/ports"
)

// WordsKeyMap defines key bindings for the word list
type WordsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Copy     key.Binding
	Filter   key.Binding
	Clear    key.Binding
	Delete   key.Binding
	Reload   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var WordsKeys = WordsKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up", "ctrl+p"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down", "ctrl+n"),
		key.WithHelp("j/↓", "down"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("right", "pgdown"),
		key.WithHelp("→", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("left", "pgup"),
		key.WithHelp("←", "prev page"),
	),
	Copy: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "copy translation"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	Clear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear filter"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// CopyFunc writes text to the clipboard
type CopyFunc func(text string) error

// WordsModel lists saved words with an inline fuzzy filter
type WordsModel struct {
	ViewState
	repo  ports.WordRepository
	clip  CopyFunc
	now   func() time.Time
	input textinput.Model
	pager *Paginator

	words   []domain.Word
	visible []domain.Word
}

// NewWordsModel creates the word list view
func NewWordsModel(repo ports.WordRepository, clip CopyFunc) *WordsModel {
	input := textinput.New()
	input.Placeholder = "Filter words..."
	input.Prompt = "/ "

	return &WordsModel{
		repo:  repo,
		clip:  clip,
		now:   time.Now,
		input: input,
		pager: NewPaginator(10),
	}
}

// Init loads the words
func (m *WordsModel) Init() tea.Cmd {
	return m.load
}

// Reload reloads the words from the repository
func (m *WordsModel) Reload() tea.Cmd {
	return m.load
}

func (m *WordsModel) load() tea.Msg {
	words, err := commands.NewListWordsCommand(m.repo, domain.WordFilter{}).Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return wordsLoadedMsg{words}
}

type wordsLoadedMsg struct {
	words []domain.Word
}

// Update handles messages for the word list
func (m *WordsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case wordsLoadedMsg:
		m.words = msg.words
		m.applyFilter()
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		if m.input.Focused() {
			return m.updateFilter(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m *WordsModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, WordsKeys.Clear):
		m.input.SetValue("")
		m.input.Blur()
		m.applyFilter()
		return m, nil
	case msg.Type == tea.KeyEnter:
		m.input.Blur()
		return m, nil
	case msg.Type == tea.KeyUp, msg.Type == tea.KeyDown:
		return m.updateList(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *WordsModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, WordsKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, WordsKeys.Up):
		m.pager.CursorUp()

	case key.Matches(msg, WordsKeys.Down):
		m.pager.CursorDown()

	case key.Matches(msg, WordsKeys.NextPage):
		m.pager.NextPage()

	case key.Matches(msg, WordsKeys.PrevPage):
		m.pager.PrevPage()

	case key.Matches(msg, WordsKeys.Filter):
		m.ClearMessage()
		return m, m.input.Focus()

	case key.Matches(msg, WordsKeys.Clear):
		m.input.SetValue("")
		m.applyFilter()

	case key.Matches(msg, WordsKeys.Reload):
		return m, m.load

	case key.Matches(msg, WordsKeys.Help):
		return m, func() tea.Msg { return SwitchToHelpMsg{} }

	case key.Matches(msg, WordsKeys.Copy):
		if w, ok := m.Selected(); ok {
			if err := m.clip(w.Translation); err != nil {
				m.SetMessage(fmt.Sprintf("Copy failed: %v", err), true)
			} else {
				m.SetMessage(fmt.Sprintf("Copied %q", w.Translation), false)
			}
		}

	case key.Matches(msg, WordsKeys.Delete):
		if w, ok := m.Selected(); ok {
			return m, func() tea.Msg {
				return SwitchToDeleteMsg{WordID: w.ID, Label: w.Label()}
			}
		}
	}
	return m, nil
}

// applyFilter recomputes the visible words from the filter text. Short
// queries show everything.
func (m *WordsModel) applyFilter() {
	query := strings.TrimSpace(m.input.Value())
	if len([]rune(query)) < 2 {
		m.visible = m.words
	} else {
		matches := commands.FuzzySort(m.words, query)
		m.visible = make([]domain.Word, len(matches))
		for i, match := range matches {
			m.visible[i] = match.Word
		}
		m.pager.Reset()
	}
	m.pager.SetTotal(len(m.visible))
}

// Selected returns the word under the cursor
func (m *WordsModel) Selected() (domain.Word, bool) {
	c := m.pager.Cursor()
	if c < 0 || c >= len(m.visible) {
		return domain.Word{}, false
	}
	return m.visible[c], true
}

// Visible returns the words currently shown, in order
func (m *WordsModel) Visible() []domain.Word {
	return m.visible
}

// SetSize updates the dimensions and the page size
func (m *WordsModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	// title, filter box, page footer, status and help take about 12 lines
	m.pager.SetPageSize(max(3, height-12))
}

// View renders the word list
func (m *WordsModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Wortkiste"))
	b.WriteString("\n")

	if m.input.Focused() {
		b.WriteString(styles.InputFocused.Render(m.input.View()))
	} else {
		b.WriteString(styles.InputField.Render(m.input.View()))
	}
	b.WriteString("\n\n")

	if len(m.visible) == 0 {
		if len(m.words) == 0 {
			b.WriteString(styles.MutedText.Render("No words saved yet"))
		} else {
			b.WriteString(styles.MutedText.Render("No matching words"))
		}
		b.WriteString("\n")
	} else {
		now := m.now().UnixMilli()
		start, end := m.pager.VisibleRange()
		for i := start; i < end; i++ {
			b.WriteString(m.renderWord(m.visible[i], i == m.pager.Cursor(), now))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%d words, page %d/%d",
			len(m.visible), m.pager.CurrentPage(), m.pager.TotalPages())))
		b.WriteString("\n")
	}

	if m.Message != "" {
		b.WriteString("\n")
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s  %s %s  %s %s  %s %s  %s %s",
		styles.HelpKey.Render("/"),
		styles.HelpDesc.Render("filter"),
		styles.HelpKey.Render("enter"),
		styles.HelpDesc.Render("copy"),
		styles.HelpKey.Render("d"),
		styles.HelpDesc.Render("delete"),
		styles.HelpKey.Render("?"),
		styles.HelpDesc.Render("help"),
		styles.HelpKey.Render("q"),
		styles.HelpDesc.Render("quit"),
	))

	return styles.App.Render(b.String())
}

func (m *WordsModel) renderWord(w domain.Word, selected bool, now int64) string {
	if selected {
		return styles.WordSelected.Render(fmt.Sprintf("%s  %s", w.Label(), w.Translation))
	}

	var b strings.Builder
	if w.Article != "" {
		b.WriteString(styles.Article(w.Article))
		b.WriteString(" ")
	}
	b.WriteString(w.Original)
	b.WriteString("  ")
	b.WriteString(styles.Translation.Render(w.Translation))
	if w.NextReviewAt <= now {
		b.WriteString("  ")
		b.WriteString(styles.Due.Render("due"))
	}
	return styles.WordRow.Render(b.String())
}
