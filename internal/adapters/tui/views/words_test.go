package views

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"wortkiste/internal/application"
	"wortkiste/internal/domain"
)

type fakeRepo struct {
	words   []domain.Word
	deleted []int64
}

func (r *fakeRepo) Add(context.Context, domain.Word) (*domain.Word, error) { return nil, nil }
func (r *fakeRepo) Get(context.Context, int64) (*domain.Word, error) { return nil, nil }
func (r *fakeRepo) Due(context.Context, int64, int) ([]domain.Word, error) { return nil, nil }
func (r *fakeRepo) RecordReview(context.Context, int64, domain.Review) (*domain.Word, error) {
	return nil, nil
}

func (r *fakeRepo) List(context.Context, domain.WordFilter) ([]domain.Word, error) {
	return r.words, nil
}

func (r *fakeRepo) Delete(_ context.Context, id int64) error {
	for i, w := range r.words {
		if w.ID == id {
			r.words = append(r.words[:i], r.words[i+1:]...)
			r.deleted = append(r.deleted, id)
			return nil
		}
	}
	return application.ErrNotFound
}

func sampleWords() []domain.Word {
	return []domain.Word{
		{ID: 1, Original: "Hund", Translation: "dog", Article: "der"},
		{ID: 2, Original: "Katze", Translation: "cat", Article: "die"},
		{ID: 3, Original: "Haus", Translation: "house", Article: "das"},
		{ID: 4, Original: "Krankenhaus", Translation: "hospital", Article: "das"},
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loadedModel(t *testing.T, clip CopyFunc) (*WordsModel, *fakeRepo) {
	t.Helper()
	repo := &fakeRepo{words: sampleWords()}
	m := NewWordsModel(repo, clip)
	m.Update(m.Init()())
	if got := len(m.Visible()); got != 4 {
		t.Fatalf("expected 4 visible words, got %d", got)
	}
	return m, repo
}

func TestWordsModel_CopyTranslation(t *testing.T) {
	var copied []string
	m, _ := loadedModel(t, func(text string) error {
		copied = append(copied, text)
		return nil
	})

	m.Update(keyRunes("j"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if len(copied) != 1 || copied[0] != "cat" {
		t.Fatalf("expected cat to be copied, got %v", copied)
	}
	if m.MessageErr || !strings.Contains(m.Message, "cat") {
		t.Errorf("unexpected message %q", m.Message)
	}
}

func TestWordsModel_CopyFailure(t *testing.T) {
	m, _ := loadedModel(t, func(string) error { return errors.New("no clipboard") })

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if !m.MessageErr || !strings.Contains(m.Message, "no clipboard") {
		t.Errorf("expected copy error message, got %q", m.Message)
	}
}

func TestWordsModel_Filter(t *testing.T) {
	m, _ := loadedModel(t, func(string) error { return nil })

	m.Update(keyRunes("/"))
	for _, r := range "haus" {
		m.Update(keyRunes(string(r)))
	}

	visible := m.Visible()
	if len(visible) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(visible))
	}
	if visible[0].Original != "Haus" {
		t.Errorf("expected exact match first, got %s", visible[0].Original)
	}

	// typing q while filtering must not quit
	_, cmd := m.Update(keyRunes("q"))
	if cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			t.Error("q quit while filtering")
		}
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if len(m.Visible()) != 4 {
		t.Errorf("expected filter cleared, got %d words", len(m.Visible()))
	}
}

func TestWordsModel_Navigation(t *testing.T) {
	m, _ := loadedModel(t, func(string) error { return nil })

	m.Update(keyRunes("k"))
	if w, _ := m.Selected(); w.ID != 1 {
		t.Errorf("cursor moved above the first word: %d", w.ID)
	}
	for range 10 {
		m.Update(keyRunes("j"))
	}
	if w, _ := m.Selected(); w.ID != 4 {
		t.Errorf("expected last word selected, got %d", w.ID)
	}
}

func TestWordsModel_DeleteRequest(t *testing.T) {
	m, _ := loadedModel(t, func(string) error { return nil })

	_, cmd := m.Update(keyRunes("d"))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(SwitchToDeleteMsg)
	if !ok {
		t.Fatalf("expected SwitchToDeleteMsg, got %T", cmd())
	}
	if msg.WordID != 1 || msg.Label != "der Hund" {
		t.Errorf("unexpected delete target %+v", msg)
	}
}

func TestWordsModel_Empty(t *testing.T) {
	m := NewWordsModel(&fakeRepo{}, func(string) error { return nil })
	m.Update(m.Init()())

	if _, ok := m.Selected(); ok {
		t.Error("expected no selection")
	}
	if !strings.Contains(m.View(), "No words saved yet") {
		t.Error("expected empty state in view")
	}
}

func TestDeleteModel(t *testing.T) {
	repo := &fakeRepo{words: sampleWords()}
	m := NewDeleteModel(repo)
	m.SetTarget(2, "die Katze")

	if !strings.Contains(m.View(), "die Katze") {
		t.Error("expected target in view")
	}

	_, cmd := m.Update(keyRunes("y"))
	done, ok := cmd().(WordDeletedMsg)
	if !ok {
		t.Fatalf("expected WordDeletedMsg")
	}
	if done.Message != "Deleted word 2" {
		t.Errorf("unexpected message %q", done.Message)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != 2 {
		t.Errorf("expected word 2 deleted, got %v", repo.deleted)
	}

	_, cmd = m.Update(keyRunes("y"))
	msg := cmd()
	m.Update(msg)
	if !m.MessageErr {
		t.Error("expected error for missing word")
	}

	_, cmd = m.Update(keyRunes("n"))
	if _, ok := cmd().(SwitchToWordsMsg); !ok {
		t.Error("expected cancel to switch back")
	}
}
