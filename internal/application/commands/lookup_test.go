package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wortkiste/internal/application"
	"wortkiste/internal/domain"
)

type stubLookup struct {
	dbPath  string
	query   string
	limit   int
	entries []domain.DictionaryEntry
}

func (s *stubLookup) Search(_ context.Context, dbPath, query string, limit int) ([]domain.DictionaryEntry, error) {
	s.dbPath, s.query, s.limit = dbPath, query, limit
	return s.entries, nil
}

func TestLookupCommand(t *testing.T) {
	ctx := context.Background()

	t.Run("searches the materialized database", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "dictionary_de.db"), []byte("db"), 0644))
		m, _ := newTestMaterializer(t, dir)
		lookup := &stubLookup{entries: []domain.DictionaryEntry{{Word: "Haus"}}}

		result, err := NewLookupCommand(m, lookup, "de", "Haus", 0).Execute(ctx)
		require.NoError(t, err)
		assert.Len(t, result.Entries, 1)
		assert.Equal(t, filepath.Join(dir, "dictionary_de.db"), lookup.dbPath)
		assert.Equal(t, defaultLookupLimit, lookup.limit)
	})

	t.Run("missing dictionary", func(t *testing.T) {
		m, _ := newTestMaterializer(t, t.TempDir())
		lookup := &stubLookup{}

		result, err := NewLookupCommand(m, lookup, "xx", "Haus", 5).Execute(ctx)
		assert.ErrorIs(t, err, application.ErrNotFound)
		require.NotNil(t, result)
		assert.False(t, result.Status.Exists)
		assert.Empty(t, lookup.dbPath)
	})

	t.Run("query required", func(t *testing.T) {
		m, _ := newTestMaterializer(t, t.TempDir())
		_, err := NewLookupCommand(m, &stubLookup{}, "de", " ", 5).Execute(ctx)
		var ve *application.ValidationError
		assert.ErrorAs(t, err, &ve)
	})
}

func TestFormatEntry(t *testing.T) {
	got := FormatEntry(domain.DictionaryEntry{
		Word:          "Haus",
		Gender:        "n",
		Pronunciation: "haʊs",
		Meanings:      []string{"<b>house</b>", "home"},
		Synonyms:      []string{"Gebäude"},
		SeeAlso:       []string{"Hof", "Heim"},
	})

	want := "Haus (n) /haʊs/\n" +
		"  1. house\n" +
		"  2. home\n" +
		"  synonyms: Gebäude\n" +
		"  see also: Hof, Heim\n"
	assert.Equal(t, want, got)
}
