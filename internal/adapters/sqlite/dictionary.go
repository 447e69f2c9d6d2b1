package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"wortkiste/internal/domain"
	"wortkiste/internal/ports"
)

var _ ports.DictionaryLookup = (*DictionaryLookup)(nil)

// DictionaryLookup reads headwords from materialized dictionary databases
type DictionaryLookup struct{}

func NewDictionaryLookup() *DictionaryLookup {
	return &DictionaryLookup{}
}

type entryRow struct {
	Word          string `db:"word"`
	Pronunciation string `db:"pronunciation"`
	Gender        string `db:"gender"`
	Meanings      string `db:"meanings"`
	Notes         string `db:"notes"`
	Synonyms      string `db:"synonyms"`
	SeeAlso       string `db:"see_also"`
}

// Search returns entries whose headword starts with query. Exact matches
// sort first.
func (l *DictionaryLookup) Search(ctx context.Context, dbPath, query string, limit int) ([]domain.DictionaryEntry, error) {
	db, err := OpenReadOnly(dbPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if limit <= 0 {
		limit = 20
	}
	q := strings.TrimSpace(query)

	var rows []entryRow
	err = db.SelectContext(ctx, &rows, `
		SELECT word,
			COALESCE(pronunciation, '') AS pronunciation,
			COALESCE(gender, '') AS gender,
			COALESCE(meanings, '[]') AS meanings,
			COALESCE(notes, '[]') AS notes,
			COALESCE(synonyms, '[]') AS synonyms,
			COALESCE(see_also, '[]') AS see_also
		FROM entries
		WHERE word LIKE ? ESCAPE '\'
		ORDER BY (word = ?) DESC, length(word), word
		LIMIT ?
	`, escapeLike(q)+"%", q, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search dictionary: %w", err)
	}

	entries := make([]domain.DictionaryEntry, 0, len(rows))
	for _, row := range rows {
		entry, err := row.toDomain()
		if err != nil {
			return nil, fmt.Errorf("failed to decode entry %q: %w", row.Word, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (r entryRow) toDomain() (domain.DictionaryEntry, error) {
	e := domain.DictionaryEntry{
		Word:          r.Word,
		Pronunciation: r.Pronunciation,
		Gender:        r.Gender,
	}
	for _, f := range []struct {
		raw string
		dst *[]string
	}{
		{r.Meanings, &e.Meanings},
		{r.Notes, &e.Notes},
		{r.Synonyms, &e.Synonyms},
		{r.SeeAlso, &e.SeeAlso},
	} {
		if f.raw == "" {
			f.raw = "[]"
		}
		if err := json.Unmarshal([]byte(f.raw), f.dst); err != nil {
			return e, err
		}
	}
	return e, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
