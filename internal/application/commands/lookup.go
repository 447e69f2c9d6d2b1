package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/k3a/html2text"

	"wortkiste/internal/application"
	"wortkiste/internal/domain"
	"wortkiste/internal/ports"
)

const defaultLookupLimit = 10

// LookupResult contains dictionary entries and the status of the database
// they came from
type LookupResult struct {
	Status  *domain.DictionaryStatus
	Entries []domain.DictionaryEntry
}

// LookupCommand searches a language's dictionary, materializing it first
type LookupCommand struct {
	materializer *Materializer
	lookup       ports.DictionaryLookup
	Language     string
	Query        string
	Limit        int
}

// NewLookupCommand creates a new LookupCommand
func NewLookupCommand(m *Materializer, lookup ports.DictionaryLookup, language, query string, limit int) *LookupCommand {
	return &LookupCommand{
		materializer: m,
		lookup:       lookup,
		Language:     language,
		Query:        query,
		Limit:        limit,
	}
}

// Validate checks if the lookup is valid
func (c *LookupCommand) Validate() error {
	if err := application.ValidateLanguage(c.Language); err != nil {
		return err
	}
	return application.ValidateRequired("query", c.Query)
}

// Execute runs the lookup command
func (c *LookupCommand) Execute(ctx context.Context) (*LookupResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	status, err := c.materializer.Ensure(ctx, c.Language)
	if err != nil {
		return nil, err
	}
	if !status.Exists {
		return &LookupResult{Status: status}, fmt.Errorf("dictionary for %q: %w", c.Language, application.ErrNotFound)
	}

	limit := c.Limit
	if limit <= 0 {
		limit = defaultLookupLimit
	}
	entries, err := c.lookup.Search(ctx, status.Path, c.Query, limit)
	if err != nil {
		return nil, err
	}
	return &LookupResult{Status: status, Entries: entries}, nil
}

// FormatEntry renders an entry as plain text. Meanings may carry HTML markup.
func FormatEntry(e domain.DictionaryEntry) string {
	var sb strings.Builder

	sb.WriteString(e.Word)
	if e.Gender != "" {
		fmt.Fprintf(&sb, " (%s)", e.Gender)
	}
	if e.Pronunciation != "" {
		fmt.Fprintf(&sb, " /%s/", e.Pronunciation)
	}
	sb.WriteByte('\n')

	for i, m := range e.Meanings {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, strings.TrimSpace(html2text.HTML2Text(m)))
	}
	for _, n := range e.Notes {
		fmt.Fprintf(&sb, "  note: %s\n", strings.TrimSpace(html2text.HTML2Text(n)))
	}
	if len(e.Synonyms) > 0 {
		fmt.Fprintf(&sb, "  synonyms: %s\n", strings.Join(e.Synonyms, ", "))
	}
	if len(e.SeeAlso) > 0 {
		fmt.Fprintf(&sb, "  see also: %s\n", strings.Join(e.SeeAlso, ", "))
	}
	return sb.String()
}
