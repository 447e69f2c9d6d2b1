package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wortkiste/internal/application"
	"wortkiste/internal/domain"
	"wortkiste/internal/ports"
)

// AddWordResult contains the result of saving a word
type AddWordResult struct {
	Word    *domain.Word
	Message string
}

// AddWordCommand saves a new flashcard. With a translator attached, a
// missing translation is looked up before saving.
type AddWordCommand struct {
	repo        ports.WordRepository
	Original    string
	Translation string
	Article     string

	translate *TranslateCommand
}

// NewAddWordCommand creates a new AddWordCommand
func NewAddWordCommand(repo ports.WordRepository, original, translation, article string) *AddWordCommand {
	return &AddWordCommand{
		repo:        repo,
		Original:    original,
		Translation: translation,
		Article:     article,
	}
}

// WithTranslator fills an empty translation using translator. A nil
// translator leaves the translation required.
func (c *AddWordCommand) WithTranslator(translator ports.Translator, source, target string) *AddWordCommand {
	if translator != nil {
		c.translate = NewTranslateCommand(translator, c.Original, source, target)
	}
	return c
}

// Validate checks if the add operation is valid
func (c *AddWordCommand) Validate() error {
	if err := application.ValidateRequired("original", c.Original); err != nil {
		return err
	}
	if c.translate != nil && strings.TrimSpace(c.Translation) == "" {
		c.translate.Text = c.Original
		return c.translate.Validate()
	}
	return application.ValidateRequired("translation", c.Translation)
}

// Execute runs the add word command
func (c *AddWordCommand) Execute(ctx context.Context) (*AddWordResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if c.translate != nil && strings.TrimSpace(c.Translation) == "" {
		result, err := c.translate.Execute(ctx)
		if err != nil {
			return nil, err
		}
		c.Translation = result.Translation
	}

	word, err := c.repo.Add(ctx, domain.Word{
		Original:    strings.TrimSpace(c.Original),
		Translation: strings.TrimSpace(c.Translation),
		Article:     strings.TrimSpace(c.Article),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add word: %w", err)
	}

	return &AddWordResult{
		Word:    word,
		Message: fmt.Sprintf("Added word %d: %s = %s", word.ID, word.Label(), word.Translation),
	}, nil
}

// DeleteWordResult contains the result of a delete operation
type DeleteWordResult struct {
	DeletedID int64
	Message   string
}

// DeleteWordCommand deletes a word by ID
type DeleteWordCommand struct {
	repo ports.WordRepository
	ID   int64
}

// NewDeleteWordCommand creates a new DeleteWordCommand
func NewDeleteWordCommand(repo ports.WordRepository, id int64) *DeleteWordCommand {
	return &DeleteWordCommand{
		repo: repo,
		ID:   id,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteWordCommand) Validate() error {
	if c.ID <= 0 {
		return &application.ValidationError{
			Field:   "id",
			Message: fmt.Sprintf("invalid ID: %d", c.ID),
		}
	}
	return nil
}

// Execute runs the delete command
func (c *DeleteWordCommand) Execute(ctx context.Context) (*DeleteWordResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.repo.Delete(ctx, c.ID); err != nil {
		return nil, fmt.Errorf("failed to delete word %d: %w", c.ID, err)
	}

	return &DeleteWordResult{
		DeletedID: c.ID,
		Message:   fmt.Sprintf("Deleted word %d", c.ID),
	}, nil
}

// ListWordsCommand lists saved words
type ListWordsCommand struct {
	repo   ports.WordRepository
	Filter domain.WordFilter
}

// NewListWordsCommand creates a new ListWordsCommand
func NewListWordsCommand(repo ports.WordRepository, filter domain.WordFilter) *ListWordsCommand {
	return &ListWordsCommand{
		repo:   repo,
		Filter: filter,
	}
}

// Execute runs the list words command
func (c *ListWordsCommand) Execute(ctx context.Context) ([]domain.Word, error) {
	return c.repo.List(ctx, c.Filter)
}

// DueWordsCommand lists words that are due for review
type DueWordsCommand struct {
	repo  ports.WordRepository
	Now   time.Time
	Limit int
}

// NewDueWordsCommand creates a new DueWordsCommand
func NewDueWordsCommand(repo ports.WordRepository, now time.Time, limit int) *DueWordsCommand {
	return &DueWordsCommand{
		repo:  repo,
		Now:   now,
		Limit: limit,
	}
}

// Execute runs the due words command
func (c *DueWordsCommand) Execute(ctx context.Context) ([]domain.Word, error) {
	return c.repo.Due(ctx, c.Now.UnixMilli(), c.Limit)
}

// RecordReviewCommand stores the outcome of reviewing a word. The schedule
// itself is decided by the caller.
type RecordReviewCommand struct {
	repo   ports.WordRepository
	ID     int64
	Review domain.Review
}

// NewRecordReviewCommand creates a new RecordReviewCommand
func NewRecordReviewCommand(repo ports.WordRepository, id int64, review domain.Review) *RecordReviewCommand {
	return &RecordReviewCommand{
		repo:   repo,
		ID:     id,
		Review: review,
	}
}

// Validate checks if the review is consistent
func (c *RecordReviewCommand) Validate() error {
	if c.ID <= 0 {
		return &application.ValidationError{
			Field:   "id",
			Message: fmt.Sprintf("invalid ID: %d", c.ID),
		}
	}
	if c.Review.NextReviewAt < c.Review.ReviewedAt {
		return &application.ValidationError{
			Field:   "nextReviewAt",
			Message: "next review must not be before the review itself",
		}
	}
	return nil
}

// Execute runs the record review command
func (c *RecordReviewCommand) Execute(ctx context.Context) (*domain.Word, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	word, err := c.repo.RecordReview(ctx, c.ID, c.Review)
	if err != nil {
		return nil, fmt.Errorf("failed to record review for word %d: %w", c.ID, err)
	}
	return word, nil
}
