package ports

import (
	"context"

	"wortkiste/internal/domain"
)

// WordRepository defines the interface for flashcard storage
type WordRepository interface {
	Add(ctx context.Context, word domain.Word) (*domain.Word, error)
	Get(ctx context.Context, id int64) (*domain.Word, error)
	List(ctx context.Context, filter domain.WordFilter) ([]domain.Word, error)
	Delete(ctx context.Context, id int64) error

	// Due returns words whose next review is at or before now (unix ms)
	Due(ctx context.Context, now int64, limit int) ([]domain.Word, error)

	// RecordReview stores a schedule computed outside this repository
	RecordReview(ctx context.Context, id int64, review domain.Review) (*domain.Word, error)
}

// DictionaryLookup searches a materialized dictionary database
type DictionaryLookup interface {
	Search(ctx context.Context, dbPath, query string, limit int) ([]domain.DictionaryEntry, error)
}
