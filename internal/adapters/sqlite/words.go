package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"wortkiste/internal/application"
	"wortkiste/internal/domain"
	"wortkiste/internal/ports"
)

var _ ports.WordRepository = (*WordRepository)(nil)

// WordRepository stores flashcards in the words table
type WordRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewWordRepository creates a repository on a migrated database
func NewWordRepository(db *sqlx.DB) *WordRepository {
	return &WordRepository{db: db, now: time.Now}
}

type wordRow struct {
	ID             int64  `db:"id"`
	Original       string `db:"original"`
	Translation    string `db:"translation"`
	Article        string `db:"article"`
	Score          int    `db:"score"`
	CreatedAt      int64  `db:"createdAt"`
	LastReviewedAt int64  `db:"lastReviewedAt"`
	NextReviewAt   int64  `db:"nextReviewAt"`
}

func (r wordRow) toDomain() domain.Word {
	return domain.Word{
		ID:             r.ID,
		Original:       r.Original,
		Translation:    r.Translation,
		Article:        r.Article,
		Score:          r.Score,
		CreatedAt:      r.CreatedAt,
		LastReviewedAt: r.LastReviewedAt,
		NextReviewAt:   r.NextReviewAt,
	}
}

const wordColumns = `id, original, translation, article, score, createdAt, lastReviewedAt, nextReviewAt`

// normalize returns s in Unicode NFC so composed and decomposed umlauts
// compare equal
func normalize(s string) (string, error) {
	out, _, err := transform.String(norm.NFC, strings.TrimSpace(s))
	return out, err
}

func (r *WordRepository) Add(ctx context.Context, word domain.Word) (*domain.Word, error) {
	var err error
	for _, field := range []*string{&word.Original, &word.Translation, &word.Article} {
		if *field, err = normalize(*field); err != nil {
			return nil, fmt.Errorf("failed to normalize word: %w", err)
		}
	}
	if word.Original == "" || word.Translation == "" {
		return nil, &application.ValidationError{Field: "original", Message: "original and translation are required"}
	}
	word.CreatedAt = r.now().UnixMilli()

	res, err := r.db.NamedExecContext(ctx, `
		INSERT INTO words (original, translation, article, score, createdAt, lastReviewedAt, nextReviewAt)
		VALUES (:original, :translation, :article, :score, :createdAt, :lastReviewedAt, :nextReviewAt)
	`, wordRow{
		Original:       word.Original,
		Translation:    word.Translation,
		Article:        word.Article,
		Score:          word.Score,
		CreatedAt:      word.CreatedAt,
		LastReviewedAt: word.LastReviewedAt,
		NextReviewAt:   word.NextReviewAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to insert word: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get word id: %w", err)
	}
	word.ID = id
	return &word, nil
}

func (r *WordRepository) Get(ctx context.Context, id int64) (*domain.Word, error) {
	var row wordRow
	err := r.db.GetContext(ctx, &row, `SELECT `+wordColumns+` FROM words WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("word %d: %w", id, application.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get word: %w", err)
	}
	w := row.toDomain()
	return &w, nil
}

func (r *WordRepository) List(ctx context.Context, filter domain.WordFilter) ([]domain.Word, error) {
	query := `SELECT ` + wordColumns + ` FROM words`
	var args []any

	if q := strings.TrimSpace(filter.Query); q != "" {
		q, err := normalize(q)
		if err != nil {
			return nil, fmt.Errorf("failed to normalize query: %w", err)
		}
		query += ` WHERE original LIKE ? OR translation LIKE ?`
		like := "%" + q + "%"
		args = append(args, like, like)
	}
	query += ` ORDER BY id`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	return r.selectWords(ctx, query, args...)
}

func (r *WordRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM words WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete word: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete word: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("word %d: %w", id, application.ErrNotFound)
	}
	return nil
}

func (r *WordRepository) Due(ctx context.Context, now int64, limit int) ([]domain.Word, error) {
	query := `SELECT ` + wordColumns + ` FROM words WHERE nextReviewAt <= ? ORDER BY nextReviewAt, id`
	args := []any{now}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	return r.selectWords(ctx, query, args...)
}

func (r *WordRepository) RecordReview(ctx context.Context, id int64, review domain.Review) (*domain.Word, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE words SET score = ?, lastReviewedAt = ?, nextReviewAt = ? WHERE id = ?`,
		review.Score, review.ReviewedAt, review.NextReviewAt, id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to record review: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, fmt.Errorf("failed to record review: %w", err)
	} else if n == 0 {
		return nil, fmt.Errorf("word %d: %w", id, application.ErrNotFound)
	}
	return r.Get(ctx, id)
}

func (r *WordRepository) selectWords(ctx context.Context, query string, args ...any) ([]domain.Word, error) {
	var rows []wordRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query words: %w", err)
	}
	words := make([]domain.Word, len(rows))
	for i, row := range rows {
		words[i] = row.toDomain()
	}
	return words, nil
}
