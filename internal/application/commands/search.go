package commands

import (
	"context"
	"sort"
	"strings"

	"wortkiste/internal/domain"
	"wortkiste/internal/ports"
)

// WordMatch wraps domain.Word with a relevance score
type WordMatch struct {
	domain.Word
	Score int
}

// SearchWordsCommand searches saved words with fuzzy matching
type SearchWordsCommand struct {
	repo  ports.WordRepository
	Query string
}

// NewSearchWordsCommand creates a new SearchWordsCommand
func NewSearchWordsCommand(repo ports.WordRepository, query string) *SearchWordsCommand {
	return &SearchWordsCommand{
		repo:  repo,
		Query: query,
	}
}

// Execute runs the search command and returns scored, sorted results
func (c *SearchWordsCommand) Execute(ctx context.Context) ([]WordMatch, error) {
	if len([]rune(c.Query)) < 2 {
		return nil, nil
	}

	words, err := c.repo.List(ctx, domain.WordFilter{})
	if err != nil {
		return nil, err
	}

	return FuzzySort(words, c.Query), nil
}

// FuzzyScore calculates a relevance score for how well target matches query.
// Matching works on runes so umlauts count as single characters.
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)

	if len(query) == 0 {
		return 0
	}

	// Substring matches rank above any fuzzy match
	if strings.Contains(target, query) {
		score := 100
		if strings.HasPrefix(target, query) {
			score += 50
		}
		return score
	}

	t := []rune(target)
	q := []rune(query)

	score := 0
	qi := 0
	prev := -1

	for i := 0; i < len(t) && qi < len(q); i++ {
		if t[i] != q[qi] {
			continue
		}
		if prev == i-1 {
			score += 10 // consecutive
		}
		if i == 0 {
			score += 15
		}
		if i > 0 && (t[i-1] == ' ' || t[i-1] == '-') {
			score += 10 // word start
		}
		score++
		prev = i
		qi++
	}

	if qi == len(q) {
		return score
	}
	return 0
}

// FuzzySort ranks words by relevance to the query and drops non-matches
func FuzzySort(words []domain.Word, query string) []WordMatch {
	scored := make([]WordMatch, 0, len(words))

	for _, w := range words {
		best := max(
			FuzzyScore(w.Original, query),
			FuzzyScore(w.Label(), query),
			FuzzyScore(w.Translation, query),
		)
		if best > 0 {
			scored = append(scored, WordMatch{Word: w, Score: best})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}
