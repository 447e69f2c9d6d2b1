package domain

// Word is a flashcard saved by the user. Timestamps are unix milliseconds;
// zero means never.
type Word struct {
	ID             int64  `json:"id"`
	Original       string `json:"original"`
	Translation    string `json:"translation"`
	Article        string `json:"article"`
	Score          int    `json:"score"`
	CreatedAt      int64  `json:"createdAt"`
	LastReviewedAt int64  `json:"lastReviewedAt"`
	NextReviewAt   int64  `json:"nextReviewAt"`
}

// Label returns the word with its article, e.g. "der Hund"
func (w Word) Label() string {
	if w.Article == "" {
		return w.Original
	}
	return w.Article + " " + w.Original
}

// Review is a schedule computed by the caller for a reviewed word
type Review struct {
	Score        int
	ReviewedAt   int64
	NextReviewAt int64
}

// WordFilter narrows a word listing
type WordFilter struct {
	Query string // matched against original and translation
	Limit int    // 0 means no limit
}
