package ports

import "context"

// Translator translates short texts such as single words between languages
type Translator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}
