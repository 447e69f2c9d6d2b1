package commands

import (
	"context"
	"fmt"
	"strings"

	"wortkiste/internal/application"
	"wortkiste/internal/ports"
)

// TranslateResult contains the result of a translation
type TranslateResult struct {
	Text        string `json:"text"`
	Translation string `json:"translation"`
	Source      string `json:"source"`
	Target      string `json:"target"`
}

// TranslateCommand translates a word or short phrase
type TranslateCommand struct {
	translator ports.Translator
	Text       string
	Source     string
	Target     string
}

// NewTranslateCommand creates a new TranslateCommand
func NewTranslateCommand(translator ports.Translator, text, source, target string) *TranslateCommand {
	return &TranslateCommand{
		translator: translator,
		Text:       text,
		Source:     source,
		Target:     target,
	}
}

// Validate checks if the translation can be requested
func (c *TranslateCommand) Validate() error {
	if err := application.ValidateRequired("text", c.Text); err != nil {
		return err
	}
	if err := application.ValidateRequired("source", c.Source); err != nil {
		return err
	}
	if err := application.ValidateRequired("target", c.Target); err != nil {
		return err
	}
	if c.translator == nil {
		return &application.ValidationError{
			Field:   "translator",
			Message: fmt.Sprintf("translation %v: set translate.base_url", application.ErrNotConfigured),
		}
	}
	return nil
}

// Execute runs the translate command
func (c *TranslateCommand) Execute(ctx context.Context) (*TranslateResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	text := strings.TrimSpace(c.Text)
	translation, err := c.translator.Translate(ctx, text, c.Source, c.Target)
	if err != nil {
		return nil, fmt.Errorf("failed to translate %q: %w", text, err)
	}

	return &TranslateResult{
		Text:        text,
		Translation: translation,
		Source:      c.Source,
		Target:      c.Target,
	}, nil
}
