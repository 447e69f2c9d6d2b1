package application

import (
	"fmt"
	"strings"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "baseURL" -> "base URL")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"language":    "language",
		"original":    "original text",
		"translation": "translation",
		"baseURL":     "base URL",
		"query":       "query",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidateLanguage checks that a language identifier can be used in a file
// name. Identifiers are otherwise free-form: an unknown one is simply never
// found.
func ValidateLanguage(language string) error {
	if err := ValidateRequired("language", language); err != nil {
		return err
	}
	if strings.ContainsAny(language, `/\`) || strings.Contains(language, "..") {
		return &ValidationError{
			Field:   "language",
			Message: fmt.Sprintf("%v: %q must not contain path elements", ErrInvalidLanguage, language),
		}
	}
	return nil
}
