package application

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidLanguage = errors.New("invalid language")
	ErrNotConfigured   = errors.New("not configured")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// MaterializeError represents a failed attempt to materialize a dictionary.
// It carries the trace collected up to the failure.
type MaterializeError struct {
	Language string
	Op       string
	Logs     []string
	Err      error
}

func (e *MaterializeError) Error() string {
	return fmt.Sprintf("failed to %s for %q: %v", e.Op, e.Language, e.Err)
}

func (e *MaterializeError) Unwrap() error {
	return e.Err
}

// ErrorWithLogs renders err for a remote caller. Materialize failures get
// their trace appended as a JSON array after a LOGS: marker.
func ErrorWithLogs(err error) string {
	var me *MaterializeError
	if !errors.As(err, &me) {
		return err.Error()
	}
	logs, jerr := json.Marshal(me.Logs)
	if jerr != nil {
		logs = []byte("[]")
	}
	return fmt.Sprintf("%s LOGS:%s", me.Error(), logs)
}
