package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/calebmorris/fitplan/internal/interview"
)

// ErrInvalidJSON indicates the generator's raw text could not be parsed
// as JSON even after fence stripping. The attempt is discarded; nothing
// is stored. The caller may retry generation.
var ErrInvalidJSON = errors.New("generator output is not valid JSON")

// ValidationError carries every interview field that failed validation.
// Recoverable: the caller resubmits corrected answers. Nothing was
// persisted.
type ValidationError struct {
	Fields []interview.FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Error()
	}
	return "invalid interview submission: " + strings.Join(parts, "; ")
}

// ConflictError signals that an in_progress session already exists for
// the (user, template) pair. Not a failure: it redirects the caller to
// the existing resource.
type ConflictError struct {
	ExistingSessionID string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("an in-progress session already exists: %s", e.ExistingSessionID)
}
