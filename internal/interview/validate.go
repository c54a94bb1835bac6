package interview

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/calebmorris/fitplan/internal/domain"
)

// FieldError names the question key (or offending value) that failed
// validation, so the caller can self-correct without guessing.
type FieldError struct {
	Key     string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Key, e.Message)
}

// ValidateAnswers checks a submitted answer set against the enabled
// registry questions. Pure check, no side effects; all failures are
// accumulated and reported, never silently corrected.
//
// Keys in answers with no matching registry question are ignored, except
// the reserved additional-context key which is always allowed.
func ValidateAnswers(questions []domain.Question, answers map[string]any) []FieldError {
	var errs []FieldError

	for _, q := range questions {
		if !q.IsEnabled {
			continue
		}

		value, present := answers[q.Key]
		if !present || isEmptyAnswer(value) {
			if q.IsRequired {
				errs = append(errs, FieldError{Key: q.Key, Message: "answer is required"})
			}
			continue
		}

		switch q.InputType {
		case domain.InputText:
			if _, ok := answerString(value); !ok {
				errs = append(errs, FieldError{Key: q.Key, Message: "expected a text value"})
			}

		case domain.InputNumber:
			s, ok := answerString(value)
			if !ok {
				errs = append(errs, FieldError{Key: q.Key, Message: "expected a numeric value"})
				continue
			}
			if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
				errs = append(errs, FieldError{Key: q.Key, Message: fmt.Sprintf("value %q is not numeric", s)})
			}

		case domain.InputSingleSelect:
			s, ok := answerString(value)
			if !ok {
				errs = append(errs, FieldError{Key: q.Key, Message: "expected a single value, not a list"})
				continue
			}
			enabled := q.EnabledOptionValues()
			if len(enabled) > 0 && !enabled[s] {
				errs = append(errs, FieldError{Key: q.Key, Message: fmt.Sprintf("value %q is not an allowed option", s)})
			}

		case domain.InputMultiSelect:
			selected, ok := answerStrings(value)
			if !ok {
				errs = append(errs, FieldError{Key: q.Key, Message: "expected a list of values"})
				continue
			}
			enabled := q.EnabledOptionValues()
			if len(enabled) == 0 {
				continue
			}
			for _, s := range selected {
				if !enabled[s] {
					errs = append(errs, FieldError{Key: q.Key, Message: fmt.Sprintf("value %q is not an allowed option", s)})
				}
			}
		}
	}

	return errs
}

// isEmptyAnswer reports whether a present value counts as missing for
// required-question purposes: empty string or empty array.
func isEmptyAnswer(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []string:
		return len(t) == 0
	case []any:
		return len(t) == 0
	default:
		return false
	}
}

// answerString coerces scalar answer shapes to a string. JSON numbers
// arrive as float64 when submissions come through encoding/json.
func answerString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	default:
		return "", false
	}
}

// answerStrings coerces array answer shapes ([]string directly, or
// []any of strings after JSON decoding) to a string slice.
func answerStrings(v any) ([]string, bool) {
	switch t := v.(type) {
	case []string:
		return t, true
	case []any:
		out := make([]string, 0, len(t))
		for _, el := range t {
			s, ok := el.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}
