package domain

import "time"

// Question is one interview prompt from the registry. Key is the durable
// identifier stored responses join against; Label may be renamed freely.
type Question struct {
	ID         string
	Key        string
	Label      string
	HelpText   string
	InputType  InputType
	IsRequired bool
	SortOrder  int
	IsEnabled  bool
	Options    []Option
}

// EnabledOptionValues returns the set of enabled option values for
// select-type questions. Empty for text/number questions.
func (q *Question) EnabledOptionValues() map[string]bool {
	values := make(map[string]bool, len(q.Options))
	for _, o := range q.Options {
		if o.IsEnabled {
			values[o.Value] = true
		}
	}
	return values
}

// Option is one allowed answer for a single_select/multi_select question.
type Option struct {
	ID         string
	QuestionID string
	Value      string
	Label      string
	SortOrder  int
	IsEnabled  bool
}

// InterviewResponse is an immutable submitted answer set. Answers maps
// question key to a string (text/number/single_select) or []string
// (multi_select). Resubmission creates a new record.
type InterviewResponse struct {
	ID          string
	UserID      string
	SubmittedAt time.Time
	Answers     map[string]any
}
