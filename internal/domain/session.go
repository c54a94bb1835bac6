package domain

import (
	"math"
	"time"
)

// WorkoutTemplate is an ordered exercise list owned by an external CRUD
// surface. This core only reads templates, and only at session start.
type WorkoutTemplate struct {
	ID        string
	Name      string
	CreatedAt time.Time
	Exercises []TemplateExercise
}

type TemplateExercise struct {
	ID           string
	TemplateID   string
	Name         string
	Prescription string
	SortOrder    int
}

// WorkoutSession tracks one run through a template. Exercises are a
// snapshot taken at start; later template edits never alter them.
type WorkoutSession struct {
	ID         string
	TemplateID string
	UserID     string
	Status     SessionStatus
	StartedAt  time.Time
	FinishedAt *time.Time
	DayNote    string
	Exercises  []SessionExercise
}

// SessionExercise is a snapshot row owned exclusively by its session.
type SessionExercise struct {
	ID           string
	SessionID    string
	Name         string
	Prescription string
	SortOrder    int
	IsCompleted  bool
	CompletedAt  *time.Time
	Notes        string
}

// CompletionPercent is derived at read time, never stored, so it cannot
// drift from the underlying exercise state. 0 when there are no exercises.
func (s *WorkoutSession) CompletionPercent() int {
	if len(s.Exercises) == 0 {
		return 0
	}
	completed := 0
	for _, e := range s.Exercises {
		if e.IsCompleted {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(len(s.Exercises))))
}
