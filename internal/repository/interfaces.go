package repository

import (
	"context"

	"github.com/calebmorris/fitplan/internal/domain"
)

// DayCount is one calendar-day bucket in a month aggregation.
type DayCount struct {
	Date  string // YYYY-MM-DD
	Count int
}

// QuestionRepo reads the interview registry. The registry is owned by an
// external admin surface; this core never writes it.
type QuestionRepo interface {
	ListEnabled(ctx context.Context) ([]domain.Question, error)
}

type ResponseRepo interface {
	Create(ctx context.Context, r *domain.InterviewResponse) error
	GetByID(ctx context.Context, id string) (*domain.InterviewResponse, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.InterviewResponse, error)
}

type PlanRepo interface {
	Create(ctx context.Context, p *domain.GeneratedPlan) error
	GetByID(ctx context.Context, id string) (*domain.GeneratedPlan, error)
	GetLatestByUser(ctx context.Context, userID string) (*domain.GeneratedPlan, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.GeneratedPlan, error)
}

// TemplateRepo reads workout templates. Create exists for seeding and
// tests; template editing proper lives in an external CRUD surface.
type TemplateRepo interface {
	Create(ctx context.Context, t *domain.WorkoutTemplate) error
	GetByID(ctx context.Context, id string) (*domain.WorkoutTemplate, error)
	List(ctx context.Context) ([]*domain.WorkoutTemplate, error)
}

type SessionRepo interface {
	// Create inserts the session and its exercise snapshots.
	Create(ctx context.Context, s *domain.WorkoutSession) error
	GetByID(ctx context.Context, id string) (*domain.WorkoutSession, error)

	// GetActive returns the in_progress session for (user, template),
	// or ErrNotFound.
	GetActive(ctx context.Context, userID, templateID string) (*domain.WorkoutSession, error)

	// UpdateLifecycle persists status, finished_at and day_note.
	UpdateLifecycle(ctx context.Context, s *domain.WorkoutSession) error

	// UpdateExercise persists is_completed, completed_at and notes for
	// one snapshot exercise.
	UpdateExercise(ctx context.Context, e *domain.SessionExercise) error

	// ResetExercises clears completion flags and timestamps for every
	// exercise in the session.
	ResetExercises(ctx context.Context, sessionID string) error

	ListByUserOnDay(ctx context.Context, userID, day string) ([]*domain.WorkoutSession, error)
	CountByDayInMonth(ctx context.Context, userID, month string) ([]DayCount, error)
}
