package service

import (
	"context"

	"github.com/calebmorris/fitplan/internal/domain"
)

type InterviewService interface {
	// SubmitResponse validates answers against the enabled registry and
	// persists an immutable response record. Returns *ValidationError
	// without persisting anything when validation fails.
	SubmitResponse(ctx context.Context, userID string, answers map[string]any) (*domain.InterviewResponse, error)
	GetResponse(ctx context.Context, id string) (*domain.InterviewResponse, error)
	ListResponses(ctx context.Context, userID string) ([]*domain.InterviewResponse, error)
}

type PlanService interface {
	// GeneratePlan runs the full pipeline for a stored response: derive,
	// prompt, generate, extract, validate, persist. Returns ErrInvalidJSON
	// or *plan.ContractError without persisting on bad generator output.
	GeneratePlan(ctx context.Context, responseID string) (*domain.GeneratedPlan, error)

	// GetLatestPlan returns the newest plan for the user, or nil when
	// the user has none.
	GetLatestPlan(ctx context.Context, userID string) (*domain.GeneratedPlan, error)
	ListPlans(ctx context.Context, userID string) ([]*domain.GeneratedPlan, error)
}

type SessionService interface {
	// StartSession snapshots the template into a new in_progress session.
	// Returns *ConflictError carrying the existing session id when one is
	// already in progress for this (user, template).
	StartSession(ctx context.Context, templateID, userID string) (*domain.WorkoutSession, error)

	// ToggleExercise sets an exercise's completion state. Last write
	// wins; toggling to the current value is a no-op.
	ToggleExercise(ctx context.Context, sessionID, exerciseID string, isCompleted bool) (*domain.WorkoutSession, error)

	// FinishSession is idempotent: finishing a finished session returns
	// it unchanged, with the original finished_at.
	FinishSession(ctx context.Context, sessionID, dayNote string) (*domain.WorkoutSession, error)

	// ResetSession clears all completion state and reverts the session
	// to in_progress. Permitted from any status.
	ResetSession(ctx context.Context, sessionID string) (*domain.WorkoutSession, error)
}

// CalendarDay is one day entry of a month view.
type CalendarDay struct {
	Date  string // YYYY-MM-DD
	Count int
}

type CalendarService interface {
	// GetCalendar returns one entry per calendar day of the month
	// (YYYY-MM), with a zero count for days without sessions.
	GetCalendar(ctx context.Context, userID, month string) ([]CalendarDay, error)

	// GetDay returns the user's full session list for a date (YYYY-MM-DD).
	GetDay(ctx context.Context, userID, day string) ([]*domain.WorkoutSession, error)
}
