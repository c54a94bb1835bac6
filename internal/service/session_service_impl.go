package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/calebmorris/fitplan/internal/db"
	"github.com/calebmorris/fitplan/internal/domain"
	"github.com/calebmorris/fitplan/internal/repository"
	"github.com/google/uuid"
)

type sessionService struct {
	sessions  repository.SessionRepo
	templates repository.TemplateRepo
	uow       db.UnitOfWork
}

func NewSessionService(sessions repository.SessionRepo, templates repository.TemplateRepo, uow db.UnitOfWork) SessionService {
	return &sessionService{sessions: sessions, templates: templates, uow: uow}
}

func (s *sessionService) StartSession(ctx context.Context, templateID, userID string) (*domain.WorkoutSession, error) {
	var created *domain.WorkoutSession

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)
		txTemplates := repository.NewSQLiteTemplateRepo(tx)

		// Idempotent by lookup, not by creation: an existing in_progress
		// session redirects rather than duplicating.
		existing, err := txSessions.GetActive(ctx, userID, templateID)
		if err == nil {
			return &ConflictError{ExistingSessionID: existing.ID}
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		template, err := txTemplates.GetByID(ctx, templateID)
		if err != nil {
			return err
		}

		session := &domain.WorkoutSession{
			ID:         uuid.New().String(),
			TemplateID: templateID,
			UserID:     userID,
			Status:     domain.SessionInProgress,
			StartedAt:  time.Now().UTC(),
		}
		// Snapshot: later template edits must never alter this session.
		for _, e := range template.Exercises {
			session.Exercises = append(session.Exercises, domain.SessionExercise{
				ID:           uuid.New().String(),
				SessionID:    session.ID,
				Name:         e.Name,
				Prescription: e.Prescription,
				SortOrder:    e.SortOrder,
			})
		}

		if err := txSessions.Create(ctx, session); err != nil {
			// The partial unique index closes the check-then-insert race:
			// a concurrent Start that won is reported as the conflict.
			if repository.IsUniqueConstraint(err) {
				winner, lookupErr := s.sessions.GetActive(ctx, userID, templateID)
				if lookupErr == nil {
					return &ConflictError{ExistingSessionID: winner.ID}
				}
			}
			return err
		}

		created = session
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *sessionService) ToggleExercise(ctx context.Context, sessionID, exerciseID string, isCompleted bool) (*domain.WorkoutSession, error) {
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)

		session, err := txSessions.GetByID(ctx, sessionID)
		if err != nil {
			return err
		}

		var exercise *domain.SessionExercise
		for i := range session.Exercises {
			if session.Exercises[i].ID == exerciseID {
				exercise = &session.Exercises[i]
				break
			}
		}
		if exercise == nil {
			return fmt.Errorf("exercise %s in session %s: %w", exerciseID, sessionID, repository.ErrNotFound)
		}

		// Same-value toggles are true no-ops.
		if exercise.IsCompleted == isCompleted {
			return nil
		}

		exercise.IsCompleted = isCompleted
		if isCompleted {
			now := time.Now().UTC()
			exercise.CompletedAt = &now
		} else {
			exercise.CompletedAt = nil
		}
		return txSessions.UpdateExercise(ctx, exercise)
	})
	if err != nil {
		return nil, err
	}
	return s.sessions.GetByID(ctx, sessionID)
}

func (s *sessionService) FinishSession(ctx context.Context, sessionID, dayNote string) (*domain.WorkoutSession, error) {
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)

		session, err := txSessions.GetByID(ctx, sessionID)
		if err != nil {
			return err
		}

		// Idempotent: finishing a finished session keeps the original
		// finished_at and day note.
		if session.Status == domain.SessionFinished {
			return nil
		}

		now := time.Now().UTC()
		session.Status = domain.SessionFinished
		session.FinishedAt = &now
		if dayNote != "" {
			session.DayNote = dayNote
		}
		return txSessions.UpdateLifecycle(ctx, session)
	})
	if err != nil {
		return nil, err
	}
	return s.sessions.GetByID(ctx, sessionID)
}

func (s *sessionService) ResetSession(ctx context.Context, sessionID string) (*domain.WorkoutSession, error) {
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)

		session, err := txSessions.GetByID(ctx, sessionID)
		if err != nil {
			return err
		}

		if err := txSessions.ResetExercises(ctx, sessionID); err != nil {
			return err
		}

		session.Status = domain.SessionInProgress
		session.FinishedAt = nil
		return txSessions.UpdateLifecycle(ctx, session)
	})
	if err != nil {
		return nil, err
	}
	return s.sessions.GetByID(ctx, sessionID)
}
