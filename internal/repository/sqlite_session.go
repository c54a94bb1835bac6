package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/calebmorris/fitplan/internal/db"
	"github.com/calebmorris/fitplan/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo over a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(db db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: db}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.WorkoutSession) error {
	query := `INSERT INTO workout_sessions (id, template_id, user_id, status, started_at, finished_at, day_note)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.TemplateID,
		s.UserID,
		string(s.Status),
		s.StartedAt.Format(time.RFC3339),
		nullableTimeToString(s.FinishedAt),
		s.DayNote,
	)
	if err != nil {
		return fmt.Errorf("inserting workout session: %w", err)
	}

	for _, e := range s.Exercises {
		exQuery := `INSERT INTO session_exercises (id, session_id, name, prescription, sort_order, is_completed, completed_at, notes)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
		_, err := r.db.ExecContext(ctx, exQuery,
			e.ID, s.ID, e.Name, e.Prescription, e.SortOrder,
			boolToInt(e.IsCompleted), nullableTimeToString(e.CompletedAt), e.Notes,
		)
		if err != nil {
			return fmt.Errorf("inserting session exercise: %w", err)
		}
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.WorkoutSession, error) {
	query := `SELECT id, template_id, user_id, status, started_at, finished_at, day_note
		FROM workout_sessions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	s, err := scanSession(row.Scan)
	if err != nil {
		return nil, err
	}
	if err := r.loadExercises(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SQLiteSessionRepo) GetActive(ctx context.Context, userID, templateID string) (*domain.WorkoutSession, error) {
	query := `SELECT id, template_id, user_id, status, started_at, finished_at, day_note
		FROM workout_sessions
		WHERE user_id = ? AND template_id = ? AND status = 'in_progress'`
	row := r.db.QueryRowContext(ctx, query, userID, templateID)

	s, err := scanSession(row.Scan)
	if err != nil {
		return nil, err
	}
	if err := r.loadExercises(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SQLiteSessionRepo) UpdateLifecycle(ctx context.Context, s *domain.WorkoutSession) error {
	query := `UPDATE workout_sessions SET status = ?, finished_at = ?, day_note = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		string(s.Status),
		nullableTimeToString(s.FinishedAt),
		s.DayNote,
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating session lifecycle: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("workout session: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteSessionRepo) UpdateExercise(ctx context.Context, e *domain.SessionExercise) error {
	query := `UPDATE session_exercises SET is_completed = ?, completed_at = ?, notes = ? WHERE id = ? AND session_id = ?`
	res, err := r.db.ExecContext(ctx, query,
		boolToInt(e.IsCompleted),
		nullableTimeToString(e.CompletedAt),
		e.Notes,
		e.ID,
		e.SessionID,
	)
	if err != nil {
		return fmt.Errorf("updating session exercise: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("session exercise: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteSessionRepo) ResetExercises(ctx context.Context, sessionID string) error {
	query := `UPDATE session_exercises SET is_completed = 0, completed_at = NULL WHERE session_id = ?`
	if _, err := r.db.ExecContext(ctx, query, sessionID); err != nil {
		return fmt.Errorf("resetting session exercises: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) ListByUserOnDay(ctx context.Context, userID, day string) ([]*domain.WorkoutSession, error) {
	query := `SELECT id, template_id, user_id, status, started_at, finished_at, day_note
		FROM workout_sessions
		WHERE user_id = ? AND date(started_at) = ?
		ORDER BY started_at`
	rows, err := r.db.QueryContext(ctx, query, userID, day)
	if err != nil {
		return nil, fmt.Errorf("listing sessions by day: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.WorkoutSession
	for rows.Next() {
		s, err := scanSession(rows.Scan)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}

	for _, s := range sessions {
		if err := r.loadExercises(ctx, s); err != nil {
			return nil, err
		}
	}
	return sessions, nil
}

func (r *SQLiteSessionRepo) CountByDayInMonth(ctx context.Context, userID, month string) ([]DayCount, error) {
	query := `SELECT date(started_at) AS day, COUNT(*)
		FROM workout_sessions
		WHERE user_id = ? AND strftime('%Y-%m', started_at) = ?
		GROUP BY day ORDER BY day`
	rows, err := r.db.QueryContext(ctx, query, userID, month)
	if err != nil {
		return nil, fmt.Errorf("counting sessions by day: %w", err)
	}
	defer rows.Close()

	var counts []DayCount
	for rows.Next() {
		var dc DayCount
		if err := rows.Scan(&dc.Date, &dc.Count); err != nil {
			return nil, fmt.Errorf("scanning day count: %w", err)
		}
		counts = append(counts, dc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating day counts: %w", err)
	}
	return counts, nil
}

// loadExercises fills in the snapshot exercises for a session, in
// snapshot order.
func (r *SQLiteSessionRepo) loadExercises(ctx context.Context, s *domain.WorkoutSession) error {
	query := `SELECT id, session_id, name, prescription, sort_order, is_completed, completed_at, notes
		FROM session_exercises WHERE session_id = ? ORDER BY sort_order, name`
	rows, err := r.db.QueryContext(ctx, query, s.ID)
	if err != nil {
		return fmt.Errorf("listing session exercises: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e domain.SessionExercise
		var completed int
		var completedAt sql.NullString
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Name, &e.Prescription, &e.SortOrder, &completed, &completedAt, &e.Notes); err != nil {
			return fmt.Errorf("scanning session exercise: %w", err)
		}
		e.IsCompleted = intToBool(completed)
		e.CompletedAt = parseNullableTime(completedAt)
		s.Exercises = append(s.Exercises, e)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating session exercises: %w", err)
	}
	return nil
}

func scanSession(scan func(dest ...any) error) (*domain.WorkoutSession, error) {
	var s domain.WorkoutSession
	var startedAtStr string
	var finishedAt sql.NullString

	err := scan(&s.ID, &s.TemplateID, &s.UserID, &s.Status, &startedAtStr, &finishedAt, &s.DayNote)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("workout session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning workout session: %w", err)
	}

	s.StartedAt, err = time.Parse(time.RFC3339, startedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing started_at: %w", err)
	}
	s.FinishedAt = parseNullableTime(finishedAt)

	return &s, nil
}
