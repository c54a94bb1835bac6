package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/calebmorris/fitplan/internal/db"
	"github.com/calebmorris/fitplan/internal/domain"
)

// SQLiteTemplateRepo implements TemplateRepo over a SQLite database.
type SQLiteTemplateRepo struct {
	db db.DBTX
}

// NewSQLiteTemplateRepo creates a new SQLiteTemplateRepo.
func NewSQLiteTemplateRepo(db db.DBTX) *SQLiteTemplateRepo {
	return &SQLiteTemplateRepo{db: db}
}

func (r *SQLiteTemplateRepo) Create(ctx context.Context, t *domain.WorkoutTemplate) error {
	query := `INSERT INTO workout_templates (id, name, created_at) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, t.ID, t.Name, t.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting workout template: %w", err)
	}

	for _, e := range t.Exercises {
		exQuery := `INSERT INTO template_exercises (id, template_id, name, prescription, sort_order)
			VALUES (?, ?, ?, ?, ?)`
		if _, err := r.db.ExecContext(ctx, exQuery, e.ID, t.ID, e.Name, e.Prescription, e.SortOrder); err != nil {
			return fmt.Errorf("inserting template exercise: %w", err)
		}
	}
	return nil
}

func (r *SQLiteTemplateRepo) GetByID(ctx context.Context, id string) (*domain.WorkoutTemplate, error) {
	query := `SELECT id, name, created_at FROM workout_templates WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var t domain.WorkoutTemplate
	var createdAtStr string
	if err := row.Scan(&t.ID, &t.Name, &createdAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("workout template: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning workout template: %w", err)
	}

	var err error
	t.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}

	exQuery := `SELECT id, template_id, name, prescription, sort_order
		FROM template_exercises WHERE template_id = ? ORDER BY sort_order, name`
	rows, err := r.db.QueryContext(ctx, exQuery, id)
	if err != nil {
		return nil, fmt.Errorf("listing template exercises: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e domain.TemplateExercise
		if err := rows.Scan(&e.ID, &e.TemplateID, &e.Name, &e.Prescription, &e.SortOrder); err != nil {
			return nil, fmt.Errorf("scanning template exercise: %w", err)
		}
		t.Exercises = append(t.Exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating template exercises: %w", err)
	}

	return &t, nil
}

func (r *SQLiteTemplateRepo) List(ctx context.Context) ([]*domain.WorkoutTemplate, error) {
	query := `SELECT id, name, created_at FROM workout_templates ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing workout templates: %w", err)
	}
	defer rows.Close()

	var templates []*domain.WorkoutTemplate
	for rows.Next() {
		var t domain.WorkoutTemplate
		var createdAtStr string
		if err := rows.Scan(&t.ID, &t.Name, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning workout template: %w", err)
		}
		t.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		templates = append(templates, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating workout templates: %w", err)
	}
	return templates, nil
}
