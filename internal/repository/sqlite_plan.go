package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/calebmorris/fitplan/internal/db"
	"github.com/calebmorris/fitplan/internal/domain"
)

// SQLitePlanRepo implements PlanRepo over a SQLite database.
type SQLitePlanRepo struct {
	db db.DBTX
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(db db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: db}
}

func (r *SQLitePlanRepo) Create(ctx context.Context, p *domain.GeneratedPlan) error {
	query := `INSERT INTO generated_plans (id, user_id, response_id, plan_json, created_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.UserID,
		p.ResponseID,
		string(p.PlanJSON),
		p.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting generated plan: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) GetByID(ctx context.Context, id string) (*domain.GeneratedPlan, error) {
	query := `SELECT id, user_id, response_id, plan_json, created_at
		FROM generated_plans WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return scanPlan(row.Scan)
}

func (r *SQLitePlanRepo) GetLatestByUser(ctx context.Context, userID string) (*domain.GeneratedPlan, error) {
	query := `SELECT id, user_id, response_id, plan_json, created_at
		FROM generated_plans WHERE user_id = ?
		ORDER BY created_at DESC, id DESC LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, userID)
	return scanPlan(row.Scan)
}

func (r *SQLitePlanRepo) ListByUser(ctx context.Context, userID string) ([]*domain.GeneratedPlan, error) {
	query := `SELECT id, user_id, response_id, plan_json, created_at
		FROM generated_plans WHERE user_id = ? ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing plans by user: %w", err)
	}
	defer rows.Close()

	var plans []*domain.GeneratedPlan
	for rows.Next() {
		p, err := scanPlan(rows.Scan)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plans: %w", err)
	}
	return plans, nil
}

func scanPlan(scan func(dest ...any) error) (*domain.GeneratedPlan, error) {
	var p domain.GeneratedPlan
	var planJSON, createdAtStr string

	err := scan(&p.ID, &p.UserID, &p.ResponseID, &planJSON, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("generated plan: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning generated plan: %w", err)
	}

	p.PlanJSON = json.RawMessage(planJSON)
	p.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}

	return &p, nil
}
