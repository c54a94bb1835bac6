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

// SQLiteResponseRepo implements ResponseRepo over a SQLite database.
// Responses are insert-only; there is deliberately no Update.
type SQLiteResponseRepo struct {
	db db.DBTX
}

// NewSQLiteResponseRepo creates a new SQLiteResponseRepo.
func NewSQLiteResponseRepo(db db.DBTX) *SQLiteResponseRepo {
	return &SQLiteResponseRepo{db: db}
}

func (r *SQLiteResponseRepo) Create(ctx context.Context, resp *domain.InterviewResponse) error {
	answersJSON, err := json.Marshal(resp.Answers)
	if err != nil {
		return fmt.Errorf("marshaling answers: %w", err)
	}

	query := `INSERT INTO interview_responses (id, user_id, submitted_at, response_json)
		VALUES (?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		resp.ID,
		resp.UserID,
		resp.SubmittedAt.Format(time.RFC3339),
		string(answersJSON),
	)
	if err != nil {
		return fmt.Errorf("inserting interview response: %w", err)
	}
	return nil
}

func (r *SQLiteResponseRepo) GetByID(ctx context.Context, id string) (*domain.InterviewResponse, error) {
	query := `SELECT id, user_id, submitted_at, response_json
		FROM interview_responses WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return scanResponse(row.Scan)
}

func (r *SQLiteResponseRepo) ListByUser(ctx context.Context, userID string) ([]*domain.InterviewResponse, error) {
	query := `SELECT id, user_id, submitted_at, response_json
		FROM interview_responses WHERE user_id = ? ORDER BY submitted_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing responses by user: %w", err)
	}
	defer rows.Close()

	var responses []*domain.InterviewResponse
	for rows.Next() {
		resp, err := scanResponse(rows.Scan)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating responses: %w", err)
	}
	return responses, nil
}

func scanResponse(scan func(dest ...any) error) (*domain.InterviewResponse, error) {
	var resp domain.InterviewResponse
	var submittedAtStr, answersJSON string

	err := scan(&resp.ID, &resp.UserID, &submittedAtStr, &answersJSON)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("interview response: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning interview response: %w", err)
	}

	resp.SubmittedAt, err = time.Parse(time.RFC3339, submittedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing submitted_at: %w", err)
	}
	if err := json.Unmarshal([]byte(answersJSON), &resp.Answers); err != nil {
		return nil, fmt.Errorf("parsing response_json: %w", err)
	}

	return &resp, nil
}
