package repository

import (
	"context"
	"fmt"

	"github.com/calebmorris/fitplan/internal/db"
	"github.com/calebmorris/fitplan/internal/domain"
)

// SQLiteQuestionRepo implements QuestionRepo over a SQLite database.
type SQLiteQuestionRepo struct {
	db db.DBTX
}

// NewSQLiteQuestionRepo creates a new SQLiteQuestionRepo.
func NewSQLiteQuestionRepo(db db.DBTX) *SQLiteQuestionRepo {
	return &SQLiteQuestionRepo{db: db}
}

func (r *SQLiteQuestionRepo) ListEnabled(ctx context.Context) ([]domain.Question, error) {
	query := `SELECT id, q_key, label, help_text, input_type, is_required, sort_order, is_enabled
		FROM questions WHERE is_enabled = 1 ORDER BY sort_order, q_key`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing enabled questions: %w", err)
	}
	defer rows.Close()

	var questions []domain.Question
	index := make(map[string]int)
	for rows.Next() {
		var q domain.Question
		var required, enabled int
		if err := rows.Scan(&q.ID, &q.Key, &q.Label, &q.HelpText, &q.InputType, &required, &q.SortOrder, &enabled); err != nil {
			return nil, fmt.Errorf("scanning question row: %w", err)
		}
		q.IsRequired = intToBool(required)
		q.IsEnabled = intToBool(enabled)
		index[q.ID] = len(questions)
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating questions: %w", err)
	}

	optQuery := `SELECT o.id, o.question_id, o.value, o.label, o.sort_order, o.is_enabled
		FROM question_options o
		JOIN questions q ON o.question_id = q.id
		WHERE o.is_enabled = 1 AND q.is_enabled = 1
		ORDER BY o.sort_order, o.value`
	optRows, err := r.db.QueryContext(ctx, optQuery)
	if err != nil {
		return nil, fmt.Errorf("listing question options: %w", err)
	}
	defer optRows.Close()

	for optRows.Next() {
		var o domain.Option
		var enabled int
		if err := optRows.Scan(&o.ID, &o.QuestionID, &o.Value, &o.Label, &o.SortOrder, &enabled); err != nil {
			return nil, fmt.Errorf("scanning option row: %w", err)
		}
		o.IsEnabled = intToBool(enabled)
		if i, ok := index[o.QuestionID]; ok {
			questions[i].Options = append(questions[i].Options, o)
		}
	}
	if err := optRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating options: %w", err)
	}

	return questions, nil
}
