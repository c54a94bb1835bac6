package repository

import (
	"context"
	"testing"

	"github.com/calebmorris/fitplan/internal/domain"
	"github.com/calebmorris/fitplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionRepo_ListEnabled_SeededRegistry(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteQuestionRepo(db)

	questions, err := repo.ListEnabled(context.Background())
	require.NoError(t, err)
	require.Len(t, questions, 8)

	// Registry order follows sort_order.
	assert.Equal(t, "main_goal", questions[0].Key)
	assert.Equal(t, "target_date", questions[7].Key)

	byKey := make(map[string]domain.Question, len(questions))
	for _, q := range questions {
		byKey[q.Key] = q
	}
	goal := byKey["main_goal"]
	assert.Equal(t, domain.InputSingleSelect, goal.InputType)
	assert.True(t, goal.IsRequired)
	assert.Len(t, goal.Options, 4)
	assert.True(t, goal.EnabledOptionValues()["lose_weight"])

	injuries := byKey["injuries_limitations"]
	assert.Equal(t, domain.InputText, injuries.InputType)
	assert.False(t, injuries.IsRequired)
	assert.Empty(t, injuries.Options)
}

func TestQuestionRepo_ListEnabled_SkipsDisabled(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteQuestionRepo(db)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `UPDATE questions SET is_enabled = 0 WHERE q_key = 'target_date'`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `UPDATE question_options SET is_enabled = 0 WHERE value = 'endurance'`)
	require.NoError(t, err)

	questions, err := repo.ListEnabled(ctx)
	require.NoError(t, err)
	require.Len(t, questions, 7)
	for _, q := range questions {
		assert.NotEqual(t, "target_date", q.Key)
		if q.Key == "main_goal" {
			assert.Len(t, q.Options, 3)
			assert.False(t, q.EnabledOptionValues()["endurance"])
		}
	}
}
