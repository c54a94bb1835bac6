package repository

import (
	"context"
	"testing"
	"time"

	"github.com/calebmorris/fitplan/internal/domain"
	"github.com/calebmorris/fitplan/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseRepo_RoundTripAnswers(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteResponseRepo(db)
	ctx := context.Background()

	resp := &domain.InterviewResponse{
		ID:          uuid.New().String(),
		UserID:      "user-1",
		SubmittedAt: time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC),
		Answers: map[string]any{
			"main_goal":           "lose_weight",
			"days_per_week":       "3",
			"available_equipment": []string{"dumbbells", "kettlebell"},
		},
	}
	require.NoError(t, repo.Create(ctx, resp))

	fetched, err := repo.GetByID(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "lose_weight", fetched.Answers["main_goal"])
	assert.Equal(t, "3", fetched.Answers["days_per_week"])
	// JSON arrays come back as []any.
	assert.Equal(t, []any{"dumbbells", "kettlebell"}, fetched.Answers["available_equipment"])
	assert.True(t, resp.SubmittedAt.Equal(fetched.SubmittedAt))
}

func TestResponseRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteResponseRepo(db)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResponseRepo_ListByUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteResponseRepo(db)
	ctx := context.Background()

	for i, userID := range []string{"user-1", "user-1", "user-2"} {
		resp := &domain.InterviewResponse{
			ID:          uuid.New().String(),
			UserID:      userID,
			SubmittedAt: time.Date(2026, 3, 5, 9+i, 0, 0, 0, time.UTC),
			Answers:     map[string]any{"main_goal": "lose_weight"},
		}
		require.NoError(t, repo.Create(ctx, resp))
	}

	responses, err := repo.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, responses, 2)
}
