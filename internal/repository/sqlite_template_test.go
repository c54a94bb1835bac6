package repository

import (
	"context"
	"testing"

	"github.com/calebmorris/fitplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTemplateRepo(db)
	ctx := context.Background()

	tmpl := testutil.NewTestTemplate("Pull Day", testutil.WithExercises("Deadlift", "Row", "Plank"))
	require.NoError(t, repo.Create(ctx, tmpl))

	fetched, err := repo.GetByID(ctx, tmpl.ID)
	require.NoError(t, err)
	assert.Equal(t, tmpl.Name, fetched.Name)
	require.Len(t, fetched.Exercises, 3)
	// Exercises come back in sort order.
	assert.Equal(t, "Deadlift", fetched.Exercises[0].Name)
	assert.Equal(t, "Plank", fetched.Exercises[2].Name)
}

func TestTemplateRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTemplateRepo(db)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTemplateRepo_List(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTemplateRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestTemplate("Upper Body")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestTemplate("Lower Body")))

	templates, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, templates, 2)
	// Ordered by name.
	assert.Equal(t, "Lower Body", templates[0].Name)
	assert.Equal(t, "Upper Body", templates[1].Name)
}
