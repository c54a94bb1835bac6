package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/calebmorris/fitplan/internal/db"
	"github.com/calebmorris/fitplan/internal/domain"
	"github.com/calebmorris/fitplan/internal/repository"
	"github.com/calebmorris/fitplan/internal/testutil"
	"github.com/stretchr/testify/require"
)

// testEnv bundles the repositories and services under test over a single
// in-memory database.
type testEnv struct {
	db        *sql.DB
	questions *repository.SQLiteQuestionRepo
	responses *repository.SQLiteResponseRepo
	plans     *repository.SQLitePlanRepo
	templates *repository.SQLiteTemplateRepo
	sessions  *repository.SQLiteSessionRepo
	uow       db.UnitOfWork
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &testEnv{
		db:        database,
		questions: repository.NewSQLiteQuestionRepo(database),
		responses: repository.NewSQLiteResponseRepo(database),
		plans:     repository.NewSQLitePlanRepo(database),
		templates: repository.NewSQLiteTemplateRepo(database),
		sessions:  repository.NewSQLiteSessionRepo(database),
		uow:       testutil.NewTestUoW(database),
	}
}

func (e *testEnv) sessionService() SessionService {
	return NewSessionService(e.sessions, e.templates, e.uow)
}

func (e *testEnv) seedTemplate(t *testing.T, opts ...testutil.TemplateOption) *domain.WorkoutTemplate {
	t.Helper()
	tmpl := testutil.NewTestTemplate("Full Body A", opts...)
	require.NoError(t, e.templates.Create(context.Background(), tmpl))
	return tmpl
}

func (e *testEnv) countSessions(t *testing.T, userID, templateID string) int {
	t.Helper()
	var n int
	err := e.db.QueryRow(
		`SELECT COUNT(*) FROM workout_sessions WHERE user_id = ? AND template_id = ?`,
		userID, templateID,
	).Scan(&n)
	require.NoError(t, err)
	return n
}
