package service

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/calebmorris/fitplan/internal/db"
	"github.com/calebmorris/fitplan/internal/repository"
	"github.com/calebmorris/fitplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newConcurrentTestDB creates a file-backed SQLite database in a temp
// directory. Unlike :memory:, a file-backed DB shares state across all
// connections in the pool, which is required to test real concurrent
// access with WAL mode.
func newConcurrentTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "concurrent_test.db")
	database, err := db.OpenDB(dbPath)
	require.NoError(t, err, "failed to create concurrent test database")
	t.Cleanup(func() { database.Close() })
	return database
}

func setupConcurrentEnv(t *testing.T) *testEnv {
	t.Helper()
	database := newConcurrentTestDB(t)
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

// TestConcurrentStartSession_OneWinner verifies that two simultaneous
// starts for the same (user, template) produce exactly one in_progress
// session: one caller wins, the other is told about the winner.
//
// SQLite allows only one writer at a time, so an attempt may transiently
// fail with SQLITE_BUSY. We retry with backoff, simulating a user
// re-running the command; a retried loser must still land on the
// conflict answer, never a second session.
func TestConcurrentStartSession_OneWinner(t *testing.T) {
	env := setupConcurrentEnv(t)
	tmpl := env.seedTemplate(t)
	svc := env.sessionService()
	ctx := context.Background()

	startWithRetry := func() error {
		const maxRetries = 5
		var err error
		for attempt := 0; attempt < maxRetries; attempt++ {
			_, err = svc.StartSession(ctx, tmpl.ID, "user-1")
			if err == nil || !isBusy(err) {
				return err
			}
			time.Sleep(time.Millisecond * time.Duration(1<<attempt))
		}
		return err
	}

	const attempts = 4
	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- startWithRetry()
		}()
	}
	wg.Wait()
	close(results)

	successes, conflicts := 0, 0
	for err := range results {
		var conflict *ConflictError
		switch {
		case err == nil:
			successes++
		case errors.As(err, &conflict):
			conflicts++
			assert.NotEmpty(t, conflict.ExistingSessionID)
		default:
			t.Fatalf("unexpected start error: %v", err)
		}
	}
	assert.Equal(t, 1, successes, "exactly one start must win")
	assert.Equal(t, attempts-1, conflicts, "every loser must see the conflict")

	assert.Equal(t, 1, env.countSessions(t, "user-1", tmpl.ID),
		"exactly one session row may exist for the pair")
}

func isBusy(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "SQLITE_BUSY") || strings.Contains(err.Error(), "database is locked")
}
