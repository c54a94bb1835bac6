package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent so the
// full list is re-run on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// Interview question registry. Owned by an external admin surface;
	// this core only reads it. q_key is the durable join target for
	// stored responses, labels are free to change.
	`CREATE TABLE IF NOT EXISTS questions (
		id         TEXT PRIMARY KEY,
		q_key      TEXT NOT NULL UNIQUE,
		label      TEXT NOT NULL,
		help_text  TEXT NOT NULL DEFAULT '',
		input_type TEXT NOT NULL
		           CHECK(input_type IN ('text','number','single_select','multi_select')),
		is_required INTEGER NOT NULL DEFAULT 0,
		sort_order  INTEGER NOT NULL DEFAULT 0,
		is_enabled  INTEGER NOT NULL DEFAULT 1
	)`,

	`CREATE TABLE IF NOT EXISTS question_options (
		id          TEXT PRIMARY KEY,
		question_id TEXT NOT NULL REFERENCES questions(id) ON DELETE CASCADE,
		value       TEXT NOT NULL,
		label       TEXT NOT NULL,
		sort_order  INTEGER NOT NULL DEFAULT 0,
		is_enabled  INTEGER NOT NULL DEFAULT 1
	)`,
	`CREATE INDEX IF NOT EXISTS idx_question_options_question ON question_options(question_id)`,

	// Interview responses are immutable: resubmission inserts a new row.
	`CREATE TABLE IF NOT EXISTS interview_responses (
		id            TEXT PRIMARY KEY,
		user_id       TEXT NOT NULL,
		submitted_at  TEXT NOT NULL,
		response_json TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_responses_user ON interview_responses(user_id, submitted_at DESC)`,

	// A row exists here only for candidates that passed the plan schema
	// contract. Rejected generator output is never stored.
	`CREATE TABLE IF NOT EXISTS generated_plans (
		id          TEXT PRIMARY KEY,
		user_id     TEXT NOT NULL,
		response_id TEXT NOT NULL REFERENCES interview_responses(id),
		plan_json   TEXT NOT NULL,
		created_at  TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_plans_user ON generated_plans(user_id, created_at DESC)`,

	`CREATE TABLE IF NOT EXISTS workout_templates (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS template_exercises (
		id           TEXT PRIMARY KEY,
		template_id  TEXT NOT NULL REFERENCES workout_templates(id) ON DELETE CASCADE,
		name         TEXT NOT NULL,
		prescription TEXT NOT NULL DEFAULT '',
		sort_order   INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_template_exercises_template ON template_exercises(template_id)`,

	`CREATE TABLE IF NOT EXISTS workout_sessions (
		id          TEXT PRIMARY KEY,
		template_id TEXT NOT NULL REFERENCES workout_templates(id),
		user_id     TEXT NOT NULL,
		status      TEXT NOT NULL CHECK(status IN ('in_progress','finished')),
		started_at  TEXT NOT NULL,
		finished_at TEXT,
		day_note    TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_user_started ON workout_sessions(user_id, started_at)`,

	// Storage-level guarantee behind the duplicate-start check: two
	// concurrent starts for the same (user, template) cannot both insert
	// an in_progress row.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_sessions_one_active
		ON workout_sessions(user_id, template_id) WHERE status = 'in_progress'`,

	// Exercise rows are snapshots copied from the template at session
	// start. Template edits never touch them.
	`CREATE TABLE IF NOT EXISTS session_exercises (
		id           TEXT PRIMARY KEY,
		session_id   TEXT NOT NULL REFERENCES workout_sessions(id) ON DELETE CASCADE,
		name         TEXT NOT NULL,
		prescription TEXT NOT NULL DEFAULT '',
		sort_order   INTEGER NOT NULL DEFAULT 0,
		is_completed INTEGER NOT NULL DEFAULT 0,
		completed_at TEXT,
		notes        TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_session_exercises_session ON session_exercises(session_id)`,

	// Default interview registry so a fresh database is usable. The
	// external admin surface may edit or disable any of these later.
	`INSERT OR IGNORE INTO questions (id, q_key, label, help_text, input_type, is_required, sort_order, is_enabled) VALUES
		('q-main-goal', 'main_goal', 'What is your main goal?', '', 'single_select', 1, 10, 1),
		('q-experience', 'experience_level', 'How experienced are you?', '', 'single_select', 1, 20, 1),
		('q-days', 'days_per_week', 'How many days per week can you train?', '1-7', 'number', 1, 30, 1),
		('q-length', 'session_length_minutes', 'How long can each session be?', 'minutes', 'number', 1, 40, 1),
		('q-location', 'training_location', 'Where will you train?', 'e.g. home, gym, park', 'text', 1, 50, 1),
		('q-equipment', 'available_equipment', 'What equipment do you have?', '', 'multi_select', 0, 60, 1),
		('q-injuries', 'injuries_limitations', 'Any injuries or limitations?', '', 'text', 0, 70, 1),
		('q-target-date', 'target_date', 'Working toward a date?', 'YYYY-MM-DD', 'text', 0, 80, 1)`,

	`INSERT OR IGNORE INTO question_options (id, question_id, value, label, sort_order, is_enabled) VALUES
		('o-goal-lose', 'q-main-goal', 'lose_weight', 'Lose weight', 10, 1),
		('o-goal-muscle', 'q-main-goal', 'build_muscle', 'Build muscle', 20, 1),
		('o-goal-endurance', 'q-main-goal', 'endurance', 'Improve endurance', 30, 1),
		('o-goal-general', 'q-main-goal', 'general_fitness', 'General fitness', 40, 1),
		('o-exp-beginner', 'q-experience', 'beginner', 'Beginner', 10, 1),
		('o-exp-intermediate', 'q-experience', 'intermediate', 'Intermediate', 20, 1),
		('o-exp-advanced', 'q-experience', 'advanced', 'Advanced', 30, 1),
		('o-eq-dumbbells', 'q-equipment', 'dumbbells', 'Dumbbells', 10, 1),
		('o-eq-barbell', 'q-equipment', 'barbell', 'Barbell', 20, 1),
		('o-eq-kettlebell', 'q-equipment', 'kettlebell', 'Kettlebell', 30, 1),
		('o-eq-bands', 'q-equipment', 'resistance_bands', 'Resistance bands', 40, 1),
		('o-eq-pullup', 'q-equipment', 'pull_up_bar', 'Pull-up bar', 50, 1),
		('o-eq-none', 'q-equipment', 'none', 'No equipment', 60, 1)`,
}
