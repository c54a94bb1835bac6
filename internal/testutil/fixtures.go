package testutil

import (
	"fmt"
	"time"

	"github.com/calebmorris/fitplan/internal/domain"
	"github.com/google/uuid"
)

// Template options
type TemplateOption func(*domain.WorkoutTemplate)

// WithExercises replaces the default exercise list with names only,
// using a default prescription.
func WithExercises(names ...string) TemplateOption {
	return func(t *domain.WorkoutTemplate) {
		t.Exercises = nil
		for i, name := range names {
			t.Exercises = append(t.Exercises, domain.TemplateExercise{
				ID:           uuid.New().String(),
				TemplateID:   t.ID,
				Name:         name,
				Prescription: "3x10",
				SortOrder:    (i + 1) * 10,
			})
		}
	}
}

// WithExerciseCount fills the template with n generated exercises.
func WithExerciseCount(n int) TemplateOption {
	return func(t *domain.WorkoutTemplate) {
		t.Exercises = nil
		for i := 0; i < n; i++ {
			t.Exercises = append(t.Exercises, domain.TemplateExercise{
				ID:           uuid.New().String(),
				TemplateID:   t.ID,
				Name:         fmt.Sprintf("Exercise %d", i+1),
				Prescription: "3x10",
				SortOrder:    (i + 1) * 10,
			})
		}
	}
}

// NewTestTemplate creates a template with two exercises unless options
// say otherwise.
func NewTestTemplate(name string, opts ...TemplateOption) *domain.WorkoutTemplate {
	t := &domain.WorkoutTemplate{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	WithExercises("Squat", "Push-up")(t)
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Question options
type QuestionOption func(*domain.Question)

func WithRequired() QuestionOption {
	return func(q *domain.Question) { q.IsRequired = true }
}

func WithOptionValues(values ...string) QuestionOption {
	return func(q *domain.Question) {
		q.Options = nil
		for i, v := range values {
			q.Options = append(q.Options, domain.Option{
				ID:         uuid.New().String(),
				QuestionID: q.ID,
				Value:      v,
				Label:      v,
				SortOrder:  (i + 1) * 10,
				IsEnabled:  true,
			})
		}
	}
}

// NewTestQuestion creates an enabled question of the given type.
func NewTestQuestion(key string, inputType domain.InputType, opts ...QuestionOption) *domain.Question {
	q := &domain.Question{
		ID:        uuid.New().String(),
		Key:       key,
		Label:     key,
		InputType: inputType,
		IsEnabled: true,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// ValidSeedAnswers answers every required question of the migration-seeded
// registry.
func ValidSeedAnswers() map[string]any {
	return map[string]any{
		"main_goal":              "lose_weight",
		"experience_level":       "beginner",
		"days_per_week":          "3",
		"session_length_minutes": "45",
		"training_location":      "home",
	}
}

// ValidPlanJSON is a minimal candidate that satisfies the plan schema
// contract, for stubbing generators in tests.
const ValidPlanJSON = `{
	"planSummary": {"title": "Test Plan", "weeks": 4},
	"weeklySchedule": ["Mon: A", "Thu: A"],
	"sessions": [
		{
			"sessionId": "A",
			"durationMinutes": 40,
			"warmup": [{"name": "March in place", "prescription": "2 min"}],
			"main": [{"name": "Goblet squat", "prescription": "3x10"}],
			"cooldown": [{"name": "Quad stretch", "prescription": "30s each side"}]
		}
	],
	"progressionRules": ["add one rep per week"],
	"substitutions": {"Goblet squat": ["Bodyweight squat"]},
	"trackingFields": ["weight", "reps"],
	"safetyNotes": ["stop on sharp pain"]
}`
