package plan

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minimalPlan returns the smallest conforming candidate as a mutable map.
func minimalPlan() map[string]any {
	return map[string]any{
		"planSummary":    map[string]any{"title": "Starter"},
		"weeklySchedule": []any{"Mon: A"},
		"sessions": []any{
			map[string]any{
				"sessionId":       "A",
				"durationMinutes": 45,
				"warmup":          []any{},
				"main":            []any{map[string]any{"name": "Squat", "prescription": "3x8"}},
				"cooldown":        []any{},
			},
		},
		"progressionRules": []any{"add a rep each week"},
		"substitutions":    map[string]any{},
		"trackingFields":   []any{"weight"},
		"safetyNotes":      []any{},
	}
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func TestValidateCandidate_AcceptsMinimalPlan(t *testing.T) {
	assert.Nil(t, ValidateCandidate(mustJSON(t, minimalPlan())))
}

func TestValidateCandidate_AcceptsExtraTopLevelKeys(t *testing.T) {
	p := minimalPlan()
	p["coachNotes"] = "schema is open at the top level"
	p["version"] = 3
	assert.Nil(t, ValidateCandidate(mustJSON(t, p)))
}

func TestValidateCandidate_RejectsNonObject(t *testing.T) {
	err := ValidateCandidate([]byte(`["not", "an", "object"]`))
	require.NotNil(t, err)
	assert.Contains(t, err.Violations[0], "not a JSON object")
}

func TestValidateCandidate_RejectsMissingSessions(t *testing.T) {
	p := minimalPlan()
	delete(p, "sessions")

	err := ValidateCandidate(mustJSON(t, p))
	require.NotNil(t, err)
	assert.Contains(t, err.Violations, "sessions: required array missing")
}

func TestValidateCandidate_RejectsEmptySessions(t *testing.T) {
	p := minimalPlan()
	p["sessions"] = []any{}

	err := ValidateCandidate(mustJSON(t, p))
	require.NotNil(t, err)
	assert.Contains(t, err.Violations, "sessions: must not be empty")
}

func TestValidateCandidate_RejectsSessionMissingDuration(t *testing.T) {
	p := minimalPlan()
	session := p["sessions"].([]any)[0].(map[string]any)
	delete(session, "durationMinutes")

	err := ValidateCandidate(mustJSON(t, p))
	require.NotNil(t, err)
	assert.Contains(t, err.Violations, "sessions[0].durationMinutes: required number missing")
}

func TestValidateCandidate_RejectsStringDuration(t *testing.T) {
	p := minimalPlan()
	p["sessions"].([]any)[0].(map[string]any)["durationMinutes"] = "45"

	err := ValidateCandidate(mustJSON(t, p))
	require.NotNil(t, err)
	assert.Contains(t, err.Violations, "sessions[0].durationMinutes: required number missing")
}

func TestValidateCandidate_ReportsEveryViolation(t *testing.T) {
	err := ValidateCandidate([]byte(`{"sessions": [{}]}`))
	require.NotNil(t, err)
	// Missing planSummary, weeklySchedule, the four metadata fields, and
	// five per-session fields.
	assert.GreaterOrEqual(t, len(err.Violations), 10)
}

func TestValidateCandidate_BoundsPayloadSize(t *testing.T) {
	huge := `{"padding": "` + strings.Repeat("x", MaxCandidateBytes) + `"}`

	err := ValidateCandidate([]byte(huge))
	require.NotNil(t, err)
	assert.Contains(t, err.Violations[0], "limit")
}
