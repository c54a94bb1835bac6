package plan

import (
	"encoding/json"
	"fmt"
)

// MaxCandidateBytes bounds parsing cost for untrusted generator output.
// Anything larger is rejected before structural checks run.
const MaxCandidateBytes = 1 << 20

// ContractError lists every structural violation found in a candidate
// plan, so the failure can be diagnosed without storing the raw payload.
type ContractError struct {
	Violations []string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("plan violates structural contract: %v", e.Violations)
}

// requiredSessionArrays are the per-session exercise phases that must be
// present as arrays.
var requiredSessionArrays = []string{"warmup", "main", "cooldown"}

// ValidateCandidate enforces the structural contract on a parsed-JSON
// candidate plan. The candidate is fully untrusted data: extraneous
// top-level keys are permitted (the schema is open), but every required
// field must be present with the required shape. Returns nil when the
// candidate conforms.
func ValidateCandidate(data []byte) *ContractError {
	if len(data) > MaxCandidateBytes {
		return &ContractError{Violations: []string{
			fmt.Sprintf("payload is %d bytes, limit is %d", len(data), MaxCandidateBytes),
		}}
	}

	var top map[string]any
	if err := json.Unmarshal(data, &top); err != nil {
		return &ContractError{Violations: []string{"top-level value is not a JSON object"}}
	}

	var violations []string

	if _, ok := top["planSummary"].(map[string]any); !ok {
		violations = append(violations, "planSummary: required object missing")
	}
	if _, ok := top["weeklySchedule"].([]any); !ok {
		violations = append(violations, "weeklySchedule: required array missing")
	}
	for _, field := range []string{"progressionRules", "substitutions", "trackingFields", "safetyNotes"} {
		if _, ok := top[field]; !ok {
			violations = append(violations, field+": required field missing")
		}
	}

	sessions, ok := top["sessions"].([]any)
	switch {
	case !ok:
		violations = append(violations, "sessions: required array missing")
	case len(sessions) == 0:
		violations = append(violations, "sessions: must not be empty")
	default:
		for i, raw := range sessions {
			violations = append(violations, validateSession(i, raw)...)
		}
	}

	if len(violations) > 0 {
		return &ContractError{Violations: violations}
	}
	return nil
}

func validateSession(i int, raw any) []string {
	prefix := fmt.Sprintf("sessions[%d]", i)

	session, ok := raw.(map[string]any)
	if !ok {
		return []string{prefix + ": not an object"}
	}

	var violations []string
	if _, ok := session["sessionId"]; !ok {
		violations = append(violations, prefix+".sessionId: required field missing")
	}
	if _, ok := session["durationMinutes"].(float64); !ok {
		violations = append(violations, prefix+".durationMinutes: required number missing")
	}
	for _, field := range requiredSessionArrays {
		if _, ok := session[field].([]any); !ok {
			violations = append(violations, prefix+"."+field+": required array missing")
		}
	}
	return violations
}
