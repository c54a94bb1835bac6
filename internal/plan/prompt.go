package plan

import (
	"fmt"
	"strings"

	"github.com/calebmorris/fitplan/internal/domain"
	"github.com/calebmorris/fitplan/internal/interview"
)

// SystemPrompt is the fixed instruction sent with every generation call.
// The required output shape mirrors the contract enforced by
// ValidateCandidate; keep the two in sync.
const SystemPrompt = `You are a certified personal trainer generating a structured workout plan.

You MUST output ONLY a JSON object with exactly this shape:
{
  "planSummary": { "title": "...", "focus": "...", "weeks": 8 },
  "weeklySchedule": [ "Mon: Session A", "Wed: Session B", ... ],
  "sessions": [
    {
      "sessionId": "A",
      "name": "Full Body Strength",
      "durationMinutes": 45,
      "warmup": [ {"name": "...", "prescription": "..."} ],
      "main": [ {"name": "...", "prescription": "..."} ],
      "cooldown": [ {"name": "...", "prescription": "..."} ]
    }
  ],
  "progressionRules": [ "..." ],
  "substitutions": { "exercise name": ["alternative", ...] },
  "trackingFields": [ "..." ],
  "safetyNotes": [ "..." ]
}

Rules:
- sessions must not be empty and every session needs sessionId, durationMinutes, warmup, main, cooldown.
- Respect the equipment assumption: do not program barbell work for a bodyweight plan.
- If the low-impact flag is set, avoid jumping, running and other high-impact movements.
- Output the JSON object only, no prose before or after it.`

// BuildUserPrompt renders the validated answers and derived fields into
// the user message. Questions are walked in registry order so the same
// input always renders the same prompt.
func BuildUserPrompt(questions []domain.Question, answers map[string]any, derived interview.DerivedFields) string {
	var b strings.Builder
	b.WriteString("Create a workout plan for a client with this interview profile:\n\n")

	for _, q := range questions {
		if !q.IsEnabled {
			continue
		}
		value, ok := formatAnswer(answers[q.Key])
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "- %s: %s\n", q.Label, value)
	}

	b.WriteString("\nPlanning inputs:\n")
	fmt.Fprintf(&b, "- equipment assumption: %s\n", derived.EquipmentAssumptions)
	fmt.Fprintf(&b, "- low impact required: %t\n", derived.LowImpact)
	if derived.TargetDate != nil {
		fmt.Fprintf(&b, "- target date: %s\n", *derived.TargetDate)
	}

	if extra, ok := formatAnswer(answers[interview.ReservedContextKey]); ok {
		fmt.Fprintf(&b, "\nAdditional context from the client:\n%s\n", extra)
	}

	return b.String()
}

func formatAnswer(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		if t == "" {
			return "", false
		}
		return t, true
	case float64:
		return fmt.Sprintf("%v", t), true
	case []string:
		if len(t) == 0 {
			return "", false
		}
		return strings.Join(t, ", "), true
	case []any:
		parts := make([]string, 0, len(t))
		for _, el := range t {
			if s, ok := el.(string); ok {
				parts = append(parts, s)
			}
		}
		if len(parts) == 0 {
			return "", false
		}
		return strings.Join(parts, ", "), true
	default:
		return "", false
	}
}
