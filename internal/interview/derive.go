package interview

import (
	"strings"

	"github.com/calebmorris/fitplan/internal/domain"
)

// DerivedFields are auxiliary planning inputs computed from validated
// answers. The low-impact flag is retained downstream; the raw injury
// text that produced it is not logged by any consumer.
type DerivedFields struct {
	TargetDate           *string
	EquipmentAssumptions domain.EquipmentAssumption
	LowImpact            bool
}

// Derive computes planning inputs from a validated answer set. Pure and
// deterministic: identical input always yields identical output.
func Derive(answers map[string]any) DerivedFields {
	d := DerivedFields{EquipmentAssumptions: domain.EquipmentBodyweight}

	// Case-insensitive on purpose: "Gym", "GYM" and "gym" all mean a gym.
	if location, ok := answerString(answers[KeyLocation]); ok {
		if strings.Contains(strings.ToLower(location), "gym") {
			d.EquipmentAssumptions = domain.EquipmentBasicGym
		}
	}

	if injuries, ok := answerString(answers[KeyInjuries]); ok {
		d.LowImpact = strings.TrimSpace(injuries) != ""
	}

	if target, ok := answerString(answers[KeyTargetDate]); ok && target != "" {
		d.TargetDate = &target
	}

	return d
}
