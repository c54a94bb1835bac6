package interview

// Well-known registry keys the derivation heuristics read. The registry
// may carry any further questions; these are the ones with downstream
// meaning beyond prompt text.
const (
	KeyMainGoal      = "main_goal"
	KeyDaysPerWeek   = "days_per_week"
	KeySessionLength = "session_length_minutes"
	KeyLocation      = "training_location"
	KeyEquipment     = "available_equipment"
	KeyInjuries      = "injuries_limitations"
	KeyTargetDate    = "target_date"
)

// ReservedContextKey is accepted in submissions without a matching
// registry question. Its value is consumed only by the prompt builder.
const ReservedContextKey = "additional_context"
