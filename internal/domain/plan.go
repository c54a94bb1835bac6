package domain

import (
	"encoding/json"
	"time"
)

// GeneratedPlan is a validated workout plan produced from an interview
// response. PlanJSON has already passed the plan schema contract; raw
// generator output that failed the contract never becomes a GeneratedPlan.
type GeneratedPlan struct {
	ID         string
	UserID     string
	ResponseID string
	PlanJSON   json.RawMessage
	CreatedAt  time.Time
}
