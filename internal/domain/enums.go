package domain

// InputType is the closed set of interview question shapes. Validation
// branches on this rather than on free-form strings from the registry.
type InputType string

const (
	InputText         InputType = "text"
	InputNumber       InputType = "number"
	InputSingleSelect InputType = "single_select"
	InputMultiSelect  InputType = "multi_select"
)

// ValidInputTypes is the canonical set of accepted input type strings.
var ValidInputTypes = map[string]bool{
	"text": true, "number": true, "single_select": true, "multi_select": true,
}

// SessionStatus is the stored lifecycle state of a workout session.
// "not started" is implicit: no session row exists yet.
type SessionStatus string

const (
	SessionInProgress SessionStatus = "in_progress"
	SessionFinished   SessionStatus = "finished"
)

// EquipmentAssumption is the derived planning input for available equipment.
type EquipmentAssumption string

const (
	EquipmentBasicGym   EquipmentAssumption = "basic_gym"
	EquipmentBodyweight EquipmentAssumption = "bodyweight"
)
