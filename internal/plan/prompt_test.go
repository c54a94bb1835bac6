package plan

import (
	"testing"

	"github.com/calebmorris/fitplan/internal/domain"
	"github.com/calebmorris/fitplan/internal/interview"
	"github.com/stretchr/testify/assert"
)

func promptQuestions() []domain.Question {
	return []domain.Question{
		{Key: interview.KeyMainGoal, Label: "Main goal", InputType: domain.InputSingleSelect, IsEnabled: true, SortOrder: 10},
		{Key: interview.KeyDaysPerWeek, Label: "Days per week", InputType: domain.InputNumber, IsEnabled: true, SortOrder: 20},
		{Key: interview.KeyEquipment, Label: "Equipment", InputType: domain.InputMultiSelect, IsEnabled: true, SortOrder: 30},
		{Key: "retired_q", Label: "Old question", InputType: domain.InputText, IsEnabled: false, SortOrder: 40},
	}
}

func TestBuildUserPrompt_EmbedsAnswersAndDerived(t *testing.T) {
	answers := map[string]any{
		interview.KeyMainGoal:    "build_muscle",
		interview.KeyDaysPerWeek: "4",
		interview.KeyEquipment:   []string{"dumbbells", "pull_up_bar"},
	}
	target := "2026-11-01"
	derived := interview.DerivedFields{
		EquipmentAssumptions: domain.EquipmentBasicGym,
		LowImpact:            true,
		TargetDate:           &target,
	}

	prompt := BuildUserPrompt(promptQuestions(), answers, derived)

	assert.Contains(t, prompt, "Main goal: build_muscle")
	assert.Contains(t, prompt, "Days per week: 4")
	assert.Contains(t, prompt, "Equipment: dumbbells, pull_up_bar")
	assert.Contains(t, prompt, "equipment assumption: basic_gym")
	assert.Contains(t, prompt, "low impact required: true")
	assert.Contains(t, prompt, "target date: 2026-11-01")
	assert.NotContains(t, prompt, "Old question")
}

func TestBuildUserPrompt_IncludesAdditionalContext(t *testing.T) {
	answers := map[string]any{
		interview.KeyMainGoal:           "endurance",
		interview.ReservedContextKey:    "training for a spring 10k",
		"unknown_key_without_question": "ignored",
	}

	prompt := BuildUserPrompt(promptQuestions(), answers, interview.DerivedFields{
		EquipmentAssumptions: domain.EquipmentBodyweight,
	})

	assert.Contains(t, prompt, "training for a spring 10k")
	assert.NotContains(t, prompt, "ignored")
}

func TestBuildUserPrompt_Deterministic(t *testing.T) {
	answers := map[string]any{
		interview.KeyMainGoal:    "lose_weight",
		interview.KeyDaysPerWeek: "3",
	}
	derived := interview.Derive(answers)

	first := BuildUserPrompt(promptQuestions(), answers, derived)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, BuildUserPrompt(promptQuestions(), answers, derived))
	}
}

func TestSystemPrompt_NamesContractFields(t *testing.T) {
	for _, field := range []string{"planSummary", "weeklySchedule", "sessions", "progressionRules", "substitutions", "trackingFields", "safetyNotes", "durationMinutes"} {
		assert.Contains(t, SystemPrompt, field)
	}
}
