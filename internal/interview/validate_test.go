package interview

import (
	"testing"

	"github.com/calebmorris/fitplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registryForTest() []domain.Question {
	return []domain.Question{
		{
			Key: KeyMainGoal, InputType: domain.InputSingleSelect, IsRequired: true, IsEnabled: true,
			Options: []domain.Option{
				{Value: "lose_weight", IsEnabled: true},
				{Value: "build_muscle", IsEnabled: true},
				{Value: "retired", IsEnabled: false},
			},
		},
		{Key: KeyDaysPerWeek, InputType: domain.InputNumber, IsRequired: true, IsEnabled: true},
		{Key: KeyLocation, InputType: domain.InputText, IsRequired: true, IsEnabled: true},
		{
			Key: KeyEquipment, InputType: domain.InputMultiSelect, IsEnabled: true,
			Options: []domain.Option{
				{Value: "dumbbells", IsEnabled: true},
				{Value: "barbell", IsEnabled: true},
			},
		},
		{Key: KeyInjuries, InputType: domain.InputText, IsEnabled: true},
		{Key: "disabled_question", InputType: domain.InputText, IsRequired: true, IsEnabled: false},
	}
}

func validAnswers() map[string]any {
	return map[string]any{
		KeyMainGoal:    "lose_weight",
		KeyDaysPerWeek: "3",
		KeyLocation:    "home",
	}
}

func TestValidateAnswers_Valid(t *testing.T) {
	errs := ValidateAnswers(registryForTest(), validAnswers())
	assert.Empty(t, errs)
}

func TestValidateAnswers_MissingRequiredNamesKey(t *testing.T) {
	answers := validAnswers()
	delete(answers, KeyDaysPerWeek)

	errs := ValidateAnswers(registryForTest(), answers)
	require.Len(t, errs, 1)
	assert.Equal(t, KeyDaysPerWeek, errs[0].Key)
}

func TestValidateAnswers_EmptyStringCountsAsMissing(t *testing.T) {
	answers := validAnswers()
	answers[KeyLocation] = ""

	errs := ValidateAnswers(registryForTest(), answers)
	require.Len(t, errs, 1)
	assert.Equal(t, KeyLocation, errs[0].Key)
}

func TestValidateAnswers_SingleSelectRejectsUnknownOption(t *testing.T) {
	answers := validAnswers()
	answers[KeyMainGoal] = "grow_wings"

	errs := ValidateAnswers(registryForTest(), answers)
	require.Len(t, errs, 1)
	assert.Equal(t, KeyMainGoal, errs[0].Key)
	assert.Contains(t, errs[0].Message, "grow_wings")
}

func TestValidateAnswers_SingleSelectRejectsDisabledOption(t *testing.T) {
	answers := validAnswers()
	answers[KeyMainGoal] = "retired"

	errs := ValidateAnswers(registryForTest(), answers)
	require.Len(t, errs, 1)
	assert.Equal(t, KeyMainGoal, errs[0].Key)
}

func TestValidateAnswers_MultiSelectMustBeArray(t *testing.T) {
	answers := validAnswers()
	answers[KeyEquipment] = "dumbbells"

	errs := ValidateAnswers(registryForTest(), answers)
	require.Len(t, errs, 1)
	assert.Equal(t, KeyEquipment, errs[0].Key)
}

func TestValidateAnswers_MultiSelectValidatesEachElement(t *testing.T) {
	answers := validAnswers()
	answers[KeyEquipment] = []string{"dumbbells", "trampoline"}

	errs := ValidateAnswers(registryForTest(), answers)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "trampoline")
}

func TestValidateAnswers_MultiSelectAcceptsDecodedJSONArray(t *testing.T) {
	answers := validAnswers()
	// encoding/json decodes arrays as []any.
	answers[KeyEquipment] = []any{"dumbbells", "barbell"}

	errs := ValidateAnswers(registryForTest(), answers)
	assert.Empty(t, errs)
}

func TestValidateAnswers_NumberMustBeNumeric(t *testing.T) {
	answers := validAnswers()
	answers[KeyDaysPerWeek] = "a few"

	errs := ValidateAnswers(registryForTest(), answers)
	require.Len(t, errs, 1)
	assert.Equal(t, KeyDaysPerWeek, errs[0].Key)
}

func TestValidateAnswers_NumberAcceptsJSONNumber(t *testing.T) {
	answers := validAnswers()
	answers[KeyDaysPerWeek] = float64(4)

	errs := ValidateAnswers(registryForTest(), answers)
	assert.Empty(t, errs)
}

func TestValidateAnswers_UnknownKeysIgnored(t *testing.T) {
	answers := validAnswers()
	answers["favorite_color"] = "green"
	answers[ReservedContextKey] = "recovering from a cold last week"

	errs := ValidateAnswers(registryForTest(), answers)
	assert.Empty(t, errs)
}

func TestValidateAnswers_DisabledQuestionNotEnforced(t *testing.T) {
	// disabled_question is required but disabled; its absence is fine.
	errs := ValidateAnswers(registryForTest(), validAnswers())
	assert.Empty(t, errs)
}

func TestValidateAnswers_AccumulatesAllFailures(t *testing.T) {
	errs := ValidateAnswers(registryForTest(), map[string]any{
		KeyMainGoal:    "grow_wings",
		KeyDaysPerWeek: "many",
	})
	assert.Len(t, errs, 3) // bad option, bad number, missing location
}
