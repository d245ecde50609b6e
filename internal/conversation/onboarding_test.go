package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthassist/internal/domain"
)

func TestAdvanceOnboarding_FullIntakeSequence(t *testing.T) {
	profile := &domain.UserProfile{}
	step := domain.StepName

	answers := []string{"Alice", "30", "female", "none", "none", "none"}
	var reply string
	for _, answer := range answers {
		reply, step = AdvanceOnboarding(profile, step, answer)
	}

	assert.Equal(t, domain.StepSymptoms, step)
	assert.Contains(t, reply, "Thank you for providing that information, Alice.")
	assert.Contains(t, reply, "describe the symptoms you're experiencing")

	assert.Equal(t, "Alice", profile.Name)
	assert.Equal(t, 30, profile.Age)
	assert.Equal(t, "female", profile.Gender)
	assert.Equal(t, "none", profile.MedicalHistory)
	assert.Equal(t, "none", profile.CurrentMedications)
	assert.Equal(t, "none", profile.Allergies)
}

func TestAdvanceOnboarding_NameEchoedInAgeQuestion(t *testing.T) {
	profile := &domain.UserProfile{}

	reply, next := AdvanceOnboarding(profile, domain.StepName, "Bob")

	assert.Equal(t, domain.StepAge, next)
	assert.Contains(t, reply, "Thank you, Bob.")
	assert.Contains(t, reply, "your age")
}

func TestAdvanceOnboarding_InvalidAgeRepeatsQuestion(t *testing.T) {
	profile := &domain.UserProfile{}

	for _, bad := range []string{"twenty", "-5", "3.5", ""} {
		reply, next := AdvanceOnboarding(profile, domain.StepAge, bad)
		assert.Equal(t, domain.StepAge, next, "input %q must not advance", bad)
		assert.Equal(t, "Please enter a valid age in numbers.", reply)
		assert.Zero(t, profile.Age)
	}
}

func TestAdvanceOnboarding_AgeAcceptsSurroundingSpace(t *testing.T) {
	profile := &domain.UserProfile{}

	_, next := AdvanceOnboarding(profile, domain.StepAge, "  42 ")

	assert.Equal(t, domain.StepGender, next)
	assert.Equal(t, 42, profile.Age)
}

func TestAdvanceOnboarding_InitialEmitsIntro(t *testing.T) {
	profile := &domain.UserProfile{}

	reply, next := AdvanceOnboarding(profile, domain.StepInitial, "anything")

	assert.Equal(t, domain.StepName, next)
	assert.Equal(t, IntroMessage, reply)
}

func TestAdvanceOnboarding_TerminalStepsAreNoOps(t *testing.T) {
	profile := &domain.UserProfile{}

	reply, next := AdvanceOnboarding(profile, domain.StepSymptoms, "my head hurts")
	assert.Equal(t, domain.StepSymptoms, next)
	assert.Empty(t, reply)

	reply, next = AdvanceOnboarding(profile, domain.StepComplete, "thanks")
	assert.Equal(t, domain.StepComplete, next)
	assert.Empty(t, reply)
}

func TestProfileHelpers(t *testing.T) {
	p := domain.UserProfile{MedicalHistory: "none", CurrentMedications: "aspirin"}
	assert.False(t, p.HasMedicalHistory())
	assert.True(t, p.HasMedications())

	empty := domain.UserProfile{}
	require.False(t, empty.HasMedicalHistory())
	require.False(t, empty.HasMedications())
}
