package conversation

import (
	"fmt"
	"strconv"
	"strings"

	"healthassist/internal/domain"
)

// IntroMessage opens every new session before any user input is consumed.
const IntroMessage = "Welcome to Health Assistant Pro. I'm here to help you with your health concerns. " +
	"To provide you with the best possible care, I'll need to ask you a few questions. " +
	"First, could you please tell me your name?"

const invalidAgeReply = "Please enter a valid age in numbers."

// AdvanceOnboarding consumes one user message as the answer to the question
// just asked, stores it into the profile, and returns the next question plus
// the step the machine moved to. Only the age step validates its input: a
// non-numeric or negative answer re-emits the age question without advancing.
func AdvanceOnboarding(profile *domain.UserProfile, step domain.OnboardingStep, input string) (string, domain.OnboardingStep) {
	switch step {
	case domain.StepInitial:
		return IntroMessage, domain.StepName

	case domain.StepName:
		profile.Name = input
		return fmt.Sprintf("Thank you, %s. For accurate medical guidance, could you please tell me your age?", input),
			domain.StepAge

	case domain.StepAge:
		age, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil || age < 0 {
			return invalidAgeReply, domain.StepAge
		}
		profile.Age = age
		return "Thank you. To provide gender-specific health guidance, what is your gender? (Male/Female/Other)",
			domain.StepGender

	case domain.StepGender:
		profile.Gender = input
		return `Do you have any significant medical conditions or previous surgeries that I should be aware of? If none, please type "none".`,
			domain.StepMedicalHistory

	case domain.StepMedicalHistory:
		profile.MedicalHistory = input
		return `Are you currently taking any medications? If none, please type "none".`,
			domain.StepMedications

	case domain.StepMedications:
		profile.CurrentMedications = input
		return `Do you have any allergies to medications or other substances? If none, please type "none".`,
			domain.StepAllergies

	case domain.StepAllergies:
		profile.Allergies = input
		return fmt.Sprintf(`Thank you for providing that information, %s. Now, please describe the symptoms you're experiencing. Include:
1. What symptoms are you experiencing?
2. When did they start?
3. How severe are they on a scale of 1-10?`, profile.Name),
			domain.StepSymptoms
	}

	// symptoms and complete are terminal for this machine; messages received
	// there belong to the analysis flow.
	return "", step
}
