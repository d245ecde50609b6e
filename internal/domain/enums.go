package domain

type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// ValidSeverities is the canonical set of accepted severity strings.
var ValidSeverities = map[string]bool{
	"mild": true, "moderate": true, "severe": true,
}

type Intent string

const (
	IntentDescribeSymptoms   Intent = "describe_symptoms"
	IntentAskRecommendations Intent = "ask_recommendations"
	IntentEmergencyHelp      Intent = "emergency_help"
	IntentClarifySymptoms    Intent = "clarify_symptoms"
	IntentProvideHistory     Intent = "provide_history"
	IntentUnknown            Intent = "unknown"
)

type MessageRole string

const (
	RoleUser MessageRole = "user"
	RoleBot  MessageRole = "bot"
)

type OnboardingStep string

const (
	StepInitial        OnboardingStep = "initial"
	StepName           OnboardingStep = "name"
	StepAge            OnboardingStep = "age"
	StepGender         OnboardingStep = "gender"
	StepMedicalHistory OnboardingStep = "medical-history"
	StepMedications    OnboardingStep = "medications"
	StepAllergies      OnboardingStep = "allergies"
	StepSymptoms       OnboardingStep = "symptoms"
	StepComplete       OnboardingStep = "complete"
)

type ConversationStep string

const (
	ConvInitial        ConversationStep = "initial"
	ConvGathering      ConversationStep = "gathering"
	ConvAnalysis       ConversationStep = "analysis"
	ConvRecommendation ConversationStep = "recommendation"
)

type ResponseType string

const (
	ResponseQuestion       ResponseType = "question"
	ResponseAnalysis       ResponseType = "analysis"
	ResponseRecommendation ResponseType = "recommendation"
)
