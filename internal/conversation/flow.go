package conversation

import (
	"fmt"
	"strings"
	"time"

	"healthassist/internal/domain"
	"healthassist/internal/triage"
)

const flowEmergencyReply = `🚨 Based on what you've described, you should seek immediate medical attention. Please:

1. Call emergency services (911) immediately
2. Stay calm and seated if possible
3. Have someone stay with you if available
4. Keep any relevant medical information ready

Would you like first-aid guidance while waiting for emergency services?`

const durationQuestions = `I understand you're experiencing these symptoms. To help better:

1. How long have you had these symptoms?
2. Did they start suddenly or gradually?
3. Have you had similar symptoms before?`

const intensityQuestions = `Thank you. A few more questions:

1. On a scale of 1-10, how severe are your symptoms?
2. Does anything make them better or worse?
3. Are you taking any medications?`

// Flow is the turn-gated analysis machine layered on the triage engine. The
// duration and intensity gates each consume one symptom-bearing turn; full
// analysis text is produced from the third such turn on. An emergency bypasses
// the gates unconditionally.
type Flow struct {
	picker *Picker
	now    func() time.Time
}

// NewFlow creates a Flow with the given question picker.
func NewFlow(picker *Picker) *Flow {
	return &Flow{picker: picker, now: time.Now}
}

// NewFlowAt creates a Flow with an injected clock for tests.
func NewFlowAt(picker *Picker, now func() time.Time) *Flow {
	return &Flow{picker: picker, now: now}
}

// Respond advances the machine one turn and returns the reply. state is
// mutated in place; the caller owns it.
func (f *Flow) Respond(state *domain.ConversationState, analysis triage.Analysis, input string, profile domain.UserProfile) string {
	if state.CurrentStep == domain.ConvInitial {
		state.CurrentStep = domain.ConvGathering
		state.LastResponseType = domain.ResponseQuestion
		return f.picker.Greeting()
	}

	if triage.IsEmergencyUtterance(input, analysis.Severity) {
		state.LastResponseType = domain.ResponseAnalysis
		return flowEmergencyReply
	}

	if len(analysis.DetectedSymptoms) == 0 {
		question := f.picker.Clarifying(state.AskedQuestions)
		state.AskedQuestions[question] = true
		state.LastResponseType = domain.ResponseQuestion
		return question
	}

	reply := f.buildReply(state, analysis, profile)
	f.recordSymptoms(state, analysis)
	return reply
}

func (f *Flow) buildReply(state *domain.ConversationState, analysis triage.Analysis, profile domain.UserProfile) string {
	if !state.DurationAsked {
		state.DurationAsked = true
		state.LastResponseType = domain.ResponseQuestion
		return durationQuestions
	}

	if !state.ConfirmedSeverity {
		state.ConfirmedSeverity = true
		state.LastResponseType = domain.ResponseQuestion
		return intensityQuestions
	}

	state.CurrentStep = domain.ConvRecommendation
	state.LastResponseType = domain.ResponseRecommendation
	return ComposeAnalysisReply(analysis, profile)
}

// recordSymptoms adds newly mentioned symptom ids to the session history.
// Ids already mentioned are never re-added and never removed.
func (f *Flow) recordSymptoms(state *domain.ConversationState, analysis triage.Analysis) {
	for _, record := range analysis.DetectedSymptoms {
		if state.MentionedSymptoms[record.ID] {
			continue
		}
		state.MentionedSymptoms[record.ID] = true
		state.SymptomHistory = append(state.SymptomHistory, domain.SymptomMention{
			SymptomID: record.ID,
			At:        f.now(),
		})
	}
}

// ComposeAnalysisReply renders the full analysis response, referencing the
// stored profile: name, medical history or age, severity with a severe-case
// caveat, recommendations, and a medication-interaction note.
func ComposeAnalysisReply(analysis triage.Analysis, profile domain.UserProfile) string {
	var b strings.Builder

	names := make([]string, len(analysis.DetectedSymptoms))
	for i, record := range analysis.DetectedSymptoms {
		names[i] = strings.ToLower(record.Name)
	}
	fmt.Fprintf(&b, "Thank you for describing your symptoms, %s. Based on your description, I understand you're experiencing %s.\n\n",
		profile.Name, strings.Join(names, ", "))

	if profile.HasMedicalHistory() {
		b.WriteString("Given your medical history, ")
	} else {
		fmt.Fprintf(&b, "Based on your description and age (%d), ", profile.Age)
	}
	fmt.Fprintf(&b, "this appears to be %s in severity.\n\n", analysis.Severity)

	if analysis.Severity == domain.SeveritySevere {
		b.WriteString("⚠️ Given the severity of your symptoms")
		if profile.HasMedicalHistory() {
			b.WriteString(" and your medical history")
		}
		b.WriteString(", I strongly recommend seeking immediate medical attention.\n\n")
	}

	fmt.Fprintf(&b, "Recommendations:\n%s\n\n", strings.Join(analysis.Recommendations, "\n"))

	if profile.HasMedications() {
		b.WriteString("Note: Please consult with your healthcare provider about potential interactions with your current medications.\n\n")
	}

	b.WriteString("Would you like more specific information about any of these symptoms or recommendations?")
	return b.String()
}
