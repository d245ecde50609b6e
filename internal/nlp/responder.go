package nlp

import (
	"fmt"
	"math/rand"
	"strings"

	"healthassist/internal/catalog"
	"healthassist/internal/domain"
)

const emergencyScript = `🚨 Based on what you've described, please seek immediate medical attention:

1. Call emergency services (911) immediately
2. Stay calm and seated if possible
3. Have someone stay with you if available
4. Keep your medical information ready

Would you like first-aid guidance while waiting for emergency services?`

const fallbackPrompt = `I want to make sure I understand correctly. Could you please:

1. Describe your main symptoms
2. Mention when they started
3. Rate their severity from 1-10`

var clarifyingQuestions = []string{
	"Could you describe your symptoms in more detail? For example, when did they start and where do you feel discomfort?",
	"To help you better, could you tell me more about what you're experiencing and when it started?",
	"I'd like to understand your symptoms better. Could you describe what you're feeling and how long it's been happening?",
}

// Responder turns entities, intent and context into a reply. The randomness
// source is injected so clarifying-question selection is testable.
type Responder struct {
	rng *rand.Rand
}

// NewResponder creates a Responder drawing clarifying questions from rng.
func NewResponder(rng *rand.Rand) *Responder {
	return &Responder{rng: rng}
}

// Respond applies the reply decision tree in strict priority order: emergency
// override first, then the primary intent, then a clarifying or fallback
// prompt.
func (r *Responder) Respond(entities []Entity, intent Classification, ctx Context) string {
	if IsEmergency(entities, intent) {
		return emergencyScript
	}

	switch intent.Intent {
	case domain.IntentDescribeSymptoms:
		return r.symptomReply(entities, ctx)
	case domain.IntentAskRecommendations:
		return r.recommendationReply(entities)
	case domain.IntentClarifySymptoms:
		return r.clarifyingQuestion()
	}

	return fallbackPrompt
}

// IsEmergency reports whether the turn trips the emergency override: any
// severity entity valued severe, or an emergency_help primary intent.
func IsEmergency(entities []Entity, intent Classification) bool {
	for _, e := range entities {
		if e.Kind == EntitySeverity && e.Value == string(domain.SeveritySevere) {
			return true
		}
	}
	return intent.Intent == domain.IntentEmergencyHelp
}

func (r *Responder) symptomReply(entities []Entity, ctx Context) string {
	symptoms := filterKind(entities, EntitySymptom)
	if len(symptoms) == 0 {
		return r.clarifyingQuestion()
	}

	return fmt.Sprintf(`I understand you're experiencing %s.
To help better assess your situation:

1. How long have you had these symptoms?
2. Did they start suddenly or gradually?
3. Have you had similar symptoms before?`, formatSymptomList(symptoms))
}

func (r *Responder) recommendationReply(entities []Entity) string {
	symptoms := filterKind(entities, EntitySymptom)
	if len(symptoms) == 0 {
		return "To provide specific recommendations, could you please describe your symptoms first?"
	}

	severity := domain.SeverityMild
	for _, e := range entities {
		if e.Kind == EntitySeverity {
			severity = domain.Severity(e.Value)
			break
		}
	}

	return fmt.Sprintf(`Based on your symptoms (%s), here are my recommendations:

%s

Would you like more specific information about any of these recommendations?`,
		formatSymptomList(symptoms), recommendationText(symptoms, severity))
}

// recommendationText builds the severity-appropriate advice block from the
// catalog records named by the symptom entities.
func recommendationText(symptoms []Entity, severity domain.Severity) string {
	records := recordsForEntities(symptoms)

	if severity == domain.SeveritySevere {
		var bullets []string
		for _, rec := range records {
			bullets = append(bullets, rec.Recommendations.UrgentCare...)
		}
		return "**Important:** Consider seeking medical attention soon.\n\n" +
			bulletList(dedupe(bullets))
	}

	var selfCare, seekHelp []string
	for _, rec := range records {
		selfCare = append(selfCare, rec.Recommendations.SelfCare...)
		seekHelp = append(seekHelp, rec.Recommendations.WhenToSeekHelp...)
	}
	return "Self-Care Tips:\n" + bulletList(dedupe(selfCare)) +
		"\n\nWhen to Seek Medical Care:\n" + bulletList(dedupe(seekHelp))
}

func (r *Responder) clarifyingQuestion() string {
	return clarifyingQuestions[r.rng.Intn(len(clarifyingQuestions))]
}

func recordsForEntities(symptoms []Entity) []catalog.Record {
	var records []catalog.Record
	seen := make(map[string]bool)
	for _, e := range symptoms {
		for _, rec := range catalog.All() {
			if rec.Name == e.Value && !seen[rec.ID] {
				seen[rec.ID] = true
				records = append(records, rec)
			}
		}
	}
	return records
}

func filterKind(entities []Entity, kind EntityKind) []Entity {
	var out []Entity
	for _, e := range entities {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// formatSymptomList joins entity values as "a, b and c".
func formatSymptomList(symptoms []Entity) string {
	values := make([]string, len(symptoms))
	for i, s := range symptoms {
		values[i] = s.Value
	}
	if len(values) <= 1 {
		return strings.Join(values, "")
	}
	return strings.Join(values[:len(values)-1], ", ") + " and " + values[len(values)-1]
}

func bulletList(items []string) string {
	bullets := make([]string, len(items))
	for i, item := range items {
		bullets[i] = "• " + item
	}
	return strings.Join(bullets, "\n")
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}
