package nlp

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthassist/internal/domain"
)

func newTestResponder() *Responder {
	return NewResponder(rand.New(rand.NewSource(1)))
}

func TestIsEmergency(t *testing.T) {
	severeEntity := []Entity{{Kind: EntitySeverity, Value: "severe"}}
	mildEntity := []Entity{{Kind: EntitySeverity, Value: "mild"}}

	assert.True(t, IsEmergency(severeEntity, Classification{Intent: domain.IntentDescribeSymptoms}))
	assert.True(t, IsEmergency(nil, Classification{Intent: domain.IntentEmergencyHelp}))
	assert.False(t, IsEmergency(mildEntity, Classification{Intent: domain.IntentDescribeSymptoms}))
	assert.False(t, IsEmergency(nil, Classification{Intent: domain.IntentUnknown}))
}

func TestRespond_EmergencyOverridesIntent(t *testing.T) {
	r := newTestResponder()
	entities := []Entity{
		{Kind: EntitySymptom, Value: "Headache"},
		{Kind: EntitySeverity, Value: "severe"},
	}

	reply := r.Respond(entities, Classification{Intent: domain.IntentAskRecommendations}, Context{})

	assert.Contains(t, reply, "Call emergency services (911) immediately")
	assert.Contains(t, reply, "first-aid guidance")
}

func TestRespond_DescribeSymptoms(t *testing.T) {
	r := newTestResponder()
	entities := []Entity{
		{Kind: EntitySymptom, Value: "Headache"},
		{Kind: EntitySymptom, Value: "Nausea"},
	}

	reply := r.Respond(entities, Classification{Intent: domain.IntentDescribeSymptoms}, Context{})

	assert.Contains(t, reply, "I understand you're experiencing Headache and Nausea.")
	assert.Contains(t, reply, "How long have you had these symptoms?")
}

func TestRespond_DescribeWithoutSymptomsAsksClarification(t *testing.T) {
	r := newTestResponder()

	reply := r.Respond(nil, Classification{Intent: domain.IntentDescribeSymptoms}, Context{})

	assert.Contains(t, clarifyingQuestions, reply)
}

func TestRespond_RecommendationsNeedSymptomsFirst(t *testing.T) {
	r := newTestResponder()

	reply := r.Respond(nil, Classification{Intent: domain.IntentAskRecommendations}, Context{})

	assert.Equal(t, "To provide specific recommendations, could you please describe your symptoms first?", reply)
}

func TestRespond_RecommendationsMildListsTiers(t *testing.T) {
	r := newTestResponder()
	entities := []Entity{{Kind: EntitySymptom, Value: "Headache"}}

	reply := r.Respond(entities, Classification{Intent: domain.IntentAskRecommendations}, Context{})

	assert.Contains(t, reply, "Based on your symptoms (Headache)")
	assert.Contains(t, reply, "Self-Care Tips:")
	assert.Contains(t, reply, "When to Seek Medical Care:")
	assert.Contains(t, reply, "• Rest in a quiet, dark room")
}

func TestRespond_RecommendationsSevereUsesUrgentTier(t *testing.T) {
	// A non-severe severity entity does not trip the emergency override but
	// still picks the advice tier.
	entities := []Entity{
		{Kind: EntitySymptom, Value: "Headache"},
		{Kind: EntitySymptom, Value: "Muscle Strain"},
	}

	reply := recommendationText(entities, domain.SeveritySevere)

	assert.True(t, strings.HasPrefix(reply, "**Important:** Consider seeking medical attention soon."))
	assert.Contains(t, reply, "• Sudden, severe headache")
	assert.Contains(t, reply, "• Obvious deformity")
}

func TestRespond_UnknownIntentFallsBack(t *testing.T) {
	r := newTestResponder()

	reply := r.Respond(nil, Classification{Intent: domain.IntentUnknown}, Context{})

	assert.Contains(t, reply, "Describe your main symptoms")
	assert.Contains(t, reply, "Rate their severity from 1-10")
}

func TestRecommendationText_DeduplicatesAcrossRecords(t *testing.T) {
	// Headache and Muscle Strain both recommend over-the-counter pain
	// relievers; the merged list carries the line once.
	entities := []Entity{
		{Kind: EntitySymptom, Value: "Headache"},
		{Kind: EntitySymptom, Value: "Muscle Strain"},
	}

	text := recommendationText(entities, domain.SeverityMild)

	require.Contains(t, text, "Take over-the-counter pain relievers")
	assert.Equal(t, 1, strings.Count(text, "Take over-the-counter pain relievers"))
}

func TestFormatSymptomList(t *testing.T) {
	one := []Entity{{Value: "Headache"}}
	three := []Entity{{Value: "a"}, {Value: "b"}, {Value: "c"}}

	assert.Equal(t, "Headache", formatSymptomList(one))
	assert.Equal(t, "a, b and c", formatSymptomList(three))
	assert.Equal(t, "", formatSymptomList(nil))
}
