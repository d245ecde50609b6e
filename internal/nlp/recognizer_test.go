package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entitiesOfKind(entities []Entity, kind EntityKind) []Entity {
	var out []Entity
	for _, e := range entities {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

func TestRecognize_SymptomAndSeverity(t *testing.T) {
	entities := Recognize(Tokenize("I have a severe headache"))

	symptoms := entitiesOfKind(entities, EntitySymptom)
	require.Len(t, symptoms, 1)
	assert.Equal(t, "Headache", symptoms[0].Value)
	assert.InDelta(t, 0.3, symptoms[0].Confidence, 1e-9)

	severities := entitiesOfKind(entities, EntitySeverity)
	require.Len(t, severities, 1)
	assert.Equal(t, "severe", severities[0].Value)
	assert.InDelta(t, 0.8, severities[0].Confidence, 1e-9)
}

func TestRecognize_SeverityIndicatorsMapToLevel(t *testing.T) {
	tests := []struct {
		input string
		level string
	}{
		{"a slight problem", "mild"},
		{"feeling uncomfortable", "moderate"},
		{"the worst pain ever", "severe"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			severities := entitiesOfKind(Recognize(Tokenize(tt.input)), EntitySeverity)
			require.Len(t, severities, 1)
			assert.Equal(t, tt.level, severities[0].Value)
		})
	}
}

func TestRecognize_Duration(t *testing.T) {
	durations := entitiesOfKind(Recognize(Tokenize("hurting for 3 days now")), EntityDuration)

	require.Len(t, durations, 1)
	assert.InDelta(t, 0.9, durations[0].Confidence, 1e-9)
}

func TestRecognize_DurationWords(t *testing.T) {
	durations := entitiesOfKind(Recognize(Tokenize("it gets worse at night")), EntityDuration)

	require.Len(t, durations, 1)
	assert.Equal(t, "night", durations[0].Value)
}

func TestRecognize_BodyPart(t *testing.T) {
	parts := entitiesOfKind(Recognize(Tokenize("my throat is sore")), EntityBodyPart)

	require.Len(t, parts, 1)
	assert.Equal(t, "throat", parts[0].Value)
	assert.InDelta(t, 0.9, parts[0].Confidence, 1e-9)
}

func TestRecognize_BodyPartRequiresWholeWord(t *testing.T) {
	// "headache" must not produce a "head" body-part entity.
	parts := entitiesOfKind(Recognize(Tokenize("headache")), EntityBodyPart)
	assert.Empty(t, parts)
}

func TestRecognize_NothingToFind(t *testing.T) {
	assert.Empty(t, Recognize(Tokenize("the weather is nice")))
}

func TestSymptomConfidence_DoctorBonusAndCap(t *testing.T) {
	rec := mustRecord(t, "headache")

	base := symptomConfidence("having a headache", rec)
	withDoctor := symptomConfidence("having a headache, should I see a doctor", rec)
	assert.InDelta(t, base+0.1, withDoctor, 1e-9)

	// Every keyword and related symptom present blows past the cap.
	loaded := "headache migraine head pain tension headache nausea sensitivity to light dizziness doctor"
	assert.InDelta(t, 1.0, symptomConfidence(loaded, rec), 1e-9)
}
