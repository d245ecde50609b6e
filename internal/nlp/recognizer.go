package nlp

import (
	"regexp"
	"strings"

	"healthassist/internal/catalog"
)

type EntityKind string

const (
	EntitySymptom  EntityKind = "symptom"
	EntitySeverity EntityKind = "severity"
	EntityDuration EntityKind = "duration"
	EntityBodyPart EntityKind = "bodyPart"
	EntityMedicine EntityKind = "medication"
)

// Entity is a typed, confidence-scored span extracted from the reconstructed
// token text. Start and End are offsets into that text.
type Entity struct {
	Kind       EntityKind
	Value      string
	Confidence float64
	Start      int
	End        int
}

// severityIndicators maps each triage level to its indicator words. Evaluation
// order is fixed: mild, moderate, severe.
var severityLevels = []string{"mild", "moderate", "severe"}

var severityIndicators = map[string][]string{
	"mild":     {"mild", "slight", "minor", "little"},
	"moderate": {"moderate", "medium", "uncomfortable"},
	"severe":   {"severe", "intense", "extreme", "worst", "unbearable"},
}

var durationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\s*(day|week|month|year)s?`),
	regexp.MustCompile(`(?i)(few|couple|several)\s*(day|week|month|year)s?`),
	regexp.MustCompile(`(?i)(morning|afternoon|evening|night)`),
}

var bodyParts = []string{
	"head", "chest", "stomach", "back", "arm", "leg", "throat",
	"neck", "shoulder", "knee", "ankle", "wrist", "elbow",
}

// Recognize extracts symptom, severity, duration and body-part entities from
// the token stream. The four passes are independent and their results are
// concatenated without deduplication.
func Recognize(tokens []Token) []Entity {
	values := make([]string, len(tokens))
	for i, t := range tokens {
		values[i] = t.Value
	}
	text := strings.Join(values, " ")

	var entities []Entity
	entities = append(entities, recognizeSymptoms(text)...)
	entities = append(entities, recognizeSeverity(text)...)
	entities = append(entities, recognizeDuration(text)...)
	entities = append(entities, recognizeBodyParts(text)...)
	return entities
}

func recognizeSymptoms(text string) []Entity {
	var entities []Entity
	for _, record := range catalog.All() {
		confidence := symptomConfidence(text, record)
		for _, keyword := range record.Keywords {
			for _, span := range wholeWordMatches(text, keyword) {
				entities = append(entities, Entity{
					Kind:       EntitySymptom,
					Value:      record.Name,
					Confidence: confidence,
					Start:      span[0],
					End:        span[1],
				})
			}
		}
	}
	return entities
}

// symptomConfidence scores a record against the whole text: 0.3 per matched
// keyword, 0.2 per matched related-symptom word, plus a 0.1 bonus when the
// text mentions a doctor or hospital. Capped at 1.
func symptomConfidence(text string, record catalog.Record) float64 {
	lower := strings.ToLower(text)

	confidence := 0.0
	for _, keyword := range record.Keywords {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			confidence += 0.3
		}
	}
	for _, related := range record.RelatedSymptoms {
		if strings.Contains(lower, strings.ToLower(related)) {
			confidence += 0.2
		}
	}
	if strings.Contains(lower, "doctor") || strings.Contains(lower, "hospital") {
		confidence += 0.1
	}

	if confidence > 1 {
		confidence = 1
	}
	return confidence
}

func recognizeSeverity(text string) []Entity {
	var entities []Entity
	for _, level := range severityLevels {
		for _, indicator := range severityIndicators[level] {
			for _, span := range wholeWordMatches(text, indicator) {
				entities = append(entities, Entity{
					Kind:       EntitySeverity,
					Value:      level,
					Confidence: 0.8,
					Start:      span[0],
					End:        span[1],
				})
			}
		}
	}
	return entities
}

func recognizeDuration(text string) []Entity {
	var entities []Entity
	for _, pattern := range durationPatterns {
		for _, span := range pattern.FindAllStringIndex(text, -1) {
			entities = append(entities, Entity{
				Kind:       EntityDuration,
				Value:      text[span[0]:span[1]],
				Confidence: 0.9,
				Start:      span[0],
				End:        span[1],
			})
		}
	}
	return entities
}

func recognizeBodyParts(text string) []Entity {
	var entities []Entity
	for _, part := range bodyParts {
		for _, span := range wholeWordMatches(text, part) {
			entities = append(entities, Entity{
				Kind:       EntityBodyPart,
				Value:      part,
				Confidence: 0.9,
				Start:      span[0],
				End:        span[1],
			})
		}
	}
	return entities
}

// wholeWordMatches returns the spans of every whole-word, case-insensitive
// occurrence of phrase in text.
func wholeWordMatches(text, phrase string) [][]int {
	re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(phrase) + `\b`)
	return re.FindAllStringIndex(text, -1)
}
