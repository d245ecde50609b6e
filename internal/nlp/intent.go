package nlp

import (
	"regexp"
	"strings"

	"healthassist/internal/domain"
)

// Classification is the scored intent of one utterance. SubIntents collects
// every intent scoring above the materiality threshold, the primary included.
type Classification struct {
	Intent     domain.Intent
	Confidence float64
	SubIntents []domain.Intent
}

const subIntentThreshold = 0.3

// intentOrder fixes evaluation order so that score ties resolve toward the
// earlier intent.
var intentOrder = []domain.Intent{
	domain.IntentDescribeSymptoms,
	domain.IntentAskRecommendations,
	domain.IntentEmergencyHelp,
	domain.IntentClarifySymptoms,
	domain.IntentProvideHistory,
}

var intentPatterns = map[domain.Intent][]string{
	domain.IntentDescribeSymptoms: {
		"feel", "having", "experiencing", "suffering",
		"pain", "ache", "hurts", "symptoms",
	},
	domain.IntentAskRecommendations: {
		"what should", "how can", "help", "advice",
		"recommend", "suggestion", "treatment",
	},
	domain.IntentEmergencyHelp: {
		"emergency", "urgent", "immediately", "severe",
		"worst", "unbearable", "help",
	},
	domain.IntentClarifySymptoms: {
		"mean", "explain", "clarify", "specifically",
		"exactly", "detail",
	},
	domain.IntentProvideHistory: {
		"happened", "started", "began", "history",
		"before", "previous", "past",
	},
}

// Classify scores the utterance against each intent's pattern set and picks
// the highest scorer as primary. With zero evidence the primary is unknown at
// confidence 0.
func Classify(text string) Classification {
	normalized := strings.ToLower(text)

	maxConfidence := 0.0
	primary := domain.IntentUnknown
	var subIntents []domain.Intent

	for _, intent := range intentOrder {
		confidence := intentConfidence(normalized, intentPatterns[intent])
		if confidence > maxConfidence {
			maxConfidence = confidence
			primary = intent
		}
		if confidence > subIntentThreshold {
			subIntents = append(subIntents, intent)
		}
	}

	return Classification{
		Intent:     primary,
		Confidence: maxConfidence,
		SubIntents: subIntents,
	}
}

// intentConfidence blends match coverage with match position: patterns that
// appear earlier in the utterance weigh more.
func intentConfidence(text string, patterns []string) float64 {
	matches := 0
	totalWeight := 0.0

	for _, pattern := range patterns {
		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(pattern) + `\b`)
		loc := re.FindStringIndex(text)
		if loc == nil {
			continue
		}
		matches++
		totalWeight += 1 - float64(loc[0])/float64(len(text))
	}

	n := float64(len(patterns))
	return (float64(matches)/n)*0.7 + (totalWeight/n)*0.3
}
