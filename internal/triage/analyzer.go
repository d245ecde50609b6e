package triage

import (
	"strings"

	"healthassist/internal/catalog"
	"healthassist/internal/domain"
)

// Analysis is the structured outcome of one utterance: which catalog records
// matched, how urgent they look, what to do about them, and how confident the
// detection is.
type Analysis struct {
	DetectedSymptoms []catalog.Record
	Severity         domain.Severity
	Recommendations  []string
	Confidence       float64
}

// emergencyPhrases trip the severe override on plain substring containment.
// Both apostrophed and bare spellings are carried so contraction punctuation
// does not mask an emergency.
var emergencyPhrases = []string{
	"cant breathe", "can't breathe", "difficulty breathing", "chest pain",
	"passing out", "unconscious", "severe pain",
}

var severeWords = []string{"severe", "intense", "extreme", "worst", "unbearable", "very bad"}
var moderateWords = []string{"moderate", "medium", "uncomfortable", "bad"}

// Analyze runs the keyword triage pipeline over one utterance. It is pure:
// the same input always yields the same analysis.
func Analyze(input string) Analysis {
	lower := strings.ToLower(input)
	words := strings.Fields(lower)

	detected := detectSymptoms(words)
	severity := determineSeverity(lower, detected)

	return Analysis{
		DetectedSymptoms: detected,
		Severity:         severity,
		Recommendations:  buildRecommendations(detected, severity),
		Confidence:       confidence(detected, lower),
	}
}

// detectSymptoms matches catalog keywords against the utterance's words using
// bidirectional containment: a record is detected when any keyword contains a
// word or a word contains the keyword.
func detectSymptoms(words []string) []catalog.Record {
	var detected []catalog.Record
	for _, record := range catalog.All() {
		if anyKeywordMatches(record, words) {
			detected = append(detected, record)
		}
	}
	return detected
}

func anyKeywordMatches(record catalog.Record, words []string) bool {
	for _, keyword := range record.Keywords {
		for _, word := range words {
			if strings.Contains(word, keyword) || strings.Contains(keyword, word) {
				return true
			}
		}
	}
	return false
}

// confidence averages per-record scores of 0.7 per matched keyword plus 0.3
// per matched related symptom, capped at 1. Zero when nothing was detected.
func confidence(detected []catalog.Record, lower string) float64 {
	if len(detected) == 0 {
		return 0
	}

	total := 0.0
	for _, record := range detected {
		keywordMatches := 0
		for _, keyword := range record.Keywords {
			if strings.Contains(lower, keyword) {
				keywordMatches++
			}
		}
		relatedMatches := 0
		for _, related := range record.RelatedSymptoms {
			if strings.Contains(lower, related) {
				relatedMatches++
			}
		}
		total += float64(keywordMatches)*0.7 + float64(relatedMatches)*0.3
	}

	score := total / float64(len(detected))
	if score > 1 {
		score = 1
	}
	return score
}

// determineSeverity applies the fixed priority: emergency phrase, severe
// indicator, moderate indicator, multi-symptom with a fever-type record, mild.
func determineSeverity(lower string, detected []catalog.Record) domain.Severity {
	for _, phrase := range emergencyPhrases {
		if strings.Contains(lower, phrase) {
			return domain.SeveritySevere
		}
	}
	for _, word := range severeWords {
		if strings.Contains(lower, word) {
			return domain.SeveritySevere
		}
	}
	for _, word := range moderateWords {
		if strings.Contains(lower, word) {
			return domain.SeverityModerate
		}
	}

	if len(detected) > 1 && hasFeverSymptom(detected) {
		return domain.SeverityModerate
	}
	return domain.SeverityMild
}

// hasFeverSymptom reports whether any detected record lists fever among its
// keywords.
func hasFeverSymptom(detected []catalog.Record) bool {
	for _, record := range detected {
		if record.HasKeyword("fever") {
			return true
		}
	}
	return false
}

// buildRecommendations appends each detected record's tier list for the
// severity, then general severity advice, and deduplicates preserving
// first-seen order.
func buildRecommendations(detected []catalog.Record, severity domain.Severity) []string {
	var recs []string
	for _, record := range detected {
		recs = append(recs, record.ForSeverity(severity)...)
	}

	switch severity {
	case domain.SeveritySevere:
		recs = append(recs,
			"🚨 Please seek immediate medical attention",
			"Have someone stay with you if possible",
			"Keep your medical information ready",
		)
	case domain.SeverityModerate:
		recs = append(recs,
			"Monitor your symptoms closely",
			"Consider consulting a healthcare provider if symptoms worsen",
			"Keep a symptom diary to track changes",
		)
	}

	seen := make(map[string]bool, len(recs))
	var out []string
	for _, rec := range recs {
		if !seen[rec] {
			seen[rec] = true
			out = append(out, rec)
		}
	}
	return out
}

// IsEmergencyUtterance reports whether the raw input contains an emergency
// phrase or the analysis resolved severe. Used by the conversation flow to
// bypass its turn gate.
func IsEmergencyUtterance(input string, severity domain.Severity) bool {
	if severity == domain.SeveritySevere {
		return true
	}
	lower := strings.ToLower(input)
	for _, phrase := range append([]string{"emergency"}, emergencyPhrases...) {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
