package catalog

import "healthassist/internal/domain"

// SeverityDescriptions describes what each triage level looks like for one
// symptom.
type SeverityDescriptions struct {
	Mild     string
	Moderate string
	Severe   string
}

// Recommendations holds the three advice tiers for one symptom, ordered from
// self-managed to urgent.
type Recommendations struct {
	SelfCare       []string
	WhenToSeekHelp []string
	UrgentCare     []string
}

// Record is one immutable catalog entry. The catalog is the single source of
// truth for both the entity recognizer and the symptom analyzer.
type Record struct {
	ID              string
	Name            string
	Keywords        []string
	RelatedSymptoms []string
	Severity        SeverityDescriptions
	Recommendations Recommendations
}

// ForSeverity returns the advice tier matching the given severity.
func (r Record) ForSeverity(s domain.Severity) []string {
	switch s {
	case domain.SeveritySevere:
		return r.Recommendations.UrgentCare
	case domain.SeverityModerate:
		return r.Recommendations.WhenToSeekHelp
	default:
		return r.Recommendations.SelfCare
	}
}

// Describe returns the severity description matching the given level.
func (r Record) Describe(s domain.Severity) string {
	switch s {
	case domain.SeveritySevere:
		return r.Severity.Severe
	case domain.SeverityModerate:
		return r.Severity.Moderate
	default:
		return r.Severity.Mild
	}
}

// HasKeyword reports whether kw is one of the record's keywords.
func (r Record) HasKeyword(kw string) bool {
	for _, k := range r.Keywords {
		if k == kw {
			return true
		}
	}
	return false
}

// All returns every catalog record in declaration order.
func All() []Record {
	return records
}

// ByID looks up a record by its id.
func ByID(id string) (Record, bool) {
	for _, r := range records {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}
