package formatter

import (
	"fmt"
	"strings"

	"healthassist/internal/triage"
)

// FormatAnalysis renders a triage analysis for terminal output.
func FormatAnalysis(a triage.Analysis) string {
	var b strings.Builder

	b.WriteString(Header("Symptom Analysis"))
	b.WriteString("\n\n")

	if len(a.DetectedSymptoms) == 0 {
		b.WriteString(Dim("No known symptoms detected.\n"))
		b.WriteString(Dim("Try describing what you feel in more detail, e.g. \"I have a headache and a sore throat\".\n"))
		return b.String()
	}

	b.WriteString(Bold("Detected symptoms:"))
	b.WriteString("\n")
	for _, record := range a.DetectedSymptoms {
		fmt.Fprintf(&b, "  %s %s\n", StyleBlue.Render("•"), record.Name)
		fmt.Fprintf(&b, "    %s\n", Dim(record.Describe(a.Severity)))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "%s %s\n", Bold("Severity:"), SeverityIndicator(a.Severity))
	fmt.Fprintf(&b, "%s %s\n\n", Bold("Confidence:"), FormatConfidence(a.Confidence))

	b.WriteString(Bold("Recommendations:"))
	b.WriteString("\n")
	for _, rec := range a.Recommendations {
		fmt.Fprintf(&b, "  %s\n", rec)
	}
	return b.String()
}

// FormatConfidence renders a 0..1 confidence as a colored percentage.
func FormatConfidence(c float64) string {
	pct := fmt.Sprintf("%.0f%%", c*100)
	switch {
	case c >= 0.7:
		return StyleGreen.Render(pct)
	case c >= 0.4:
		return StyleYellow.Render(pct)
	default:
		return StyleDim.Render(pct)
	}
}
