package formatter

import (
	"fmt"
	"strings"

	"healthassist/internal/catalog"
)

// FormatCatalog renders the full symptom catalog as a terminal listing.
func FormatCatalog(records []catalog.Record) string {
	var b strings.Builder

	b.WriteString(Header("Symptom Catalog"))
	b.WriteString("\n\n")
	for _, r := range records {
		fmt.Fprintf(&b, "%s %s\n", Bold(r.Name), Dim("("+r.ID+")"))
		fmt.Fprintf(&b, "  %s %s\n", Dim("keywords:"), strings.Join(r.Keywords, ", "))
		if len(r.RelatedSymptoms) > 0 {
			fmt.Fprintf(&b, "  %s %s\n", Dim("related:"), strings.Join(r.RelatedSymptoms, ", "))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FormatCatalogRecord renders one catalog entry in detail, including all
// severity descriptions and advice tiers.
func FormatCatalogRecord(r catalog.Record) string {
	var b strings.Builder

	b.WriteString(Header(r.Name))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s\n", Dim("keywords:"), strings.Join(r.Keywords, ", "))
	if len(r.RelatedSymptoms) > 0 {
		fmt.Fprintf(&b, "%s %s\n", Dim("related:"), strings.Join(r.RelatedSymptoms, ", "))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "%s %s\n", StyleGreen.Render("mild:"), r.Severity.Mild)
	fmt.Fprintf(&b, "%s %s\n", StyleYellow.Render("moderate:"), r.Severity.Moderate)
	fmt.Fprintf(&b, "%s %s\n\n", StyleRed.Render("severe:"), r.Severity.Severe)

	writeTier(&b, "Self-care", r.Recommendations.SelfCare)
	writeTier(&b, "When to seek help", r.Recommendations.WhenToSeekHelp)
	writeTier(&b, "Urgent care", r.Recommendations.UrgentCare)
	return b.String()
}

func writeTier(b *strings.Builder, title string, items []string) {
	b.WriteString(Bold(title + ":"))
	b.WriteString("\n")
	for _, item := range items {
		fmt.Fprintf(b, "  • %s\n", item)
	}
	b.WriteString("\n")
}
