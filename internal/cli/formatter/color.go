package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"healthassist/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// SeverityColor returns the lipgloss style corresponding to the given severity.
func SeverityColor(severity domain.Severity) lipgloss.Style {
	switch severity {
	case domain.SeveritySevere:
		return StyleRed
	case domain.SeverityModerate:
		return StyleYellow
	case domain.SeverityMild:
		return StyleGreen
	default:
		return StyleDim
	}
}

// SeverityIndicator returns a colored severity indicator string such as "● SEVERE".
func SeverityIndicator(severity domain.Severity) string {
	switch severity {
	case domain.SeveritySevere:
		return StyleRed.Render("● SEVERE")
	case domain.SeverityModerate:
		return StyleYellow.Render("● MODERATE")
	case domain.SeverityMild:
		return StyleGreen.Render("● MILD")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
