package formatter

import (
	"fmt"
	"strings"
	"time"

	"healthassist/internal/domain"
)

// FormatSessionList renders stored sessions, newest first.
func FormatSessionList(sessions []*domain.ChatSession) string {
	var b strings.Builder

	b.WriteString(Header("Sessions"))
	b.WriteString("\n\n")
	if len(sessions) == 0 {
		b.WriteString(Dim("No sessions recorded yet.\n"))
		return b.String()
	}
	for _, s := range sessions {
		status := StyleGreen.Render("active")
		if s.EndedAt != nil {
			status = Dim("ended " + s.EndedAt.Local().Format("2006-01-02 15:04"))
		}
		fmt.Fprintf(&b, "%s  %s  %s\n",
			Bold(s.ID),
			s.StartedAt.Local().Format("2006-01-02 15:04"),
			status)
	}
	return b.String()
}

// FormatTranscript renders the message history of one session.
func FormatTranscript(messages []*domain.Message) string {
	var b strings.Builder

	for _, m := range messages {
		speaker := StyleBlue.Render("Assistant")
		if m.Role == domain.RoleUser {
			speaker = StylePurple.Render("You")
		}
		fmt.Fprintf(&b, "%s %s\n%s\n\n",
			speaker,
			Dim(m.CreatedAt.Local().Format(time.Kitchen)),
			m.Content)
	}
	return b.String()
}

// FormatProfile renders a stored user profile.
func FormatProfile(p *domain.UserProfile) string {
	var b strings.Builder

	b.WriteString(Header("Profile"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s\n", Bold("Name:"), p.Name)
	fmt.Fprintf(&b, "%s %d\n", Bold("Age:"), p.Age)
	fmt.Fprintf(&b, "%s %s\n", Bold("Gender:"), p.Gender)
	fmt.Fprintf(&b, "%s %s\n", Bold("Medical history:"), orNone(p.MedicalHistory))
	fmt.Fprintf(&b, "%s %s\n", Bold("Medications:"), orNone(p.CurrentMedications))
	fmt.Fprintf(&b, "%s %s\n", Bold("Allergies:"), orNone(p.Allergies))
	return b.String()
}

func orNone(s string) string {
	if s == "" {
		return Dim("none")
	}
	return s
}
