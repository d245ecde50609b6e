package domain

// UserProfile holds the answers collected during onboarding. Each field is
// filled exactly once, in the fixed onboarding order.
type UserProfile struct {
	Name               string
	Age                int
	Gender             string
	MedicalHistory     string
	CurrentMedications string
	Allergies          string
}

// HasMedicalHistory reports whether the user declared any prior conditions.
func (p UserProfile) HasMedicalHistory() bool {
	return p.MedicalHistory != "" && p.MedicalHistory != "none"
}

// HasMedications reports whether the user declared any current medications.
func (p UserProfile) HasMedications() bool {
	return p.CurrentMedications != "" && p.CurrentMedications != "none"
}
