package domain

import "time"

// SymptomMention is one append-only history entry: a symptom id and the time
// it was first mentioned in the session.
type SymptomMention struct {
	SymptomID string
	At        time.Time
}

// ConversationState tracks the symptoms-phase dialogue across turns. Ids never
// leave MentionedSymptoms and SymptomHistory never shrinks within a session.
type ConversationState struct {
	MentionedSymptoms map[string]bool
	AskedQuestions    map[string]bool
	ConfirmedSeverity bool
	DurationAsked     bool
	LastResponseType  ResponseType
	SymptomHistory    []SymptomMention
	CurrentStep       ConversationStep
}

// NewConversationState returns a fresh state at the initial step.
func NewConversationState() *ConversationState {
	return &ConversationState{
		MentionedSymptoms: make(map[string]bool),
		AskedQuestions:    make(map[string]bool),
		LastResponseType:  ResponseQuestion,
		CurrentStep:       ConvInitial,
	}
}
