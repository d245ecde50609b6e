package service

import (
	"context"

	"healthassist/internal/domain"
	"healthassist/internal/nlp"
	"healthassist/internal/triage"
)

// ChatTurn is the outcome of one submitted utterance: the persisted message
// pair, the structured triage analysis, and the pipeline state after the turn.
type ChatTurn struct {
	UserMessage domain.Message
	BotMessage  domain.Message
	Analysis    triage.Analysis
	Entities    []nlp.Entity
	Intent      nlp.Classification
	Step        domain.OnboardingStep
}

// ChatService is the conversational engine consumed by the CLI and HTTP
// surfaces. One service instance owns exactly one active session.
type ChatService interface {
	// StartSession opens a fresh session and returns the opening bot message.
	StartSession(ctx context.Context) (domain.Message, error)
	// SubmitUtterance processes one user message end to end and returns the
	// completed turn. Processing is turn-synchronous: a call finishes before
	// the next is accepted.
	SubmitUtterance(ctx context.Context, text string) (*ChatTurn, error)
	// Reset atomically discards all session state and opens a new session,
	// returning its opening bot message.
	Reset(ctx context.Context) (domain.Message, error)
	// SessionID identifies the active session.
	SessionID() string
	// Profile returns a copy of the onboarding profile gathered so far.
	Profile() domain.UserProfile
	// Step reports the current onboarding step.
	Step() domain.OnboardingStep
}

// TranscriptService reads back stored sessions and messages.
type TranscriptService interface {
	ListSessions(ctx context.Context, limit int) ([]*domain.ChatSession, error)
	ListMessages(ctx context.Context, sessionID string) ([]*domain.Message, error)
}

// ProfileService reads and updates the profile attached to a session.
type ProfileService interface {
	Get(ctx context.Context, sessionID string) (*domain.UserProfile, error)
	Update(ctx context.Context, sessionID string, p *domain.UserProfile) error
}
