package testutil

import (
	"time"

	"github.com/google/uuid"

	"healthassist/internal/domain"
)

// Session options
type SessionOption func(*domain.ChatSession)

func WithStartedAt(at time.Time) SessionOption {
	return func(s *domain.ChatSession) {
		s.StartedAt = at
	}
}

func WithEndedAt(at time.Time) SessionOption {
	return func(s *domain.ChatSession) {
		s.EndedAt = &at
	}
}

func NewTestSession(opts ...SessionOption) *domain.ChatSession {
	s := &domain.ChatSession{
		ID:        uuid.New().String(),
		StartedAt: time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Message options
type MessageOption func(*domain.Message)

func WithRole(role domain.MessageRole) MessageOption {
	return func(m *domain.Message) {
		m.Role = role
	}
}

func WithCreatedAt(at time.Time) MessageOption {
	return func(m *domain.Message) {
		m.CreatedAt = at
	}
}

func NewTestMessage(sessionID, content string, opts ...MessageOption) *domain.Message {
	m := &domain.Message{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Role:      domain.RoleUser,
		Content:   content,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewTestProfile returns a fully populated profile for persistence tests.
func NewTestProfile() *domain.UserProfile {
	return &domain.UserProfile{
		Name:               "Alice",
		Age:                30,
		Gender:             "female",
		MedicalHistory:     "none",
		CurrentMedications: "none",
		Allergies:          "none",
	}
}
