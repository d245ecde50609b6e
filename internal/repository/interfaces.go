package repository

import (
	"context"
	"errors"

	"healthassist/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// TranscriptRepo stores chat sessions and their messages.
type TranscriptRepo interface {
	CreateSession(ctx context.Context, s *domain.ChatSession) error
	EndSession(ctx context.Context, id string) error
	GetSession(ctx context.Context, id string) (*domain.ChatSession, error)
	ListSessions(ctx context.Context, limit int) ([]*domain.ChatSession, error)
	AppendMessage(ctx context.Context, m *domain.Message) error
	ListMessages(ctx context.Context, sessionID string) ([]*domain.Message, error)
}

// ProfileRepo stores the per-session user profile.
type ProfileRepo interface {
	Upsert(ctx context.Context, sessionID string, p *domain.UserProfile) error
	Get(ctx context.Context, sessionID string) (*domain.UserProfile, error)
}
