package service

import (
	"context"
	"fmt"

	"healthassist/internal/domain"
	"healthassist/internal/repository"
)

type transcriptService struct {
	transcripts repository.TranscriptRepo
}

// NewTranscriptService creates a TranscriptService over the given repository.
func NewTranscriptService(transcripts repository.TranscriptRepo) TranscriptService {
	return &transcriptService{transcripts: transcripts}
}

func (s *transcriptService) ListSessions(ctx context.Context, limit int) ([]*domain.ChatSession, error) {
	if limit <= 0 {
		limit = 20
	}
	sessions, err := s.transcripts.ListSessions(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	return sessions, nil
}

func (s *transcriptService) ListMessages(ctx context.Context, sessionID string) ([]*domain.Message, error) {
	if _, err := s.transcripts.GetSession(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("looking up session %s: %w", sessionID, err)
	}
	messages, err := s.transcripts.ListMessages(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing messages for session %s: %w", sessionID, err)
	}
	return messages, nil
}
