package service

import (
	"context"
	"fmt"

	"healthassist/internal/domain"
	"healthassist/internal/repository"
)

type profileService struct {
	profiles repository.ProfileRepo
}

// NewProfileService creates a ProfileService over the given repository.
func NewProfileService(profiles repository.ProfileRepo) ProfileService {
	return &profileService{profiles: profiles}
}

func (s *profileService) Get(ctx context.Context, sessionID string) (*domain.UserProfile, error) {
	p, err := s.profiles.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("loading profile for session %s: %w", sessionID, err)
	}
	return p, nil
}

func (s *profileService) Update(ctx context.Context, sessionID string, p *domain.UserProfile) error {
	if p.Age < 0 {
		return fmt.Errorf("age must not be negative")
	}
	if err := s.profiles.Upsert(ctx, sessionID, p); err != nil {
		return fmt.Errorf("saving profile for session %s: %w", sessionID, err)
	}
	return nil
}
