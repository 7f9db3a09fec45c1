package service

import (
	"context"

	"github.com/minglemoody/internal/content"
)

// LandingInput carries the editable landing copy.
type LandingInput struct {
	Title       string
	Description string
}

// LandingService edits the landing page copy.
type LandingService struct {
	store *content.Store
}

// NewLandingService returns a new LandingService instance.
func NewLandingService(store *content.Store) *LandingService {
	return &LandingService{store: store}
}

// Get returns the current landing copy, falling back to the default.
func (s *LandingService) Get(ctx context.Context) content.LandingContent {
	return s.store.GetLandingContent(ctx)
}

// Save overwrites the landing copy. Empty strings are allowed.
func (s *LandingService) Save(ctx context.Context, input LandingInput) (content.LandingContent, error) {
	landing := content.LandingContent{
		Title:       input.Title,
		Description: input.Description,
	}
	if err := s.store.SaveLandingContent(ctx, landing); err != nil {
		return content.LandingContent{}, err
	}
	return landing, nil
}

// Reset drops the stored copy and returns the default now in effect.
func (s *LandingService) Reset(ctx context.Context) (content.LandingContent, error) {
	if err := s.store.ResetLandingContent(ctx); err != nil {
		return content.LandingContent{}, err
	}
	return s.store.GetLandingContent(ctx), nil
}
