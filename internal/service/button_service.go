package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/minglemoody/internal/content"
	"github.com/minglemoody/internal/view"
)

var (
	ErrButtonNotFound      = errors.New("search button not found")
	ErrButtonTitleRequired = errors.New("search button title is required")
	ErrInvalidPage         = errors.New("web result page must be between 1 and 5")
)

// ButtonInput describes a new search button.
type ButtonInput struct {
	Title         string
	Link          string
	Position      int
	WebResultPage int
}

// ButtonService manages the landing page search buttons.
type ButtonService struct {
	store *content.Store
	newID func() string
}

// NewButtonService returns a new ButtonService instance.
func NewButtonService(store *content.Store) *ButtonService {
	return &ButtonService{store: store, newID: uuid.NewString}
}

// List returns the buttons ordered by position.
func (s *ButtonService) List(ctx context.Context) []content.SearchButton {
	return view.SortButtons(s.store.GetSearchButtons(ctx))
}

// Add appends a button and saves the list sorted by position.
func (s *ButtonService) Add(ctx context.Context, input ButtonInput) (content.SearchButton, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return content.SearchButton{}, ErrButtonTitleRequired
	}
	if !view.ValidPage(input.WebResultPage) {
		return content.SearchButton{}, ErrInvalidPage
	}

	position := input.Position
	if position < 1 {
		position = 1
	}

	button := content.SearchButton{
		ID:            s.newID(),
		Title:         title,
		Link:          strings.TrimSpace(input.Link),
		Position:      position,
		WebResultPage: input.WebResultPage,
	}

	buttons := append(s.List(ctx), button)
	if err := s.store.SaveSearchButtons(ctx, view.SortButtons(buttons)); err != nil {
		return content.SearchButton{}, err
	}
	return button, nil
}

// Delete removes the button with id, leaving the others in stored order.
func (s *ButtonService) Delete(ctx context.Context, id string) error {
	buttons := s.store.GetSearchButtons(ctx)
	remaining := make([]content.SearchButton, 0, len(buttons))
	found := false
	for _, b := range buttons {
		if b.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, b)
	}
	if !found {
		return ErrButtonNotFound
	}
	return s.store.SaveSearchButtons(ctx, remaining)
}

// Reset restores the seeded buttons.
func (s *ButtonService) Reset(ctx context.Context) ([]content.SearchButton, error) {
	if err := s.store.ResetSearchButtons(ctx); err != nil {
		return nil, err
	}
	return s.List(ctx), nil
}
