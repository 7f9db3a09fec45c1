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
	ErrResultNotFound       = errors.New("web result not found")
	ErrResultFieldsRequired = errors.New("name, link, and title are required")
)

// ResultInput holds the editable fields of a web result.
type ResultInput struct {
	Name        string
	Link        string
	Title       string
	Description string
	LogoURL     string
	Sponsored   bool
}

func (in ResultInput) normalized() (ResultInput, error) {
	out := ResultInput{
		Name:        strings.TrimSpace(in.Name),
		Link:        strings.TrimSpace(in.Link),
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		LogoURL:     strings.TrimSpace(in.LogoURL),
		Sponsored:   in.Sponsored,
	}
	if out.Name == "" || out.Link == "" || out.Title == "" {
		return ResultInput{}, ErrResultFieldsRequired
	}
	return out, nil
}

// ResultService manages the web result listings.
type ResultService struct {
	store *content.Store
	newID func() string
}

// NewResultService returns a new ResultService instance.
func NewResultService(store *content.Store) *ResultService {
	return &ResultService{store: store, newID: uuid.NewString}
}

// ListByPage returns the results shown on page.
func (s *ResultService) ListByPage(ctx context.Context, page int) ([]content.WebResult, error) {
	if !view.ValidPage(page) {
		return nil, ErrInvalidPage
	}
	return s.store.GetWebResultsByPage(ctx, page), nil
}

// Get finds a result by id.
func (s *ResultService) Get(ctx context.Context, id string) (content.WebResult, error) {
	for _, r := range s.store.GetWebResults(ctx) {
		if r.ID == id {
			return r, nil
		}
	}
	return content.WebResult{}, ErrResultNotFound
}

// Add appends a result to page.
func (s *ResultService) Add(ctx context.Context, page int, input ResultInput) (content.WebResult, error) {
	if !view.ValidPage(page) {
		return content.WebResult{}, ErrInvalidPage
	}
	fields, err := input.normalized()
	if err != nil {
		return content.WebResult{}, err
	}

	result := content.WebResult{ID: s.newID(), PageNumber: page}
	applyResultInput(&result, fields)

	results := append(s.store.GetWebResults(ctx), result)
	if err := s.store.SaveWebResults(ctx, results); err != nil {
		return content.WebResult{}, err
	}
	return result, nil
}

// Update replaces the editable fields of the result with id. The id and page
// number are kept.
func (s *ResultService) Update(ctx context.Context, id string, input ResultInput) (content.WebResult, error) {
	fields, err := input.normalized()
	if err != nil {
		return content.WebResult{}, err
	}

	results := s.store.GetWebResults(ctx)
	index := -1
	for i := range results {
		if results[i].ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return content.WebResult{}, ErrResultNotFound
	}

	applyResultInput(&results[index], fields)
	if err := s.store.SaveWebResults(ctx, results); err != nil {
		return content.WebResult{}, err
	}
	return results[index], nil
}

// Delete removes the result with id, leaving the others in stored order.
func (s *ResultService) Delete(ctx context.Context, id string) error {
	results := s.store.GetWebResults(ctx)
	remaining := make([]content.WebResult, 0, len(results))
	found := false
	for _, r := range results {
		if r.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, r)
	}
	if !found {
		return ErrResultNotFound
	}
	return s.store.SaveWebResults(ctx, remaining)
}

// Reset restores the seeded results.
func (s *ResultService) Reset(ctx context.Context) error {
	return s.store.ResetWebResults(ctx)
}

func applyResultInput(r *content.WebResult, in ResultInput) {
	r.Name = in.Name
	r.Link = in.Link
	r.Title = in.Title
	r.Description = in.Description
	r.LogoURL = in.LogoURL
	r.Sponsored = in.Sponsored
}
