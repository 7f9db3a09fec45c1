package content

import (
	"encoding/json"
	"errors"
)

// errShapeMismatch marks a payload that parsed as JSON but lacks required
// fields.
var errShapeMismatch = errors.New("payload does not match expected shape")

// The wire* types mirror the stored documents with pointer fields so a
// missing required field can be told apart from a zero value.

type wireLanding struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type wireButton struct {
	ID            *string `json:"id"`
	Title         *string `json:"title"`
	Link          *string `json:"link"`
	Position      *int    `json:"position"`
	WebResultPage *int    `json:"webResultPage"`
}

type wireResult struct {
	ID          *string `json:"id"`
	Name        *string `json:"name"`
	Link        *string `json:"link"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	LogoURL     *string `json:"logoUrl"`
	Sponsored   *bool   `json:"sponsored"`
	PageNumber  *int    `json:"pageNumber"`
}

func decodeLanding(raw []byte) (LandingContent, error) {
	var w *wireLanding
	if err := json.Unmarshal(raw, &w); err != nil {
		return LandingContent{}, err
	}
	if w == nil || w.Title == nil || w.Description == nil {
		return LandingContent{}, errShapeMismatch
	}
	return LandingContent{Title: *w.Title, Description: *w.Description}, nil
}

func decodeButtons(raw []byte) ([]SearchButton, error) {
	var items []*wireButton
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	if items == nil {
		return nil, errShapeMismatch
	}

	buttons := make([]SearchButton, 0, len(items))
	for _, w := range items {
		if w == nil || w.ID == nil || w.Title == nil || w.Position == nil || w.WebResultPage == nil {
			return nil, errShapeMismatch
		}
		b := SearchButton{
			ID:            *w.ID,
			Title:         *w.Title,
			Position:      *w.Position,
			WebResultPage: *w.WebResultPage,
		}
		if w.Link != nil {
			b.Link = *w.Link
		}
		buttons = append(buttons, b)
	}
	return buttons, nil
}

func decodeResults(raw []byte) ([]WebResult, error) {
	var items []*wireResult
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	if items == nil {
		return nil, errShapeMismatch
	}

	results := make([]WebResult, 0, len(items))
	for _, w := range items {
		if w == nil || w.ID == nil || w.Name == nil || w.Link == nil || w.Title == nil ||
			w.Description == nil || w.Sponsored == nil || w.PageNumber == nil {
			return nil, errShapeMismatch
		}
		r := WebResult{
			ID:          *w.ID,
			Name:        *w.Name,
			Link:        *w.Link,
			Title:       *w.Title,
			Description: *w.Description,
			Sponsored:   *w.Sponsored,
			PageNumber:  *w.PageNumber,
		}
		if w.LogoURL != nil {
			r.LogoURL = *w.LogoURL
		}
		results = append(results, r)
	}
	return results, nil
}
