// Package content reads and writes the landing copy, the search buttons and
// the web results as whole JSON documents in a storage.Backend.
//
// Reads never fail. A key that is missing, unreadable, not JSON or not the
// expected shape resolves to the built-in default. Writes overwrite the whole
// document and report backend faults to the caller.
package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/minglemoody/internal/storage"
	"github.com/sirupsen/logrus"
)

// Store provides typed access to the three content documents.
type Store struct {
	backend storage.Backend
	log     logrus.FieldLogger
}

// NewStore wraps backend. A nil logger discards read warnings.
func NewStore(backend storage.Backend, log logrus.FieldLogger) *Store {
	if log == nil {
		discard := logrus.New()
		discard.SetLevel(logrus.PanicLevel)
		log = discard
	}
	return &Store{backend: backend, log: log}
}

// GetLandingContent returns the stored landing copy or the default.
func (s *Store) GetLandingContent(ctx context.Context) LandingContent {
	raw, ok := s.read(ctx, KeyLanding)
	if !ok {
		return DefaultLandingContent()
	}
	landing, err := decodeLanding(raw)
	if err != nil {
		s.warnMalformed(KeyLanding, err)
		return DefaultLandingContent()
	}
	return landing
}

// SaveLandingContent overwrites the landing copy.
func (s *Store) SaveLandingContent(ctx context.Context, landing LandingContent) error {
	return s.write(ctx, KeyLanding, landing)
}

// ResetLandingContent removes the stored copy so reads fall back to the default.
func (s *Store) ResetLandingContent(ctx context.Context) error {
	return s.remove(ctx, KeyLanding)
}

// GetSearchButtons returns the stored buttons in stored order, or the defaults.
func (s *Store) GetSearchButtons(ctx context.Context) []SearchButton {
	raw, ok := s.read(ctx, KeyButtons)
	if !ok {
		return DefaultSearchButtons()
	}
	buttons, err := decodeButtons(raw)
	if err != nil {
		s.warnMalformed(KeyButtons, err)
		return DefaultSearchButtons()
	}
	return buttons
}

// SaveSearchButtons overwrites the button list. A nil slice is stored as an
// empty list.
func (s *Store) SaveSearchButtons(ctx context.Context, buttons []SearchButton) error {
	if buttons == nil {
		buttons = []SearchButton{}
	}
	return s.write(ctx, KeyButtons, buttons)
}

// ResetSearchButtons removes the stored list.
func (s *Store) ResetSearchButtons(ctx context.Context) error {
	return s.remove(ctx, KeyButtons)
}

// GetWebResults returns every stored result, or the defaults.
func (s *Store) GetWebResults(ctx context.Context) []WebResult {
	raw, ok := s.read(ctx, KeyResults)
	if !ok {
		return DefaultWebResults()
	}
	results, err := decodeResults(raw)
	if err != nil {
		s.warnMalformed(KeyResults, err)
		return DefaultWebResults()
	}
	return results
}

// SaveWebResults overwrites the result list. A nil slice is stored as an
// empty list.
func (s *Store) SaveWebResults(ctx context.Context, results []WebResult) error {
	if results == nil {
		results = []WebResult{}
	}
	return s.write(ctx, KeyResults, results)
}

// ResetWebResults removes the stored list.
func (s *Store) ResetWebResults(ctx context.Context) error {
	return s.remove(ctx, KeyResults)
}

// GetWebResultsByPage returns the results whose PageNumber equals page, in
// stored order. The slice is empty, never nil, when nothing matches.
func (s *Store) GetWebResultsByPage(ctx context.Context, page int) []WebResult {
	return FilterByPage(s.GetWebResults(ctx), page)
}

// FilterByPage keeps the results on page, preserving order.
func FilterByPage(results []WebResult, page int) []WebResult {
	filtered := make([]WebResult, 0, len(results))
	for _, r := range results {
		if r.PageNumber == page {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Ping reports backend health.
func (s *Store) Ping(ctx context.Context) error {
	return s.backend.Ping(ctx)
}

func (s *Store) read(ctx context.Context, key string) ([]byte, bool) {
	raw, err := s.backend.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			s.log.WithError(err).WithField("key", key).Warn("content read failed, using default")
		}
		return nil, false
	}
	return raw, true
}

func (s *Store) warnMalformed(key string, err error) {
	s.log.WithError(err).WithField("key", key).Warn("stored content is malformed, using default")
}

func (s *Store) write(ctx context.Context, key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.backend.Set(ctx, key, payload); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (s *Store) remove(ctx context.Context, key string) error {
	if err := s.backend.Delete(ctx, key); err != nil {
		return fmt.Errorf("reset %s: %w", key, err)
	}
	return nil
}
