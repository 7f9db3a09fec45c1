package content

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/minglemoody/internal/storage"
	"github.com/minglemoody/internal/storage/memstore"
)

type faultyBackend struct {
	getErr    error
	setErr    error
	deleteErr error
}

func (f *faultyBackend) Get(context.Context, string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return nil, storage.ErrKeyNotFound
}

func (f *faultyBackend) Set(context.Context, string, []byte) error { return f.setErr }
func (f *faultyBackend) Delete(context.Context, string) error      { return f.deleteErr }
func (f *faultyBackend) Ping(context.Context) error                { return f.getErr }
func (f *faultyBackend) Close() error                              { return nil }

func newTestStore(t *testing.T) (*Store, *memstore.Store) {
	t.Helper()
	backend := memstore.New()
	return NewStore(backend, nil), backend
}

func TestPristineBackendReturnsDefaults(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if diff := cmp.Diff(DefaultLandingContent(), store.GetLandingContent(ctx)); diff != "" {
		t.Fatalf("landing default mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(DefaultSearchButtons(), store.GetSearchButtons(ctx)); diff != "" {
		t.Fatalf("buttons default mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(DefaultWebResults(), store.GetWebResults(ctx)); diff != "" {
		t.Fatalf("results default mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultsAreFreshCopies(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	buttons := store.GetSearchButtons(ctx)
	buttons[0].Title = "mutated"

	if got := store.GetSearchButtons(ctx)[0].Title; got != "google" {
		t.Fatalf("mutating a returned default leaked into later reads: %q", got)
	}
}

func TestRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	landing := LandingContent{Title: "", Description: "only a description"}
	if err := store.SaveLandingContent(ctx, landing); err != nil {
		t.Fatalf("SaveLandingContent returned error: %v", err)
	}
	if diff := cmp.Diff(landing, store.GetLandingContent(ctx)); diff != "" {
		t.Fatalf("landing round trip mismatch (-want +got):\n%s", diff)
	}

	buttons := []SearchButton{
		{ID: "b", Title: "second", Position: 2, WebResultPage: 3},
		{ID: "a", Title: "first", Link: "https://example.com", Position: 1, WebResultPage: 1},
	}
	if err := store.SaveSearchButtons(ctx, buttons); err != nil {
		t.Fatalf("SaveSearchButtons returned error: %v", err)
	}
	if diff := cmp.Diff(buttons, store.GetSearchButtons(ctx)); diff != "" {
		t.Fatalf("buttons round trip mismatch (-want +got):\n%s", diff)
	}

	results := []WebResult{
		{ID: "x", Name: "n", Link: "https://n.example", Title: "t", Description: "d", Sponsored: true, PageNumber: 5},
		{ID: "y", Name: "m", Link: "https://m.example", Title: "u", Description: "", LogoURL: "https://m.example/logo.png", PageNumber: 2},
	}
	if err := store.SaveWebResults(ctx, results); err != nil {
		t.Fatalf("SaveWebResults returned error: %v", err)
	}
	if diff := cmp.Diff(results, store.GetWebResults(ctx)); diff != "" {
		t.Fatalf("results round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyCollectionsAreNotReplacedByDefaults(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.SaveSearchButtons(ctx, nil); err != nil {
		t.Fatalf("SaveSearchButtons returned error: %v", err)
	}
	if got := store.GetSearchButtons(ctx); len(got) != 0 {
		t.Fatalf("expected empty button list, got %#v", got)
	}

	if err := store.SaveWebResults(ctx, []WebResult{}); err != nil {
		t.Fatalf("SaveWebResults returned error: %v", err)
	}
	if got := store.GetWebResults(ctx); len(got) != 0 {
		t.Fatalf("expected empty result list, got %#v", got)
	}
}

func TestMalformedPayloadsFallBackToDefaults(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		payload string
	}{
		{name: "landing not json", key: KeyLanding, payload: "{not json"},
		{name: "landing null", key: KeyLanding, payload: "null"},
		{name: "landing array", key: KeyLanding, payload: `["a"]`},
		{name: "landing missing description", key: KeyLanding, payload: `{"title":"x"}`},
		{name: "landing wrong type", key: KeyLanding, payload: `{"title":1,"description":"d"}`},
		{name: "buttons not json", key: KeyButtons, payload: "]["},
		{name: "buttons object", key: KeyButtons, payload: `{"id":"1"}`},
		{name: "buttons null", key: KeyButtons, payload: "null"},
		{name: "buttons null element", key: KeyButtons, payload: `[null]`},
		{name: "buttons missing position", key: KeyButtons, payload: `[{"id":"1","title":"t","webResultPage":1}]`},
		{name: "buttons string position", key: KeyButtons, payload: `[{"id":"1","title":"t","position":"1","webResultPage":1}]`},
		{name: "results not json", key: KeyResults, payload: "undefined"},
		{name: "results missing sponsored", key: KeyResults, payload: `[{"id":"1","name":"n","link":"l","title":"t","description":"d","pageNumber":1}]`},
		{name: "results string page", key: KeyResults, payload: `[{"id":"1","name":"n","link":"l","title":"t","description":"d","sponsored":false,"pageNumber":"1"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, backend := newTestStore(t)
			ctx := context.Background()
			if err := backend.Set(ctx, tt.key, []byte(tt.payload)); err != nil {
				t.Fatalf("seed failed: %v", err)
			}

			switch tt.key {
			case KeyLanding:
				if diff := cmp.Diff(DefaultLandingContent(), store.GetLandingContent(ctx)); diff != "" {
					t.Fatalf("expected default landing (-want +got):\n%s", diff)
				}
			case KeyButtons:
				if diff := cmp.Diff(DefaultSearchButtons(), store.GetSearchButtons(ctx)); diff != "" {
					t.Fatalf("expected default buttons (-want +got):\n%s", diff)
				}
			case KeyResults:
				if diff := cmp.Diff(DefaultWebResults(), store.GetWebResults(ctx)); diff != "" {
					t.Fatalf("expected default results (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestOptionalFieldsMayBeAbsent(t *testing.T) {
	store, backend := newTestStore(t)
	ctx := context.Background()

	payload := `[{"id":"7","title":"music","position":1,"webResultPage":3}]`
	if err := backend.Set(ctx, KeyButtons, []byte(payload)); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	buttons := store.GetSearchButtons(ctx)
	if len(buttons) != 1 {
		t.Fatalf("expected one button, got %#v", buttons)
	}
	if buttons[0].HasLink() {
		t.Fatalf("expected button without link, got %q", buttons[0].Link)
	}
	if buttons[0].WebResultPage != 3 {
		t.Fatalf("expected result page 3, got %d", buttons[0].WebResultPage)
	}
}

func TestGetWebResultsByPage(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	results := []WebResult{
		{ID: "1", Name: "a", Link: "l", Title: "t", PageNumber: 2},
		{ID: "2", Name: "b", Link: "l", Title: "t", PageNumber: 1},
		{ID: "3", Name: "c", Link: "l", Title: "t", PageNumber: 2, Sponsored: true},
		{ID: "4", Name: "d", Link: "l", Title: "t", PageNumber: 5},
	}
	if err := store.SaveWebResults(ctx, results); err != nil {
		t.Fatalf("SaveWebResults returned error: %v", err)
	}

	for page := MinPage; page <= MaxPage; page++ {
		var want []WebResult
		for _, r := range results {
			if r.PageNumber == page {
				want = append(want, r)
			}
		}

		got := store.GetWebResultsByPage(ctx, page)
		if got == nil {
			t.Fatalf("page %d: expected non-nil slice", page)
		}
		if len(got) != len(want) {
			t.Fatalf("page %d: expected %d results, got %d", page, len(want), len(got))
		}
		for i := range want {
			if diff := cmp.Diff(want[i], got[i]); diff != "" {
				t.Fatalf("page %d result %d mismatch (-want +got):\n%s", page, i, diff)
			}
		}
	}

	if got := store.GetWebResultsByPage(ctx, 9); len(got) != 0 {
		t.Fatalf("expected no results for page 9, got %#v", got)
	}
}

func TestDeleteDefaultButtonScenario(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	buttons := store.GetSearchButtons(ctx)
	if len(buttons) != 5 {
		t.Fatalf("expected 5 default buttons, got %d", len(buttons))
	}
	for i, b := range buttons {
		if b.Position != i+1 {
			t.Fatalf("expected position %d at index %d, got %d", i+1, i, b.Position)
		}
	}

	remaining := make([]SearchButton, 0, len(buttons))
	for _, b := range buttons {
		if b.ID != "3" {
			remaining = append(remaining, b)
		}
	}
	if err := store.SaveSearchButtons(ctx, remaining); err != nil {
		t.Fatalf("SaveSearchButtons returned error: %v", err)
	}

	got := store.GetSearchButtons(ctx)
	if diff := cmp.Diff(remaining, got); diff != "" {
		t.Fatalf("unexpected buttons after delete (-want +got):\n%s", diff)
	}
	for _, b := range got {
		if b.ID == "3" {
			t.Fatal("button 3 should have been removed")
		}
	}
}

func TestResetRestoresDefault(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.SaveLandingContent(ctx, LandingContent{Title: "custom", Description: "copy"}); err != nil {
		t.Fatalf("SaveLandingContent returned error: %v", err)
	}
	if err := store.ResetLandingContent(ctx); err != nil {
		t.Fatalf("ResetLandingContent returned error: %v", err)
	}
	if diff := cmp.Diff(DefaultLandingContent(), store.GetLandingContent(ctx)); diff != "" {
		t.Fatalf("expected default after reset (-want +got):\n%s", diff)
	}
}

func TestBackendReadFaultResolvesToDefault(t *testing.T) {
	store := NewStore(&faultyBackend{getErr: errors.New("connection refused")}, nil)
	ctx := context.Background()

	if diff := cmp.Diff(DefaultWebResults(), store.GetWebResults(ctx)); diff != "" {
		t.Fatalf("expected defaults on read fault (-want +got):\n%s", diff)
	}
}

func TestBackendWriteFaultPropagates(t *testing.T) {
	quota := errors.New("quota exceeded")
	store := NewStore(&faultyBackend{setErr: quota, deleteErr: quota}, nil)
	ctx := context.Background()

	if err := store.SaveLandingContent(ctx, DefaultLandingContent()); !errors.Is(err, quota) {
		t.Fatalf("expected quota error from SaveLandingContent, got %v", err)
	}
	if err := store.SaveSearchButtons(ctx, DefaultSearchButtons()); !errors.Is(err, quota) {
		t.Fatalf("expected quota error from SaveSearchButtons, got %v", err)
	}
	if err := store.SaveWebResults(ctx, DefaultWebResults()); !errors.Is(err, quota) {
		t.Fatalf("expected quota error from SaveWebResults, got %v", err)
	}
	if err := store.ResetWebResults(ctx); !errors.Is(err, quota) {
		t.Fatalf("expected quota error from ResetWebResults, got %v", err)
	}
}
