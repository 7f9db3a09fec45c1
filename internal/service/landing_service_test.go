package service

import (
	"context"
	"testing"

	"github.com/minglemoody/internal/content"
)

func TestLandingServiceSaveAllowsEmptyStrings(t *testing.T) {
	svc := NewLandingService(setupContentTestStore(t))
	ctx := context.Background()

	saved, err := svc.Save(ctx, LandingInput{})
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if saved.Title != "" || saved.Description != "" {
		t.Fatalf("expected empty landing, got %#v", saved)
	}

	got := svc.Get(ctx)
	if got != (content.LandingContent{}) {
		t.Fatalf("expected stored empty landing, got %#v", got)
	}
}

func TestLandingServiceReset(t *testing.T) {
	svc := NewLandingService(setupContentTestStore(t))
	ctx := context.Background()

	if _, err := svc.Save(ctx, LandingInput{Title: "New", Description: "Copy"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	restored, err := svc.Reset(ctx)
	if err != nil {
		t.Fatalf("Reset returned error: %v", err)
	}
	if restored != content.DefaultLandingContent() {
		t.Fatalf("expected default landing after reset, got %#v", restored)
	}
}
