package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestRetention_PurgeCutoff(t *testing.T) {
	repo := newFakeEventRepo()
	repo.deleted = 12

	svc := NewRetentionService(repo, 24*time.Hour, "", zap.NewNop())
	now := time.Date(2025, 11, 8, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	deleted, err := svc.Purge(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 12 {
		t.Errorf("expected 12 deleted, got %d", deleted)
	}
	if want := now.Add(-24 * time.Hour); !repo.cutoff.Equal(want) {
		t.Errorf("expected cutoff %s, got %s", want, repo.cutoff)
	}
	if svc.schedule != "@daily" {
		t.Errorf("expected default schedule, got %q", svc.schedule)
	}
}

func TestRetention_PurgeError(t *testing.T) {
	repo := newFakeEventRepo()
	repo.err = errors.New("db down")

	svc := NewRetentionService(repo, time.Hour, "@hourly", zap.NewNop())
	if _, err := svc.Purge(context.Background()); !errors.Is(err, repo.err) {
		t.Errorf("expected wrapped error, got %v", err)
	}
}

func TestRetention_StartStopsOnCancel(t *testing.T) {
	svc := NewRetentionService(newFakeEventRepo(), time.Hour, "@every 1h", zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		svc.Start(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not return after cancel")
	}
}
