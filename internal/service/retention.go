package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// RetentionService periodically purges old analytics events.
type RetentionService struct {
	repo      EventRepository
	retention time.Duration
	schedule  string
	logger    *zap.Logger
	now       func() time.Time
}

// NewRetentionService creates a new retention service.
func NewRetentionService(repo EventRepository, retention time.Duration, schedule string, logger *zap.Logger) *RetentionService {
	if schedule == "" {
		schedule = "@daily"
	}

	return &RetentionService{
		repo:      repo,
		retention: retention,
		schedule:  schedule,
		logger:    logger,
		now:       time.Now,
	}
}

// Start runs the purge job on its schedule until ctx is cancelled.
// A non-positive retention disables purging.
func (s *RetentionService) Start(ctx context.Context) {
	if s.retention <= 0 {
		s.logger.Info("analytics retention disabled")
		return
	}

	s.logger.Info("retention service started",
		zap.String("schedule", s.schedule),
		zap.Duration("retention", s.retention),
	)

	c := cron.New(cron.WithLocation(time.UTC))

	_, err := c.AddFunc(s.schedule, func() {
		s.logger.Info("cron triggered: purging analytics events")
		if _, err := s.Purge(ctx); err != nil {
			s.logger.Error("failed to purge analytics events", zap.Error(err))
		}
	})
	if err != nil {
		s.logger.Error("failed to add cron job", zap.Error(err))
		return
	}

	c.Start()
	s.logger.Info("cron scheduler started")

	<-ctx.Done()

	<-c.Stop().Done()
	s.logger.Info("retention service stopped")
}

// Purge deletes events older than the retention window.
func (s *RetentionService) Purge(ctx context.Context) (int64, error) {
	cutoff := s.now().UTC().Add(-s.retention)

	deleted, err := s.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete events older than %s: %w", cutoff.Format(time.RFC3339), err)
	}

	s.logger.Info("analytics events purged",
		zap.Int64("deleted", deleted),
		zap.Time("cutoff", cutoff),
	)

	return deleted, nil
}
