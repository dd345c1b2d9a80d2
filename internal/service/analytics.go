package service

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/pransh15/html-myths-quiz/internal/domain/entities"
	"github.com/pransh15/html-myths-quiz/internal/quiz"
)

const shutdownFlushTimeout = 5 * time.Second

// AnalyticsService is a fire-and-forget event sink. Track never blocks:
// events are queued on a bounded buffer and written in batches by Run.
// A full buffer drops events.
type AnalyticsService struct {
	repo          EventRepository
	logger        *zap.Logger
	events        chan entities.Event
	batchSize     int
	flushInterval time.Duration
	dropped       atomic.Int64
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(
	repo EventRepository,
	logger *zap.Logger,
	bufferSize int,
	batchSize int,
	flushInterval time.Duration,
) *AnalyticsService {
	if bufferSize <= 0 {
		bufferSize = 1024
	}
	if batchSize <= 0 {
		batchSize = 50
	}
	if flushInterval <= 0 {
		flushInterval = 5 * time.Second
	}

	return &AnalyticsService{
		repo:          repo,
		logger:        logger,
		events:        make(chan entities.Event, bufferSize),
		batchSize:     batchSize,
		flushInterval: flushInterval,
	}
}

// Track queues an event. A nil service drops it.
func (s *AnalyticsService) Track(userID int64, name string, props map[string]any) {
	if s == nil {
		return
	}

	e := entities.NewEvent(userID, name, props)

	s.logger.Debug("analytics event",
		zap.String("event", name),
		zap.Int64("user_id", userID),
		zap.Any("properties", e.Properties),
	)

	select {
	case s.events <- e:
	default:
		s.dropped.Add(1)
		s.logger.Warn("analytics buffer full, event dropped",
			zap.String("event", name),
			zap.Int64("dropped_total", s.dropped.Load()),
		)
	}
}

// Dropped returns the number of events discarded because the buffer was full.
func (s *AnalyticsService) Dropped() int64 {
	return s.dropped.Load()
}

// ForUser returns a quiz.Tracker that attributes events to userID.
func (s *AnalyticsService) ForUser(userID int64) quiz.Tracker {
	return userTracker{sink: s, userID: userID}
}

// Summary returns per-event counts since the given time.
func (s *AnalyticsService) Summary(ctx context.Context, since time.Time) (map[string]int64, error) {
	return s.repo.CountByName(ctx, since)
}

// Run writes queued events until ctx is cancelled, then flushes what is left.
func (s *AnalyticsService) Run(ctx context.Context) {
	s.logger.Info("analytics sink started")
	defer s.logger.Info("analytics sink stopped")

	ticker := time.NewTicker(s.flushInterval)
	defer ticker.Stop()

	batch := make([]entities.Event, 0, s.batchSize)

	for {
		select {
		case <-ctx.Done():
		drain:
			for {
				select {
				case e := <-s.events:
					batch = append(batch, e)
				default:
					break drain
				}
			}

			flushCtx, cancel := context.WithTimeout(context.Background(), shutdownFlushTimeout)
			s.flush(flushCtx, batch)
			cancel()
			return

		case e := <-s.events:
			batch = append(batch, e)
			if len(batch) >= s.batchSize {
				s.flush(ctx, batch)
				batch = batch[:0]
			}

		case <-ticker.C:
			if len(batch) > 0 {
				s.flush(ctx, batch)
				batch = batch[:0]
			}
		}
	}
}

func (s *AnalyticsService) flush(ctx context.Context, batch []entities.Event) {
	if len(batch) == 0 {
		return
	}

	if err := s.repo.InsertBatch(ctx, batch); err != nil {
		s.logger.Error("failed to store analytics events",
			zap.Int("count", len(batch)),
			zap.Error(err),
		)
		return
	}

	s.logger.Debug("analytics events stored", zap.Int("count", len(batch)))
}

type userTracker struct {
	sink   *AnalyticsService
	userID int64
}

func (t userTracker) Track(name string, props map[string]any) {
	t.sink.Track(t.userID, name, props)
}
