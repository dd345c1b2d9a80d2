package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pransh15/html-myths-quiz/internal/domain/entities"
	"github.com/pransh15/html-myths-quiz/internal/infra/postgres"
)

// EventRepository stores analytics events.
type EventRepository struct {
	db postgres.DBTX
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(db postgres.DBTX) *EventRepository {
	return &EventRepository{db: db}
}

// InsertBatch writes events in a single round trip.
func (r *EventRepository) InsertBatch(ctx context.Context, events []entities.Event) error {
	if len(events) == 0 {
		return nil
	}

	query := `
		INSERT INTO analytics_events (id, user_id, name, properties, occurred_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING
	`

	batch := &pgx.Batch{}
	for _, e := range events {
		var userID *int64
		if e.UserID != 0 {
			id := e.UserID
			userID = &id
		}
		batch.Queue(query, e.ID.String(), userID, e.Name, e.Properties, e.OccurredAt)
	}

	if err := r.db.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert events: %w", err)
	}

	return nil
}

// DeleteOlderThan removes events that occurred before cutoff and returns
// the number of deleted rows.
func (r *EventRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `DELETE FROM analytics_events WHERE occurred_at < $1`

	result, err := r.db.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete old events: %w", err)
	}

	return result.RowsAffected(), nil
}

// CountByName returns per-event counts since the given time.
func (r *EventRepository) CountByName(ctx context.Context, since time.Time) (map[string]int64, error) {
	query := `
		SELECT name, COUNT(*)
		FROM analytics_events
		WHERE occurred_at >= $1
		GROUP BY name
	`

	rows, err := r.db.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var (
			name  string
			count int64
		)
		if err := rows.Scan(&name, &count); err != nil {
			return nil, fmt.Errorf("scan event count: %w", err)
		}
		counts[name] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate event counts: %w", err)
	}

	return counts, nil
}
