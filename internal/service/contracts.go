package service

import (
	"context"
	"time"

	"github.com/pransh15/html-myths-quiz/internal/domain/entities"
	"github.com/pransh15/html-myths-quiz/internal/infra/postgres"
)

// Transactor runs a function inside a database transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx postgres.DBTX) error) error
}

// SettingsRepository manages user preference persistence.
type SettingsRepository interface {
	Create(ctx context.Context, userID int64) error
	GetByUserID(ctx context.Context, userID int64) (*entities.UserSettings, error)
	GetByUserIDForUpdate(ctx context.Context, userID int64) (*entities.UserSettings, error)
	UpdateDarkMode(ctx context.Context, userID int64, enabled bool) error
}

// EventRepository manages analytics event persistence.
type EventRepository interface {
	InsertBatch(ctx context.Context, events []entities.Event) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	CountByName(ctx context.Context, since time.Time) (map[string]int64, error)
}

// StatementRepository gives read access to the question bank.
type StatementRepository interface {
	GetAll() []entities.Statement
	GetByID(id int) (entities.Statement, error)
	Count() int
}
