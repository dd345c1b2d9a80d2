package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pransh15/html-myths-quiz/internal/domain/entities"
	"github.com/pransh15/html-myths-quiz/internal/infra/postgres"
)

var ErrSettingsNotFound = errors.New("settings not found")

// SettingsRepository provides access to user settings data in the database.
type SettingsRepository struct {
	db postgres.DBTX
}

// NewSettingsRepository creates a new SettingsRepository on top of a pool or transaction.
func NewSettingsRepository(db postgres.DBTX) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Create creates default settings for a user.
func (r *SettingsRepository) Create(ctx context.Context, userID int64) error {
	query := `
		INSERT INTO user_settings (user_id, dark_mode, created_at, updated_at)
		VALUES ($1, FALSE, NOW(), NOW())
		ON CONFLICT (user_id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("create settings: %w", err)
	}

	return nil
}

// GetByUserID retrieves settings for a user.
func (r *SettingsRepository) GetByUserID(ctx context.Context, userID int64) (*entities.UserSettings, error) {
	return r.get(ctx, userID, false)
}

// GetByUserIDForUpdate retrieves settings and locks the row until the
// surrounding transaction ends.
func (r *SettingsRepository) GetByUserIDForUpdate(ctx context.Context, userID int64) (*entities.UserSettings, error) {
	return r.get(ctx, userID, true)
}

func (r *SettingsRepository) get(ctx context.Context, userID int64, lock bool) (*entities.UserSettings, error) {
	query := `
		SELECT user_id, dark_mode, created_at, updated_at
		FROM user_settings
		WHERE user_id = $1
	`
	if lock {
		query += ` FOR UPDATE`
	}

	var settings entities.UserSettings
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&settings.UserID,
		&settings.DarkMode,
		&settings.CreatedAt,
		&settings.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}

	return &settings, nil
}

// UpdateDarkMode stores the dark mode preference.
func (r *SettingsRepository) UpdateDarkMode(ctx context.Context, userID int64, enabled bool) error {
	query := `
		UPDATE user_settings
		SET dark_mode = $1, updated_at = NOW()
		WHERE user_id = $2
	`

	result, err := r.db.Exec(ctx, query, enabled, userID)
	if err != nil {
		return fmt.Errorf("update dark mode: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrSettingsNotFound
	}

	return nil
}
