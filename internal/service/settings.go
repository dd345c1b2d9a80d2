package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pransh15/html-myths-quiz/internal/domain/entities"
	"github.com/pransh15/html-myths-quiz/internal/infra/postgres"
	"github.com/pransh15/html-myths-quiz/internal/infra/postgres/repository"
)

// SettingsService manages per-user preferences.
type SettingsService struct {
	repository SettingsRepository
	tr         Transactor
	txRepo     func(tx postgres.DBTX) SettingsRepository
}

// NewSettingsService creates a new settings service.
func NewSettingsService(repository SettingsRepository, tr Transactor) *SettingsService {
	return &SettingsService{
		repository: repository,
		tr:         tr,
		txRepo:     newTxSettingsRepository,
	}
}

func newTxSettingsRepository(tx postgres.DBTX) SettingsRepository {
	return repository.NewSettingsRepository(tx)
}

// GetOrCreate returns the user's settings, creating defaults on first use.
func (s *SettingsService) GetOrCreate(ctx context.Context, userID int64) (*entities.UserSettings, error) {
	settings, err := s.repository.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			// Create default settings.
			if err := s.repository.Create(ctx, userID); err != nil {
				return nil, err
			}
			// Retrieve newly created settings.
			return s.repository.GetByUserID(ctx, userID)
		}
		return nil, err
	}

	return settings, nil
}

// DarkMode reports whether the user prefers the dark theme.
func (s *SettingsService) DarkMode(ctx context.Context, userID int64) (bool, error) {
	settings, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return false, err
	}
	return settings.DarkMode, nil
}

// ToggleDarkMode flips the user's theme preference and returns the new value.
func (s *SettingsService) ToggleDarkMode(ctx context.Context, userID int64) (bool, error) {
	var enabled bool

	err := s.tr.WithinTx(ctx, func(ctx context.Context, tx postgres.DBTX) error {
		repo := s.txRepo(tx)

		if err := repo.Create(ctx, userID); err != nil {
			return err
		}

		settings, err := repo.GetByUserIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}

		enabled = !settings.DarkMode
		return repo.UpdateDarkMode(ctx, userID, enabled)
	})
	if err != nil {
		return false, fmt.Errorf("toggle dark mode: %w", err)
	}

	return enabled, nil
}
