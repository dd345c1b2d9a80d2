package entities

import (
	"time"
)

// UserSettings stores user-specific preferences.
type UserSettings struct {
	UserID    int64
	DarkMode  bool // dark palette for screens and the story image
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUserSettings creates a new UserSettings instance with default values.
func NewUserSettings(userID int64) *UserSettings {
	now := time.Now()
	return &UserSettings{
		UserID:    userID,
		DarkMode:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
