package entities

import (
	"time"

	"github.com/google/uuid"
)

// Analytics event names.
const (
	EventQuizStarted             = "quiz_started"
	EventAnswerSubmitted         = "answer_submitted"
	EventQuizCompleted           = "quiz_completed"
	EventQuizRestarted           = "quiz_restarted"
	EventDarkModeToggled         = "dark_mode_toggled"
	EventMDNLinkClicked          = "mdn_link_clicked"
	EventCurriculumClicked       = "curriculum_clicked"
	EventGithubClicked           = "github_clicked"
	EventDiscordClicked          = "discord_clicked"
	EventShareTextCopied         = "share_text_copied"
	EventInstagramStoryGenerated = "instagram_story_generated"
)

// Event is a single analytics record.
type Event struct {
	ID         uuid.UUID
	UserID     int64 // 0 when the event has no user (REST surface)
	Name       string
	Properties map[string]any
	OccurredAt time.Time
}

// NewEvent creates an event stamped with a fresh ID and the current time.
func NewEvent(userID int64, name string, props map[string]any) Event {
	if props == nil {
		props = map[string]any{}
	}
	return Event{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       name,
		Properties: props,
		OccurredAt: time.Now().UTC(),
	}
}
