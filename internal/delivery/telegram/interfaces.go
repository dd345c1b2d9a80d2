package telegram

import (
	"context"

	"github.com/pransh15/html-myths-quiz/internal/domain/entities"
	"github.com/pransh15/html-myths-quiz/internal/quiz"
)

type QuizService interface {
	Start(userID int64) quiz.Session
	SubmitAnswerAt(userID int64, position int, answer bool) (quiz.Session, bool)
	AdvanceAfterAt(userID int64, position int, done func(quiz.Session)) bool
	Restart(userID int64) quiz.Session
	Session(userID int64) quiz.Session
	StatementByID(id int) (entities.Statement, error)
	StatementCount() int
}

type SettingsService interface {
	DarkMode(ctx context.Context, userID int64) (bool, error)
	ToggleDarkMode(ctx context.Context, userID int64) (bool, error)
}

// Analytics receives user interaction events. Track must not block.
type Analytics interface {
	Track(userID int64, name string, props map[string]any)
}

// StoryRenderer draws the shareable result image.
type StoryRenderer interface {
	Render(score, total int, dark bool) ([]byte, error)
}
