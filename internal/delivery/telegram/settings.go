package telegram

import (
	"context"
	"fmt"

	"github.com/pransh15/html-myths-quiz/internal/domain/entities"
	"github.com/pransh15/html-myths-quiz/internal/quiz"
)

// themeHandler toggles dark mode and redraws the screen it was pressed on.
// A zero messageID replies with a confirmation instead.
func (h *Handler) themeHandler(userID int64, messageID int) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		dark, err := h.settingsService.ToggleDarkMode(ctx, userID)
		if err != nil {
			return fmt.Errorf("toggle dark mode: %w", err)
		}

		h.track(userID, entities.EventDarkModeToggled, map[string]any{"enabled": dark})

		if messageID == 0 {
			h.send(newHTMLMessage(chatID, fmt.Sprintf("Theme: %s", themeLabel(dark))))
			return nil
		}

		s := h.quizService.Session(userID)
		switch s.Stage {
		case quiz.Finished:
			h.send(screen(chatID, messageID, formatResults(s, dark), buildResultsKeyboard(dark)))
		case quiz.NotStarted:
			text := formatIntro(h.quizService.StatementCount(), dark)
			h.send(screen(chatID, messageID, text, buildIntroKeyboard(dark)))
		}
		return nil
	}
}
