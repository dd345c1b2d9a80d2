package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/pransh15/html-myths-quiz/internal/quiz"
)

// introHandler shows the intro screen. A zero messageID sends a new message.
func (h *Handler) introHandler(userID int64, messageID int) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		dark := h.darkMode(ctx, userID)
		text := formatIntro(h.quizService.StatementCount(), dark)
		h.send(screen(chatID, messageID, text, buildIntroKeyboard(dark)))
		return nil
	}
}

// startQuizHandler begins a fresh session and shows its first statement.
func (h *Handler) startQuizHandler(userID int64, messageID int) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		s := h.quizService.Start(userID)
		if s.Total() == 0 {
			h.logger.Warn("quiz started with an empty bank", zap.Int64("user_id", userID))
			return h.introHandler(userID, messageID)(ctx, chatID)
		}

		h.send(screen(chatID, messageID, formatStatement(s), buildAnswerKeyboard(s)))
		return nil
	}
}

// answerHandler records an answer and reveals the result. Buttons from a
// statement that is no longer current are ignored by the quiz service.
func (h *Handler) answerHandler(userID int64, messageID int, cd callbackData) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		position, ok := cd.intParam(1)
		value := cd.param(2)
		if !ok || (value != answerTrue && value != answerFalse) {
			h.logger.Warn("invalid answer callback", zap.String("data", cd.Raw))
			return nil
		}

		s, applied := h.quizService.SubmitAnswerAt(userID, position, value == answerTrue)
		if !applied {
			return nil
		}

		kb := buildRevealKeyboard(s)
		h.send(newHTMLEdit(chatID, messageID, formatRevealed(s), &kb))
		return nil
	}
}

// nextHandler schedules the move to the next statement or the results.
func (h *Handler) nextHandler(userID int64, messageID int, cd callbackData) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		position, ok := cd.intParam(1)
		if !ok {
			h.logger.Warn("invalid next callback", zap.String("data", cd.Raw))
			return nil
		}

		h.quizService.AdvanceAfterAt(userID, position, func(s quiz.Session) {
			h.showAdvanced(ctx, userID, chatID, messageID, s)
		})
		return nil
	}
}

// restartHandler drops the session and returns to the intro.
func (h *Handler) restartHandler(userID int64, messageID int) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		h.quizService.Restart(userID)
		return h.introHandler(userID, messageID)(ctx, chatID)
	}
}

// showAdvanced renders the session after an advance, on whichever goroutine
// the transition completed.
func (h *Handler) showAdvanced(ctx context.Context, userID, chatID int64, messageID int, s quiz.Session) {
	var (
		text string
		kb   tgbotapi.InlineKeyboardMarkup
	)

	switch s.Stage {
	case quiz.Finished:
		dark := h.darkMode(ctx, userID)
		text, kb = formatResults(s, dark), buildResultsKeyboard(dark)
	case quiz.InProgress:
		text, kb = formatStatement(s), buildAnswerKeyboard(s)
	default:
		return
	}

	h.send(screen(chatID, messageID, text, kb))
}
