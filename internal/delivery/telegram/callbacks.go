package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil || cb.From == nil {
		h.answerCallback(cb.ID, "")
		return
	}

	userID := cb.From.ID
	chatID := cb.Message.Chat.ID
	messageID := cb.Message.MessageID
	cd := decodeCallback(cb.Data)

	var fn HandlerFunc

	switch cd.Action {
	case actionQuiz:
		switch cd.param(0) {
		case quizStart:
			fn = h.startQuizHandler(userID, messageID)
		case quizAnswer:
			fn = h.answerHandler(userID, messageID, cd)
		case quizNext:
			fn = h.nextHandler(userID, messageID, cd)
		case quizRestart:
			fn = h.restartHandler(userID, messageID)
		}

	case actionLink:
		fn = h.linkHandler(userID, cd)

	case actionShare:
		switch cd.param(0) {
		case shareText:
			// Answered with its own confirmation toast.
			h.copyShareText(ctx, cb)
			return
		case shareStory:
			fn = h.storyHandler(userID)
		}

	case actionTheme:
		fn = h.themeHandler(userID, messageID)
	}

	if fn == nil {
		h.logger.Warn("unknown callback", zap.String("data", cd.Raw))
		h.answerCallback(cb.ID, "")
		return
	}

	// Remove the user's "clock".
	h.answerCallback(cb.ID, "")

	_ = h.withErrorHandling(userID, fn)(ctx, chatID)
}
