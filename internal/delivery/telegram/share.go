package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/pransh15/html-myths-quiz/internal/domain/entities"
	"github.com/pransh15/html-myths-quiz/internal/quiz"
	"github.com/pransh15/html-myths-quiz/internal/story"
)

// copyShareText sends the share text as a copyable block and confirms with a
// toast. Nothing is confirmed when sending fails.
func (h *Handler) copyShareText(_ context.Context, cb *tgbotapi.CallbackQuery) {
	userID := cb.From.ID
	chatID := cb.Message.Chat.ID

	s := h.quizService.Session(userID)
	if s.Stage != quiz.Finished {
		h.answerCallback(cb.ID, msgQuizNotFinished)
		return
	}

	text := quiz.ShareMessage(s.Score(), s.Total(), h.shareURL)
	msg := newHTMLMessage(chatID, formatShareMessage(text))
	msg.DisableWebPagePreview = true

	if _, err := h.sender.Send(msg); err != nil {
		h.logger.Error("failed to send share text",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		h.answerCallback(cb.ID, "")
		return
	}

	h.answerCallback(cb.ID, msgTextCopied)
	h.track(userID, entities.EventShareTextCopied, map[string]any{"platform": "share"})
}

// storyHandler renders the story image for a finished quiz and uploads it.
func (h *Handler) storyHandler(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		s := h.quizService.Session(userID)
		if s.Stage != quiz.Finished {
			h.send(newHTMLMessage(chatID, msgQuizNotFinished))
			return nil
		}

		score, total := s.Score(), s.Total()
		data, err := h.stories.Render(score, total, h.darkMode(ctx, userID))
		if err != nil {
			h.logger.Error("failed to render story",
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
			h.send(newHTMLMessage(chatID, msgStoryFailed))
			return nil
		}

		doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: story.FileName, Bytes: data})
		doc.Caption = msgStoryCaption
		h.send(doc)

		h.track(userID, entities.EventInstagramStoryGenerated, map[string]any{
			"score":      score,
			"percentage": quiz.Percentage(score, total),
		})
		return nil
	}
}
