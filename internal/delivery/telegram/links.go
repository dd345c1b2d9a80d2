package telegram

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/pransh15/html-myths-quiz/internal/domain/entities"
	"github.com/pransh15/html-myths-quiz/internal/repository"
)

// linkHandler records the click and then delivers the outbound link.
func (h *Handler) linkHandler(userID int64, cd callbackData) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		var text string

		switch cd.param(0) {
		case linkMDN:
			id, ok := cd.intParam(1)
			if !ok {
				h.logger.Warn("invalid link callback", zap.String("data", cd.Raw))
				return nil
			}
			st, err := h.quizService.StatementByID(id)
			if err != nil {
				if errors.Is(err, repository.ErrStatementNotFound) {
					h.logger.Warn("link for unknown statement", zap.Int("question_id", id))
					return nil
				}
				return fmt.Errorf("get statement: %w", err)
			}
			if st.ReferenceLink == "" {
				return nil
			}
			h.track(userID, entities.EventMDNLinkClicked, map[string]any{"question_id": id})
			text = formatStatementLink(st)

		case linkCurriculum:
			h.track(userID, entities.EventCurriculumClicked, nil)
			text = formatLink("📖 MDN Web Docs Curriculum:", curriculumURL)

		case linkGithub:
			h.track(userID, entities.EventGithubClicked, nil)
			text = formatLink("🤝 Contribute to MDN on GitHub:", githubURL)

		case linkDiscord:
			h.track(userID, entities.EventDiscordClicked, nil)
			text = formatLink("💬 Join the MDN community on Discord:", discordURL)

		default:
			h.logger.Warn("unknown link kind", zap.String("data", cd.Raw))
			return nil
		}

		h.send(newHTMLMessage(chatID, text))
		return nil
	}
}
