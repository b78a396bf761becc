package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"timesheet-assistant/internal/model"
	"timesheet-assistant/internal/orchestrator"
	pkgResponse "timesheet-assistant/pkg/response"
	pkgTelegram "timesheet-assistant/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It answers 200 right away and processes the update in the background so
// that the thinking and reply delays never hit Telegram's webhook timeout.
// Updates of one chat are processed in arrival order.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram.HandleWebhook: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if update.Message == nil && update.CallbackQuery == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Checked before going async so that bursts are counted in arrival order.
	limited := false
	if msg := update.Message; msg != nil && msg.Chat != nil {
		if err := h.limiter.Allow(sessionID(msg.Chat.ID)); err != nil {
			h.l.Warnf(ctx, "telegram.HandleWebhook: %v", err)
			limited = true
		}
	}

	h.queue.enqueue(updateChatID(update), func() {
		bgCtx := context.Background()
		if limited {
			if err := h.bot.SendMessage(bgCtx, update.Message.Chat.ID, msgRateLimited); err != nil {
				h.l.Errorf(bgCtx, "telegram.HandleWebhook: rate limit notice: %v", err)
			}
			return
		}
		if err := h.processUpdate(bgCtx, update); err != nil {
			h.l.Errorf(bgCtx, "telegram.HandleWebhook: background processUpdate failed: %v", err)
		}
	})

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

func (h *handler) processUpdate(ctx context.Context, update pkgTelegram.Update) error {
	if cq := update.CallbackQuery; cq != nil {
		return h.processCallback(ctx, cq)
	}
	return h.processMessage(ctx, update.Message)
}

// processMessage handles a single Telegram text message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" || msg.Chat == nil {
		return nil
	}
	chatID := msg.Chat.ID
	ch := channel{bot: h.bot, chatID: chatID}

	switch text {
	case commandStart:
		return ch.Emit(ctx, msgWelcome)
	case commandHelp:
		return ch.Emit(ctx, orchestrator.HelpText)
	}

	if err := h.conv.HandleMessage(ctx, h.scope(chatID), ch, text); err != nil {
		if emitErr := ch.Emit(ctx, msgFailed); emitErr != nil {
			h.l.Errorf(ctx, "telegram.processMessage: failure notice: %v", emitErr)
		}
		return fmt.Errorf("HandleMessage: %w", err)
	}
	return nil
}

// processCallback handles a press on the Sí/No keyboard.
func (h *handler) processCallback(ctx context.Context, cq *pkgTelegram.CallbackQuery) error {
	if err := h.bot.AnswerCallbackQuery(ctx, cq.ID, ""); err != nil {
		h.l.Warnf(ctx, "telegram.processCallback: answer callback: %v", err)
	}
	if cq.Message == nil || cq.Message.Chat == nil {
		return nil
	}

	var confirmed bool
	switch cq.Data {
	case callbackYes:
		confirmed = true
	case callbackNo:
		confirmed = false
	default:
		h.l.Warnf(ctx, "telegram.processCallback: unknown callback data %q", cq.Data)
		return nil
	}

	chatID := cq.Message.Chat.ID
	ch := channel{bot: h.bot, chatID: chatID}
	if err := h.bot.RemoveKeyboard(ctx, chatID, cq.Message.MessageID); err != nil {
		h.l.Warnf(ctx, "telegram.processCallback: remove keyboard: %v", err)
	}

	err := h.conv.Resolve(ctx, h.scope(chatID), ch, confirmed)
	if errors.Is(err, orchestrator.ErrNoPendingConfirmation) {
		return ch.Emit(ctx, msgNothingPending)
	}
	if err != nil {
		return fmt.Errorf("Resolve: %w", err)
	}
	return nil
}

func (h *handler) scope(chatID int64) model.Scope {
	today := h.parser.Today()
	return model.Scope{
		SessionID: sessionID(chatID),
		UserID:    h.cfg.UserID,
		UserName:  h.cfg.UserName,
		View:      &model.StaticView{Year: today.Year(), Month: today.Month()},
	}
}

// updateChatID is the chat an update belongs to, 0 when it carries none.
func updateChatID(update pkgTelegram.Update) int64 {
	if msg := update.Message; msg != nil && msg.Chat != nil {
		return msg.Chat.ID
	}
	if cq := update.CallbackQuery; cq != nil && cq.Message != nil && cq.Message.Chat != nil {
		return cq.Message.Chat.ID
	}
	return 0
}

func sessionID(chatID int64) string {
	return fmt.Sprintf("telegram_%d", chatID)
}
