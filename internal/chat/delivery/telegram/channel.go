package telegram

import (
	"context"

	"timesheet-assistant/internal/model"
	pkgTelegram "timesheet-assistant/pkg/telegram"
)

// channel talks to one Telegram chat.
type channel struct {
	bot    *pkgTelegram.Bot
	chatID int64
}

func (c channel) Emit(ctx context.Context, text string) error {
	return c.bot.SendMessage(ctx, c.chatID, text)
}

// Confirm sends the prompt with Sí/No buttons. The answer comes back as a
// callback_query.
func (c channel) Confirm(ctx context.Context, prompt string) error {
	return c.bot.SendMessageWithKeyboard(ctx, c.chatID, prompt, confirmKeyboard())
}

func (c channel) SendFile(ctx context.Context, export model.Export) error {
	return c.bot.SendDocument(ctx, c.chatID, export.Filename, export.Data)
}

func (c channel) SignalWorking(ctx context.Context) error {
	return c.bot.SendChatAction(ctx, c.chatID, pkgTelegram.ChatActionTyping)
}

func confirmKeyboard() pkgTelegram.InlineKeyboardMarkup {
	return pkgTelegram.InlineKeyboardMarkup{
		InlineKeyboard: [][]pkgTelegram.InlineKeyboardButton{{
			{Text: buttonYes, CallbackData: callbackYes},
			{Text: buttonNo, CallbackData: callbackNo},
		}},
	}
}
