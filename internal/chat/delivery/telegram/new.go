package telegram

import (
	"github.com/gin-gonic/gin"

	"timesheet-assistant/internal/chat"
	"timesheet-assistant/internal/middleware"
	"timesheet-assistant/pkg/datemath"
	pkgLog "timesheet-assistant/pkg/log"
	pkgTelegram "timesheet-assistant/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Config identifies who is typing on the Telegram side.
type Config struct {
	UserID   int
	UserName string
}

type handler struct {
	l       pkgLog.Logger
	conv    chat.Conversation
	bot     *pkgTelegram.Bot
	parser  *datemath.Parser
	limiter *middleware.RateLimiter
	queue   *chatQueue
	cfg     Config
}

// New creates a new Telegram delivery handler.
func New(
	l pkgLog.Logger,
	conv chat.Conversation,
	bot *pkgTelegram.Bot,
	parser *datemath.Parser,
	limiter *middleware.RateLimiter,
	cfg Config,
) Handler {
	return &handler{
		l:       l,
		conv:    conv,
		bot:     bot,
		parser:  parser,
		limiter: limiter,
		queue:   newChatQueue(),
		cfg:     cfg,
	}
}
