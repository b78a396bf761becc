package http

import (
	"github.com/gin-gonic/gin"

	"timesheet-assistant/internal/chat"
	"timesheet-assistant/internal/report"
	"timesheet-assistant/internal/router"
	"timesheet-assistant/pkg/datemath"
	"timesheet-assistant/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	SendMessage(c *gin.Context)
	Confirm(c *gin.Context)
	Classify(c *gin.Context)
	ResetSession(c *gin.Context)
	DownloadExport(c *gin.Context)
	MonthSummary(c *gin.Context)
	MonthDays(c *gin.Context)
}

// Config identifies the developer the HTTP surface acts for.
type Config struct {
	UserID   int
	UserName string
}

type handler struct {
	l       log.Logger
	conv    chat.Conversation
	router  router.Router
	report  report.UseCase
	exports *chat.ExportStore
	parser  *datemath.Parser
	cfg     Config
}

// New creates a new HTTP handler for the chat domain.
func New(
	l log.Logger,
	conv chat.Conversation,
	r router.Router,
	rp report.UseCase,
	exports *chat.ExportStore,
	parser *datemath.Parser,
	cfg Config,
) Handler {
	return &handler{
		l:       l,
		conv:    conv,
		router:  r,
		report:  rp,
		exports: exports,
		parser:  parser,
		cfg:     cfg,
	}
}
