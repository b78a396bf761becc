package http

import (
	"github.com/gin-gonic/gin"

	"timesheet-assistant/internal/middleware"
)

const exportsPath = "/api/v1/chat/exports"

// RegisterRoutes maps the chat endpoints under rg (/api/v1/chat) and the
// calendar endpoints under cal (/api/v1/calendar). Message-driven endpoints
// are rate limited per client.
func RegisterRoutes(rg, cal *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/messages", mw.RateLimit(), h.SendMessage)
	rg.POST("/confirmations", mw.RateLimit(), h.Confirm)
	rg.POST("/classify", mw.RateLimit(), h.Classify)
	rg.DELETE("/sessions/:id", h.ResetSession)
	rg.GET("/exports/:id", h.DownloadExport)

	cal.GET("/summary", h.MonthSummary)
	cal.GET("/days", h.MonthDays)
}
