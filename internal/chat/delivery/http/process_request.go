package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"timesheet-assistant/internal/model"
)

func (h *handler) processMessageReq(c *gin.Context) (messageReq, error) {
	var req messageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}
	return req, nil
}

func (h *handler) processConfirmationReq(c *gin.Context) (confirmationReq, error) {
	var req confirmationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if req.SessionID == "" {
		return req, errSessionRequired
	}
	return req, nil
}

func (h *handler) processClassifyReq(c *gin.Context) (classifyReq, error) {
	var req classifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processMonthReq(c *gin.Context) (int, time.Month, error) {
	var req monthReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return 0, 0, err
	}
	if err := req.validate(); err != nil {
		return 0, 0, err
	}
	year, month := h.month(req.Year, req.Month)
	return year, month, nil
}

// month fills a missing year or month from today.
func (h *handler) month(year, month int) (int, time.Month) {
	today := h.parser.Today()
	if year == 0 {
		year = today.Year()
	}
	if month == 0 {
		return year, today.Month()
	}
	return year, time.Month(month)
}

func (h *handler) scope(sessionID string, v calendarView) (model.Scope, *model.StaticView) {
	year, month := h.month(v.DisplayedYear, v.DisplayedMonth)
	view := &model.StaticView{Year: year, Month: month}
	return model.Scope{
		SessionID: sessionID,
		UserID:    h.cfg.UserID,
		UserName:  h.cfg.UserName,
		View:      view,
	}, view
}
