package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"timesheet-assistant/internal/chat"
	"timesheet-assistant/internal/orchestrator"
	"timesheet-assistant/pkg/datemath"
	"timesheet-assistant/pkg/response"
)

// SendMessage godoc
// @Summary     Send a chat message
// @Description Interprets a Spanish command or query. The reply may end with a pending yes/no confirmation.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body messageReq true "Message"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/messages [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMessageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc, view := h.scope(req.SessionID, req.calendarView)
	col := chat.NewCollector()
	if err := h.conv.HandleMessage(ctx, sc, col, req.Text); err != nil {
		h.l.Errorf(ctx, "chat.http.SendMessage: conv.HandleMessage: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newChatResp(req.SessionID, col.Transcript(), view))
}

// Confirm godoc
// @Summary     Answer the pending confirmation
// @Description Confirms or cancels the pending operation of a session.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body confirmationReq true "Answer"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     409  {object} response.Resp "Conflict - nothing pending"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/confirmations [POST]
func (h *handler) Confirm(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processConfirmationReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc, view := h.scope(req.SessionID, req.calendarView)
	col := chat.NewCollector()
	if err := h.conv.Resolve(ctx, sc, col, *req.Confirmed); err != nil {
		if !errors.Is(err, orchestrator.ErrNoPendingConfirmation) {
			h.l.Errorf(ctx, "chat.http.Confirm: conv.Resolve: %v", err)
		}
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newChatResp(req.SessionID, col.Transcript(), view))
}

// Classify godoc
// @Summary     Classify a message without running it
// @Description Returns the recognised intent and its parsed parameters. Nothing is executed.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body classifyReq true "Message"
// @Success     200  {object} classifyResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/chat/classify [POST]
func (h *handler) Classify(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processClassifyReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc, _ := h.scope("", req.calendarView)
	intent, ok := h.router.Classify(ctx, req.Text, sc)
	if !ok {
		response.OK(c, classifyResp{Matched: false})
		return
	}

	h.l.Infof(ctx, "chat.http.Classify: text=%q intent=%s", req.Text, intent.Kind)
	response.OK(c, classifyResp{Intent: string(intent.Kind), Matched: true, Payload: intent.Payload})
}

// ResetSession godoc
// @Summary     Reset a chat session
// @Description Drops the session state, including any pending confirmation.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} resetResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/chat/sessions/{id} [DELETE]
func (h *handler) ResetSession(c *gin.Context) {
	id := c.Param("id")
	if !h.conv.Reset(id) {
		response.Error(c, errSessionNotFound, nil)
		return
	}
	h.l.Infof(c.Request.Context(), "chat.http.ResetSession: cleared session %s", id)
	response.OK(c, resetResp{SessionID: id})
}

// DownloadExport godoc
// @Summary     Download a CSV export
// @Description Returns a CSV produced by a confirmed report. Links expire.
// @Tags        Chat
// @Produce     text/csv
// @Param       id path string true "Export ID"
// @Success     200 {file} file
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/chat/exports/{id} [GET]
func (h *handler) DownloadExport(c *gin.Context) {
	export, ok := h.exports.Get(c.Param("id"))
	if !ok {
		response.Error(c, errExportNotFound, nil)
		return
	}
	response.Attachment(c, export.Filename, export.ContentType, export.Data)
}

// MonthSummary godoc
// @Summary     Hours balance of a month
// @Description Loaded, working and pending hours of the current user. Defaults to the current month.
// @Tags        Calendar
// @Produce     json
// @Param       year  query int false "Year"
// @Param       month query int false "Month (1-12)"
// @Success     200 {object} monthSummaryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/calendar/summary [GET]
func (h *handler) MonthSummary(c *gin.Context) {
	ctx := c.Request.Context()

	year, month, err := h.processMonthReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc, _ := h.scope("", calendarView{DisplayedYear: year, DisplayedMonth: int(month)})
	summary, err := h.report.MonthSummary(ctx, sc, year, month)
	if err != nil {
		h.l.Errorf(ctx, "chat.http.MonthSummary: report.MonthSummary: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newMonthSummaryResp(summary, datemath.FormatMonthYear(year, month)))
}

// MonthDays godoc
// @Summary     Calendar grid of a month
// @Description Per day: the current user's entries, their total and the holiday name if any.
// @Tags        Calendar
// @Produce     json
// @Param       year  query int false "Year"
// @Param       month query int false "Month (1-12)"
// @Success     200 {object} monthDaysResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/calendar/days [GET]
func (h *handler) MonthDays(c *gin.Context) {
	ctx := c.Request.Context()

	year, month, err := h.processMonthReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc, _ := h.scope("", calendarView{DisplayedYear: year, DisplayedMonth: int(month)})
	days, err := h.report.MonthDays(ctx, sc, year, month)
	if err != nil {
		h.l.Errorf(ctx, "chat.http.MonthDays: report.MonthDays: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newMonthDaysResp(year, month, days))
}
