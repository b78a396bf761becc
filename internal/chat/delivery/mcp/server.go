package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"timesheet-assistant/internal/chat"
	"timesheet-assistant/internal/model"
	"timesheet-assistant/internal/orchestrator"
	"timesheet-assistant/internal/report"
	"timesheet-assistant/pkg/datemath"
	"timesheet-assistant/pkg/log"
)

const (
	serverName    = "Asistente de horas"
	serverVersion = "1.0.0"

	defaultSessionID = "mcp"
)

// Config identifies the developer the MCP surface acts for.
type Config struct {
	UserID   int
	UserName string
}

type deps struct {
	l      log.Logger
	conv   chat.Conversation
	report report.UseCase
	parser *datemath.Parser
	cfg    Config
}

// NewServer creates the MCP server exposing the chat as tools.
func NewServer(l log.Logger, conv chat.Conversation, rp report.UseCase, parser *datemath.Parser, cfg Config) *server.MCPServer {
	d := deps{l: l, conv: conv, report: rp, parser: parser, cfg: cfg}
	s := server.NewMCPServer(serverName, serverVersion)

	s.AddTool(mcp.NewTool("enviar_mensaje",
		mcp.WithDescription("Envía un pedido en lenguaje natural (cargar, editar, eliminar o consultar horas). Si la respuesta pide confirmación, usá responder_confirmacion."),
		mcp.WithString("texto", mcp.Description("Mensaje del usuario"), mcp.Required()),
		mcp.WithString("session_id", mcp.Description("Sesión de la conversación (por defecto 'mcp').")),
	), d.sendMessageHandler())

	s.AddTool(mcp.NewTool("responder_confirmacion",
		mcp.WithDescription("Confirma o cancela la operación pendiente de la sesión."),
		mcp.WithBoolean("confirmar", mcp.Description("true para Sí, false para No"), mcp.Required()),
		mcp.WithString("session_id", mcp.Description("Sesión de la conversación (por defecto 'mcp').")),
	), d.confirmHandler())

	s.AddTool(mcp.NewTool("resumen_mes",
		mcp.WithDescription("Horas cargadas, laborables y pendientes del mes. Por defecto, el mes actual."),
		mcp.WithNumber("anio", mcp.Description("Año")),
		mcp.WithNumber("mes", mcp.Description("Mes (1-12)")),
	), d.monthSummaryHandler())

	return s
}

// Serve starts the MCP server on stdio.
func Serve(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

func (d deps) sendMessageHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text := mcp.ParseString(request, "texto", "")
		sessionID := mcp.ParseString(request, "session_id", defaultSessionID)
		if text == "" {
			return mcp.NewToolResultError("texto es obligatorio"), nil
		}

		col := chat.NewCollector()
		if err := d.conv.HandleMessage(ctx, d.scope(sessionID), col, text); err != nil {
			d.l.Errorf(ctx, "chat.mcp.enviar_mensaje: %v", err)
			return mcp.NewToolResultError(err.Error()), nil
		}
		return transcriptResult(col.Transcript()), nil
	}
}

func (d deps) confirmHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		confirmed := mcp.ParseBoolean(request, "confirmar", false)
		sessionID := mcp.ParseString(request, "session_id", defaultSessionID)

		col := chat.NewCollector()
		err := d.conv.Resolve(ctx, d.scope(sessionID), col, confirmed)
		if errors.Is(err, orchestrator.ErrNoPendingConfirmation) {
			return mcp.NewToolResultError("No hay ninguna operación pendiente de confirmar."), nil
		}
		if err != nil {
			d.l.Errorf(ctx, "chat.mcp.responder_confirmacion: %v", err)
			return mcp.NewToolResultError(err.Error()), nil
		}
		return transcriptResult(col.Transcript()), nil
	}
}

func (d deps) monthSummaryHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		year, month := d.month(mcp.ParseInt(request, "anio", 0), mcp.ParseInt(request, "mes", 0))

		s, err := d.report.MonthSummary(ctx, d.scope(defaultSessionID), year, month)
		if errors.Is(err, report.ErrInvalidMonth) {
			return mcp.NewToolResultError("El mes debe estar entre 1 y 12."), nil
		}
		if err != nil {
			d.l.Errorf(ctx, "chat.mcp.resumen_mes: %v", err)
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf(
			"%s: %sh cargadas de %sh laborables (%d días). Pendientes: %sh.",
			datemath.FormatMonthYear(year, month),
			model.FormatHours(s.LoadedHours),
			model.FormatHours(s.WorkingHours),
			s.WorkingDays,
			model.FormatHours(s.PendingHours),
		)), nil
	}
}

func (d deps) month(year, month int) (int, time.Month) {
	today := d.parser.Today()
	if year == 0 {
		year = today.Year()
	}
	if month == 0 {
		return year, today.Month()
	}
	return year, time.Month(month)
}

func (d deps) scope(sessionID string) model.Scope {
	today := d.parser.Today()
	return model.Scope{
		SessionID: sessionID,
		UserID:    d.cfg.UserID,
		UserName:  d.cfg.UserName,
		View:      &model.StaticView{Year: today.Year(), Month: today.Month()},
	}
}

// transcriptResult renders the reply as text. Each export follows as its own
// text block headed by the filename.
func transcriptResult(t chat.Transcript) *mcp.CallToolResult {
	result := mcp.NewToolResultText(t.Text())
	for _, e := range t.Exports {
		result.Content = append(result.Content, mcp.NewTextContent(fmt.Sprintf("%s\n%s", e.Filename, e.Data)))
	}
	return result
}
