package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/bible-companion-api/internal/agent"
	"github.com/bible-companion-api/internal/models"
)

// ChatHandler handles the conversational agent endpoint
type ChatHandler struct {
	runner *agent.Runner
	logger *zap.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(runner *agent.Runner, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{runner: runner, logger: logger}
}

// Chat handles POST /chat. A missing session id starts a new conversation.
func (h *ChatHandler) Chat(c echo.Context) error {
	var req models.ChatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.Message == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Message is required")
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	response, err := h.runner.Run(c.Request().Context(), sessionID, req.Message)
	if err != nil {
		h.logger.Error("chat turn failed",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return echo.NewHTTPError(http.StatusBadGateway, "The companion is unavailable right now")
	}

	return c.JSON(http.StatusOK, models.ChatResponse{
		Response:  response,
		SessionID: sessionID,
	})
}

// RegisterRoutes registers chat routes
func (h *ChatHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/chat", h.Chat)
}
