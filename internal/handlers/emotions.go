package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bible-companion-api/internal/models"
	"github.com/bible-companion-api/internal/services"
)

// EmotionHandler handles emotion-tag search and synonym introspection
type EmotionHandler struct {
	emotions *services.EmotionService
}

// NewEmotionHandler creates a new emotion handler
func NewEmotionHandler(emotions *services.EmotionService) *EmotionHandler {
	return &EmotionHandler{emotions: emotions}
}

// Search handles POST /emotions/search
func (h *EmotionHandler) Search(c echo.Context) error {
	var req models.EmotionSearchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.Emotion == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Emotion is required")
	}

	expand := true
	if req.Expand != nil {
		expand = *req.Expand
	}
	limit := req.Limit
	if limit < 0 || limit > 50 {
		limit = 0
	}

	results, searched, err := h.emotions.SearchByEmotion(c.Request().Context(), req.Emotion, limit, expand)
	if err != nil {
		if errors.Is(err, models.ErrBackendUnavailable) {
			return echo.NewHTTPError(http.StatusBadGateway, "Backend unavailable")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Emotion search failed")
	}

	return c.JSON(http.StatusOK, models.EmotionSearchResponse{
		Emotion:  req.Emotion,
		Searched: searched,
		Results:  results,
	})
}

// List handles GET /emotions - the searchable emotion terms
func (h *EmotionHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"emotions": h.emotions.AvailableEmotions(),
	})
}

// Synonyms handles GET /emotions/synonyms?term=depression
func (h *EmotionHandler) Synonyms(c echo.Context) error {
	term := c.QueryParam("term")
	if term == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "term is required")
	}
	return c.JSON(http.StatusOK, map[string]any{
		"term":     term,
		"synonyms": h.emotions.SynonymsOf(term),
	})
}

// RegisterRoutes registers emotion routes
func (h *EmotionHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/emotions/search", h.Search)
	g.GET("/emotions", h.List)
	g.GET("/emotions/synonyms", h.Synonyms)
}
