package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bible-companion-api/internal/models"
	"github.com/bible-companion-api/internal/services"
	pkgservices "github.com/bible-companion-api/pkg/schema/services"
)

// SearchHandler handles semantic search endpoints
type SearchHandler struct {
	search *services.SearchService
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(search *services.SearchService) *SearchHandler {
	return &SearchHandler{search: search}
}

// SemanticSearch handles POST /search - semantic verse search
func (h *SearchHandler) SemanticSearch(c echo.Context) error {
	ctx := c.Request().Context()

	var req models.SemanticSearchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.Query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Query is required")
	}

	threshold := -1.0
	if req.Threshold != nil {
		if *req.Threshold < 0 || *req.Threshold > 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "Threshold must be in [0,1]")
		}
		threshold = *req.Threshold
	}

	limit := req.Limit
	if limit < 0 || limit > 50 {
		limit = 0
	}

	verses, err := h.search.SearchVerses(ctx, req.Query, threshold, limit)
	if err != nil {
		switch {
		case errors.Is(err, pkgservices.ErrEmbeddingUnavailable):
			return echo.NewHTTPError(http.StatusServiceUnavailable, "Embedding service unavailable")
		case errors.Is(err, pkgservices.ErrEmbeddingMalformed):
			return echo.NewHTTPError(http.StatusBadGateway, "Embedding service returned a malformed vector")
		case errors.Is(err, models.ErrBackendUnavailable):
			return echo.NewHTTPError(http.StatusBadGateway, "Search backend unavailable")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Search failed")
	}

	return c.JSON(http.StatusOK, models.SemanticSearchResponse{
		Query:  req.Query,
		Verses: verses,
	})
}

// RegisterRoutes registers search routes
func (h *SearchHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/search", h.SemanticSearch)
}
