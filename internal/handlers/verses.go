package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bible-companion-api/internal/models"
	"github.com/bible-companion-api/internal/services"
)

// VerseHandler handles reference, range, context, and cross-reference endpoints
type VerseHandler struct {
	references *services.ReferenceService
	crossRefs  *services.CrossRefService
}

// NewVerseHandler creates a new verse handler
func NewVerseHandler(references *services.ReferenceService, crossRefs *services.CrossRefService) *VerseHandler {
	return &VerseHandler{references: references, crossRefs: crossRefs}
}

// GetVerse handles GET /verses?reference=John+3:16
func (h *VerseHandler) GetVerse(c echo.Context) error {
	reference := c.QueryParam("reference")
	if reference == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "reference is required")
	}

	verse, err := h.references.Get(c.Request().Context(), reference)
	if err != nil {
		return verseError(err)
	}
	return c.JSON(http.StatusOK, verse)
}

// GetRange handles GET /verses/range?book=Philippians&chapter=4&start=6&end=7
func (h *VerseHandler) GetRange(c echo.Context) error {
	book := c.QueryParam("book")
	chapter, err1 := strconv.Atoi(c.QueryParam("chapter"))
	start, err2 := strconv.Atoi(c.QueryParam("start"))
	end, err3 := strconv.Atoi(c.QueryParam("end"))
	if book == "" || err1 != nil || err2 != nil || err3 != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "book, chapter, start, and end are required")
	}

	verses, err := h.references.GetRange(c.Request().Context(), book, chapter, start, end)
	if err != nil {
		return verseError(err)
	}
	return c.JSON(http.StatusOK, models.VerseRangeResponse{Verses: verses})
}

// GetChapter handles GET /verses/chapter?book=Psalms&chapter=23
func (h *VerseHandler) GetChapter(c echo.Context) error {
	book := c.QueryParam("book")
	chapter, err := strconv.Atoi(c.QueryParam("chapter"))
	if book == "" || err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "book and chapter are required")
	}

	verses, svcErr := h.references.GetChapter(c.Request().Context(), book, chapter)
	if svcErr != nil {
		return verseError(svcErr)
	}
	return c.JSON(http.StatusOK, models.VerseRangeResponse{Verses: verses})
}

// GetContext handles GET /verses/context?reference=Philippians+4:6&before=2&after=2
func (h *VerseHandler) GetContext(c echo.Context) error {
	reference := c.QueryParam("reference")
	if reference == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "reference is required")
	}
	before := intQueryParam(c, "before", 2)
	after := intQueryParam(c, "after", 2)

	verses, err := h.references.GetContext(c.Request().Context(), reference, before, after)
	if err != nil {
		return verseError(err)
	}
	return c.JSON(http.StatusOK, models.VerseRangeResponse{Verses: verses})
}

// GetCrossReferences handles GET /cross-references?reference=John+3:16&limit=10
func (h *VerseHandler) GetCrossReferences(c echo.Context) error {
	reference := c.QueryParam("reference")
	if reference == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "reference is required")
	}
	limit := intQueryParam(c, "limit", 0)

	refs, err := h.crossRefs.Related(c.Request().Context(), reference, limit)
	if err != nil {
		return verseError(err)
	}
	return c.JSON(http.StatusOK, models.CrossReferenceResponse{
		Reference:  reference,
		References: refs,
	})
}

// RegisterRoutes registers verse lookup routes
func (h *VerseHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/verses", h.GetVerse)
	g.GET("/verses/range", h.GetRange)
	g.GET("/verses/chapter", h.GetChapter)
	g.GET("/verses/context", h.GetContext)
	g.GET("/cross-references", h.GetCrossReferences)
}

// verseError maps domain errors to HTTP responses
func verseError(err error) error {
	switch {
	case errors.Is(err, models.ErrInvalidReference), errors.Is(err, models.ErrInvalidRange):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrReferenceNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Verse not found")
	case errors.Is(err, models.ErrBackendUnavailable):
		return echo.NewHTTPError(http.StatusBadGateway, "Backend unavailable")
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "Lookup failed")
}

func intQueryParam(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
