package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"lumina-server/concierge-api/internal/domain/menu"
	"lumina-server/concierge-api/internal/interfaces/httpserver/responses"
)

// MenuHandler serves the static catalog.
type MenuHandler struct {
	catalog *menu.Catalog
	log     zerolog.Logger
}

// NewMenuHandler constructs the handler.
func NewMenuHandler(catalog *menu.Catalog, log zerolog.Logger) *MenuHandler {
	return &MenuHandler{
		catalog: catalog,
		log:     log.With().Str("handler", "menu").Logger(),
	}
}

// List handles GET /v1/menu, optionally filtered by ?category=.
func (h *MenuHandler) List(c *gin.Context) {
	if raw := c.Query("category"); raw != "" {
		items := h.catalog.ListByCategory(menu.Category(raw))
		if len(items) == 0 {
			responses.WriteNotFound(c, "unknown category")
			return
		}
		c.JSON(http.StatusOK, responses.MapMenuToResponse(items))
		return
	}
	c.JSON(http.StatusOK, responses.MapMenuToResponse(h.catalog.List()))
}

// Fact handles GET /v1/menu/fact.
func (h *MenuHandler) Fact(c *gin.Context) {
	c.JSON(http.StatusOK, responses.FactResponse{Fact: h.catalog.RandomFact()})
}
