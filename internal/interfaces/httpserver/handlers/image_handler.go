package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"lumina-server/concierge-api/internal/domain/image"
	"lumina-server/concierge-api/internal/domain/menu"
	"lumina-server/concierge-api/internal/interfaces/httpserver/responses"
	"lumina-server/concierge-api/internal/worker"
)

// ImageHandler serves dish image resolution and warmup.
type ImageHandler struct {
	images  *image.Service
	catalog *menu.Catalog
	pool    *worker.Pool
	log     zerolog.Logger
}

// NewImageHandler constructs the handler.
func NewImageHandler(images *image.Service, catalog *menu.Catalog, pool *worker.Pool, log zerolog.Logger) *ImageHandler {
	return &ImageHandler{
		images:  images,
		catalog: catalog,
		pool:    pool,
		log:     log.With().Str("handler", "image").Logger(),
	}
}

// Resolve handles GET /v1/images/:dish_name. The description used in the
// generation prompt comes from the catalog when the dish is on the menu,
// or from the ?description= query otherwise.
func (h *ImageHandler) Resolve(c *gin.Context) {
	dishName := c.Param("dish_name")
	if dishName == "" {
		responses.WriteBadRequest(c, "dish name is required")
		return
	}

	description := c.Query("description")
	for _, item := range h.catalog.List() {
		if item.Name == dishName {
			description = item.Description
			break
		}
	}

	url, source := h.images.Resolve(c.Request.Context(), dishName, description)
	if url == "" {
		responses.WriteNotFound(c, "no image available for this dish")
		return
	}

	c.JSON(http.StatusOK, responses.ImageResponse{
		DishName: dishName,
		URL:      url,
		Source:   string(source),
	})
}

// Warmup handles POST /v1/images/warmup.
func (h *ImageHandler) Warmup(c *gin.Context) {
	enqueued := h.pool.EnqueueCatalog(h.catalog)
	h.log.Info().Int("enqueued", enqueued).Msg("image warmup requested")
	c.JSON(http.StatusAccepted, responses.WarmupResponse{Enqueued: enqueued})
}
