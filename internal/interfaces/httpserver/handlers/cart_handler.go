package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"lumina-server/concierge-api/internal/domain/cart"
	"lumina-server/concierge-api/internal/domain/menu"
	"lumina-server/concierge-api/internal/interfaces/httpserver/requests"
	"lumina-server/concierge-api/internal/interfaces/httpserver/responses"
)

// CartHandler exposes the cart endpoints. It mutates the same store the
// assistant's tool calls do, so both views stay consistent.
type CartHandler struct {
	catalog *menu.Catalog
	cart    *cart.Store
	log     zerolog.Logger
}

// NewCartHandler constructs the handler.
func NewCartHandler(catalog *menu.Catalog, cartStore *cart.Store, log zerolog.Logger) *CartHandler {
	return &CartHandler{
		catalog: catalog,
		cart:    cartStore,
		log:     log.With().Str("handler", "cart").Logger(),
	}
}

// Get handles GET /v1/cart.
func (h *CartHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.snapshot())
}

// AddItem handles POST /v1/cart/items.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req requests.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.WriteBadRequest(c, "item_id is required")
		return
	}

	item, ok := h.catalog.FindByID(req.ItemID)
	if !ok {
		responses.WriteNotFound(c, "unknown menu item")
		return
	}

	h.cart.Add(item, req.Quantity)
	c.JSON(http.StatusOK, h.snapshot())
}

// UpdateLine handles PATCH /v1/cart/items/:instance_id.
func (h *CartHandler) UpdateLine(c *gin.Context) {
	var req requests.UpdateCartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.WriteBadRequest(c, "delta is required")
		return
	}

	instanceID := c.Param("instance_id")
	if _, ok := h.cart.UpdateQuantity(instanceID, req.Delta); !ok {
		responses.WriteNotFound(c, "unknown cart line")
		return
	}
	c.JSON(http.StatusOK, h.snapshot())
}

// RemoveLine handles DELETE /v1/cart/items/:instance_id.
func (h *CartHandler) RemoveLine(c *gin.Context) {
	instanceID := c.Param("instance_id")
	if !h.cart.RemoveByInstanceID(instanceID) {
		responses.WriteNotFound(c, "unknown cart line")
		return
	}
	c.JSON(http.StatusOK, h.snapshot())
}

// Clear handles DELETE /v1/cart.
func (h *CartHandler) Clear(c *gin.Context) {
	h.cart.Clear()
	c.JSON(http.StatusOK, h.snapshot())
}

func (h *CartHandler) snapshot() responses.CartResponse {
	return responses.MapCartToResponse(h.cart.Snapshot(), h.cart.TotalItems(), h.cart.TotalPrice())
}
