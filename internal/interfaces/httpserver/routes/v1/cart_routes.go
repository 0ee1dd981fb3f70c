package v1

import (
	"github.com/gin-gonic/gin"

	"lumina-server/concierge-api/internal/interfaces/httpserver/handlers"
)

func registerCartRoutes(router gin.IRoutes, handler *handlers.CartHandler) {
	router.GET("/cart", handler.Get)
	router.POST("/cart/items", handler.AddItem)
	router.PATCH("/cart/items/:instance_id", handler.UpdateLine)
	router.DELETE("/cart/items/:instance_id", handler.RemoveLine)
	router.DELETE("/cart", handler.Clear)
}
