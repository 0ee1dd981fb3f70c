package v1

import (
	"github.com/gin-gonic/gin"

	"lumina-server/concierge-api/internal/interfaces/httpserver/handlers"
)

func registerMenuRoutes(router gin.IRoutes, handler *handlers.MenuHandler) {
	router.GET("/menu", handler.List)
	router.GET("/menu/fact", handler.Fact)
}
