package v1

import (
	"github.com/gin-gonic/gin"

	"lumina-server/concierge-api/internal/interfaces/httpserver/handlers"
)

func registerImageRoutes(router gin.IRoutes, handler *handlers.ImageHandler) {
	router.GET("/images/:dish_name", handler.Resolve)
	router.POST("/images/warmup", handler.Warmup)
}
