package v1

import (
	"github.com/gin-gonic/gin"

	"lumina-server/concierge-api/internal/interfaces/httpserver/handlers"
)

func registerVoiceRoutes(router gin.IRoutes, handler *handlers.VoiceHandler) {
	router.GET("/voice", handler.Stream)
}
