package v1

import (
	"github.com/gin-gonic/gin"

	"lumina-server/concierge-api/internal/interfaces/httpserver/handlers"
)

func registerChatRoutes(router gin.IRoutes, handler *handlers.ChatHandler) {
	router.POST("/chat", handler.Submit)
	router.GET("/chat/history", handler.History)
	router.DELETE("/chat/:session_id", handler.Dispose)
}
