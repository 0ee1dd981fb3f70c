package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"lumina-server/concierge-api/internal/domain/chat"
	"lumina-server/concierge-api/internal/interfaces/httpserver/requests"
	"lumina-server/concierge-api/internal/interfaces/httpserver/responses"
)

// ChatHandler exposes the concierge chat endpoints.
type ChatHandler struct {
	registry     *chat.Registry
	orchestrator *chat.Orchestrator
	systemPrompt string
	log          zerolog.Logger
}

// NewChatHandler constructs the handler.
func NewChatHandler(registry *chat.Registry, orchestrator *chat.Orchestrator, systemPrompt string, log zerolog.Logger) *ChatHandler {
	return &ChatHandler{
		registry:     registry,
		orchestrator: orchestrator,
		systemPrompt: systemPrompt,
		log:          log.With().Str("handler", "chat").Logger(),
	}
}

// Submit handles POST /v1/chat. An unknown or empty session id starts a
// fresh session seeded with the greeting turn.
func (h *ChatHandler) Submit(c *gin.Context) {
	var req requests.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.WriteBadRequest(c, "message is required")
		return
	}

	session, ok := h.registry.Find(req.SessionID)
	if !ok {
		session = h.registry.Create(h.systemPrompt)
		h.log.Debug().Str("session_id", session.ID).Msg("chat session created")
	}

	turn := h.orchestrator.SubmitUserMessage(c.Request.Context(), session, req.Message)

	c.JSON(http.StatusOK, responses.ChatTurnResponse{
		SessionID: session.ID,
		Turn:      responses.MapTurnToResponse(turn),
	})
}

// History handles GET /v1/chat/history.
func (h *ChatHandler) History(c *gin.Context) {
	sessionID := c.Query("session_id")
	session, ok := h.registry.Find(sessionID)
	if !ok {
		responses.WriteNotFound(c, "unknown session")
		return
	}
	c.JSON(http.StatusOK, responses.MapHistoryToResponse(session.ID, session.Turns()))
}

// Dispose handles DELETE /v1/chat/:session_id.
func (h *ChatHandler) Dispose(c *gin.Context) {
	sessionID := c.Param("session_id")
	if _, ok := h.registry.Find(sessionID); !ok {
		responses.WriteNotFound(c, "unknown session")
		return
	}
	h.registry.Dispose(sessionID)
	c.Status(http.StatusNoContent)
}
