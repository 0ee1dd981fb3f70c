package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"lumina-server/concierge-api/internal/domain/voice"
	"lumina-server/concierge-api/internal/interfaces/httpserver/responses"
)

var voiceUpgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// VoiceHandler upgrades /v1/voice to a WebSocket and bridges the client's
// audio to the realtime provider through the voice manager.
type VoiceHandler struct {
	manager *voice.Manager
	enabled bool
	log     zerolog.Logger
}

// NewVoiceHandler constructs the handler.
func NewVoiceHandler(manager *voice.Manager, enabled bool, log zerolog.Logger) *VoiceHandler {
	return &VoiceHandler{
		manager: manager,
		enabled: enabled,
		log:     log.With().Str("handler", "voice").Logger(),
	}
}

// Stream handles GET /v1/voice.
func (h *VoiceHandler) Stream(c *gin.Context) {
	if !h.enabled {
		responses.WriteUnavailable(c, "voice mode is not configured")
		return
	}

	conn, err := voiceUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	bridge := newVoiceBridge(conn, h.manager, h.log)
	bridge.run()
}
