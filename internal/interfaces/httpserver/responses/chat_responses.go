package responses

import (
	"time"

	"lumina-server/concierge-api/internal/domain/chat"
)

// TurnResponse is one rendered conversation turn.
type TurnResponse struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Action    string    `json:"action,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatTurnResponse is the reply to a submitted user message.
type ChatTurnResponse struct {
	SessionID string       `json:"session_id"`
	Turn      TurnResponse `json:"turn"`
}

// ChatHistoryResponse is the ordered transcript for a session.
type ChatHistoryResponse struct {
	SessionID string         `json:"session_id"`
	Turns     []TurnResponse `json:"turns"`
}

// MapTurnToResponse renders one conversation turn.
func MapTurnToResponse(turn chat.Turn) TurnResponse {
	return TurnResponse{
		ID:        turn.ID,
		Role:      turn.Role,
		Text:      turn.Text,
		Action:    string(turn.Action),
		Timestamp: turn.Timestamp,
	}
}

// MapHistoryToResponse renders a full transcript.
func MapHistoryToResponse(sessionID string, turns []chat.Turn) ChatHistoryResponse {
	out := ChatHistoryResponse{
		SessionID: sessionID,
		Turns:     make([]TurnResponse, 0, len(turns)),
	}
	for _, turn := range turns {
		out.Turns = append(out.Turns, MapTurnToResponse(turn))
	}
	return out
}
