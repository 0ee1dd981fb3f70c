package realtime

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"lumina-server/concierge-api/internal/domain/llm"
	"lumina-server/concierge-api/internal/domain/voice"
)

// Dialer opens realtime sessions with an OpenAI-style realtime endpoint
// over WebSocket. It implements voice.Dialer.
type Dialer struct {
	url          string
	apiKey       string
	model        string
	voiceName    string
	instructions string
	log          zerolog.Logger
}

func NewDialer(url, apiKey, model, voiceName, instructions string, log zerolog.Logger) *Dialer {
	return &Dialer{
		url:          url,
		apiKey:       apiKey,
		model:        model,
		voiceName:    voiceName,
		instructions: instructions,
		log:          log.With().Str("component", "realtime-client").Logger(),
	}
}

func (d *Dialer) Dial(ctx context.Context, tools []llm.ToolDefinition) (voice.Transport, error) {
	header := http.Header{}
	header.Set("Authorization", "Bearer "+d.apiKey)
	header.Set("OpenAI-Beta", "realtime=v1")

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, d.url+"?model="+d.model, header)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("realtime dial: %w (status %s)", err, resp.Status)
		}
		return nil, fmt.Errorf("realtime dial: %w", err)
	}

	sess := &session{
		conn:   conn,
		events: make(chan voice.Event, 64),
		done:   make(chan struct{}),
		log:    d.log,
	}

	if err := sess.configure(d.instructions, d.voiceName, tools); err != nil {
		conn.Close()
		return nil, fmt.Errorf("realtime session update: %w", err)
	}

	go sess.readLoop()
	return sess, nil
}

// session is one open realtime connection. Writes are serialized; the
// underlying connection allows a single concurrent writer.
type session struct {
	conn      *websocket.Conn
	events    chan voice.Event
	done      chan struct{}
	writeMu   sync.Mutex
	closeOnce sync.Once
	log       zerolog.Logger
}

// realtimeTool is the flattened function declaration shape the realtime
// session expects, unlike the nested chat completions shape.
type realtimeTool struct {
	Type        string                 `json:"type"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters"`
}

func (s *session) configure(instructions, voiceName string, tools []llm.ToolDefinition) error {
	declared := make([]realtimeTool, 0, len(tools))
	for _, def := range tools {
		declared = append(declared, realtimeTool{
			Type:        "function",
			Name:        def.Function.Name,
			Description: def.Function.Description,
			Parameters:  def.Function.Parameters,
		})
	}
	return s.writeJSON(map[string]interface{}{
		"type": "session.update",
		"session": map[string]interface{}{
			"modalities":          []string{"audio", "text"},
			"voice":               voiceName,
			"instructions":        instructions,
			"input_audio_format":  "pcm16",
			"output_audio_format": "pcm16",
			"tools":               declared,
			"tool_choice":         "auto",
		},
	})
}

func (s *session) SendAudio(_ context.Context, frame []byte) error {
	return s.writeJSON(map[string]interface{}{
		"type":  "input_audio_buffer.append",
		"audio": base64.StdEncoding.EncodeToString(frame),
	})
}

// SendToolResult posts the function output and asks the model to continue
// the spoken response.
func (s *session) SendToolResult(_ context.Context, callID, output string) error {
	if err := s.writeJSON(map[string]interface{}{
		"type": "conversation.item.create",
		"item": map[string]interface{}{
			"type":    "function_call_output",
			"call_id": callID,
			"output":  output,
		},
	}); err != nil {
		return err
	}
	return s.writeJSON(map[string]interface{}{"type": "response.create"})
}

func (s *session) Events() <-chan voice.Event { return s.events }

func (s *session) Close() error {
	s.closeOnce.Do(func() {
		close(s.done)
		s.writeMu.Lock()
		s.conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		s.writeMu.Unlock()
		s.conn.Close()
	})
	return nil
}

func (s *session) writeJSON(v interface{}) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.conn.WriteJSON(v)
}

// serverEvent covers the subset of realtime server events the bridge cares
// about; everything else is ignored.
type serverEvent struct {
	Type      string `json:"type"`
	Delta     string `json:"delta,omitempty"`
	CallID    string `json:"call_id,omitempty"`
	Name      string `json:"name,omitempty"`
	Arguments string `json:"arguments,omitempty"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (s *session) readLoop() {
	defer close(s.events)
	for {
		_, payload, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Debug().Err(err).Msg("realtime connection dropped")
			}
			return
		}

		var ev serverEvent
		if err := json.Unmarshal(payload, &ev); err != nil {
			s.log.Debug().Err(err).Msg("unparseable realtime event")
			continue
		}

		switch ev.Type {
		case "response.audio.delta":
			frame, err := base64.StdEncoding.DecodeString(ev.Delta)
			if err != nil || len(frame) == 0 {
				continue
			}
			if !s.emit(voice.Event{Type: voice.EventAudio, Audio: frame}) {
				return
			}
		case "response.function_call_arguments.done":
			if !s.emit(voice.Event{
				Type:       voice.EventToolCall,
				ToolCallID: ev.CallID,
				ToolName:   ev.Name,
				ToolArgs:   json.RawMessage(ev.Arguments),
			}) {
				return
			}
		case "error":
			msg := "realtime error"
			if ev.Error != nil {
				msg = ev.Error.Message
			}
			s.emit(voice.Event{Type: voice.EventError, Err: fmt.Errorf("%s", msg)})
			return
		}
	}
}

// emit delivers an event unless the session is closed and nobody is
// draining the channel anymore.
func (s *session) emit(ev voice.Event) bool {
	select {
	case s.events <- ev:
		return true
	case <-s.done:
		return false
	}
}

// Ensure interface compliance.
var (
	_ voice.Dialer    = (*Dialer)(nil)
	_ voice.Transport = (*session)(nil)
)
