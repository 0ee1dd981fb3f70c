package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"lumina-server/concierge-api/internal/domain/voice"
)

const (
	voiceReadLimit    = 512 * 1024
	voiceWriteTimeout = 10 * time.Second
)

// controlMessage is the JSON control channel riding alongside the binary
// audio frames.
type controlMessage struct {
	Type  string `json:"type"`
	Muted bool   `json:"muted"`
}

// voiceBridge adapts one browser WebSocket connection to the voice
// manager's AudioSource and AudioSink capabilities. Binary messages carry
// PCM frames; text messages carry mute/stop controls.
type voiceBridge struct {
	conn    *websocket.Conn
	manager *voice.Manager
	writeMu sync.Mutex
	log     zerolog.Logger
}

func newVoiceBridge(conn *websocket.Conn, manager *voice.Manager, log zerolog.Logger) *voiceBridge {
	return &voiceBridge{
		conn:    conn,
		manager: manager,
		log:     log.With().Str("component", "voice-bridge").Logger(),
	}
}

func (b *voiceBridge) run() {
	defer b.conn.Close()

	source := newBridgeSource()
	sink := newBridgeSink(b)

	if err := b.manager.Start(context.Background(), source, sink); err != nil {
		reason := "voice session unavailable"
		if errors.Is(err, voice.ErrSessionActive) {
			reason = "another voice session is active"
		}
		b.writeClose(websocket.CloseTryAgainLater, reason)
		return
	}

	// When the manager tears the session down from its side (remote close,
	// transport error), unblock the read loop by closing the socket.
	go func() {
		<-sink.closed
		b.writeClose(websocket.CloseNormalClosure, "session ended")
		b.conn.Close()
	}()

	b.readLoop(source)
}

func (b *voiceBridge) readLoop(source *bridgeSource) {
	b.conn.SetReadLimit(voiceReadLimit)
	for {
		msgType, payload, err := b.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				b.log.Debug().Err(err).Msg("client connection dropped")
			}
			b.manager.Stop()
			return
		}

		switch msgType {
		case websocket.BinaryMessage:
			source.push(payload)
		case websocket.TextMessage:
			var msg controlMessage
			if err := json.Unmarshal(payload, &msg); err != nil {
				continue
			}
			switch msg.Type {
			case "mute":
				b.manager.SetMuted(msg.Muted)
			case "stop":
				b.manager.Stop()
				return
			}
		}
	}
}

func (b *voiceBridge) writeClose(code int, reason string) {
	b.writeMu.Lock()
	defer b.writeMu.Unlock()
	b.conn.SetWriteDeadline(time.Now().Add(voiceWriteTimeout))
	b.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason))
}

// bridgeSource feeds mic frames read off the WebSocket to the manager.
type bridgeSource struct {
	frames    chan []byte
	closeOnce sync.Once
	closed    chan struct{}
}

func newBridgeSource() *bridgeSource {
	return &bridgeSource{
		frames: make(chan []byte, 32),
		closed: make(chan struct{}),
	}
}

// push hands a frame to the manager, dropping it when the pump is behind.
// Mic audio is latency sensitive; a stale frame is worse than a lost one.
func (s *bridgeSource) push(frame []byte) {
	select {
	case s.frames <- frame:
	case <-s.closed:
	default:
	}
}

func (s *bridgeSource) ReadFrame(ctx context.Context) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-s.closed:
		return nil, io.EOF
	case frame := <-s.frames:
		return frame, nil
	}
}

func (s *bridgeSource) Close() error {
	s.closeOnce.Do(func() { close(s.closed) })
	return nil
}

type scheduledFrame struct {
	frame   []byte
	startAt time.Time
}

// bridgeSink delivers scheduled playback frames back over the WebSocket,
// pacing writes so the client can play each frame as it arrives.
type bridgeSink struct {
	bridge    *voiceBridge
	queue     chan scheduledFrame
	closeOnce sync.Once
	closed    chan struct{}
}

func newBridgeSink(bridge *voiceBridge) *bridgeSink {
	s := &bridgeSink{
		bridge: bridge,
		queue:  make(chan scheduledFrame, 64),
		closed: make(chan struct{}),
	}
	go s.writeLoop()
	return s
}

func (s *bridgeSink) Play(frame []byte, startAt time.Time) error {
	select {
	case s.queue <- scheduledFrame{frame: frame, startAt: startAt}:
		return nil
	case <-s.closed:
		return errors.New("sink closed")
	}
}

func (s *bridgeSink) Close() error {
	s.closeOnce.Do(func() { close(s.closed) })
	return nil
}

func (s *bridgeSink) writeLoop() {
	for {
		select {
		case <-s.closed:
			return
		case item := <-s.queue:
			if wait := time.Until(item.startAt); wait > 0 {
				select {
				case <-time.After(wait):
				case <-s.closed:
					return
				}
			}
			s.bridge.writeMu.Lock()
			s.bridge.conn.SetWriteDeadline(time.Now().Add(voiceWriteTimeout))
			err := s.bridge.conn.WriteMessage(websocket.BinaryMessage, item.frame)
			s.bridge.writeMu.Unlock()
			if err != nil {
				s.bridge.log.Debug().Err(err).Msg("playback write failed")
				return
			}
		}
	}
}
