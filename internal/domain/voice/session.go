package voice

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"lumina-server/concierge-api/internal/domain/llm"
	"lumina-server/concierge-api/internal/domain/tool"
	"lumina-server/concierge-api/internal/infrastructure/metrics"
)

// State of the voice session manager. Connect failure and stream drop both
// resolve to Idle; there is no distinct error state.
type State int32

const (
	StateIdle State = iota
	StateConnecting
	StateActive
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateActive:
		return "active"
	default:
		return "idle"
	}
}

var ErrSessionActive = errors.New("voice session already active")

// AudioSource yields upstream mic frames (PCM16, 16kHz mono). ReadFrame
// blocks until a frame is available and returns an error once the source
// is exhausted or closed.
type AudioSource interface {
	ReadFrame(ctx context.Context) ([]byte, error)
	Close() error
}

// AudioSink plays downstream frames (PCM16, 24kHz mono) at scheduled
// start times.
type AudioSink interface {
	Play(frame []byte, startAt time.Time) error
	Close() error
}

// EventType discriminates messages arriving from the realtime provider.
type EventType int

const (
	EventAudio EventType = iota
	EventToolCall
	EventError
	EventClosed
)

// Event is one inbound message from the realtime transport.
type Event struct {
	Type       EventType
	Audio      []byte
	ToolCallID string
	ToolName   string
	ToolArgs   json.RawMessage
	Err        error
}

// Transport is an open realtime session with the voice provider. Events
// must be closed by the implementation when the remote side goes away.
type Transport interface {
	SendAudio(ctx context.Context, frame []byte) error
	SendToolResult(ctx context.Context, callID, output string) error
	Events() <-chan Event
	Close() error
}

// Dialer opens realtime sessions. The tool declarations passed to Dial are
// the same set the text path declares.
type Dialer interface {
	Dial(ctx context.Context, tools []llm.ToolDefinition) (Transport, error)
}

// Manager drives one voice session at a time through the
// Idle/Connecting/Active lifecycle, pumping audio both directions and
// routing tool calls through the shared executor.
type Manager struct {
	dialer    Dialer
	executor  *tool.Executor
	scheduler *PlaybackScheduler
	log       zerolog.Logger

	mu        sync.Mutex
	state     State
	gen       uint64
	muted     bool
	transport Transport
	source    AudioSource
	sink      AudioSink
	cancel    context.CancelFunc
}

func NewManager(dialer Dialer, executor *tool.Executor, scheduler *PlaybackScheduler, log zerolog.Logger) *Manager {
	if scheduler == nil {
		scheduler = NewPlaybackScheduler(nil)
	}
	return &Manager{
		dialer:    dialer,
		executor:  executor,
		scheduler: scheduler,
		log:       log.With().Str("component", "voice-manager").Logger(),
	}
}

func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// SetMuted withholds upstream audio without dropping the connection. The
// source keeps being drained so capture buffers do not back up.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
}

func (m *Manager) isMuted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

// Start connects to the realtime provider and begins pumping audio. It
// returns once the session is active; the pumps run until the remote side
// closes, an error occurs, or Stop is called. A connect failure releases
// the source and sink and leaves the manager Idle.
func (m *Manager) Start(ctx context.Context, source AudioSource, sink AudioSink) error {
	m.mu.Lock()
	if m.state != StateIdle {
		m.mu.Unlock()
		return ErrSessionActive
	}
	m.state = StateConnecting
	m.mu.Unlock()

	transport, err := m.dialer.Dial(ctx, tool.Definitions())
	if err != nil {
		source.Close()
		sink.Close()
		m.mu.Lock()
		m.state = StateIdle
		m.mu.Unlock()
		metrics.VoiceSessionsTotal.WithLabelValues("connect_failed").Inc()
		m.log.Warn().Err(err).Msg("realtime connect failed")
		return err
	}

	sessionCtx, cancel := context.WithCancel(context.Background())

	m.mu.Lock()
	if m.state != StateConnecting {
		// Stop raced the dial; the session was torn down before it began.
		m.mu.Unlock()
		cancel()
		transport.Close()
		source.Close()
		sink.Close()
		return ErrSessionActive
	}
	m.state = StateActive
	m.gen++
	gen := m.gen
	m.transport = transport
	m.source = source
	m.sink = sink
	m.cancel = cancel
	m.mu.Unlock()

	go m.pumpUpstream(sessionCtx, gen, source, transport)
	go m.pumpDownstream(sessionCtx, gen, transport)
	return nil
}

// Stop tears the session down. Safe to call from any state, repeatedly.
func (m *Manager) Stop() {
	m.mu.Lock()
	gen := m.gen
	m.mu.Unlock()
	m.teardown(gen, "stopped")
}

func (m *Manager) pumpUpstream(ctx context.Context, gen uint64, source AudioSource, transport Transport) {
	for {
		frame, err := source.ReadFrame(ctx)
		if err != nil {
			if ctx.Err() == nil {
				m.log.Debug().Err(err).Msg("audio source closed")
				m.teardown(gen, "source_closed")
			}
			return
		}
		if m.isMuted() || len(frame) == 0 {
			continue
		}
		if err := transport.SendAudio(ctx, frame); err != nil {
			if ctx.Err() == nil {
				m.log.Warn().Err(err).Msg("upstream send failed")
				m.teardown(gen, "transport_error")
			}
			return
		}
		metrics.VoiceFramesTotal.WithLabelValues("up").Inc()
	}
}

func (m *Manager) pumpDownstream(ctx context.Context, gen uint64, transport Transport) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-transport.Events():
			if !ok {
				m.teardown(gen, "remote_closed")
				return
			}
			switch ev.Type {
			case EventAudio:
				m.playFrame(ev.Audio)
			case EventToolCall:
				m.handleToolCall(ctx, transport, ev)
			case EventError:
				m.log.Warn().Err(ev.Err).Msg("realtime session error")
				m.teardown(gen, "transport_error")
				return
			case EventClosed:
				m.teardown(gen, "remote_closed")
				return
			}
		}
	}
}

func (m *Manager) playFrame(frame []byte) {
	m.mu.Lock()
	sink := m.sink
	m.mu.Unlock()
	if sink == nil || len(frame) == 0 {
		return
	}
	startAt := m.scheduler.Enqueue(FrameDuration(frame, OutputSampleRate))
	if err := sink.Play(frame, startAt); err != nil {
		m.log.Debug().Err(err).Msg("sink rejected frame")
		return
	}
	metrics.VoiceFramesTotal.WithLabelValues("down").Inc()
}

func (m *Manager) handleToolCall(ctx context.Context, transport Transport, ev Event) {
	var result tool.Result
	call, err := tool.ParseRawCall(ev.ToolCallID, ev.ToolName, ev.ToolArgs)
	if err != nil {
		result = tool.Result{CallID: ev.ToolCallID, Name: ev.ToolName, Output: err.Error(), IsError: true}
	} else {
		result = m.executor.Execute(call)
	}
	if err := transport.SendToolResult(ctx, result.CallID, result.Output); err != nil {
		m.log.Warn().Err(err).Str("call_id", result.CallID).Msg("tool result send failed")
	}
}

// teardown releases the session identified by gen. A stale generation is a
// no-op so a pump outliving its session cannot kill the next one.
func (m *Manager) teardown(gen uint64, outcome string) {
	m.mu.Lock()
	if m.state == StateIdle || m.gen != gen {
		m.mu.Unlock()
		return
	}
	transport, source, sink, cancel := m.transport, m.source, m.sink, m.cancel
	m.transport, m.source, m.sink, m.cancel = nil, nil, nil, nil
	m.state = StateIdle
	m.muted = false
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if transport != nil {
		transport.Close()
	}
	if source != nil {
		source.Close()
	}
	if sink != nil {
		sink.Close()
	}
	m.scheduler.Reset()
	metrics.VoiceSessionsTotal.WithLabelValues(outcome).Inc()
	m.log.Info().Str("outcome", outcome).Msg("voice session ended")
}
