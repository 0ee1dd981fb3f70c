package voice_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"lumina-server/concierge-api/internal/domain/cart"
	"lumina-server/concierge-api/internal/domain/llm"
	"lumina-server/concierge-api/internal/domain/menu"
	"lumina-server/concierge-api/internal/domain/tool"
	"lumina-server/concierge-api/internal/domain/voice"
)

type fakeSource struct {
	frames    chan []byte
	reads     int32
	closeOnce sync.Once
	closed    chan struct{}
}

func newFakeSource() *fakeSource {
	return &fakeSource{frames: make(chan []byte, 16), closed: make(chan struct{})}
}

func (s *fakeSource) ReadFrame(ctx context.Context) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-s.closed:
		return nil, io.EOF
	case frame := <-s.frames:
		atomic.AddInt32(&s.reads, 1)
		return frame, nil
	}
}

func (s *fakeSource) Close() error {
	s.closeOnce.Do(func() { close(s.closed) })
	return nil
}

func (s *fakeSource) isClosed() bool {
	select {
	case <-s.closed:
		return true
	default:
		return false
	}
}

type playedFrame struct {
	frame   []byte
	startAt time.Time
}

type fakeSink struct {
	mu        sync.Mutex
	played    []playedFrame
	closeOnce sync.Once
	closed    chan struct{}
}

func newFakeSink() *fakeSink {
	return &fakeSink{closed: make(chan struct{})}
}

func (s *fakeSink) Play(frame []byte, startAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.played = append(s.played, playedFrame{frame: frame, startAt: startAt})
	return nil
}

func (s *fakeSink) Close() error {
	s.closeOnce.Do(func() { close(s.closed) })
	return nil
}

func (s *fakeSink) playedFrames() []playedFrame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]playedFrame(nil), s.played...)
}

func (s *fakeSink) isClosed() bool {
	select {
	case <-s.closed:
		return true
	default:
		return false
	}
}

type sentResult struct {
	callID string
	output string
}

type fakeTransport struct {
	mu        sync.Mutex
	sent      [][]byte
	results   []sentResult
	events    chan voice.Event
	closeOnce sync.Once
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{events: make(chan voice.Event, 16)}
}

func (t *fakeTransport) SendAudio(_ context.Context, frame []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sent = append(t.sent, frame)
	return nil
}

func (t *fakeTransport) SendToolResult(_ context.Context, callID, output string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.results = append(t.results, sentResult{callID: callID, output: output})
	return nil
}

func (t *fakeTransport) Events() <-chan voice.Event { return t.events }

func (t *fakeTransport) Close() error {
	t.closeOnce.Do(func() { close(t.events) })
	return nil
}

func (t *fakeTransport) sentFrames() [][]byte {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([][]byte(nil), t.sent...)
}

func (t *fakeTransport) sentResults() []sentResult {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]sentResult(nil), t.results...)
}

type fakeDialer struct {
	transport voice.Transport
	err       error
	tools     []llm.ToolDefinition
}

// Dial returns the configured transport, or a fresh one per call when none
// is configured.
func (d *fakeDialer) Dial(_ context.Context, tools []llm.ToolDefinition) (voice.Transport, error) {
	d.tools = tools
	if d.err != nil {
		return nil, d.err
	}
	if d.transport != nil {
		return d.transport, nil
	}
	return newFakeTransport(), nil
}

func newManager(t *testing.T, dialer voice.Dialer) (*voice.Manager, *cart.Store) {
	t.Helper()
	store := cart.NewStore()
	executor := tool.NewExecutor(menu.NewCatalog(), store, zerolog.Nop())
	return voice.NewManager(dialer, executor, nil, zerolog.Nop()), store
}

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal(msg)
}

func TestManager_StartAndStop(t *testing.T) {
	transport := newFakeTransport()
	mgr, _ := newManager(t, &fakeDialer{transport: transport})
	source, sink := newFakeSource(), newFakeSink()

	if err := mgr.Start(context.Background(), source, sink); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if mgr.State() != voice.StateActive {
		t.Errorf("state = %v, want active", mgr.State())
	}

	mgr.Stop()
	if mgr.State() != voice.StateIdle {
		t.Errorf("state after stop = %v, want idle", mgr.State())
	}
	if !source.isClosed() || !sink.isClosed() {
		t.Error("stop must release the audio source and sink")
	}
}

func TestManager_TeardownIdempotent(t *testing.T) {
	transport := newFakeTransport()
	mgr, _ := newManager(t, &fakeDialer{transport: transport})

	if err := mgr.Start(context.Background(), newFakeSource(), newFakeSink()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	mgr.Stop()
	mgr.Stop()
	if mgr.State() != voice.StateIdle {
		t.Errorf("state after double stop = %v, want idle", mgr.State())
	}

	// Stopping an already idle manager is also a no-op.
	idle := voice.NewManager(&fakeDialer{transport: newFakeTransport()}, nil, nil, zerolog.Nop())
	idle.Stop()
	idle.Stop()
	if idle.State() != voice.StateIdle {
		t.Errorf("never-started manager state = %v, want idle", idle.State())
	}
}

func TestManager_ConnectFailure(t *testing.T) {
	mgr, _ := newManager(t, &fakeDialer{err: errors.New("endpoint unreachable")})
	source, sink := newFakeSource(), newFakeSink()

	if err := mgr.Start(context.Background(), source, sink); err == nil {
		t.Fatal("Start must surface the dial error")
	}
	if mgr.State() != voice.StateIdle {
		t.Errorf("state after connect failure = %v, want idle", mgr.State())
	}
	if !source.isClosed() || !sink.isClosed() {
		t.Error("connect failure must release the audio source and sink")
	}
}

func TestManager_SecondStartRejected(t *testing.T) {
	mgr, _ := newManager(t, &fakeDialer{transport: newFakeTransport()})

	if err := mgr.Start(context.Background(), newFakeSource(), newFakeSink()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer mgr.Stop()

	if err := mgr.Start(context.Background(), newFakeSource(), newFakeSink()); !errors.Is(err, voice.ErrSessionActive) {
		t.Errorf("second Start err = %v, want ErrSessionActive", err)
	}
}

func TestManager_DeclaresToolSet(t *testing.T) {
	dialer := &fakeDialer{transport: newFakeTransport()}
	mgr, _ := newManager(t, dialer)

	if err := mgr.Start(context.Background(), newFakeSource(), newFakeSink()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer mgr.Stop()

	if len(dialer.tools) != 2 {
		t.Fatalf("dial declared %d tools, want 2", len(dialer.tools))
	}
	names := map[string]bool{}
	for _, def := range dialer.tools {
		names[def.Function.Name] = true
	}
	if !names["addToOrder"] || !names["removeFromOrder"] {
		t.Errorf("declared tools = %v, want addToOrder and removeFromOrder", names)
	}
}

func TestManager_UpstreamRespectsMute(t *testing.T) {
	transport := newFakeTransport()
	mgr, _ := newManager(t, &fakeDialer{transport: transport})
	source := newFakeSource()

	if err := mgr.Start(context.Background(), source, newFakeSink()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer mgr.Stop()

	source.frames <- []byte{1, 2}
	waitFor(t, func() bool { return len(transport.sentFrames()) == 1 }, "unmuted frame not forwarded")

	mgr.SetMuted(true)
	source.frames <- []byte{3, 4}
	source.frames <- []byte{5, 6}
	// Wait until the pump has drained the muted frames, then give it a
	// beat to finish discarding the last one before unmuting.
	waitFor(t, func() bool { return atomic.LoadInt32(&source.reads) == 3 }, "muted frames not drained")
	time.Sleep(20 * time.Millisecond)
	if got := len(transport.sentFrames()); got != 1 {
		t.Fatalf("muted frames leaked upstream, sent = %d", got)
	}

	mgr.SetMuted(false)
	source.frames <- []byte{7, 8}
	waitFor(t, func() bool { return len(transport.sentFrames()) == 2 }, "post-mute frame not forwarded")

	sent := transport.sentFrames()
	if string(sent[1]) != string([]byte{7, 8}) {
		t.Errorf("unexpected post-mute frame: %v", sent)
	}
}

func TestManager_DownstreamPlaybackOrdering(t *testing.T) {
	transport := newFakeTransport()
	mgr, _ := newManager(t, &fakeDialer{transport: transport})
	sink := newFakeSink()

	if err := mgr.Start(context.Background(), newFakeSource(), sink); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer mgr.Stop()

	// 100ms of downstream audio per frame.
	for i := 0; i < 3; i++ {
		transport.events <- voice.Event{Type: voice.EventAudio, Audio: make([]byte, 4800)}
	}
	waitFor(t, func() bool { return len(sink.playedFrames()) == 3 }, "downstream frames not played")

	played := sink.playedFrames()
	for i := 1; i < len(played); i++ {
		gap := played[i].startAt.Sub(played[i-1].startAt)
		if gap < 100*time.Millisecond {
			t.Errorf("frame %d overlaps previous frame (scheduled %v after its start)", i, gap)
		}
	}
}

func TestManager_ToolCallRoundTrip(t *testing.T) {
	transport := newFakeTransport()
	mgr, store := newManager(t, &fakeDialer{transport: transport})

	if err := mgr.Start(context.Background(), newFakeSource(), newFakeSink()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer mgr.Stop()

	args, _ := json.Marshal(map[string]interface{}{"itemId": "m1", "quantity": 2})
	transport.events <- voice.Event{
		Type:       voice.EventToolCall,
		ToolCallID: "call_v1",
		ToolName:   "addToOrder",
		ToolArgs:   args,
	}

	waitFor(t, func() bool { return len(transport.sentResults()) == 1 }, "tool result not sent back")

	if store.TotalItems() != 2 {
		t.Errorf("cart items = %d, want 2 (shared execution path)", store.TotalItems())
	}
	result := transport.sentResults()[0]
	if result.callID != "call_v1" {
		t.Errorf("result correlates to %q, want call_v1", result.callID)
	}
}

func TestManager_RemoteCloseTearsDown(t *testing.T) {
	transport := newFakeTransport()
	mgr, _ := newManager(t, &fakeDialer{transport: transport})
	source, sink := newFakeSource(), newFakeSink()

	if err := mgr.Start(context.Background(), source, sink); err != nil {
		t.Fatalf("Start: %v", err)
	}

	transport.Close()

	waitFor(t, func() bool { return mgr.State() == voice.StateIdle }, "remote close did not reset to idle")
	if !source.isClosed() || !sink.isClosed() {
		t.Error("remote close must release the audio source and sink")
	}
}

func TestManager_SourceExhaustionTearsDown(t *testing.T) {
	transport := newFakeTransport()
	mgr, _ := newManager(t, &fakeDialer{transport: transport})
	source := newFakeSource()

	if err := mgr.Start(context.Background(), source, newFakeSink()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	source.Close()

	waitFor(t, func() bool { return mgr.State() == voice.StateIdle }, "source exhaustion did not reset to idle")
}

func TestManager_RestartAfterStop(t *testing.T) {
	mgr, _ := newManager(t, &fakeDialer{transport: newFakeTransport()})

	if err := mgr.Start(context.Background(), newFakeSource(), newFakeSink()); err != nil {
		t.Fatalf("first Start: %v", err)
	}
	mgr.Stop()

	if err := mgr.Start(context.Background(), newFakeSource(), newFakeSink()); err != nil {
		t.Fatalf("restart after stop: %v", err)
	}
	if mgr.State() != voice.StateActive {
		t.Errorf("state after restart = %v, want active", mgr.State())
	}
	mgr.Stop()
}
