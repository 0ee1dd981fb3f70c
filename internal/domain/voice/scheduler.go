package voice

import (
	"sync"
	"time"
)

// Clock abstracts time.Now for deterministic scheduler tests.
type Clock func() time.Time

// PlaybackScheduler assigns start times to downstream audio frames so that
// consecutive frames play back to back, without gaps or overlaps, despite
// network jitter. The cursor is monotonic; Enqueue is the only mutation.
type PlaybackScheduler struct {
	mu     sync.Mutex
	cursor time.Time
	now    Clock
}

func NewPlaybackScheduler(now Clock) *PlaybackScheduler {
	if now == nil {
		now = time.Now
	}
	return &PlaybackScheduler{now: now}
}

// Enqueue reserves a playback slot for a frame of the given duration and
// returns its start time: the later of now and the previous frame's end.
func (s *PlaybackScheduler) Enqueue(d time.Duration) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := s.now()
	if s.cursor.After(start) {
		start = s.cursor
	}
	s.cursor = start.Add(d)
	return start
}

// Reset drops the cursor so the next frame plays immediately. Called on
// session teardown; a new session must not inherit stale scheduling.
func (s *PlaybackScheduler) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor = time.Time{}
}
