package frame

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Frame identifies one scheduler tick.
type Frame struct {
	Number uint64
	Time   time.Time
}

// Scheduler runs registered per-frame callbacks once per tick.
// The host decides when a tick happens: the ebiten host calls Tick from
// Update, the terminal and headless hosts use Run.
type Scheduler struct {
	mu      sync.Mutex
	entries []*Handle
	nextID  uint64
	frames  atomic.Uint64
	now     func() time.Time
}

// Handle is returned by Register. Stop deregisters the callback.
type Handle struct {
	id       uint64
	sched    *Scheduler
	tick     func(Frame)
	release  func()
	stopped  atomic.Bool
	stopOnce sync.Once
}

func NewScheduler() *Scheduler {
	return &Scheduler{now: time.Now}
}

// Register adds tick to the frame loop. Release, if non-nil, runs exactly
// once when the handle is stopped.
func (s *Scheduler) Register(tick func(Frame), release func()) *Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	h := &Handle{
		id:      s.nextID,
		sched:   s,
		tick:    tick,
		release: release,
	}
	s.entries = append(s.entries, h)
	logger().Debug("frame callback registered", "id", h.id, "active", len(s.entries))
	return h
}

// Stop deregisters the callback and releases its resources.
// It is safe to call more than once and from inside the callback itself.
func (h *Handle) Stop() {
	h.stopOnce.Do(func() {
		h.stopped.Store(true)
		h.sched.remove(h)
		if h.release != nil {
			h.release()
		}
		logger().Debug("frame callback stopped", "id", h.id)
	})
}

// Stopped reports whether Stop has been called.
func (h *Handle) Stopped() bool {
	return h.stopped.Load()
}

func (s *Scheduler) remove(h *Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.entries {
		if e == h {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered callbacks.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Frames returns the number of ticks run so far.
func (s *Scheduler) Frames() uint64 {
	return s.frames.Load()
}

// Tick runs every registered callback once, in registration order.
func (s *Scheduler) Tick() {
	s.mu.Lock()
	active := make([]*Handle, len(s.entries))
	copy(active, s.entries)
	s.mu.Unlock()

	f := Frame{Number: s.frames.Add(1), Time: s.now()}
	for _, h := range active {
		if h.stopped.Load() {
			continue
		}
		h.tick(f)
	}
}

// Run ticks at the given interval until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger().Info("frame loop started", "interval", interval)
	for {
		select {
		case <-ctx.Done():
			logger().Info("frame loop stopped", "frames", s.frames.Load())
			return ctx.Err()
		case <-ticker.C:
			s.Tick()
		}
	}
}

// StopAll stops every registered handle.
func (s *Scheduler) StopAll() {
	s.mu.Lock()
	active := make([]*Handle, len(s.entries))
	copy(active, s.entries)
	s.mu.Unlock()

	for _, h := range active {
		h.Stop()
	}
}
