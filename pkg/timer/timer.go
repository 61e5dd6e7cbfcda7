// Package timer provides the countdown primitive shared by the challenge and
// QR flows, so both expire with the same semantics.
package timer

import (
	"sync"
	"time"
)

// Service starts countdowns. Interval defaults to one second; tests shrink it.
type Service struct {
	Interval time.Duration
}

func New() *Service {
	return &Service{Interval: time.Second}
}

// Handle controls one running countdown.
type Handle struct {
	mu        sync.Mutex
	cancelled bool
	stop      chan struct{}
}

// Cancel stops the countdown. Idempotent. Once it returns, the loop schedules
// no further callbacks; an expiry that already claimed the handle on the
// countdown goroutine may still be delivering, so callers that race Cancel
// against expiry must revalidate state inside onExpire.
func (h *Handle) Cancel() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cancelled {
		return
	}
	h.cancelled = true
	close(h.stop)
}

// finish is Cancel for the loop itself: marks the handle spent without closing
// the stop channel twice.
func (h *Handle) finish() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cancelled {
		return false
	}
	h.cancelled = true
	return true
}

func (h *Handle) live() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return !h.cancelled
}

// Start begins a countdown of the given number of seconds. onTick is invoked
// once per interval with the remaining seconds; when the count reaches zero,
// onExpire is invoked exactly once instead of a tick and the countdown ends.
// Either callback may be nil. Callbacks run on the countdown goroutine; the
// handle lock is released before they run, so a callback may call Cancel
// without deadlocking.
func (s *Service) Start(seconds int, onTick func(remaining int), onExpire func()) *Handle {
	h := &Handle{stop: make(chan struct{})}
	interval := s.Interval
	if interval <= 0 {
		interval = time.Second
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		remaining := seconds
		for {
			select {
			case <-h.stop:
				return
			case <-ticker.C:
				if !h.live() {
					return
				}
				remaining--
				if remaining <= 0 {
					if h.finish() && onExpire != nil {
						onExpire()
					}
					return
				}
				if onTick != nil {
					onTick(remaining)
				}
			}
		}
	}()

	return h
}
