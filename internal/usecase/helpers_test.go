package usecase

import (
	"fmt"

	"smartcheckout/internal/usecase/interfaces"
)

// fakeTimer records one started countdown and lets tests drive its callbacks.
type fakeTimer struct {
	seconds   int
	onTick    func(remaining int)
	onExpire  func()
	cancelled bool
}

func (t *fakeTimer) Cancel() { t.cancelled = true }

// tick and expire deliver callbacks honoring cancellation, as the real
// service does.
func (t *fakeTimer) tick(remaining int) {
	if !t.cancelled && t.onTick != nil {
		t.onTick(remaining)
	}
}

func (t *fakeTimer) expire() {
	if !t.cancelled && t.onExpire != nil {
		t.onExpire()
	}
}

// fireExpireLate delivers the expiry callback even after cancellation,
// simulating a late in-flight firing.
func (t *fakeTimer) fireExpireLate() {
	if t.onExpire != nil {
		t.onExpire()
	}
}

type fakeTimerService struct {
	started []*fakeTimer
}

var _ interfaces.ITimerService = (*fakeTimerService)(nil)

func (s *fakeTimerService) Start(seconds int, onTick func(remaining int), onExpire func()) interfaces.ITimerHandle {
	t := &fakeTimer{seconds: seconds, onTick: onTick, onExpire: onExpire}
	s.started = append(s.started, t)
	return t
}

// stubIDs issues sequential, predictable ids.
type stubIDs struct {
	n int
}

var _ interfaces.IIDGenerator = (*stubIDs)(nil)

func (s *stubIDs) TransactionID(prefix string) string {
	s.n++
	return fmt.Sprintf("%s_%06d", prefix, s.n)
}

func (s *stubIDs) AttemptID() string {
	s.n++
	return fmt.Sprintf("attempt-%d", s.n)
}
