package interfaces

// ITimerHandle controls one running countdown. Cancel is idempotent and stops
// all further callbacks.
type ITimerHandle interface {
	Cancel()
}

// ITimerService starts 1 Hz countdowns. onTick receives the remaining seconds
// after each tick; onExpire fires exactly once when the count reaches zero and
// never after cancellation. Both challenge and QR flows use this contract so
// their expiry semantics stay consistent.
type ITimerService interface {
	Start(seconds int, onTick func(remaining int), onExpire func()) ITimerHandle
}
