package entities

// Surface names which rendering surface is visible for an attempt. Exactly one
// is visible at any time.

type Surface string

const (
	SurfaceForm      Surface = "form"
	SurfaceQR        Surface = "qr"
	SurfaceChallenge Surface = "challenge"
	SurfaceResult    Surface = "result"
)

// WalletPollStatus is the lifecycle of a QR confirmation wait.

type WalletPollStatus string

const (
	WalletPollPending WalletPollStatus = "pending"
	WalletPollSuccess WalletPollStatus = "success"
	WalletPollExpired WalletPollStatus = "expired"
)

// ChallengeView is the challenge surface projection handed to the renderer.
type ChallengeView struct {
	TransactionID     string  `json:"transaction_id"`
	Amount            float64 `json:"amount"`
	RemainingSeconds  int     `json:"remaining_seconds"`
	AttemptsUsed      int     `json:"attempts_used"`
	MaxAttempts       int     `json:"max_attempts"`
	AttemptsExhausted bool    `json:"attempts_exhausted"`
	Expired           bool    `json:"expired"`
	Message           string  `json:"message,omitempty"`
}

// QRView is the QR surface projection handed to the renderer.
type QRView struct {
	Amount           float64          `json:"amount"`
	Rail             Rail             `json:"payment_method"`
	RemainingSeconds int              `json:"remaining_seconds"`
	Status           WalletPollStatus `json:"status"`
}

// AttemptView is the full surface emission for one checkout attempt: which
// surface is visible plus the projection for that surface. At most one of
// QR/Challenge/Result is set, matching Surface.
type AttemptView struct {
	AttemptID string          `json:"attempt_id"`
	Surface   Surface         `json:"surface"`
	QR        *QRView         `json:"qr,omitempty"`
	Challenge *ChallengeView  `json:"challenge,omitempty"`
	Result    *TerminalResult `json:"result,omitempty"`
}
