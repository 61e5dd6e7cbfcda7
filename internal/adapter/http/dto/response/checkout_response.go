package response

import (
	"smartcheckout/internal/domain/entities"
)

type QRResponse struct {
	Amount           float64 `json:"amount"`
	PaymentMethod    string  `json:"payment_method"`
	RemainingSeconds int     `json:"remaining_seconds"`
	Status           string  `json:"status"`
}

type ChallengeResponse struct {
	TransactionID     string  `json:"transaction_id"`
	Amount            float64 `json:"amount"`
	RemainingSeconds  int     `json:"remaining_seconds"`
	AttemptsUsed      int     `json:"attempts_used"`
	MaxAttempts       int     `json:"max_attempts"`
	AttemptsExhausted bool    `json:"attempts_exhausted"`
	Expired           bool    `json:"expired"`
	Message           string  `json:"message,omitempty"`
}

type ResultResponse struct {
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id,omitempty"`
	RiskScore     int    `json:"risk_score"`
	Insight       string `json:"insight,omitempty"`
	Message       string `json:"message,omitempty"`
}

// AttemptResponse is the surface emission for one checkout attempt. Exactly
// one of QR/Challenge/Result is present, matching Surface.
type AttemptResponse struct {
	AttemptID string             `json:"attempt_id"`
	Surface   string             `json:"surface"`
	QR        *QRResponse        `json:"qr,omitempty"`
	Challenge *ChallengeResponse `json:"challenge,omitempty"`
	Result    *ResultResponse    `json:"result,omitempty"`
}

// VerifyCodeResponse pairs the outcome of one code submission with the
// refreshed surface.
type VerifyCodeResponse struct {
	Outcome string          `json:"outcome"`
	Attempt AttemptResponse `json:"attempt"`
}

func FromAttemptView(v entities.AttemptView) AttemptResponse {
	out := AttemptResponse{
		AttemptID: v.AttemptID,
		Surface:   string(v.Surface),
	}
	if v.QR != nil {
		out.QR = &QRResponse{
			Amount:           v.QR.Amount,
			PaymentMethod:    string(v.QR.Rail),
			RemainingSeconds: v.QR.RemainingSeconds,
			Status:           string(v.QR.Status),
		}
	}
	if v.Challenge != nil {
		out.Challenge = &ChallengeResponse{
			TransactionID:     v.Challenge.TransactionID,
			Amount:            v.Challenge.Amount,
			RemainingSeconds:  v.Challenge.RemainingSeconds,
			AttemptsUsed:      v.Challenge.AttemptsUsed,
			MaxAttempts:       v.Challenge.MaxAttempts,
			AttemptsExhausted: v.Challenge.AttemptsExhausted,
			Expired:           v.Challenge.Expired,
			Message:           v.Challenge.Message,
		}
	}
	if v.Result != nil {
		out.Result = &ResultResponse{
			Status:        string(v.Result.Status),
			TransactionID: v.Result.TransactionID,
			RiskScore:     v.Result.RiskScore,
			Insight:       v.Result.Insight,
			Message:       v.Result.Message,
		}
	}
	return out
}
