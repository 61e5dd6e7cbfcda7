package entities

// AuthorizationStatus is the risk engine's decision for a card submission.

type AuthorizationStatus string

const (
	AuthorizationStatusSuccess    AuthorizationStatus = "success"
	AuthorizationStatusPending3DS AuthorizationStatus = "pending_3ds"
	AuthorizationStatusError      AuthorizationStatus = "error"
)

// RiskAssessment is the rule-engine breakdown attached to an authorization
// response. Reasons and LLMInsight are produced by the engine and passed
// through verbatim; the core never re-derives them.
type RiskAssessment struct {
	RiskScore   int      `json:"risk_score"`
	RiskLevel   string   `json:"risk_level,omitempty"`
	Requires3DS bool     `json:"requires_3ds,omitempty"`
	Reasons     []string `json:"reasons,omitempty"`
	LLMInsight  string   `json:"llm_insight,omitempty"`
}

// AuthorizationResult is the risk engine's response to a checkout submission.
// Never mutated after receipt.
type AuthorizationResult struct {
	Status        AuthorizationStatus `json:"status"`
	TransactionID string              `json:"transaction_id,omitempty"`
	Risk          RiskAssessment      `json:"risk"`
	Message       string              `json:"message,omitempty"`
}

// VerificationRequest is sent to the verification collaborator when the buyer
// submits a 3-D-Secure challenge code.
type VerificationRequest struct {
	TransactionID    string `json:"transaction_id"`
	VerificationCode string `json:"verification_code"`
	CardNumber       string `json:"card_number,omitempty"`
}

// VerificationResult is the verification collaborator's answer for one code.
type VerificationResult struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id,omitempty"`
	Message       string `json:"message,omitempty"`
}
