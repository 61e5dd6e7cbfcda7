package entities

// Rail identifies the payment method chosen by the buyer.
//
// Wire values match what the risk engine consumes:
//   - credit_card goes through authorization (and possibly a 3-D-Secure step-up)
//   - alipay / wechat_pay are confirmed out-of-band via a QR code

type Rail string

const (
	RailCreditCard Rail = "credit_card"
	RailAlipay     Rail = "alipay"
	RailWechatPay  Rail = "wechat_pay"
)

// Valid reports whether the rail is one the service can route.
func (r Rail) Valid() bool {
	switch r {
	case RailCreditCard, RailAlipay, RailWechatPay:
		return true
	}
	return false
}

// Wallet reports whether the rail resolves through the QR confirmation flow.
func (r Rail) Wallet() bool {
	return r == RailAlipay || r == RailWechatPay
}

// TransactionPrefix is the prefix used for transaction ids on this rail.
func (r Rail) TransactionPrefix() string {
	switch r {
	case RailAlipay:
		return "ALI"
	case RailWechatPay:
		return "WX"
	default:
		return "CC"
	}
}

// PaymentRequest is a buyer-submitted payment.
//
// Card fields are required only for the credit_card rail and are ignored for
// wallet rails. The risk fields (IPCountry, CardCountry, UserHistory) are
// carried opaquely to the risk engine; the core never interprets them.
type PaymentRequest struct {
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	Rail            Rail    `json:"payment_method"`
	CardNumber      string  `json:"card_number,omitempty"`
	CardExpiryMonth string  `json:"card_expiry_month,omitempty"`
	CardExpiryYear  string  `json:"card_expiry_year,omitempty"`
	CardCVV         string  `json:"card_cvv,omitempty"`
	IPCountry       string  `json:"ip_country,omitempty"`
	CardCountry     string  `json:"card_country,omitempty"`
	UserHistory     int     `json:"user_history"`
}

// TerminalStatus is the final outcome of a checkout attempt.

type TerminalStatus string

const (
	TerminalStatusSuccess    TerminalStatus = "success"
	TerminalStatusCancelled  TerminalStatus = "cancelled"
	TerminalStatusExpired    TerminalStatus = "expired"
	TerminalStatusError      TerminalStatus = "error"
	TerminalStatusPending3DS TerminalStatus = "pending_3ds"
)

// TerminalResult is the immutable, display-only outcome of an attempt.
type TerminalResult struct {
	Status        TerminalStatus `json:"status"`
	TransactionID string         `json:"transaction_id,omitempty"`
	RiskScore     int            `json:"risk_score,omitempty"`
	Insight       string         `json:"insight,omitempty"`
	Message       string         `json:"message,omitempty"`
}
