package request

import (
	"strings"

	"smartcheckout/internal/domain/entities"
)

// CheckoutRequest is the submission payload accepted by POST /v1/checkout.
// Card fields matter only for the credit_card rail; the usecase enforces that.
type CheckoutRequest struct {
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	PaymentMethod   string  `json:"payment_method" binding:"required"`
	CardNumber      string  `json:"card_number"`
	CardExpiryMonth string  `json:"card_expiry_month"`
	CardExpiryYear  string  `json:"card_expiry_year"`
	CardCVV         string  `json:"card_cvv"`
	IPCountry       string  `json:"ip_country"`
	CardCountry     string  `json:"card_country"`
	UserHistory     int     `json:"user_history"`
}

// ToPaymentRequest maps the payload to the domain request, filling the wire
// defaults the risk engine assumes (CNY, CN).
func (r CheckoutRequest) ToPaymentRequest() entities.PaymentRequest {
	currency := strings.TrimSpace(r.Currency)
	if currency == "" {
		currency = "CNY"
	}
	ipCountry := strings.TrimSpace(r.IPCountry)
	if ipCountry == "" {
		ipCountry = "CN"
	}
	return entities.PaymentRequest{
		Amount:          r.Amount,
		Currency:        currency,
		Rail:            entities.Rail(strings.TrimSpace(r.PaymentMethod)),
		CardNumber:      strings.TrimSpace(r.CardNumber),
		CardExpiryMonth: strings.TrimSpace(r.CardExpiryMonth),
		CardExpiryYear:  strings.TrimSpace(r.CardExpiryYear),
		CardCVV:         strings.TrimSpace(r.CardCVV),
		IPCountry:       ipCountry,
		CardCountry:     strings.TrimSpace(r.CardCountry),
		UserHistory:     r.UserHistory,
	}
}

// VerifyCodeRequest is the challenge-code payload for POST .../verify.
type VerifyCodeRequest struct {
	VerificationCode string `json:"verification_code" binding:"required"`
}
