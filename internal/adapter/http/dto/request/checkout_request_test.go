package request

import (
	"testing"

	"smartcheckout/internal/domain/entities"
)

func TestCheckoutRequest_ToPaymentRequest_Defaults(t *testing.T) {
	r := CheckoutRequest{
		Amount:        100,
		PaymentMethod: "alipay",
	}
	got := r.ToPaymentRequest()
	if got.Currency != "CNY" {
		t.Fatalf("expected CNY default, got %q", got.Currency)
	}
	if got.IPCountry != "CN" {
		t.Fatalf("expected CN default, got %q", got.IPCountry)
	}
	if got.Rail != entities.RailAlipay {
		t.Fatalf("expected alipay rail, got %q", got.Rail)
	}
}

func TestCheckoutRequest_ToPaymentRequest_Trims(t *testing.T) {
	r := CheckoutRequest{
		Amount:          42.5,
		Currency:        " USD ",
		PaymentMethod:   " credit_card ",
		CardNumber:      " 4111111111111111 ",
		CardExpiryMonth: " 09 ",
		CardExpiryYear:  " 2030 ",
		CardCVV:         " 123 ",
		IPCountry:       " US ",
		CardCountry:     " BR ",
		UserHistory:     7,
	}
	got := r.ToPaymentRequest()
	if got.Currency != "USD" {
		t.Fatalf("expected USD, got %q", got.Currency)
	}
	if got.Rail != entities.RailCreditCard {
		t.Fatalf("expected credit_card rail, got %q", got.Rail)
	}
	if got.CardNumber != "4111111111111111" {
		t.Fatalf("expected trimmed card number, got %q", got.CardNumber)
	}
	if got.CardExpiryMonth != "09" || got.CardExpiryYear != "2030" || got.CardCVV != "123" {
		t.Fatalf("expected trimmed card fields, got %q %q %q", got.CardExpiryMonth, got.CardExpiryYear, got.CardCVV)
	}
	if got.IPCountry != "US" || got.CardCountry != "BR" {
		t.Fatalf("expected trimmed countries, got %q %q", got.IPCountry, got.CardCountry)
	}
	if got.Amount != 42.5 || got.UserHistory != 7 {
		t.Fatalf("expected amount and history carried over, got %v %d", got.Amount, got.UserHistory)
	}
}
