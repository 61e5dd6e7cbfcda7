package response

import (
	"testing"

	"smartcheckout/internal/domain/entities"
)

func TestFromAttemptView_QRSurface(t *testing.T) {
	v := entities.AttemptView{
		AttemptID: "attempt-1",
		Surface:   entities.SurfaceQR,
		QR: &entities.QRView{
			Amount:           88,
			Rail:             entities.RailWechatPay,
			RemainingSeconds: 250,
			Status:           entities.WalletPollPending,
		},
	}
	got := FromAttemptView(v)
	if got.Surface != "qr" || got.QR == nil {
		t.Fatalf("expected qr surface, got %+v", got)
	}
	if got.QR.PaymentMethod != "wechat_pay" || got.QR.RemainingSeconds != 250 || got.QR.Status != "pending" {
		t.Fatalf("unexpected qr mapping: %+v", got.QR)
	}
	if got.Challenge != nil || got.Result != nil {
		t.Fatalf("expected only qr to be set: %+v", got)
	}
}

func TestFromAttemptView_ChallengeSurface(t *testing.T) {
	v := entities.AttemptView{
		AttemptID: "attempt-2",
		Surface:   entities.SurfaceChallenge,
		Challenge: &entities.ChallengeView{
			TransactionID:    "3DS_ABCD1234",
			Amount:           9000,
			RemainingSeconds: 120,
			AttemptsUsed:     2,
			MaxAttempts:      3,
			Message:          "Incorrect verification code, please retry",
		},
	}
	got := FromAttemptView(v)
	if got.Challenge == nil {
		t.Fatalf("expected challenge, got %+v", got)
	}
	if got.Challenge.TransactionID != "3DS_ABCD1234" || got.Challenge.AttemptsUsed != 2 || got.Challenge.MaxAttempts != 3 {
		t.Fatalf("unexpected challenge mapping: %+v", got.Challenge)
	}
}

func TestFromAttemptView_ResultSurface(t *testing.T) {
	v := entities.AttemptView{
		AttemptID: "attempt-3",
		Surface:   entities.SurfaceResult,
		Result: &entities.TerminalResult{
			Status:        entities.TerminalStatusSuccess,
			TransactionID: "ALI_11112222",
			RiskScore:     15,
			Insight:       "Transaction scored 15; main risk factors: none",
		},
	}
	got := FromAttemptView(v)
	if got.Result == nil || got.Result.Status != "success" {
		t.Fatalf("expected success result, got %+v", got)
	}
	if got.Result.TransactionID != "ALI_11112222" || got.Result.RiskScore != 15 {
		t.Fatalf("unexpected result mapping: %+v", got.Result)
	}
	if got.Result.Insight != "Transaction scored 15; main risk factors: none" {
		t.Fatalf("insight not mapped: %+v", got.Result)
	}
}
