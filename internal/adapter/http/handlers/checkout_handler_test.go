package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"smartcheckout/internal/adapter/http/handlers/mocks"
	"smartcheckout/internal/domain/entities"
	"smartcheckout/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockICheckoutUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICheckoutUseCase(ctrl)
	h := NewCheckoutHandler(uc)

	r := gin.New()
	r.POST("/v1/checkout", h.Submit)
	r.GET("/v1/checkout/:attempt_id", h.GetAttempt)
	r.POST("/v1/checkout/:attempt_id/verify", h.VerifyCode)
	r.POST("/v1/checkout/:attempt_id/cancel", h.CancelChallenge)
	r.DELETE("/v1/checkout/:attempt_id/qr", h.CloseQR)
	return r, uc
}

func TestCheckoutHandler_Submit(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newTestRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error maps to 400", func(t *testing.T) {
		r, uc := newTestRouter(t)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(entities.AttemptView{}, usecase.ErrInvalidAmount)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout", bytes.NewBufferString(`{"amount":-5,"payment_method":"credit_card"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "INVALID_AMOUNT" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success result", func(t *testing.T) {
		r, uc := newTestRouter(t)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(entities.AttemptView{
			AttemptID: "attempt-1",
			Surface:   entities.SurfaceResult,
			Result: &entities.TerminalResult{
				Status:        entities.TerminalStatusSuccess,
				TransactionID: "CC_1",
				RiskScore:     15,
			},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout", bytes.NewBufferString(`{"amount":100,"payment_method":"credit_card","card_number":"4111111111111111","card_expiry_month":"09","card_expiry_year":"2030","card_cvv":"123"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["surface"] != "result" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("qr surface", func(t *testing.T) {
		r, uc := newTestRouter(t)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(entities.AttemptView{
			AttemptID: "attempt-2",
			Surface:   entities.SurfaceQR,
			QR: &entities.QRView{
				Amount:           50,
				Rail:             entities.RailAlipay,
				RemainingSeconds: 300,
				Status:           entities.WalletPollPending,
			},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout", bytes.NewBufferString(`{"amount":50,"payment_method":"alipay"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			QR struct {
				RemainingSeconds int    `json:"remaining_seconds"`
				Status           string `json:"status"`
			} `json:"qr"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.QR.Status != "pending" || body.QR.RemainingSeconds != 300 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestCheckoutHandler_VerifyCode(t *testing.T) {
	t.Run("missing code", func(t *testing.T) {
		r, _ := newTestRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/attempt-1/verify", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("outcome and surface returned", func(t *testing.T) {
		r, uc := newTestRouter(t)

		uc.EXPECT().SubmitCode(gomock.Any(), "attempt-1", "999999").Return(usecase.CodeOutcomeFailed, entities.AttemptView{
			AttemptID: "attempt-1",
			Surface:   entities.SurfaceChallenge,
			Challenge: &entities.ChallengeView{AttemptsUsed: 1, MaxAttempts: 3, RemainingSeconds: 280},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/attempt-1/verify", bytes.NewBufferString(`{"verification_code":"999999"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Outcome string `json:"outcome"`
			Attempt struct {
				Challenge struct {
					AttemptsUsed int `json:"attempts_used"`
				} `json:"challenge"`
			} `json:"attempt"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Outcome != "failed" || body.Attempt.Challenge.AttemptsUsed != 1 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("no active challenge maps to 409", func(t *testing.T) {
		r, uc := newTestRouter(t)

		uc.EXPECT().SubmitCode(gomock.Any(), "attempt-1", "123456").Return(usecase.CodeOutcome(""), entities.AttemptView{}, usecase.ErrNoActiveChallenge)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/attempt-1/verify", bytes.NewBufferString(`{"verification_code":"123456"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestCheckoutHandler_GetAttempt(t *testing.T) {
	r, uc := newTestRouter(t)

	uc.EXPECT().View("missing").Return(entities.AttemptView{}, usecase.ErrAttemptNotFound)

	req := httptest.NewRequest(http.MethodGet, "/v1/checkout/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestCheckoutHandler_CancelAndClose(t *testing.T) {
	t.Run("cancel challenge", func(t *testing.T) {
		r, uc := newTestRouter(t)

		uc.EXPECT().CancelChallenge("attempt-1").Return(entities.AttemptView{
			AttemptID: "attempt-1",
			Surface:   entities.SurfaceResult,
			Result:    &entities.TerminalResult{Status: entities.TerminalStatusCancelled},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/attempt-1/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("close qr without active poll maps to 409", func(t *testing.T) {
		r, uc := newTestRouter(t)

		uc.EXPECT().CloseQR("attempt-1").Return(entities.AttemptView{}, usecase.ErrNoActiveQR)

		req := httptest.NewRequest(http.MethodDelete, "/v1/checkout/attempt-1/qr", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
