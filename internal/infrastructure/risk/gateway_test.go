package risk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"smartcheckout/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorizationGateway_RemoteResponses(t *testing.T) {
	t.Run("pending_3ds with risk breakdown", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/checkout", r.URL.Path)
			var req entities.PaymentRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, entities.RailCreditCard, req.Rail)

			json.NewEncoder(w).Encode(map[string]any{
				"status": "pending_3ds",
				"risk": map[string]any{
					"risk_score":   60,
					"risk_level":   "MEDIUM",
					"requires_3ds": true,
					"llm_insight":  "watch this one",
				},
			})
		}))
		defer srv.Close()

		g := NewAuthorizationGateway(srv.URL, false)
		res, err := g.Authorize(context.Background(), entities.PaymentRequest{Amount: 8000, Rail: entities.RailCreditCard})
		require.NoError(t, err)
		assert.Equal(t, entities.AuthorizationStatusPending3DS, res.Status)
		assert.Equal(t, 60, res.Risk.RiskScore)
		assert.Equal(t, "watch this one", res.Risk.LLMInsight)
	})

	t.Run("flat success payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"status":         "success",
				"transaction_id": "CC_123456",
				"risk_score":     15,
				"message":        "ok",
			})
		}))
		defer srv.Close()

		g := NewAuthorizationGateway(srv.URL, false)
		res, err := g.Authorize(context.Background(), entities.PaymentRequest{Amount: 100, Rail: entities.RailCreditCard})
		require.NoError(t, err)
		assert.Equal(t, entities.AuthorizationStatusSuccess, res.Status)
		assert.Equal(t, "CC_123456", res.TransactionID)
		assert.Equal(t, 15, res.Risk.RiskScore)
	})

	t.Run("unknown status is a decline", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"status": "failed"})
		}))
		defer srv.Close()

		g := NewAuthorizationGateway(srv.URL, false)
		res, err := g.Authorize(context.Background(), entities.PaymentRequest{Amount: 100, Rail: entities.RailCreditCard})
		require.NoError(t, err)
		assert.Equal(t, entities.AuthorizationStatusError, res.Status)
		assert.NotEmpty(t, res.Message)
	})

	t.Run("http error status surfaces as error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		g := NewAuthorizationGateway(srv.URL, false)
		_, err := g.Authorize(context.Background(), entities.PaymentRequest{Amount: 100, Rail: entities.RailCreditCard})
		assert.Error(t, err)
	})

	t.Run("unreachable engine is a transport error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		g := NewAuthorizationGateway(srv.URL, false)
		_, err := g.Authorize(context.Background(), entities.PaymentRequest{Amount: 100, Rail: entities.RailCreditCard})
		assert.Error(t, err)
	})

	t.Run("not configured", func(t *testing.T) {
		g := NewAuthorizationGateway("", false)
		_, err := g.Authorize(context.Background(), entities.PaymentRequest{Amount: 100, Rail: entities.RailCreditCard})
		assert.ErrorIs(t, err, ErrRiskEngineNotConfigured)
	})
}

func TestAuthorizationGateway_MockMode(t *testing.T) {
	g := NewAuthorizationGateway("", true)

	t.Run("low risk authorizes immediately", func(t *testing.T) {
		res, err := g.Authorize(context.Background(), entities.PaymentRequest{
			Amount:      100,
			Rail:        entities.RailCreditCard,
			IPCountry:   "CN",
			CardCountry: "CN",
			UserHistory: 3,
		})
		require.NoError(t, err)
		assert.Equal(t, entities.AuthorizationStatusSuccess, res.Status)
		assert.Contains(t, res.TransactionID, "CC_")
	})

	t.Run("elevated risk requires step-up", func(t *testing.T) {
		res, err := g.Authorize(context.Background(), entities.PaymentRequest{
			Amount:      9000,
			Rail:        entities.RailCreditCard,
			IPCountry:   "CN",
			CardCountry: "US",
			UserHistory: 0,
		})
		require.NoError(t, err)
		assert.Equal(t, entities.AuthorizationStatusPending3DS, res.Status)
		assert.True(t, res.Risk.Requires3DS)
		assert.Empty(t, res.TransactionID)
	})
}

func TestVerificationGateway_Remote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/3ds-verify", r.URL.Path)
		var req entities.VerificationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		json.NewEncoder(w).Encode(entities.VerificationResult{
			Success:       true,
			TransactionID: req.TransactionID,
			Message:       "3-D-Secure verification passed",
		})
	}))
	defer srv.Close()

	g := NewVerificationGateway(srv.URL, false)
	res, err := g.VerifyCode(context.Background(), entities.VerificationRequest{
		TransactionID:    "3DS_1",
		VerificationCode: "123456",
	})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "3DS_1", res.TransactionID)
}
