// Package risk holds the HTTP clients for the external risk engine. The
// engine scores a submission, decides whether a 3-D-Secure step-up is needed
// and validates challenge codes; this package only speaks its contract.
//
// With mock mode enabled (RISK_ENGINE_MOCK) the gateways answer locally with
// the engine's published rule table, so the service runs without the engine.
package risk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"smartcheckout/internal/domain/entities"
	"smartcheckout/internal/infrastructure/ids"
	"smartcheckout/pkg/logging"

	"go.uber.org/zap"
)

var ErrRiskEngineNotConfigured = errors.New("risk engine not configured")

const requestTimeout = 10 * time.Second

type AuthorizationGateway struct {
	baseURL  string
	client   *http.Client
	mockMode bool
	ids      *ids.Generator
}

func NewAuthorizationGateway(baseURL string, mockMode bool) *AuthorizationGateway {
	if mockMode {
		logging.Info("authorization gateway mock mode enabled")
	}
	return &AuthorizationGateway{
		baseURL:  baseURL,
		client:   &http.Client{Timeout: requestTimeout},
		mockMode: mockMode,
		ids:      ids.New(),
	}
}

// checkoutResponse is the engine's wire shape for POST /checkout. Resolved
// payments carry transaction_id and risk_score at the top level; step-up
// responses carry the full risk breakdown instead.
type checkoutResponse struct {
	Status        string                   `json:"status"`
	TransactionID string                   `json:"transaction_id"`
	RiskScore     int                      `json:"risk_score"`
	Message       string                   `json:"message"`
	Risk          *entities.RiskAssessment `json:"risk"`
}

func (g *AuthorizationGateway) Authorize(ctx context.Context, req entities.PaymentRequest) (entities.AuthorizationResult, error) {
	if g.mockMode {
		return g.mockAuthorize(req), nil
	}
	if g.baseURL == "" {
		return entities.AuthorizationResult{}, ErrRiskEngineNotConfigured
	}

	body, err := json.Marshal(req)
	if err != nil {
		return entities.AuthorizationResult{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/checkout", bytes.NewReader(body))
	if err != nil {
		return entities.AuthorizationResult{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return entities.AuthorizationResult{}, fmt.Errorf("risk engine checkout call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return entities.AuthorizationResult{}, fmt.Errorf("risk engine returned status %d", resp.StatusCode)
	}

	var wire checkoutResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return entities.AuthorizationResult{}, fmt.Errorf("risk engine response decode failed: %w", err)
	}

	res := entities.AuthorizationResult{
		TransactionID: wire.TransactionID,
		Message:       wire.Message,
	}
	if wire.Risk != nil {
		res.Risk = *wire.Risk
	} else {
		res.Risk = entities.RiskAssessment{RiskScore: wire.RiskScore}
	}

	switch wire.Status {
	case "success":
		res.Status = entities.AuthorizationStatusSuccess
	case "pending_3ds":
		res.Status = entities.AuthorizationStatusPending3DS
	default:
		// "failed"/"error" and anything unknown surface as a decline.
		res.Status = entities.AuthorizationStatusError
		if res.Message == "" {
			res.Message = "Payment declined"
		}
	}

	logging.Info("risk engine authorization",
		zap.String("status", string(res.Status)),
		zap.Int("risk_score", res.Risk.RiskScore),
	)
	return res, nil
}

func (g *AuthorizationGateway) mockAuthorize(req entities.PaymentRequest) entities.AuthorizationResult {
	assessment := assess(req)
	if assessment.Requires3DS {
		return entities.AuthorizationResult{
			Status: entities.AuthorizationStatusPending3DS,
			Risk:   assessment,
		}
	}
	return entities.AuthorizationResult{
		Status:        entities.AuthorizationStatusSuccess,
		TransactionID: g.ids.TransactionID(req.Rail.TransactionPrefix()),
		Risk:          assessment,
		Message:       "Payment authorized",
	}
}
