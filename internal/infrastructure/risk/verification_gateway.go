package risk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"smartcheckout/internal/domain/entities"
	"smartcheckout/pkg/logging"

	"go.uber.org/zap"
)

type VerificationGateway struct {
	baseURL  string
	client   *http.Client
	mockMode bool
}

func NewVerificationGateway(baseURL string, mockMode bool) *VerificationGateway {
	return &VerificationGateway{
		baseURL:  baseURL,
		client:   &http.Client{Timeout: requestTimeout},
		mockMode: mockMode,
	}
}

func (g *VerificationGateway) VerifyCode(ctx context.Context, req entities.VerificationRequest) (entities.VerificationResult, error) {
	if g.mockMode {
		return mockVerify(req), nil
	}
	if g.baseURL == "" {
		return entities.VerificationResult{}, ErrRiskEngineNotConfigured
	}

	body, err := json.Marshal(req)
	if err != nil {
		return entities.VerificationResult{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/3ds-verify", bytes.NewReader(body))
	if err != nil {
		return entities.VerificationResult{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return entities.VerificationResult{}, fmt.Errorf("risk engine verify call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return entities.VerificationResult{}, fmt.Errorf("risk engine returned status %d", resp.StatusCode)
	}

	var res entities.VerificationResult
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return entities.VerificationResult{}, fmt.Errorf("risk engine response decode failed: %w", err)
	}

	logging.Info("risk engine verification",
		zap.String("transaction_id", req.TransactionID),
		zap.Bool("success", res.Success),
	)
	return res, nil
}

// mockVerify mirrors the mock bank: any 6-digit code starting with "1" passes.
func mockVerify(req entities.VerificationRequest) entities.VerificationResult {
	code := req.VerificationCode
	if len(code) != 6 || !allDigits(code) {
		return entities.VerificationResult{Success: false, Message: "Verification code format error"}
	}
	if strings.HasPrefix(code, "1") {
		return entities.VerificationResult{
			Success:       true,
			TransactionID: req.TransactionID,
			Message:       "3-D-Secure verification passed",
		}
	}
	return entities.VerificationResult{Success: false, Message: "Incorrect verification code, please retry"}
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
