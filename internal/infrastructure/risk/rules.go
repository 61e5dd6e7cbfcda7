package risk

import (
	"fmt"
	"strings"

	"smartcheckout/internal/domain/entities"
)

// Mirror of the engine's published default rule table. Used only in mock mode;
// the real engine loads its table from configuration.
const (
	largeAmountThreshold = 5000
	largeAmountScore     = 20
	newUserScore         = 15
	crossBorderScore     = 25

	highRiskAbove    = 60
	mediumRiskAbove  = 30
	requires3DSAbove = 40
	insightAbove     = 30
	maxScore         = 100
)

func assess(req entities.PaymentRequest) entities.RiskAssessment {
	score := 0
	var reasons []string

	if req.Amount > largeAmountThreshold {
		score += largeAmountScore
		reasons = append(reasons, "large amount")
	}
	if req.UserHistory == 0 {
		score += newUserScore
		reasons = append(reasons, "new user")
	}
	if req.IPCountry != req.CardCountry {
		score += crossBorderScore
		reasons = append(reasons, "cross-border")
	}

	a := entities.RiskAssessment{
		Requires3DS: score > requires3DSAbove,
		Reasons:     reasons,
	}
	if score > insightAbove {
		a.LLMInsight = insight(score, reasons)
	}
	if score > maxScore {
		score = maxScore
	}
	a.RiskScore = score

	switch {
	case score > highRiskAbove:
		a.RiskLevel = "HIGH"
	case score > mediumRiskAbove:
		a.RiskLevel = "MEDIUM"
	default:
		a.RiskLevel = "LOW"
	}
	return a
}

// insight reproduces the engine's fallback analysis text.
func insight(score int, reasons []string) string {
	advice := "routine handling"
	if score > 50 {
		advice = "enhanced monitoring"
	}
	return fmt.Sprintf("Transaction scored %d; main risk factors: %s. Recommended: %s.",
		score, strings.Join(reasons, ", "), advice)
}
