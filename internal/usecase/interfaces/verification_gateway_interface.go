package interfaces

import (
	"context"

	"smartcheckout/internal/domain/entities"
)

// IVerificationGateway abstracts the bank-side 3-D-Secure code check.
type IVerificationGateway interface {
	VerifyCode(ctx context.Context, req entities.VerificationRequest) (entities.VerificationResult, error)
}
