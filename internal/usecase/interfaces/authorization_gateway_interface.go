package interfaces

import (
	"context"

	"smartcheckout/internal/domain/entities"
)

// IAuthorizationGateway abstracts the external risk engine's authorization
// decision for a card submission. The engine's internals (rule tables, LLM
// insight generation) are out of scope; only the response contract is consumed.
type IAuthorizationGateway interface {
	Authorize(ctx context.Context, req entities.PaymentRequest) (entities.AuthorizationResult, error)
}
