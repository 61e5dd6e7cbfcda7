package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"smartcheckout/internal/domain/entities"
	"smartcheckout/internal/infrastructure/monitoring"
	"smartcheckout/internal/usecase/interfaces"
	"smartcheckout/pkg/logging"

	"go.uber.org/zap"
)

var (
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrUnsupportedRail       = errors.New("unsupported payment method")
	ErrInvalidCardNumber     = errors.New("invalid card number")
	ErrInvalidCardExpiry     = errors.New("invalid card expiry")
	ErrInvalidCVV            = errors.New("invalid cvv")
	ErrAttemptNotFound       = errors.New("checkout attempt not found")
	ErrNoActiveChallenge     = errors.New("no active verification challenge")
	ErrNoActiveQR            = errors.New("no active qr confirmation")
	ErrVerificationInFlight  = errors.New("verification already in flight")
	ErrGatewayNotConfigured  = errors.New("authorization gateway not configured")
	ErrVerifierNotConfigured = errors.New("verification gateway not configured")
)

// transportErrorMessage masks collaborator transport failures; collaborator
// -reported messages are passed through verbatim instead.
const transportErrorMessage = "Network error, please try again later"

// Config carries the flow deadlines. WalletConfirmSeconds at or beyond
// WalletDeadlineSeconds makes the QR expiry branch reachable.
type Config struct {
	ChallengeDeadlineSeconds int
	WalletDeadlineSeconds    int
	WalletConfirmSeconds     int
}

// walletSuccessRiskScore is the fixed low score attached to a confirmed
// out-of-band wallet payment; wallets never go through the risk engine.
const walletSuccessRiskScore = 15

// resolvedAttemptTTL bounds how long a terminal result stays queryable. Live
// attempts (open challenge or QR) are never evicted.
const resolvedAttemptTTL = 10 * time.Minute

// ICheckoutUseCase is the risk-gated submission controller: it routes a
// submitted payment to its rail, owns the step-up and QR flows it spawns, and
// exposes a single visible surface per attempt.

type ICheckoutUseCase interface {
	Submit(ctx context.Context, req entities.PaymentRequest) (entities.AttemptView, error)
	SubmitCode(ctx context.Context, attemptID, code string) (CodeOutcome, entities.AttemptView, error)
	CancelChallenge(attemptID string) (entities.AttemptView, error)
	CloseQR(attemptID string) (entities.AttemptView, error)
	View(attemptID string) (entities.AttemptView, error)
}

type CheckoutUseCase struct {
	authorizer interfaces.IAuthorizationGateway
	verifier   interfaces.IVerificationGateway
	timers     interfaces.ITimerService
	ids        interfaces.IIDGenerator
	cfg        Config
	now        func() time.Time

	mu       sync.Mutex
	attempts map[string]*attempt
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

// attempt is one checkout attempt. Exactly one of the surface-bearing members
// (poll, session, result) is live at a time; surface names which one.
type attempt struct {
	id         string
	request    entities.PaymentRequest
	surface    entities.Surface
	poll       *walletPoll
	session    *verificationSession
	result     *entities.TerminalResult
	resolvedAt time.Time
}

func NewCheckoutUseCase(authorizer interfaces.IAuthorizationGateway, verifier interfaces.IVerificationGateway, timers interfaces.ITimerService, ids interfaces.IIDGenerator, cfg Config) *CheckoutUseCase {
	if cfg.ChallengeDeadlineSeconds <= 0 {
		cfg.ChallengeDeadlineSeconds = 300
	}
	if cfg.WalletDeadlineSeconds <= 0 {
		cfg.WalletDeadlineSeconds = 300
	}
	if cfg.WalletConfirmSeconds <= 0 {
		cfg.WalletConfirmSeconds = 5
	}
	return &CheckoutUseCase{
		authorizer: authorizer,
		verifier:   verifier,
		timers:     timers,
		ids:        ids,
		cfg:        cfg,
		now:        time.Now,
		attempts:   map[string]*attempt{},
	}
}

// Submit validates the request, routes it to its rail and returns the first
// surface emission for the new attempt. The authorization collaborator is
// called exactly once per card submission; validation failures never reach it.
func (u *CheckoutUseCase) Submit(ctx context.Context, req entities.PaymentRequest) (entities.AttemptView, error) {
	if err := validateRequest(req); err != nil {
		logging.Info("checkout submit rejected", zap.String("payment_method", string(req.Rail)), zap.Error(err))
		monitoring.Submissions.WithLabelValues(string(req.Rail), "validation_error").Inc()
		return entities.AttemptView{}, err
	}

	if req.Rail.Wallet() {
		return u.startWalletAttempt(req)
	}
	return u.authorizeCardAttempt(ctx, req)
}

func validateRequest(req entities.PaymentRequest) error {
	if req.Amount <= 0 {
		return ErrInvalidAmount
	}
	if !req.Rail.Valid() {
		return ErrUnsupportedRail
	}
	if req.Rail != entities.RailCreditCard {
		return nil
	}
	if len(strings.TrimSpace(req.CardNumber)) < 13 {
		return ErrInvalidCardNumber
	}
	if strings.TrimSpace(req.CardExpiryMonth) == "" || strings.TrimSpace(req.CardExpiryYear) == "" {
		return ErrInvalidCardExpiry
	}
	if len(strings.TrimSpace(req.CardCVV)) < 3 {
		return ErrInvalidCVV
	}
	return nil
}

func (u *CheckoutUseCase) authorizeCardAttempt(ctx context.Context, req entities.PaymentRequest) (entities.AttemptView, error) {
	if u.authorizer == nil {
		return entities.AttemptView{}, ErrGatewayNotConfigured
	}

	logging.Info("checkout authorize start", zap.Float64("amount", req.Amount))
	res, err := u.authorizer.Authorize(ctx, req)

	u.mu.Lock()
	defer u.mu.Unlock()
	u.evictResolvedLocked(u.now())

	att := &attempt{id: u.ids.AttemptID(), request: req}
	u.attempts[att.id] = att

	switch {
	case err != nil:
		logging.Error("checkout authorize transport failure", zap.String("attempt_id", att.id), zap.Error(err))
		att.resolve(entities.TerminalResult{Status: entities.TerminalStatusError, Message: transportErrorMessage}, u.now())
		monitoring.Submissions.WithLabelValues(string(req.Rail), "transport_error").Inc()
	case res.Status == entities.AuthorizationStatusSuccess:
		logging.Info("checkout authorized", zap.String("attempt_id", att.id), zap.String("transaction_id", res.TransactionID), zap.Int("risk_score", res.Risk.RiskScore))
		att.resolve(entities.TerminalResult{
			Status:        entities.TerminalStatusSuccess,
			TransactionID: res.TransactionID,
			RiskScore:     res.Risk.RiskScore,
			Insight:       res.Risk.LLMInsight,
			Message:       res.Message,
		}, u.now())
		monitoring.Submissions.WithLabelValues(string(req.Rail), "success").Inc()
	case res.Status == entities.AuthorizationStatusPending3DS:
		u.openChallengeLocked(att, req, res.Risk)
		monitoring.Submissions.WithLabelValues(string(req.Rail), "pending_3ds").Inc()
	default:
		logging.Warn("checkout declined", zap.String("attempt_id", att.id), zap.String("message", res.Message))
		att.resolve(entities.TerminalResult{Status: entities.TerminalStatusError, RiskScore: res.Risk.RiskScore, Insight: res.Risk.LLMInsight, Message: res.Message}, u.now())
		monitoring.Submissions.WithLabelValues(string(req.Rail), "declined").Inc()
	}

	return att.view(), nil
}

// resolve pins the attempt to its immutable terminal result. at starts the
// retention clock.
func (a *attempt) resolve(res entities.TerminalResult, at time.Time) {
	a.result = &res
	a.surface = entities.SurfaceResult
	a.poll = nil
	a.session = nil
	a.resolvedAt = at
}

// evictResolvedLocked drops terminal results older than resolvedAttemptTTL so
// the registry stays bounded under sustained traffic. Caller holds the lock.
func (u *CheckoutUseCase) evictResolvedLocked(now time.Time) {
	for id, att := range u.attempts {
		if att.result != nil && now.Sub(att.resolvedAt) > resolvedAttemptTTL {
			delete(u.attempts, id)
		}
	}
}

func (a *attempt) view() entities.AttemptView {
	v := entities.AttemptView{AttemptID: a.id, Surface: a.surface}
	switch a.surface {
	case entities.SurfaceQR:
		qr := a.poll.view()
		v.QR = &qr
	case entities.SurfaceChallenge:
		ch := a.session.view(a.request.Amount)
		v.Challenge = &ch
	case entities.SurfaceResult:
		res := *a.result
		v.Result = &res
	}
	return v
}

// View returns the current surface snapshot for an attempt. It is a pure
// projection; it never advances state.
func (u *CheckoutUseCase) View(attemptID string) (entities.AttemptView, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	att, ok := u.attempts[attemptID]
	if !ok {
		return entities.AttemptView{}, ErrAttemptNotFound
	}
	return att.view(), nil
}
