package usecase

import (
	"context"
	"regexp"
	"time"

	"smartcheckout/internal/domain/entities"
	"smartcheckout/internal/infrastructure/monitoring"
	"smartcheckout/internal/usecase/interfaces"
	"smartcheckout/pkg/logging"

	"go.uber.org/zap"
)

const challengeMaxAttempts = 3

var codePattern = regexp.MustCompile(`^[0-9]{6}$`)

// CodeOutcome classifies one SubmitCode call.

type CodeOutcome string

const (
	CodeOutcomeAccepted          CodeOutcome = "accepted"
	CodeOutcomeInvalidFormat     CodeOutcome = "invalid_format"
	CodeOutcomeAttemptsExhausted CodeOutcome = "attempts_exhausted"
	CodeOutcomeExpired           CodeOutcome = "expired"
	CodeOutcomeFailed            CodeOutcome = "failed"
	CodeOutcomeNetworkError      CodeOutcome = "network_error"
	// CodeOutcomeDiscarded means the owning session was cancelled or expired
	// while the collaborator call was in flight; the response was dropped.
	CodeOutcomeDiscarded CodeOutcome = "discarded"
)

// verificationSession holds one 3-D-Secure challenge's mutable state. It is
// owned exclusively by the controller and destroyed when it resolves.
// instanceID correlates timer and collaborator callbacks: anything arriving
// after the session was replaced or destroyed is dropped.
type verificationSession struct {
	instanceID    string
	transactionID string
	cardNumber    string
	riskScore     int
	insight       string
	attemptsUsed  int
	deadline      time.Time
	remaining     int
	expired       bool
	verifying     bool
	lastMessage   string
	timer         interfaces.ITimerHandle
}

func (s *verificationSession) exhausted() bool {
	return s.attemptsUsed >= challengeMaxAttempts
}

func (s *verificationSession) view(amount float64) entities.ChallengeView {
	return entities.ChallengeView{
		TransactionID:     s.transactionID,
		Amount:            amount,
		RemainingSeconds:  s.remaining,
		AttemptsUsed:      s.attemptsUsed,
		MaxAttempts:       challengeMaxAttempts,
		AttemptsExhausted: s.exhausted(),
		Expired:           s.expired,
		Message:           s.lastMessage,
	}
}

// openChallengeLocked creates the step-up session for an attempt flagged by
// the risk engine and moves the visible surface to the challenge. Caller holds
// the controller lock.
func (u *CheckoutUseCase) openChallengeLocked(att *attempt, req entities.PaymentRequest, risk entities.RiskAssessment) {
	s := &verificationSession{
		instanceID:    u.ids.AttemptID(),
		transactionID: u.ids.TransactionID("3DS"),
		cardNumber:    req.CardNumber,
		riskScore:     risk.RiskScore,
		insight:       risk.LLMInsight,
		deadline:      u.now().Add(time.Duration(u.cfg.ChallengeDeadlineSeconds) * time.Second),
		remaining:     u.cfg.ChallengeDeadlineSeconds,
	}
	att.session = s
	att.surface = entities.SurfaceChallenge

	attemptID, instanceID := att.id, s.instanceID
	s.timer = u.timers.Start(u.cfg.ChallengeDeadlineSeconds,
		func(remaining int) { u.onChallengeTick(attemptID, instanceID, remaining) },
		func() { u.onChallengeExpired(attemptID, instanceID) },
	)

	logging.Info("3ds challenge opened",
		zap.String("attempt_id", att.id),
		zap.String("transaction_id", s.transactionID),
		zap.Int("risk_score", risk.RiskScore),
	)
}

// sessionFor resolves the live session for a callback, dropping stale ones.
// Caller holds the controller lock.
func (u *CheckoutUseCase) sessionFor(attemptID, instanceID string) (*attempt, *verificationSession) {
	att, ok := u.attempts[attemptID]
	if !ok || att.session == nil || att.session.instanceID != instanceID {
		return nil, nil
	}
	return att, att.session
}

func (u *CheckoutUseCase) onChallengeTick(attemptID, instanceID string, remaining int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, s := u.sessionFor(attemptID, instanceID); s != nil {
		s.remaining = remaining
	}
}

func (u *CheckoutUseCase) onChallengeExpired(attemptID, instanceID string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	_, s := u.sessionFor(attemptID, instanceID)
	if s == nil || s.expired {
		return
	}
	s.expired = true
	s.remaining = 0
	s.lastMessage = "Verification code expired, please start a new payment"
	monitoring.ChallengeOutcomes.WithLabelValues("expired").Inc()
	logging.Info("3ds challenge expired", zap.String("attempt_id", attemptID), zap.String("transaction_id", s.transactionID))
}

// SubmitCode runs one challenge code through the verification collaborator.
// Attempt-cap, deadline and format violations are rejected locally before any
// network call. Transport failures do not count against the attempt cap.
func (u *CheckoutUseCase) SubmitCode(ctx context.Context, attemptID, code string) (CodeOutcome, entities.AttemptView, error) {
	if u.verifier == nil {
		return "", entities.AttemptView{}, ErrVerifierNotConfigured
	}

	u.mu.Lock()
	att, ok := u.attempts[attemptID]
	if !ok {
		u.mu.Unlock()
		return "", entities.AttemptView{}, ErrAttemptNotFound
	}
	s := att.session
	if s == nil {
		view := att.view()
		u.mu.Unlock()
		return "", view, ErrNoActiveChallenge
	}
	if s.verifying {
		view := att.view()
		u.mu.Unlock()
		return "", view, ErrVerificationInFlight
	}

	switch {
	case s.exhausted():
		s.lastMessage = "Verification attempts exhausted, please start a new payment"
		view := att.view()
		u.mu.Unlock()
		return CodeOutcomeAttemptsExhausted, view, nil
	case s.expired || !u.now().Before(s.deadline):
		s.expired = true
		s.remaining = 0
		s.lastMessage = "Verification code expired, please start a new payment"
		view := att.view()
		u.mu.Unlock()
		return CodeOutcomeExpired, view, nil
	case !codePattern.MatchString(code):
		s.lastMessage = "Please enter the 6-digit verification code"
		view := att.view()
		u.mu.Unlock()
		return CodeOutcomeInvalidFormat, view, nil
	}

	s.verifying = true
	vreq := entities.VerificationRequest{
		TransactionID:    s.transactionID,
		VerificationCode: code,
		CardNumber:       s.cardNumber,
	}
	instanceID := s.instanceID
	u.mu.Unlock()

	res, err := u.verifier.VerifyCode(ctx, vreq)

	u.mu.Lock()
	defer u.mu.Unlock()

	att, s = u.sessionFor(attemptID, instanceID)
	if s == nil {
		// Session was cancelled while the collaborator call was in flight;
		// the late response must not resurrect it.
		logging.Warn("late verification response discarded", zap.String("attempt_id", attemptID))
		if current, ok := u.attempts[attemptID]; ok {
			return CodeOutcomeDiscarded, current.view(), nil
		}
		return CodeOutcomeDiscarded, entities.AttemptView{}, nil
	}
	s.verifying = false

	if s.expired {
		// Deadline elapsed mid-call; the answer no longer matters.
		return CodeOutcomeExpired, att.view(), nil
	}

	switch {
	case err != nil:
		s.lastMessage = transportErrorMessage
		monitoring.ChallengeOutcomes.WithLabelValues("network_error").Inc()
		logging.Error("3ds verification transport failure", zap.String("attempt_id", attemptID), zap.Error(err))
		return CodeOutcomeNetworkError, att.view(), nil
	case res.Success:
		transactionID := res.TransactionID
		if transactionID == "" {
			transactionID = s.transactionID
		}
		s.timer.Cancel()
		att.resolve(entities.TerminalResult{
			Status:        entities.TerminalStatusSuccess,
			TransactionID: transactionID,
			RiskScore:     s.riskScore,
			Insight:       s.insight,
			Message:       res.Message,
		}, u.now())
		monitoring.ChallengeOutcomes.WithLabelValues("success").Inc()
		logging.Info("3ds challenge resolved", zap.String("attempt_id", attemptID), zap.String("transaction_id", transactionID))
		return CodeOutcomeAccepted, att.view(), nil
	default:
		s.attemptsUsed++
		s.lastMessage = res.Message
		if s.lastMessage == "" {
			s.lastMessage = "Verification failed, please retry"
		}
		if s.exhausted() {
			s.lastMessage = "Verification attempts exhausted, please start a new payment"
			monitoring.ChallengeOutcomes.WithLabelValues("attempts_exhausted").Inc()
		}
		logging.Info("3ds code rejected",
			zap.String("attempt_id", attemptID),
			zap.Int("attempts_used", s.attemptsUsed),
		)
		return CodeOutcomeFailed, att.view(), nil
	}
}

// CancelChallenge abandons the step-up. The session is destroyed and the
// attempt resolves to a cancelled terminal result with no transaction id.
func (u *CheckoutUseCase) CancelChallenge(attemptID string) (entities.AttemptView, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	att, ok := u.attempts[attemptID]
	if !ok {
		return entities.AttemptView{}, ErrAttemptNotFound
	}
	if att.session == nil {
		return att.view(), ErrNoActiveChallenge
	}

	att.session.timer.Cancel()
	att.resolve(entities.TerminalResult{
		Status:  entities.TerminalStatusCancelled,
		Message: "3-D-Secure verification cancelled",
	}, u.now())
	monitoring.ChallengeOutcomes.WithLabelValues("cancelled").Inc()
	logging.Info("3ds challenge cancelled", zap.String("attempt_id", attemptID))
	return att.view(), nil
}
