package usecase

import (
	"smartcheckout/internal/domain/entities"
	"smartcheckout/internal/infrastructure/monitoring"
	"smartcheckout/internal/usecase/interfaces"
	"smartcheckout/pkg/logging"

	"go.uber.org/zap"
)

// walletPoll emulates the out-of-band confirmation of a QR payment. There is
// no real polling channel: a scheduled confirmation task stands in for the
// payment-network callback. Both the countdown and the confirmation task are
// tagged with instanceID so a late firing cannot touch a discarded instance.
type walletPoll struct {
	instanceID string
	rail       entities.Rail
	amount     float64
	remaining  int
	status     entities.WalletPollStatus
	timer      interfaces.ITimerHandle
	confirm    interfaces.ITimerHandle
}

func (p *walletPoll) view() entities.QRView {
	return entities.QRView{
		Amount:           p.amount,
		Rail:             p.rail,
		RemainingSeconds: p.remaining,
		Status:           p.status,
	}
}

func (p *walletPoll) stopTasks() {
	p.timer.Cancel()
	p.confirm.Cancel()
}

// startWalletAttempt opens a QR surface with a countdown and schedules the
// mock confirmation. The call returns immediately; resolution happens through
// the scheduled callbacks.
func (u *CheckoutUseCase) startWalletAttempt(req entities.PaymentRequest) (entities.AttemptView, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.evictResolvedLocked(u.now())

	att := &attempt{id: u.ids.AttemptID(), request: req}
	p := &walletPoll{
		instanceID: u.ids.AttemptID(),
		rail:       req.Rail,
		amount:     req.Amount,
		remaining:  u.cfg.WalletDeadlineSeconds,
		status:     entities.WalletPollPending,
	}
	att.poll = p
	att.surface = entities.SurfaceQR
	u.attempts[att.id] = att

	attemptID, instanceID := att.id, p.instanceID
	p.timer = u.timers.Start(u.cfg.WalletDeadlineSeconds,
		func(remaining int) { u.onWalletTick(attemptID, instanceID, remaining) },
		func() { u.onWalletExpired(attemptID, instanceID) },
	)
	p.confirm = u.timers.Start(u.cfg.WalletConfirmSeconds, nil,
		func() { u.onWalletConfirmed(attemptID, instanceID) },
	)

	monitoring.Submissions.WithLabelValues(string(req.Rail), "qr_opened").Inc()
	logging.Info("qr confirmation started",
		zap.String("attempt_id", att.id),
		zap.String("payment_method", string(req.Rail)),
		zap.Float64("amount", req.Amount),
	)
	return att.view(), nil
}

// pollFor resolves the live poll for a callback, dropping stale ones. Caller
// holds the controller lock.
func (u *CheckoutUseCase) pollFor(attemptID, instanceID string) (*attempt, *walletPoll) {
	att, ok := u.attempts[attemptID]
	if !ok || att.poll == nil || att.poll.instanceID != instanceID {
		return nil, nil
	}
	return att, att.poll
}

func (u *CheckoutUseCase) onWalletTick(attemptID, instanceID string, remaining int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, p := u.pollFor(attemptID, instanceID); p != nil {
		p.remaining = remaining
	}
}

func (u *CheckoutUseCase) onWalletExpired(attemptID, instanceID string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	att, p := u.pollFor(attemptID, instanceID)
	if p == nil || p.status != entities.WalletPollPending {
		return
	}
	p.status = entities.WalletPollExpired
	p.stopTasks()
	att.resolve(entities.TerminalResult{
		Status:  entities.TerminalStatusExpired,
		Message: "Payment expired, please start a new payment",
	}, u.now())
	monitoring.WalletOutcomes.WithLabelValues("expired").Inc()
	logging.Info("qr confirmation expired", zap.String("attempt_id", attemptID))
}

func (u *CheckoutUseCase) onWalletConfirmed(attemptID, instanceID string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	att, p := u.pollFor(attemptID, instanceID)
	if p == nil || p.status != entities.WalletPollPending {
		return
	}
	p.status = entities.WalletPollSuccess
	p.stopTasks()
	att.resolve(entities.TerminalResult{
		Status:        entities.TerminalStatusSuccess,
		TransactionID: u.ids.TransactionID(p.rail.TransactionPrefix()),
		RiskScore:     walletSuccessRiskScore,
		Message:       "Payment confirmed",
	}, u.now())
	monitoring.WalletOutcomes.WithLabelValues("success").Inc()
	logging.Info("qr confirmation succeeded",
		zap.String("attempt_id", attemptID),
		zap.String("transaction_id", att.result.TransactionID),
	)
}

// CloseQR discards a pending QR confirmation without a terminal result,
// returning the buyer to the form. A resolved instance cannot be discarded.
func (u *CheckoutUseCase) CloseQR(attemptID string) (entities.AttemptView, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	att, ok := u.attempts[attemptID]
	if !ok {
		return entities.AttemptView{}, ErrAttemptNotFound
	}
	if att.poll == nil {
		return att.view(), ErrNoActiveQR
	}

	att.poll.stopTasks()
	att.poll = nil
	att.surface = entities.SurfaceForm
	monitoring.WalletOutcomes.WithLabelValues("discarded").Inc()
	logging.Info("qr confirmation discarded", zap.String("attempt_id", attemptID))
	return att.view(), nil
}
