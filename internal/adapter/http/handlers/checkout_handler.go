package handlers

import (
	"errors"
	"net/http"

	"smartcheckout/internal/adapter/http/dto/request"
	"smartcheckout/internal/adapter/http/dto/response"
	"smartcheckout/internal/usecase"
	"smartcheckout/pkg"
	"smartcheckout/pkg/logging"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckoutHandler exposes the submission controller over HTTP. It is a
// passive renderer adapter: every response body is a surface emission.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// Submit handles POST /v1/checkout.
func (h *CheckoutHandler) Submit(c *gin.Context) {
	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	view, err := h.usecase.Submit(c.Request.Context(), req.ToPaymentRequest())
	if err != nil {
		logging.Info("checkout submit failed", zap.Error(err))
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAttemptView(view))
}

// GetAttempt handles GET /v1/checkout/:attempt_id.
func (h *CheckoutHandler) GetAttempt(c *gin.Context) {
	view, err := h.usecase.View(c.Param("attempt_id"))
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAttemptView(view))
}

// VerifyCode handles POST /v1/checkout/:attempt_id/verify.
func (h *CheckoutHandler) VerifyCode(c *gin.Context) {
	var req request.VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	outcome, view, err := h.usecase.SubmitCode(c.Request.Context(), c.Param("attempt_id"), req.VerificationCode)
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.VerifyCodeResponse{
		Outcome: string(outcome),
		Attempt: response.FromAttemptView(view),
	})
}

// CancelChallenge handles POST /v1/checkout/:attempt_id/cancel.
func (h *CheckoutHandler) CancelChallenge(c *gin.Context) {
	view, err := h.usecase.CancelChallenge(c.Param("attempt_id"))
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAttemptView(view))
}

// CloseQR handles DELETE /v1/checkout/:attempt_id/qr.
func (h *CheckoutHandler) CloseQR(c *gin.Context) {
	view, err := h.usecase.CloseQR(c.Param("attempt_id"))
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAttemptView(view))
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Amount must be a positive number", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnsupportedRail):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_PAYMENT_METHOD", "Unsupported payment method", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCardNumber):
		return pkg.NewDomainErrorSimple("INVALID_CARD_NUMBER", "Card number must have at least 13 digits", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCardExpiry):
		return pkg.NewDomainErrorSimple("INVALID_CARD_EXPIRY", "Card expiry month and year are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCVV):
		return pkg.NewDomainErrorSimple("INVALID_CVV", "CVV must have at least 3 digits", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAttemptNotFound):
		return pkg.NewDomainErrorSimple("ATTEMPT_NOT_FOUND", "Checkout attempt not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoActiveChallenge):
		return pkg.NewDomainErrorSimple("NO_ACTIVE_CHALLENGE", "No verification challenge is active for this attempt", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoActiveQR):
		return pkg.NewDomainErrorSimple("NO_ACTIVE_QR", "No QR confirmation is active for this attempt", http.StatusConflict)
	case errors.Is(err, usecase.ErrVerificationInFlight):
		return pkg.NewDomainErrorSimple("VERIFICATION_IN_FLIGHT", "A verification is already in flight", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
