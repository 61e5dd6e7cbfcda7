package routes

import (
	"smartcheckout/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCheckout = "/checkout"
)

func addCheckoutRoutes(rg *gin.RouterGroup, checkoutHandler *handlers.CheckoutHandler) {
	checkout := rg.Group(PathCheckout)
	{
		checkout.POST("", checkoutHandler.Submit)
		checkout.GET("/:attempt_id", checkoutHandler.GetAttempt)
		checkout.POST("/:attempt_id/verify", checkoutHandler.VerifyCode)
		checkout.POST("/:attempt_id/cancel", checkoutHandler.CancelChallenge)
		checkout.DELETE("/:attempt_id/qr", checkoutHandler.CloseQR)
	}
}
