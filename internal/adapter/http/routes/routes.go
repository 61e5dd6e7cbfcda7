package routes

import (
	"smartcheckout/internal/adapter/http/handlers"
	"smartcheckout/internal/config"
	"smartcheckout/internal/infrastructure/ids"
	"smartcheckout/internal/infrastructure/risk"
	"smartcheckout/internal/infrastructure/timers"
	"smartcheckout/internal/usecase"
	"smartcheckout/pkg/logging"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg := config.Load()

	setMiddlewares()

	router.GET("/health", handlers.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes(cfg)

	logging.Info("smart-checkout starting",
		zap.String("port", cfg.Port),
		zap.Bool("risk_engine_mock", cfg.RiskEngineMock),
	)
	if err := router.Run(":" + cfg.Port); err != nil {
		logging.Fatal("Failed to startup the application", zap.Error(err))
	}
}

func getRoutes(cfg *config.Config) {
	authorizer := risk.NewAuthorizationGateway(cfg.RiskEngineURL, cfg.RiskEngineMock)
	verifier := risk.NewVerificationGateway(cfg.RiskEngineURL, cfg.RiskEngineMock)

	checkoutUseCase := usecase.NewCheckoutUseCase(authorizer, verifier, timers.New(), ids.New(), usecase.Config{
		ChallengeDeadlineSeconds: cfg.ChallengeDeadlineSeconds,
		WalletDeadlineSeconds:    cfg.WalletDeadlineSeconds,
		WalletConfirmSeconds:     cfg.WalletConfirmSeconds,
	})

	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCheckoutRoutes(v1, checkoutHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logging.Error("Recovered from panic", zap.Any("recovered", recovered))
		c.AbortWithStatus(500)
	}))
}
