package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"fastpay-be/internal/config"
	checkout_http "fastpay-be/internal/handler/http/checkout"
	"fastpay-be/internal/logger"
	"fastpay-be/internal/middleware"
	"fastpay-be/internal/order"
	"fastpay-be/internal/payment"
	"fastpay-be/internal/verification"
)

// startServerFunc is swappable in tests.
var startServerFunc = http.ListenAndServe

func newServer(cfg *config.Config) http.Handler {
	gateway := payment.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	orderSvc := order.NewService(gateway, cfg.Currency)
	verifySvc := verification.NewService(gateway)

	r := chi.NewRouter()
	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(middleware.RateLimitMiddleware)

	checkout_http.RegisterRoutes(r, orderSvc, verifySvc, gateway, logger.L())

	return r
}

func run() error {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	router := newServer(cfg)

	logger.L().Info("🚀 checkout server listening", zap.String("port", cfg.AppPort))
	return startServerFunc(":"+cfg.AppPort, router)
}

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
