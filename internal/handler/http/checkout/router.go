package checkout_http

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"fastpay-be/internal/order"
	"fastpay-be/internal/payment"
	"fastpay-be/internal/verification"
)

func RegisterRoutes(r chi.Router, orders order.Service, verifier verification.Service, gateway payment.Gateway, l *zap.Logger) {
	handler := NewCheckoutHandler(orders, verifier, gateway, l.With(zap.String("component", "CheckoutHTTPHandler")))

	r.Get("/", handler.CheckoutPageHandler)
	r.Get("/health", handler.HealthHandler)

	r.Post("/create-order", handler.CreateOrderHandler)
	r.Post("/verify-payment", handler.VerifyPaymentHandler)

	r.Route("/orders", func(r chi.Router) {
		r.Get("/{orderID}", handler.GetOrderHandler)
	})
	r.Route("/payments", func(r chi.Router) {
		r.Get("/{paymentID}", handler.GetPaymentHandler)
	})
}
