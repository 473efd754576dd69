package verification

import (
	"context"
	"crypto/hmac"

	"go.uber.org/zap"

	"fastpay-be/internal/logger"
	"fastpay-be/internal/order"
	"fastpay-be/internal/payment"
)

// PaymentClaim is what the frontend submits after the hosted checkout
// completes. None of it is trusted until the signature checks out.
type PaymentClaim struct {
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId"`
	Signature string `json:"signature"`
}

type Result struct {
	Valid  bool         `json:"valid"`
	Status order.Status `json:"status"`
}

type Service interface {
	Verify(ctx context.Context, claim PaymentClaim) Result
}

type service struct {
	gateway payment.Gateway
}

func NewService(gateway payment.Gateway) Service {
	return &service{gateway: gateway}
}

// Verify recomputes the provider signature for the claim and compares it in
// constant time. A mismatch is a negative result, never an error.
func (s *service) Verify(ctx context.Context, claim PaymentClaim) Result {
	expected := s.gateway.ExpectedSignature(claim.OrderID, claim.PaymentID)
	valid := hmac.Equal([]byte(expected), []byte(claim.Signature))

	log := logger.FromCtx(ctx).With(
		zap.String("order_id", claim.OrderID),
		zap.String("payment_id", claim.PaymentID),
	)
	if valid {
		log.Info("payment verified")
	} else {
		log.Warn("payment signature mismatch")
	}

	return Result{Valid: valid, Status: order.Outcome(valid)}
}
