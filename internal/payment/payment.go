package payment

import (
	"context"
)

// Gateway wraps the payment provider's API. Implementations hold immutable
// credentials and no other state, so a single instance is safe to share
// across requests.
type Gateway interface {
	CreateOrder(ctx context.Context, amountMinorUnits int64, currency, receipt string) (*Order, error)
	FetchOrder(ctx context.Context, orderID string) (*Order, error)
	FetchPayment(ctx context.Context, paymentID string) (*Payment, error)
	ExpectedSignature(orderID, paymentID string) string
	KeyID() string
}
