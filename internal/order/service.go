package order

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fastpay-be/internal/logger"
	"fastpay-be/internal/payment"
)

type Service interface {
	CreateOrder(ctx context.Context, amountMinorUnits int64) (*payment.Order, error)
	GetOrder(ctx context.Context, orderID string) (*payment.Order, error)
}

type service struct {
	gateway  payment.Gateway
	currency string
}

func NewService(gateway payment.Gateway, currency string) Service {
	return &service{
		gateway:  gateway,
		currency: currency,
	}
}

// CreateOrder validates the amount and registers an order with the provider.
// Amounts are in minor currency units (paise for INR).
func (s *service) CreateOrder(ctx context.Context, amountMinorUnits int64) (*payment.Order, error) {
	if amountMinorUnits <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidAmount, amountMinorUnits)
	}

	receipt := "rcpt_" + uuid.New().String()

	ord, err := s.gateway.CreateOrder(ctx, amountMinorUnits, s.currency, receipt)
	if err != nil {
		logger.FromCtx(ctx).Error("gateway rejected order",
			zap.Int64("amount", amountMinorUnits),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrOrderCreationFailed, err)
	}

	return ord, nil
}

// GetOrder looks up an order on the provider.
func (s *service) GetOrder(ctx context.Context, orderID string) (*payment.Order, error) {
	ord, err := s.gateway.FetchOrder(ctx, orderID)
	if err != nil {
		logger.FromCtx(ctx).Error("order lookup failed",
			zap.String("order_id", orderID),
			zap.Error(err),
		)
		return nil, err
	}
	return ord, nil
}
