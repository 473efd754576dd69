package payment

import (
	"time"
)

// Order is the provider-side record of an intended payment, keyed by an
// opaque provider-assigned id.
type Order struct {
	ID               string    `json:"orderId"`
	AmountMinorUnits int64     `json:"amount"`
	Currency         string    `json:"currency"`
	Receipt          string    `json:"receipt,omitempty"`
	Status           string    `json:"status,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// Payment is the provider-side record of a completed checkout attempt.
type Payment struct {
	ID               string    `json:"paymentId"`
	OrderID          string    `json:"orderId"`
	AmountMinorUnits int64     `json:"amount"`
	Currency         string    `json:"currency"`
	Status           string    `json:"status"`
	Method           string    `json:"method,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}
