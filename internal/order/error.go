package order

import "errors"

var (
	ErrInvalidAmount       = errors.New("amount must be a positive integer")
	ErrOrderCreationFailed = errors.New("order creation failed")
)
