package payment

import "fmt"

// GatewayError reports an upstream provider failure. The wrapped error may
// contain provider detail and must not be echoed to clients.
type GatewayError struct {
	Op  string
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("razorpay %s: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}
