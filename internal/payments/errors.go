package payments

import "fmt"

// GatewayError is returned when the payment provider rejected or could not
// process a call. Message carries the provider's own description so it can
// be surfaced to the caller; nothing is retried.
type GatewayError struct {
	Op      string
	Code    string
	Message string
	Err     error
}

func (e *GatewayError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return fmt.Sprintf("razorpay %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("razorpay %s failed", e.Op)
}

func (e *GatewayError) Unwrap() error { return e.Err }
