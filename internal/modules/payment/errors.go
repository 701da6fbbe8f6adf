package payment

import "errors"

var (
	// ErrNotConfigured means no gateway credentials were provisioned. The
	// caller branches to a "pay later" flow instead of failing the booking.
	ErrNotConfigured = errors.New("payment gateway not configured")
	ErrInvalidAmount = errors.New("invalid payment amount")
	ErrGateway       = errors.New("payment gateway error")
)
