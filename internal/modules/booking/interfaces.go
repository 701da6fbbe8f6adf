package booking

import (
	"context"

	"github.com/shopspring/decimal"

	"lawncare/internal/domain"
)

// Notifier receives created records after they are stored. Implementations
// must not block the caller.
type Notifier interface {
	BookingCreated(b *domain.Booking)
}

// PaymentIntents reserves a charge with the payment gateway and returns the
// client secret for the payment UI.
type PaymentIntents interface {
	CreateIntent(ctx context.Context, amount decimal.Decimal, bookingID string) (string, error)
}
