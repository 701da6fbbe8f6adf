package payment

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	stripeclient "github.com/stripe/stripe-go/v82/client"
	"go.uber.org/zap"
)

// Service reserves charges against the payment gateway. It never mutates
// booking state; confirming a payment goes back through the store.
type Service struct {
	gateway  intentCreator
	currency string
	log      *zap.Logger
}

// NewService builds the orchestrator. An empty secret key leaves the gateway
// nil and every CreateIntent call returns ErrNotConfigured without any
// external call.
func NewService(secretKey, currency string, timeout time.Duration, log *zap.Logger) *Service {
	s := &Service{currency: currency, log: log}
	if secretKey == "" {
		log.Warn("stripe secret key not set, payment intents disabled")
		return s
	}

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		HTTPClient: &http.Client{Timeout: timeout},
	})
	sc := stripeclient.New(secretKey, &stripe.Backends{
		API:     backend,
		Connect: backend,
		Uploads: backend,
	})
	s.gateway = sc.PaymentIntents
	return s
}

// newServiceWithGateway is the test seam.
func newServiceWithGateway(gateway intentCreator, currency string, log *zap.Logger) *Service {
	return &Service{gateway: gateway, currency: currency, log: log}
}

func (s *Service) Configured() bool { return s.gateway != nil }

// CreateIntent reserves a charge for the booking's amount and returns the
// client secret the payment UI consumes. The idempotency key is derived from
// the booking id, so repeated calls for one booking do not stack up pending
// charges.
func (s *Service) CreateIntent(ctx context.Context, amount decimal.Decimal, bookingID string) (string, error) {
	if s.gateway == nil {
		return "", ErrNotConfigured
	}

	cents := amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	if cents <= 0 {
		return "", ErrInvalidAmount
	}

	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(cents),
		Currency: stripe.String(s.currency),
		Metadata: map[string]string{"bookingId": bookingID},
	}
	params.SetIdempotencyKey("booking-" + bookingID)

	intent, err := s.gateway.New(params)
	if err != nil {
		s.log.Error("create payment intent failed",
			zap.String("booking_id", bookingID),
			zap.Int64("amount_cents", cents),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w: %v", ErrGateway, err)
	}

	s.log.Info("payment intent created",
		zap.String("booking_id", bookingID),
		zap.String("intent_id", intent.ID),
		zap.Int64("amount_cents", cents),
	)
	return intent.ClientSecret, nil
}
