package payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"
)

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	args := m.Called(params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.PaymentIntent), args.Error(1)
}

func TestCreateIntentNotConfigured(t *testing.T) {
	s := NewService("", "usd", 15*time.Second, zap.NewNop())

	assert.False(t, s.Configured())

	_, err := s.CreateIntent(context.Background(), decimal.RequireFromString("100.00"), "b-1")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestCreateIntentInvalidAmount(t *testing.T) {
	gw := new(MockGateway)
	s := newServiceWithGateway(gw, "usd", zap.NewNop())

	_, err := s.CreateIntent(context.Background(), decimal.Zero, "b-1")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = s.CreateIntent(context.Background(), decimal.RequireFromString("-5"), "b-1")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	// Rejected before any gateway call.
	gw.AssertNotCalled(t, "New")
}

func TestCreateIntentConvertsToCents(t *testing.T) {
	gw := new(MockGateway)
	gw.On("New", mock.MatchedBy(func(p *stripe.PaymentIntentParams) bool {
		return p.Amount != nil && *p.Amount == 10000 &&
			p.Currency != nil && *p.Currency == "usd" &&
			p.Metadata["bookingId"] == "b-1" &&
			p.IdempotencyKey != nil && *p.IdempotencyKey == "booking-b-1"
	})).Return(&stripe.PaymentIntent{ID: "pi_1", ClientSecret: "pi_1_secret"}, nil)

	s := newServiceWithGateway(gw, "usd", zap.NewNop())

	secret, err := s.CreateIntent(context.Background(), decimal.RequireFromString("100.00"), "b-1")
	require.NoError(t, err)
	assert.Equal(t, "pi_1_secret", secret)

	gw.AssertExpectations(t)
}

func TestCreateIntentGatewayFailure(t *testing.T) {
	gw := new(MockGateway)
	gw.On("New", mock.Anything).Return(nil, errors.New("api unreachable"))

	s := newServiceWithGateway(gw, "usd", zap.NewNop())

	_, err := s.CreateIntent(context.Background(), decimal.RequireFromString("30.00"), "b-2")
	assert.ErrorIs(t, err, ErrGateway)
}
