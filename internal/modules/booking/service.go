package booking

import (
	"context"

	"github.com/shopspring/decimal"

	"lawncare/internal/domain"
	"lawncare/internal/pricing"
	"lawncare/internal/repository"
)

// Service drives the booking lifecycle: pending at creation, paid after a
// confirmed payment. There is no cancellation or refund path.
type Service struct {
	store    repository.Store
	calc     *pricing.Calculator
	payments PaymentIntents
	notifs   Notifier
}

func NewService(store repository.Store, calc *pricing.Calculator, payments PaymentIntents, notifs Notifier) *Service {
	return &Service{
		store:    store,
		calc:     calc,
		payments: payments,
		notifs:   notifs,
	}
}

// SubmitBooking validates the request, prices it and persists it. The
// notification fan-out happens after the record is stored and cannot fail
// the submission.
func (s *Service) SubmitBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	serviceType := domain.ServiceType(req.ServiceType)
	if !serviceType.Valid() {
		return nil, pricing.ErrUnknownServiceType
	}
	subscription := domain.SubscriptionType(req.SubscriptionType)
	if !subscription.Valid() {
		return nil, ErrValidation
	}

	quote, err := s.calc.Price(serviceType, req.PropertySize)
	if err != nil {
		return nil, err
	}

	b, err := s.store.CreateBooking(ctx, repository.NewBooking{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		Address:          req.Address,
		ServiceType:      serviceType,
		SubscriptionType: subscription,
		PropertySize:     req.PropertySize,
		SpecialRequests:  req.SpecialRequests,
		Price:            quote.Total,
	})
	if err != nil {
		return nil, err
	}

	if s.notifs != nil {
		s.notifs.BookingCreated(b)
	}
	return b, nil
}

func (s *Service) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	return s.store.GetBooking(ctx, id)
}

// InitiatePayment reserves a charge for the booking's stored price. The
// price is never recomputed here.
func (s *Service) InitiatePayment(ctx context.Context, bookingID string) (string, error) {
	b, err := s.store.GetBooking(ctx, bookingID)
	if err != nil {
		return "", err
	}
	if b.Paid {
		return "", repository.ErrAlreadyPaid
	}
	return s.payments.CreateIntent(ctx, b.Price, b.ID)
}

// ConfirmPayment records the gateway's payment id and flips the booking to
// paid in one atomic store update.
func (s *Service) ConfirmPayment(ctx context.Context, bookingID, paymentID string) (*domain.Booking, error) {
	return s.store.UpdateBookingPayment(ctx, bookingID, paymentID)
}

// QuotePrice prices a prospective booking without creating anything.
func (s *Service) QuotePrice(serviceType string, acres decimal.Decimal) (pricing.Quote, error) {
	st := domain.ServiceType(serviceType)
	if !st.Valid() {
		return pricing.Quote{}, pricing.ErrUnknownServiceType
	}
	return s.calc.Price(st, acres)
}
