package repository

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"lawncare/internal/domain"
)

var (
	ErrNotFound    = errors.New("record not found")
	ErrAlreadyPaid = errors.New("booking already paid")
)

// NewBooking carries the validated fields for booking creation. The store
// assigns the id, stamps created_at and defaults status to pending with
// paid=false and a null payment id.
type NewBooking struct {
	Name             string
	Email            string
	Phone            string
	Address          string
	ServiceType      domain.ServiceType
	SubscriptionType domain.SubscriptionType
	PropertySize     decimal.Decimal
	SpecialRequests  string
	Price            decimal.Decimal
}

type NewContact struct {
	Name    string
	Email   string
	Phone   *string
	Service *string
	Address *string
	Message string
}

// Store owns the canonical copy of every booking and contact. All payment
// state flows through UpdateBookingPayment, which sets payment_id and paid
// together in one atomic step: a repeat call with the same payment id is a
// no-op, a different payment id on a paid booking fails with ErrAlreadyPaid.
type Store interface {
	CreateBooking(ctx context.Context, in NewBooking) (*domain.Booking, error)
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)
	UpdateBookingPayment(ctx context.Context, id, paymentID string) (*domain.Booking, error)
	ListBookings(ctx context.Context) ([]domain.Booking, error)

	CreateContact(ctx context.Context, in NewContact) (*domain.Contact, error)
	ListContacts(ctx context.Context) ([]domain.Contact, error)
}
