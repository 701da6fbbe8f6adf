package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"lawncare/internal/domain"
)

// MemoryStore keeps bookings and contacts in process memory. State is lost
// on restart; it backs local development and tests.
type MemoryStore struct {
	mu       sync.RWMutex
	bookings map[string]domain.Booking
	contacts map[string]domain.Contact
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		bookings: make(map[string]domain.Booking),
		contacts: make(map[string]domain.Contact),
	}
}

func (s *MemoryStore) CreateBooking(_ context.Context, in NewBooking) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := domain.Booking{
		ID:               uuid.NewString(),
		Name:             in.Name,
		Email:            in.Email,
		Phone:            in.Phone,
		Address:          in.Address,
		ServiceType:      in.ServiceType,
		SubscriptionType: in.SubscriptionType,
		PropertySize:     in.PropertySize,
		SpecialRequests:  in.SpecialRequests,
		Price:            in.Price,
		Status:           domain.BookingPending,
		PaymentID:        nil,
		Paid:             false,
		CreatedAt:        time.Now().UTC(),
	}
	s.bookings[b.ID] = b

	out := b
	return &out, nil
}

func (s *MemoryStore) GetBooking(_ context.Context, id string) (*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := b
	return &out, nil
}

func (s *MemoryStore) UpdateBookingPayment(_ context.Context, id, paymentID string) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	if b.Paid {
		if b.PaymentID != nil && *b.PaymentID == paymentID {
			out := b
			return &out, nil
		}
		return nil, ErrAlreadyPaid
	}

	pid := paymentID
	b.PaymentID = &pid
	b.Paid = true
	b.Status = domain.BookingPaid
	s.bookings[id] = b

	out := b
	return &out, nil
}

func (s *MemoryStore) ListBookings(_ context.Context) ([]domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, b)
	}
	sortByCreated(out, func(b domain.Booking) (time.Time, string) { return b.CreatedAt, b.ID })
	return out, nil
}

func (s *MemoryStore) CreateContact(_ context.Context, in NewContact) (*domain.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := domain.Contact{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Service:   in.Service,
		Address:   in.Address,
		Message:   in.Message,
		CreatedAt: time.Now().UTC(),
	}
	s.contacts[c.ID] = c

	out := c
	return &out, nil
}

func (s *MemoryStore) ListContacts(_ context.Context) ([]domain.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		out = append(out, c)
	}
	sortByCreated(out, func(c domain.Contact) (time.Time, string) { return c.CreatedAt, c.ID })
	return out, nil
}

// sortByCreated orders records oldest first, id as tie-break so exports are
// stable.
func sortByCreated[T any](items []T, key func(T) (time.Time, string)) {
	sort.Slice(items, func(i, j int) bool {
		ti, idi := key(items[i])
		tj, idj := key(items[j])
		if ti.Equal(tj) {
			return idi < idj
		}
		return ti.Before(tj)
	})
}
