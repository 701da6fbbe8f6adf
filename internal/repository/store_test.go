package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lawncare/internal/database"
	"lawncare/internal/domain"
)

// Both backends must satisfy the same contract, so every test here runs
// against both.
func eachStore(t *testing.T, fn func(t *testing.T, store Store)) {
	t.Helper()

	t.Run("memory", func(t *testing.T) {
		fn(t, NewMemoryStore())
	})

	t.Run("gorm", func(t *testing.T) {
		db, err := database.Connect(":memory:")
		require.NoError(t, err)

		sqlDB, err := db.DB()
		require.NoError(t, err)
		// A second in-memory connection would see an empty database.
		sqlDB.SetMaxOpenConns(1)

		require.NoError(t, Migrate(db))
		fn(t, NewGormStore(db))
	})
}

func newBookingInput() NewBooking {
	return NewBooking{
		Name:             "Ada Lovelace",
		Email:            "ada@example.com",
		Phone:            "555-0100",
		Address:          "12 Meadow Ln",
		ServiceType:      domain.ServiceMowing,
		SubscriptionType: domain.SubscriptionWeekly,
		PropertySize:     decimal.RequireFromString("1.1"),
		SpecialRequests:  "gate code 4411",
		Price:            decimal.RequireFromString("100.00"),
	}
}

func TestCreateBookingDefaults(t *testing.T) {
	eachStore(t, func(t *testing.T, store Store) {
		ctx := context.Background()

		b, err := store.CreateBooking(ctx, newBookingInput())
		require.NoError(t, err)

		assert.NotEmpty(t, b.ID)
		assert.Equal(t, domain.BookingPending, b.Status)
		assert.False(t, b.Paid)
		assert.Nil(t, b.PaymentID)
		assert.False(t, b.CreatedAt.IsZero())
		assert.True(t, b.Price.Equal(decimal.RequireFromString("100.00")))
	})
}

func TestGetBookingIsStable(t *testing.T) {
	eachStore(t, func(t *testing.T, store Store) {
		ctx := context.Background()

		created, err := store.CreateBooking(ctx, newBookingInput())
		require.NoError(t, err)

		first, err := store.GetBooking(ctx, created.ID)
		require.NoError(t, err)
		second, err := store.GetBooking(ctx, created.ID)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, first.Status, second.Status)
		assert.Equal(t, first.Paid, second.Paid)
		assert.True(t, first.Price.Equal(second.Price))
		assert.True(t, first.CreatedAt.Equal(second.CreatedAt))
	})
}

func TestGetBookingNotFound(t *testing.T) {
	eachStore(t, func(t *testing.T, store Store) {
		_, err := store.GetBooking(context.Background(), "b1946ac9-2a94-4f1a-b7f3-2d2c6ac0e3e1")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUpdateBookingPayment(t *testing.T) {
	eachStore(t, func(t *testing.T, store Store) {
		ctx := context.Background()

		created, err := store.CreateBooking(ctx, newBookingInput())
		require.NoError(t, err)

		updated, err := store.UpdateBookingPayment(ctx, created.ID, "pi_123")
		require.NoError(t, err)

		assert.True(t, updated.Paid)
		require.NotNil(t, updated.PaymentID)
		assert.Equal(t, "pi_123", *updated.PaymentID)
		assert.Equal(t, domain.BookingPaid, updated.Status)

		got, err := store.GetBooking(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, got.Paid)
		require.NotNil(t, got.PaymentID)
		assert.Equal(t, "pi_123", *got.PaymentID)
	})
}

func TestUpdateBookingPaymentIdempotent(t *testing.T) {
	eachStore(t, func(t *testing.T, store Store) {
		ctx := context.Background()

		created, err := store.CreateBooking(ctx, newBookingInput())
		require.NoError(t, err)

		_, err = store.UpdateBookingPayment(ctx, created.ID, "pi_123")
		require.NoError(t, err)

		again, err := store.UpdateBookingPayment(ctx, created.ID, "pi_123")
		require.NoError(t, err)
		assert.True(t, again.Paid)
		require.NotNil(t, again.PaymentID)
		assert.Equal(t, "pi_123", *again.PaymentID)
	})
}

func TestUpdateBookingPaymentConflict(t *testing.T) {
	eachStore(t, func(t *testing.T, store Store) {
		ctx := context.Background()

		created, err := store.CreateBooking(ctx, newBookingInput())
		require.NoError(t, err)

		_, err = store.UpdateBookingPayment(ctx, created.ID, "pi_123")
		require.NoError(t, err)

		_, err = store.UpdateBookingPayment(ctx, created.ID, "pi_456")
		assert.ErrorIs(t, err, ErrAlreadyPaid)

		// The original payment survives.
		got, err := store.GetBooking(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, got.PaymentID)
		assert.Equal(t, "pi_123", *got.PaymentID)
	})
}

func TestUpdateBookingPaymentNotFound(t *testing.T) {
	eachStore(t, func(t *testing.T, store Store) {
		_, err := store.UpdateBookingPayment(context.Background(), "39c8d4a6-59c6-4a4f-8f48-6a3d9ffbad10", "pi_123")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCreateContactOptionalFields(t *testing.T) {
	eachStore(t, func(t *testing.T, store Store) {
		ctx := context.Background()

		c, err := store.CreateContact(ctx, NewContact{
			Name:    "Grace Hopper",
			Email:   "grace@example.com",
			Message: "Do you service half-acre lots?",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, c.ID)
		assert.Nil(t, c.Phone)
		assert.Nil(t, c.Service)
		assert.Nil(t, c.Address)
		assert.False(t, c.CreatedAt.IsZero())
	})
}

func TestListBookingsAndContacts(t *testing.T) {
	eachStore(t, func(t *testing.T, store Store) {
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			_, err := store.CreateBooking(ctx, newBookingInput())
			require.NoError(t, err)
		}
		phone := "555-0101"
		_, err := store.CreateContact(ctx, NewContact{
			Name:    "Lin",
			Email:   "lin@example.com",
			Phone:   &phone,
			Message: "quote please",
		})
		require.NoError(t, err)

		bookings, err := store.ListBookings(ctx)
		require.NoError(t, err)
		assert.Len(t, bookings, 3)

		contacts, err := store.ListContacts(ctx)
		require.NoError(t, err)
		assert.Len(t, contacts, 1)
		require.NotNil(t, contacts[0].Phone)
		assert.Equal(t, "555-0101", *contacts[0].Phone)
	})
}
