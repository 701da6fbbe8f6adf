package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"lawncare/internal/domain"
)

// GormStore is the durable Store backend over PostgreSQL or SQLite.
type GormStore struct {
	db *gorm.DB
}

var _ Store = (*GormStore)(nil)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates the bookings and contacts tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&bookingModel{}, &contactModel{})
}

type bookingModel struct {
	ID               string          `gorm:"column:id;primaryKey"`
	Name             string          `gorm:"column:name"`
	Email            string          `gorm:"column:email"`
	Phone            string          `gorm:"column:phone"`
	Address          string          `gorm:"column:address"`
	ServiceType      string          `gorm:"column:service_type"`
	SubscriptionType string          `gorm:"column:subscription_type"`
	PropertySize     decimal.Decimal `gorm:"column:property_size;type:numeric(6,2)"`
	SpecialRequests  *string         `gorm:"column:special_requests"`
	Price            decimal.Decimal `gorm:"column:price;type:numeric(10,2)"`
	Status           string          `gorm:"column:status"`
	PaymentID        *string         `gorm:"column:payment_id"`
	Paid             bool            `gorm:"column:paid"`
	CreatedAt        time.Time       `gorm:"column:created_at"`
}

func (bookingModel) TableName() string { return "bookings" }

type contactModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Email     string    `gorm:"column:email"`
	Phone     *string   `gorm:"column:phone"`
	Service   *string   `gorm:"column:service"`
	Address   *string   `gorm:"column:address"`
	Message   string    `gorm:"column:message;type:text"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (contactModel) TableName() string { return "contacts" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var requests string
	if m.SpecialRequests != nil {
		requests = *m.SpecialRequests
	}

	return &domain.Booking{
		ID:               m.ID,
		Name:             m.Name,
		Email:            m.Email,
		Phone:            m.Phone,
		Address:          m.Address,
		ServiceType:      domain.ServiceType(m.ServiceType),
		SubscriptionType: domain.SubscriptionType(m.SubscriptionType),
		PropertySize:     m.PropertySize,
		SpecialRequests:  requests,
		Price:            m.Price,
		Status:           domain.BookingStatus(m.Status),
		PaymentID:        m.PaymentID,
		Paid:             m.Paid,
		CreatedAt:        m.CreatedAt,
	}
}

func toDomainContact(m contactModel) *domain.Contact {
	return &domain.Contact{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Service:   m.Service,
		Address:   m.Address,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}

func (s *GormStore) CreateBooking(ctx context.Context, in NewBooking) (*domain.Booking, error) {
	var requests *string
	if in.SpecialRequests != "" {
		v := in.SpecialRequests
		requests = &v
	}

	m := bookingModel{
		ID:               uuid.NewString(),
		Name:             in.Name,
		Email:            in.Email,
		Phone:            in.Phone,
		Address:          in.Address,
		ServiceType:      string(in.ServiceType),
		SubscriptionType: string(in.SubscriptionType),
		PropertySize:     in.PropertySize,
		SpecialRequests:  requests,
		Price:            in.Price,
		Status:           string(domain.BookingPending),
		Paid:             false,
		CreatedAt:        time.Now().UTC(),
	}
	if tx := s.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (s *GormStore) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	var m bookingModel
	tx := s.db.WithContext(ctx).First(&m, "id = ?", id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (s *GormStore) UpdateBookingPayment(ctx context.Context, id, paymentID string) (*domain.Booking, error) {
	var out *domain.Booking

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Guarded update: only an unpaid row is touched, so two racing
		// confirmations cannot both flip the booking.
		res := tx.Model(&bookingModel{}).
			Where("id = ? AND paid = ?", id, false).
			Updates(map[string]any{
				"payment_id": paymentID,
				"paid":       true,
				"status":     string(domain.BookingPaid),
			})
		if res.Error != nil {
			return res.Error
		}

		var m bookingModel
		if err := tx.First(&m, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if res.RowsAffected == 0 {
			// Row exists but was already paid.
			if m.PaymentID == nil || *m.PaymentID != paymentID {
				return ErrAlreadyPaid
			}
		}

		out = toDomainBooking(m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormStore) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	var models []bookingModel
	tx := s.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (s *GormStore) CreateContact(ctx context.Context, in NewContact) (*domain.Contact, error) {
	m := contactModel{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Service:   in.Service,
		Address:   in.Address,
		Message:   in.Message,
		CreatedAt: time.Now().UTC(),
	}
	if tx := s.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainContact(m), nil
}

func (s *GormStore) ListContacts(ctx context.Context) ([]domain.Contact, error) {
	var models []contactModel
	tx := s.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Contact, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainContact(m))
	}
	return out, nil
}
