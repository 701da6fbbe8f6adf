package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingPending BookingStatus = "pending"
	BookingPaid    BookingStatus = "paid"
)

type ServiceType string

const (
	ServiceMowing  ServiceType = "mowing"
	ServiceCleanup ServiceType = "cleanup"
)

func (s ServiceType) Valid() bool {
	switch s {
	case ServiceMowing, ServiceCleanup:
		return true
	}
	return false
}

type SubscriptionType string

const (
	SubscriptionOneTime   SubscriptionType = "one-time"
	SubscriptionWeekly    SubscriptionType = "weekly"
	SubscriptionBiWeekly  SubscriptionType = "bi-weekly"
	SubscriptionMonthly   SubscriptionType = "monthly"
	SubscriptionQuarterly SubscriptionType = "quarterly"
	SubscriptionYearly    SubscriptionType = "yearly"
)

func (s SubscriptionType) Valid() bool {
	switch s {
	case SubscriptionOneTime, SubscriptionWeekly, SubscriptionBiWeekly,
		SubscriptionMonthly, SubscriptionQuarterly, SubscriptionYearly:
		return true
	}
	return false
}

// Booking is the customer's service request. Price is computed once at
// creation against the tariff table and never recomputed afterwards.
// PaymentID and Paid are always updated together.
type Booking struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Email            string           `json:"email"`
	Phone            string           `json:"phone"`
	Address          string           `json:"address"`
	ServiceType      ServiceType      `json:"service_type"`
	SubscriptionType SubscriptionType `json:"subscription_type"`
	PropertySize     decimal.Decimal  `json:"property_size"`
	SpecialRequests  string           `json:"special_requests,omitempty"`
	Price            decimal.Decimal  `json:"price"`
	Status           BookingStatus    `json:"status"`
	PaymentID        *string          `json:"payment_id"`
	Paid             bool             `json:"paid"`
	CreatedAt        time.Time        `json:"created_at"`
}
