package booking

import "github.com/shopspring/decimal"

type CreateBookingRequest struct {
	Name             string          `json:"name" binding:"required"`
	Email            string          `json:"email" binding:"required,email"`
	Phone            string          `json:"phone" binding:"required"`
	Address          string          `json:"address" binding:"required"`
	ServiceType      string          `json:"service_type" binding:"required"`
	SubscriptionType string          `json:"subscription_type" binding:"required"`
	PropertySize     decimal.Decimal `json:"property_size" binding:"required"`
	SpecialRequests  string          `json:"special_requests"`
}

type ConfirmPaymentRequest struct {
	PaymentID string `json:"payment_id" binding:"required"`
}

type QuoteRequest struct {
	ServiceType string          `json:"service_type" binding:"required"`
	Acres       decimal.Decimal `json:"acres" binding:"required"`
}

type QuoteResponse struct {
	BasePrice       decimal.Decimal `json:"base_price"`
	AdditionalPrice decimal.Decimal `json:"additional_price"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	Acres           decimal.Decimal `json:"acres"`
}
