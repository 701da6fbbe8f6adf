package booking

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lawncare/internal/modules/payment"
	"lawncare/internal/pkg/response"
	"lawncare/internal/pricing"
	"lawncare/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.POST("/bookings/:id/payment-intent", h.CreatePaymentIntent)
	rg.POST("/bookings/:id/payment-confirm", h.ConfirmPayment)
	rg.POST("/pricing/quote", h.Quote)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking data: "+err.Error())
		return
	}

	b, err := h.service.SubmitBooking(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrUnknownServiceType):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown service type")
		case errors.Is(err, pricing.ErrOutOfRange):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Property size must be between 0.1 and 2.5 acres")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking data")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) GetBooking(c *gin.Context) {
	b, err := h.service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch booking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	clientSecret, err := h.service.InitiatePayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, repository.ErrAlreadyPaid):
			response.Error(c, http.StatusConflict, "ALREADY_PAID", "Booking is already paid")
		case errors.Is(err, payment.ErrNotConfigured):
			// Degraded flow: the client keeps the booking as pending and the
			// business follows up manually.
			response.Error(c, http.StatusServiceUnavailable, "NOT_CONFIGURED", "Online payment is not available")
		case errors.Is(err, payment.ErrInvalidAmount):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid payment amount")
		case errors.Is(err, payment.ErrGateway):
			response.Error(c, http.StatusBadGateway, "PAYMENT_GATEWAY_ERROR", "Payment gateway request failed")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create payment intent")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"client_secret": clientSecret})
}

func (h *Handler) ConfirmPayment(c *gin.Context) {
	var req ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing payment id")
		return
	}

	b, err := h.service.ConfirmPayment(c.Request.Context(), c.Param("id"), req.PaymentID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, repository.ErrAlreadyPaid):
			response.Error(c, http.StatusConflict, "ALREADY_PAID", "Booking was paid with a different payment id")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update payment")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid quote request: "+err.Error())
		return
	}

	q, err := h.service.QuotePrice(req.ServiceType, req.Acres)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrUnknownServiceType):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown service type")
		case errors.Is(err, pricing.ErrOutOfRange):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Property size must be between 0.1 and 2.5 acres")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to calculate price")
		}
		return
	}

	response.Success(c, http.StatusOK, QuoteResponse{
		BasePrice:       q.Base,
		AdditionalPrice: q.Additional,
		TotalPrice:      q.Total,
		Acres:           req.Acres,
	})
}
