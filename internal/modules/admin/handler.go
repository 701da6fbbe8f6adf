package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lawncare/internal/pkg/response"
)

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/admin/login", h.Login)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/admin/bookings", h.ListBookings)
	rg.GET("/admin/contacts", h.ListContacts)
	rg.POST("/admin/export", h.Export)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing password")
		return
	}

	token, err := h.service.Login(req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid credentials")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Login failed")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"token": token})
}

func (h *Handler) ListBookings(c *gin.Context) {
	bookings, err := h.service.ListBookings(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) ListContacts(c *gin.Context) {
	contacts, err := h.service.ListContacts(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list contacts")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"contacts": contacts})
}

func (h *Handler) Export(c *gin.Context) {
	if err := h.service.Export(c.Request.Context()); err != nil {
		response.Error(c, http.StatusInternalServerError, "EXPORT_FAILED", "Export failed")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"exported": true})
}
