package contact

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lawncare/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/contacts", h.CreateContact)
}

func (h *Handler) CreateContact(c *gin.Context) {
	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid contact data: "+err.Error())
		return
	}

	created, err := h.service.SubmitContact(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create contact")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"contact": created})
}
