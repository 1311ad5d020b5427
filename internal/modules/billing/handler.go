package billing

import (
	"errors"
	"net/http"
	"strconv"

	"gymdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/plans", h.ListPlans)
	rg.POST("/plans", h.CreatePlan)
	rg.POST("/payments", h.RecordPayment)
	rg.GET("/members/:id/payments", h.ListMemberPayments)
}

func (h *Handler) CreatePlan(c *gin.Context) {
	orgID := c.GetInt64("organization_id")

	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.CreatePlan(c.Request.Context(), orgID, req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"plan": p})
}

func (h *Handler) ListPlans(c *gin.Context) {
	orgID := c.GetInt64("organization_id")
	activeOnly := c.DefaultQuery("active", "true") == "true"

	plans, err := h.service.ListPlans(c.Request.Context(), orgID, activeOnly)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"plans": plans})
}

func (h *Handler) RecordPayment(c *gin.Context) {
	orgID := c.GetInt64("organization_id")

	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.RecordPayment(c.Request.Context(), orgID, req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"payment": p})
}

func (h *Handler) ListMemberPayments(c *gin.Context) {
	orgID := c.GetInt64("organization_id")
	memberID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid member ID")
		return
	}

	payments, err := h.service.ListMemberPayments(c.Request.Context(), orgID, memberID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"payments": payments})
}

func (h *Handler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid billing data")
	case errors.Is(err, ErrMemberNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Member not found")
	case errors.Is(err, ErrPlanNotFound):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Membership plan not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Billing operation failed")
	}
}
