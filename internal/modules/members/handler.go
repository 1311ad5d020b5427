package members

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
	rg.POST("/members", h.Create)
	rg.GET("/members", h.List)
	rg.GET("/members/:id", h.Get)
	rg.PUT("/members/:id", h.Update)
	rg.PATCH("/members/:id/status", h.ChangeStatus)
}

func (h *Handler) Create(c *gin.Context) {
	orgID := c.GetInt64("organization_id")

	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	m, err := h.service.Create(c.Request.Context(), orgID, req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"member": m})
}

func (h *Handler) Get(c *gin.Context) {
	orgID := c.GetInt64("organization_id")
	id, ok := paramID(c)
	if !ok {
		return
	}

	m, err := h.service.Get(c.Request.Context(), orgID, id)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"member": m})
}

func (h *Handler) List(c *gin.Context) {
	orgID := c.GetInt64("organization_id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	ms, err := h.service.List(c.Request.Context(), orgID, limit, offset)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"members": ms})
}

func (h *Handler) Update(c *gin.Context) {
	orgID := c.GetInt64("organization_id")
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	m, err := h.service.Update(c.Request.Context(), orgID, id, req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"member": m})
}

func (h *Handler) ChangeStatus(c *gin.Context) {
	orgID := c.GetInt64("organization_id")
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	m, err := h.service.ChangeStatus(c.Request.Context(), orgID, id, req.Status)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"member": m})
}

func (h *Handler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Member not found")
	case errors.Is(err, ErrPlanNotFound):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Membership plan not found")
	case errors.Is(err, ErrInvalidStatus):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Status must be active, frozen or cancelled")
	case errors.Is(err, ErrInvalidTransition):
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Cancelled memberships cannot change status")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Member operation failed")
	}
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid member ID")
		return 0, false
	}
	return id, true
}
