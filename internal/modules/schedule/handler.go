package schedule

import (
	"errors"
	"net/http"

	"gymdesk/internal/pkg/response"
	"gymdesk/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service     *Service
	invalidator CacheInvalidator
}

func NewHandler(service *Service, invalidator CacheInvalidator) *Handler {
	return &Handler{service: service, invalidator: invalidator}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/classes", h.ListClasses)
	rg.POST("/classes/generate/preview", h.PreviewGeneration)
	rg.POST("/classes/generate", h.ApplyGeneration)
}

func (h *Handler) PreviewGeneration(c *gin.Context) {
	orgID := c.GetInt64("organization_id")

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	preview, err := h.service.Preview(c.Request.Context(), orgID, req)
	if err != nil {
		h.renderError(c, err, "Failed to preview class generation")
		return
	}

	response.Success(c, http.StatusOK, preview)
}

func (h *Handler) ApplyGeneration(c *gin.Context) {
	orgID := c.GetInt64("organization_id")

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.Apply(c.Request.Context(), orgID, req)
	if err != nil {
		h.renderError(c, err, "Failed to generate classes")
		return
	}

	// cached class/template lists are stale after any successful batch
	if h.invalidator != nil {
		h.invalidator.InvalidateSchedule(c.Request.Context(), orgID)
	}

	response.Success(c, http.StatusOK, result)
}

func (h *Handler) ListClasses(c *gin.Context) {
	orgID := c.GetInt64("organization_id")

	classes, err := h.service.ListClasses(c.Request.Context(), orgID, c.Query("from"), c.Query("to"))
	if err != nil {
		h.renderError(c, err, "Failed to list classes")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"classes": classes})
}

func (h *Handler) renderError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidPeriod):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Period must be week, two_weeks or month")
	case errors.Is(err, ErrInvalidDate):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Dates must use YYYY-MM-DD")
	case errors.Is(err, repository.ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Organization not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
