package reminder

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sanari/health-api/internal/model"
	"github.com/sanari/health-api/internal/service/reminder"
	apperrors "github.com/sanari/health-api/pkg/errors"
	"github.com/sanari/health-api/pkg/httputil"
)

type Handler struct {
	service *reminder.Service
}

func NewHandler(service *reminder.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	g := r.Group("/reminders")
	g.POST("", h.CreateReminder)
	g.GET("", h.ListReminders)
	g.DELETE("/:id", h.DeleteReminder)
	g.POST("/:id/toggle", h.ToggleReminder)
}

func (h *Handler) CreateReminder(c *gin.Context) {
	var req model.CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest("invalid request body", err))
		return
	}

	r, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, http.StatusCreated, r)
}

func (h *Handler) ListReminders(c *gin.Context) {
	httputil.RespondWithSuccess(c, http.StatusOK, h.service.List(c.Request.Context()))
}

func (h *Handler) ToggleReminder(c *gin.Context) {
	r, found := h.service.Toggle(c.Request.Context(), c.Param("id"))
	if !found {
		httputil.RespondWithError(c, apperrors.NotFound("reminder", nil))
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, r)
}

func (h *Handler) DeleteReminder(c *gin.Context) {
	h.service.Delete(c.Request.Context(), c.Param("id"))
	httputil.RespondWithSuccess(c, http.StatusOK, gin.H{"id": c.Param("id")})
}
