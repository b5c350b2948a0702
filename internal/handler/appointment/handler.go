package appointment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sanari/health-api/internal/model"
	"github.com/sanari/health-api/internal/service/appointment"
	apperrors "github.com/sanari/health-api/pkg/errors"
	"github.com/sanari/health-api/pkg/httputil"
)

type Handler struct {
	service *appointment.Service
}

func NewHandler(service *appointment.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	g := r.Group("/appointments")
	g.POST("", h.CreateAppointment)
	g.GET("", h.ListAppointments)
	g.DELETE("/:id", h.DeleteAppointment)
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest("invalid request body", err))
		return
	}

	a, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, http.StatusCreated, a)
}

func (h *Handler) ListAppointments(c *gin.Context) {
	httputil.RespondWithSuccess(c, http.StatusOK, h.service.List(c.Request.Context()))
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	h.service.Delete(c.Request.Context(), c.Param("id"))
	httputil.RespondWithSuccess(c, http.StatusOK, gin.H{"id": c.Param("id")})
}
