package vaccination

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sanari/health-api/internal/model"
	"github.com/sanari/health-api/internal/service/vaccination"
	apperrors "github.com/sanari/health-api/pkg/errors"
	"github.com/sanari/health-api/pkg/httputil"
)

type Handler struct {
	service *vaccination.Service
}

func NewHandler(service *vaccination.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	g := r.Group("/vaccinations")
	g.POST("", h.CreateVaccination)
	g.GET("", h.ListVaccinations)
	g.DELETE("/:id", h.DeleteVaccination)
}

func (h *Handler) CreateVaccination(c *gin.Context) {
	var req model.CreateVaccinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest("invalid request body", err))
		return
	}

	v, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, http.StatusCreated, v)
}

func (h *Handler) ListVaccinations(c *gin.Context) {
	httputil.RespondWithSuccess(c, http.StatusOK, h.service.List(c.Request.Context()))
}

func (h *Handler) DeleteVaccination(c *gin.Context) {
	h.service.Delete(c.Request.Context(), c.Param("id"))
	httputil.RespondWithSuccess(c, http.StatusOK, gin.H{"id": c.Param("id")})
}
