package upload

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sanari/health-api/internal/service/upload"
	apperrors "github.com/sanari/health-api/pkg/errors"
	"github.com/sanari/health-api/pkg/httputil"
)

type Handler struct {
	service *upload.Service
}

func NewHandler(service *upload.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	g := r.Group("/uploads")
	g.POST("", h.UploadFile)
	g.GET("", h.ListFiles)
	g.DELETE("/:id", h.DeleteFile)
}

func (h *Handler) UploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest("file is required", err))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		httputil.RespondWithError(c, apperrors.Internal(err))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		httputil.RespondWithError(c, apperrors.Internal(err))
		return
	}

	record, err := h.service.Create(
		c.Request.Context(),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		data,
	)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, http.StatusCreated, record)
}

func (h *Handler) ListFiles(c *gin.Context) {
	httputil.RespondWithSuccess(c, http.StatusOK, h.service.List(c.Request.Context()))
}

func (h *Handler) DeleteFile(c *gin.Context) {
	h.service.Delete(c.Request.Context(), c.Param("id"))
	httputil.RespondWithSuccess(c, http.StatusOK, gin.H{"id": c.Param("id")})
}
