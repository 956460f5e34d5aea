package asset

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/udoykumar/assets-verse-server/internal/shared/apperror"
	"github.com/udoykumar/assets-verse-server/internal/shared/response"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("asset.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("asset.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("asset request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Message)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, resp)
}

func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	q := ListQuery{
		Page:          page,
		Limit:         limit,
		AvailableOnly: c.Query("available") == "true",
		Search:        c.Query("search"),
	}

	resp, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, resp)
}

func (h *Handler) ByHR(c *gin.Context) {
	assets, err := h.service.ByHR(c.Request.Context(), c.Param("hrEmail"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if assets == nil {
		assets = []Asset{}
	}

	response.JSON(c, http.StatusOK, assets)
}

func (h *Handler) ByID(c *gin.Context) {
	a, err := h.service.ByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, a)
}

func (h *Handler) Patch(c *gin.Context) {
	var cmd UpdateAssetCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	summary, err := h.service.Patch(c.Request.Context(), c.Param("id"), cmd)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, summary)
}

func (h *Handler) Delete(c *gin.Context) {
	summary, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, summary)
}
