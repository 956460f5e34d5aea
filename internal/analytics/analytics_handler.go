package analytics

import (
	"net/http"

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
	l := zap.L().Named("analytics.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("analytics.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("analytics request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Message)
}

func (h *Handler) AssetDistribution(c *gin.Context) {
	dist, err := h.service.AssetDistribution(c.Request.Context(), c.Param("hrEmail"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, dist)
}

func (h *Handler) TopRequests(c *gin.Context) {
	ranked, err := h.service.TopRequests(c.Request.Context(), c.Param("hrEmail"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if ranked == nil {
		ranked = []RequestCount{}
	}

	response.JSON(c, http.StatusOK, ranked)
}
