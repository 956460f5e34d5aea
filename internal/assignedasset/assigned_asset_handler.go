package assignedasset

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
	l := zap.L().Named("assignedasset.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("assignedasset.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Assign(c *gin.Context) {
	var req AssignAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	resp, err := h.service.Assign(c.Request.Context(), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("assign asset failed",
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
		)
		response.Error(c, httpErr.Status, httpErr.Message)
		return
	}

	response.JSON(c, http.StatusOK, resp)
}

func (h *Handler) ByEmployee(c *gin.Context) {
	assigned, err := h.service.ByEmployee(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, assigned)
}
