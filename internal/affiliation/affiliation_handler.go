package affiliation

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
	l := zap.L().Named("affiliation.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("affiliation.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("affiliation request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
	)
	response.Error(c, httpErr.Status, httpErr.Message)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateAffiliationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, resp)
}

func (h *Handler) ByEmployee(c *gin.Context) {
	affiliations, err := h.service.ByEmployee(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, affiliations)
}

func (h *Handler) Team(c *gin.Context) {
	team, err := h.service.Team(c.Request.Context(), c.Param("hrEmail"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, team)
}

func (h *Handler) Remove(c *gin.Context) {
	employeeEmail := c.Param("email")
	hrEmail := c.Query("hr")

	summary, err := h.service.Remove(c.Request.Context(), employeeEmail, hrEmail)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, summary)
}
