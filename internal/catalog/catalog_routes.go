package catalog

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/udoykumar/assets-verse-server/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	// Public marketing content, no auth.
	r.GET("/packages", middleware.ContextLogger(logger), handler.Packages)
	r.GET("/testimonials", middleware.ContextLogger(logger), handler.Testimonials)
}
