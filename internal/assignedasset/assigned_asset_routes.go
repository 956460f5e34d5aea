package assignedasset

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/udoykumar/assets-verse-server/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	assigned := r.Group("/assigned-assets")
	assigned.Use(middleware.ContextLogger(logger))
	{
		assigned.POST("", handler.Assign)
		assigned.GET("/:email", handler.ByEmployee)
	}
}
