package analytics

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/udoykumar/assets-verse-server/internal/identity"
	"github.com/udoykumar/assets-verse-server/internal/middleware"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	verifier identity.Verifier,
	roles middleware.RoleLookup,
	logger *zap.Logger,
) {
	analytics := r.Group("/analytics")
	analytics.Use(
		middleware.ContextLogger(logger),
		middleware.RequireAuth(verifier),
		middleware.RequireHR(roles),
	)
	{
		analytics.GET("/asset-distribution/:hrEmail", handler.AssetDistribution)
		analytics.GET("/top-requests/:hrEmail", handler.TopRequests)
	}
}
