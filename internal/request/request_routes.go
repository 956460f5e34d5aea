package request

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
	requests := r.Group("/requests")
	requests.Use(middleware.ContextLogger(logger))
	{
		requests.POST("", middleware.RateLimitByIP(2, 10), handler.Submit)

		requests.GET("",
			middleware.RequireAuth(verifier),
			middleware.RequireHR(roles),
			handler.ByHR,
		)
		requests.PATCH("/:id",
			middleware.RequireAuth(verifier),
			middleware.RequireHR(roles),
			handler.UpdateStatus,
		)
	}
}
