package asset

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
	assets := r.Group("/assets")
	assets.Use(middleware.ContextLogger(logger))
	{
		// Public marketplace listing.
		assets.GET("", handler.List)
		assets.GET("/id/:id", handler.ByID)

		assets.GET("/hr/:hrEmail", middleware.RequireAuth(verifier), handler.ByHR)

		assets.POST("",
			middleware.RequireAuth(verifier),
			middleware.RequireHR(roles),
			handler.Create,
		)
		assets.PATCH("/:id",
			middleware.RequireAuth(verifier),
			middleware.RequireHR(roles),
			handler.Patch,
		)
		assets.DELETE("/:id",
			middleware.RequireAuth(verifier),
			middleware.RequireHR(roles),
			middleware.RateLimitByPrincipal(1, 3),
			handler.Delete,
		)
	}
}
