package user

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
	logger *zap.Logger,
) {
	users := r.Group("/users")
	users.Use(middleware.ContextLogger(logger))
	{
		users.POST("/employee", middleware.RateLimitByIP(1, 5), handler.RegisterEmployee)
		users.POST("/hr", middleware.RateLimitByIP(1, 5), handler.RegisterHR)
		users.GET("", middleware.RequireAuth(verifier), handler.GetAll)
		users.GET("/:email", handler.GetByEmail)
		users.GET("/:email/role", handler.GetRole)
		users.PATCH("/:email", middleware.RequireAuth(verifier), handler.Patch)
	}
}
