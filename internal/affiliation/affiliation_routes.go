package affiliation

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
	affiliations := r.Group("/affiliations")
	affiliations.Use(middleware.ContextLogger(logger))
	{
		affiliations.POST("", middleware.RequireAuth(verifier), handler.Create)
		affiliations.GET("/employee/:email", handler.ByEmployee)
		affiliations.GET("/team/:hrEmail", handler.Team)

		affiliations.DELETE("/remove/:email",
			middleware.RequireAuth(verifier),
			middleware.RequireHR(roles),
			handler.Remove,
		)
	}
}
