package payment

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/udoykumar/assets-verse-server/internal/middleware"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	payments := r.Group("")
	payments.Use(middleware.ContextLogger(logger))
	{
		payments.POST("/create-checkout-session",
			middleware.RateLimitByIP(1, 3),
			middleware.Idempotency(rdb),
			handler.CreateCheckoutSession,
		)
		payments.GET("/checkout-session/:id", handler.GetCheckoutSession)
		payments.POST("/payments", middleware.RateLimitByIP(1, 5), handler.Record)
	}
}
