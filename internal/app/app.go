package app

import (
	"context"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/udoykumar/assets-verse-server/internal/billing"
	"github.com/udoykumar/assets-verse-server/internal/identity"
	"github.com/udoykumar/assets-verse-server/internal/middleware"
	"github.com/udoykumar/assets-verse-server/internal/shared/connection"
)

const defaultDBName = "assets_verse"

// BuildApp wires infrastructure and routes. The returned cleanup closes
// the store connections and must run after the HTTP server drains.
func BuildApp(router *gin.Engine) (func(), error) {
	logger := zap.L().Named("app")

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = defaultDBName
	}

	// 1. Infrastructure
	mongoClient, db, err := connection.ConnectMongoWithRetry(os.Getenv("MONGODB_URI"), dbName, 5)
	if err != nil {
		return nil, err
	}
	logger.Info("mongo connection established", zap.String("db", dbName))

	// Redis is optional; a nil client disables caching and idempotency replay.
	rdb, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		connection.DisconnectMongo(mongoClient)
		return nil, err
	}
	if rdb != nil {
		logger.Info("redis connection established")
	} else {
		logger.Warn("REDIS_ADDR not set, caching disabled")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	verifier, err := identity.NewFirebaseVerifier(ctx, os.Getenv("FB_SERVICE_KEY"))
	if err != nil {
		connection.DisconnectMongo(mongoClient)
		return nil, err
	}
	logger.Info("firebase verifier initialized")

	provider, err := billing.NewStripeProvider(os.Getenv("STRIPE_SECRET"))
	if err != nil {
		connection.DisconnectMongo(mongoClient)
		return nil, err
	}

	siteDomain := os.Getenv("SITE_DOMAIN")
	if siteDomain == "" {
		siteDomain = "http://localhost:5173"
	}

	// 2. Engine-wide middleware
	router.Use(middleware.RequestID())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{siteDomain, "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Idempotency-Key"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 3. Modules & routes
	if err := registerModules(router, db, rdb, verifier, provider, siteDomain, zap.L()); err != nil {
		connection.DisconnectMongo(mongoClient)
		return nil, err
	}

	cleanup := func() {
		connection.DisconnectMongo(mongoClient)
		if rdb != nil {
			if err := rdb.Close(); err != nil {
				logger.Warn("redis close failed", zap.Error(err))
			}
		}
	}
	return cleanup, nil
}
