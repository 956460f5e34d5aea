package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/udoykumar/assets-verse-server/internal/affiliation"
	"github.com/udoykumar/assets-verse-server/internal/analytics"
	"github.com/udoykumar/assets-verse-server/internal/asset"
	"github.com/udoykumar/assets-verse-server/internal/assignedasset"
	"github.com/udoykumar/assets-verse-server/internal/billing"
	"github.com/udoykumar/assets-verse-server/internal/catalog"
	"github.com/udoykumar/assets-verse-server/internal/identity"
	"github.com/udoykumar/assets-verse-server/internal/payment"
	"github.com/udoykumar/assets-verse-server/internal/request"
	"github.com/udoykumar/assets-verse-server/internal/user"
)

func registerModules(
	router *gin.Engine,
	db *mongo.Database,
	rdb *redis.Client,
	verifier identity.Verifier,
	provider billing.Provider,
	siteDomain string,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	userRepo := user.NewRepository(db)
	assetRepo := asset.NewRepository(db)
	assignedRepo := assignedasset.NewRepository(db)
	requestRepo := request.NewRepository(db)
	affiliationRepo := affiliation.NewRepository(db)
	paymentRepo := payment.NewRepository(db)
	catalogRepo := catalog.NewRepository(db)

	// --- Services ---
	userService := user.NewService(userRepo, logger)
	assetService := asset.NewService(assetRepo, logger)
	assignedService := assignedasset.NewService(assignedRepo, logger)
	requestService := request.NewService(requestRepo, logger)
	affiliationService := affiliation.NewService(affiliationRepo, userRepo, assignedRepo, logger)
	paymentService := payment.NewService(paymentRepo, provider, siteDomain, logger)
	catalogService := catalog.NewService(catalogRepo, rdb, logger)
	analyticsService := analytics.NewService(assetRepo, requestRepo, logger)

	// --- Handlers ---
	userHandler := user.NewHandler(userService, logger)
	assetHandler := asset.NewHandler(assetService, logger)
	assignedHandler := assignedasset.NewHandler(assignedService, logger)
	requestHandler := request.NewHandler(requestService, logger)
	affiliationHandler := affiliation.NewHandler(affiliationService, logger)
	paymentHandler := payment.NewHandlerWithRedis(paymentService, rdb, logger)
	catalogHandler := catalog.NewHandler(catalogService, logger)
	analyticsHandler := analytics.NewHandler(analyticsService, logger)

	// HR gate reads the live role from the user store.
	roles := userService

	// --- Routes Registration ---
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Assetverse server loading...")
	})

	root := router.Group("")
	{
		user.RegisterRoutes(root, userHandler, verifier, logger)
		asset.RegisterRoutes(root, assetHandler, verifier, roles, logger)
		assignedasset.RegisterRoutes(root, assignedHandler, logger)
		request.RegisterRoutes(root, requestHandler, verifier, roles, logger)
		affiliation.RegisterRoutes(root, affiliationHandler, verifier, roles, logger)
		payment.RegisterRoutes(root, paymentHandler, rdb, logger)
		catalog.RegisterRoutes(root, catalogHandler, logger)
		analytics.RegisterRoutes(root, analyticsHandler, verifier, roles, logger)
	}

	return nil
}
