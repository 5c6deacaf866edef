package routes

import (
	"context"
	"log"
	"strconv"

	_ "campuspay/docs" // swag-generated swagger spec
	statuscache "campuspay/internal/adapter/cache"
	"campuspay/internal/adapter/http/handlers"
	"campuspay/internal/adapter/persistence/repository"
	infracache "campuspay/internal/infrastructure/cache"
	appconfig "campuspay/internal/infrastructure/config"
	"campuspay/internal/infrastructure/database"
	"campuspay/internal/infrastructure/payments"
	"campuspay/internal/usecase"
	"campuspay/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run wires the service together and starts the HTTP server.
func Run() {
	cfg := appconfig.Load()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg appconfig.Config) {
	ddb, err := database.Connect(context.Background())
	if err != nil {
		log.Fatalf("failed to create dynamodb client: %v", err)
	}

	payableRepo := repository.NewPayableDynamoRepository(ddb, cfg.PayablesTable, cfg.EnrollmentsTable)

	registry, err := payments.NewRegistry(cfg)
	if err != nil {
		// Startup/configuration error by contract: do not serve verification
		// traffic against an unresolvable provider.
		log.Fatalf("payment provider registry: %v", err)
	}

	var cache interfaces.IStatusCache
	if redisClient := infracache.Connect(cfg); redisClient != nil {
		cache = statuscache.NewRedisStatusCache(redisClient)
	}

	verifier := usecase.NewVerificationUseCase(registry)
	reconciler := usecase.NewReconciliationUseCase(payableRepo, verifier, cache)
	payableUseCase := usecase.NewPayableUseCase(payableRepo)

	payableHandler := handlers.NewPayableHandler(payableUseCase)
	reconciliationHandler := handlers.NewReconciliationHandler(reconciler)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, payableHandler, reconciliationHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
