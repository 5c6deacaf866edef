package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	statuscache "campuspay/internal/adapter/cache"
	"campuspay/internal/adapter/persistence/repository"
	infracache "campuspay/internal/infrastructure/cache"
	appconfig "campuspay/internal/infrastructure/config"
	"campuspay/internal/infrastructure/database"
	"campuspay/internal/infrastructure/payments"
	"campuspay/internal/usecase"
	"campuspay/internal/usecase/interfaces"
	"campuspay/internal/worker"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := appconfig.Load()

	ddb, err := database.Connect(ctx)
	if err != nil {
		log.Fatalf("failed to create dynamodb client: %v", err)
	}
	payableRepo := repository.NewPayableDynamoRepository(ddb, cfg.PayablesTable, cfg.EnrollmentsTable)

	registry, err := payments.NewRegistry(cfg)
	if err != nil {
		log.Fatalf("payment provider registry: %v", err)
	}

	var cache interfaces.IStatusCache
	if redisClient := infracache.Connect(cfg); redisClient != nil {
		cache = statuscache.NewRedisStatusCache(redisClient)
	}

	verifier := usecase.NewVerificationUseCase(registry)
	reconciler := usecase.NewReconciliationUseCase(payableRepo, verifier, cache)

	poller := worker.NewPoller(payableRepo, reconciler, cfg.PollInterval, cfg.PollBatchSize, cfg.PollMaxAttempts)
	poller.Run(ctx)
}
