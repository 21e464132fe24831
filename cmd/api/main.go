package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/pharma-inventory/internal/api/http"
	"github.com/spec-kit/pharma-inventory/internal/api/http/handlers"
	"github.com/spec-kit/pharma-inventory/internal/auth"
	"github.com/spec-kit/pharma-inventory/internal/config"
	"github.com/spec-kit/pharma-inventory/internal/observability"
	"github.com/spec-kit/pharma-inventory/internal/persistence"
	"github.com/spec-kit/pharma-inventory/internal/repository"
	"github.com/spec-kit/pharma-inventory/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL())
	denylist := auth.NewDenylist(redis.Client, tokens.TTL())

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool, hasher.Hash)

	userService := service.NewUserService(userRepo, hasher, denylist)
	facilityService := service.NewCatalog(repository.NewFacilityRepository(pool))
	medicationService := service.NewCatalog(repository.NewMedicationRepository(pool))
	inventoryService := service.NewCatalog(repository.NewInventoryRepository(pool))
	requisitionService := service.NewCatalog(repository.NewRequisitionRepository(pool))
	purchaseOrderService := service.NewCatalog(repository.NewPurchaseOrderRepository(pool))
	transferService := service.NewCatalog(repository.NewTransferRepository(pool))
	vendorService := service.NewCatalog(repository.NewVendorRepository(pool))

	authMiddleware := auth.NewMiddleware(tokens, userRepo, denylist)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(userService, tokens),
		Users:          handlers.NewUsersHandler(userService),
		Facilities:     handlers.NewFacilitiesHandler(facilityService),
		Medications:    handlers.NewMedicationsHandler(medicationService),
		Inventory:      handlers.NewInventoryHandler(inventoryService),
		Requisitions:   handlers.NewRequisitionsHandler(requisitionService),
		PurchaseOrders: handlers.NewPurchaseOrdersHandler(purchaseOrderService),
		Transfers:      handlers.NewTransfersHandler(transferService),
		Vendors:        handlers.NewVendorsHandler(vendorService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
