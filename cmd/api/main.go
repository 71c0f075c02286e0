package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/laundry-service/internal/api/http"
	"github.com/spec-kit/laundry-service/internal/api/http/handlers"
	"github.com/spec-kit/laundry-service/internal/auth"
	"github.com/spec-kit/laundry-service/internal/config"
	"github.com/spec-kit/laundry-service/internal/events"
	"github.com/spec-kit/laundry-service/internal/observability"
	"github.com/spec-kit/laundry-service/internal/persistence"
	"github.com/spec-kit/laundry-service/internal/repository"
	"github.com/spec-kit/laundry-service/internal/service"
	"github.com/spec-kit/laundry-service/internal/worker"
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

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	branchRepo := repository.NewBranchRepository(pool)
	employeeRepo := repository.NewEmployeeRepository(pool)
	machineRepo := repository.NewMachineRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Push)
	worker.StartNotificationWorker(notificationService)

	throttle := service.NewRedisLoginThrottle(redis.Client, cfg.Auth.MaxLoginAttempts, cfg.Auth.LockoutWindow())
	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo: userRepo,
		Throttle: throttle,
	})
	branchService := service.NewBranchService(branchRepo)
	employeeService := service.NewEmployeeService(employeeRepo, dispatcher)
	machineService := service.NewMachineService(machineRepo, dispatcher)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager())
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, httptransport.MiddlewareConfig{
		Logger:     logger,
		Metrics:    metrics,
		Timeout:    cfg.App.RequestTimeout(),
		Production: cfg.App.Production(),
	})

	secure := cfg.App.Production()
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService, secure),
		CSRF:           handlers.NewCSRFHandler(cfg.Auth.SessionTTL(), secure),
		Branches:       handlers.NewBranchesHandler(branchService),
		Employees:      handlers.NewEmployeesHandler(employeeService),
		Machines:       handlers.NewMachinesHandler(machineService),
		Push:           handlers.NewPushHandler(cfg.Push.PublicKey),
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
