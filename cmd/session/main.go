package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/piresc/lleva/internal/pkg/circuitbreaker"
	"github.com/piresc/lleva/internal/pkg/config"
	"github.com/piresc/lleva/internal/pkg/database"
	"github.com/piresc/lleva/internal/pkg/health"
	"github.com/piresc/lleva/internal/pkg/logger"
	"github.com/piresc/lleva/internal/pkg/middleware"
	natspkg "github.com/piresc/lleva/internal/pkg/nats"
	nrpkg "github.com/piresc/lleva/internal/pkg/newrelic"
	"github.com/piresc/lleva/internal/pkg/retry"
	"github.com/piresc/lleva/internal/pkg/server"
	"github.com/piresc/lleva/internal/pkg/simulation"
	wspkg "github.com/piresc/lleva/internal/pkg/websocket"
	authHandler "github.com/piresc/lleva/services/auth/handler"
	authHTTP "github.com/piresc/lleva/services/auth/handler/http"
	authRepository "github.com/piresc/lleva/services/auth/repository"
	authUsecase "github.com/piresc/lleva/services/auth/usecase"
	driverHandler "github.com/piresc/lleva/services/driver/handler"
	driverHTTP "github.com/piresc/lleva/services/driver/handler/http"
	driverRepository "github.com/piresc/lleva/services/driver/repository"
	driverUsecase "github.com/piresc/lleva/services/driver/usecase"
	"github.com/piresc/lleva/services/session/gateway"
	"github.com/piresc/lleva/services/session/handler"
	httpHandler "github.com/piresc/lleva/services/session/handler/http"
	"github.com/piresc/lleva/services/session/repository"
	"github.com/piresc/lleva/services/session/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "session-service"
	configPath := config.GetEnv("CONFIG_PATH", "config/session.env")
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	shutdown := server.NewShutdownManager(zapLogger)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	shutdown.Register("postgres", func(context.Context) error { return postgresClient.Close() })

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	shutdown.Register("redis", func(context.Context) error { return redisClient.Close() })

	natsClient, err := natspkg.NewClient(configs.NATS.URL, appName)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	shutdown.Register("nats", func(context.Context) error {
		natsClient.Close()
		return nil
	})

	// Repositories
	db := postgresClient.GetDB()
	breakerConfig := circuitbreaker.DefaultConfig("booking-backend")
	breakerConfig.IsFailure = repository.IsInfrastructureFailure
	backendBreaker := circuitbreaker.New(breakerConfig, zapLogger)
	bookingRepo := repository.NewGuardedBookingBackend(repository.NewBookingRepository(configs, db), backendBreaker)
	ratingRepo := repository.NewRatingRepository(db)
	merchantRepo := repository.NewMerchantRepository(db, redisClient)
	userRepo := authRepository.NewUserRepository(db)
	tokenRepo := authRepository.NewTokenRepository(redisClient)
	vehicleRepo := driverRepository.NewVehicleRepository(db)

	startupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	seeded, err := merchantRepo.SeedDefaultMerchants(startupCtx)
	if err != nil {
		zapLogger.Warn("Failed to seed merchants", zap.Error(err))
	} else if seeded > 0 {
		zapLogger.Info("Seeded default merchants", zap.Int("count", seeded))
	}
	merchants, err := usecase.LoadMerchantDirectory(startupCtx, merchantRepo)
	cancel()
	if err != nil {
		zapLogger.Fatal("Failed to load merchant catalog", zap.Error(err))
	}

	// Gateways
	wsManager := wspkg.NewManager()
	shutdown.Register("websocket", func(context.Context) error {
		wsManager.CloseAll()
		return nil
	})

	registry := usecase.NewRegistry(&usecase.Dependencies{
		Backend:   bookingRepo,
		Ratings:   ratingRepo,
		Identity:  authUsecase.NewIdentity(userRepo, tokenRepo),
		Events:    gateway.NewEventGW(natsClient, retry.New(retry.DefaultPolicy(), zapLogger)),
		Notifier:  gateway.NewWSNotifier(wsManager),
		Merchants: merchants,
		Clock:     simulation.NewRealClock(),
		Random:    simulation.NewRandomSource(time.Now().UnixNano()),
		Sim:       configs.Simulation,
		Receipt:   configs.Receipt,
		Logger:    zapLogger,
	})
	shutdown.Register("sessions", func(context.Context) error {
		registry.ResetAll()
		return nil
	})

	// Use cases
	sessionUC, err := usecase.NewSessionUC(configs, registry)
	if err != nil {
		zapLogger.Fatal("Failed to create session use case", zap.Error(err))
	}
	authUC := authUsecase.NewAuthUC(configs, userRepo, tokenRepo, sessionUC)
	vehicleUC := driverUsecase.NewVehicleUC(vehicleRepo)

	// Handlers
	sessionRoutes := handler.NewHandler(httpHandler.NewSessionHandler(sessionUC), sessionUC, wsManager)
	authRoutes := authHandler.NewHandler(authHTTP.NewAuthHandler(authUC))
	driverRoutes := driverHandler.NewHandler(driverHTTP.NewVehicleHandler(vehicleUC))

	e := echo.New()
	e.HideBanner = true
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestContextMiddleware(appName))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPingChecker(postgresClient))
	healthService.AddChecker("redis", health.NewPingChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	healthService.AddChecker("booking_backend", backendBreaker)
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	authMiddleware := middleware.JWTAuthMiddleware(configs.JWT, tokenRepo)
	limiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		Counter: redisClient,
		Limit:   configs.RateLimit.Limit,
		Period:  configs.RateLimit.Period,
	})
	authRoutes.RegisterRoutes(e, authMiddleware, limiter)
	sessionRoutes.RegisterRoutes(e, authMiddleware, limiter)
	driverRoutes.RegisterRoutes(e, authMiddleware, limiter, middleware.ValidateAPIKey(configs.Admin.APIKey))

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second, shutdown)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error", zap.Error(err))
	}
}
