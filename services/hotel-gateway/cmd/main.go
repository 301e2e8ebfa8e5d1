// Package main is the entry point for the hotel gateway
// It initializes all components and starts the HTTP server
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"

	"hotelhub/pkg/httpclient"
	"hotelhub/pkg/jwt"
	"hotelhub/pkg/kafka"
	"hotelhub/pkg/logger"
	"hotelhub/pkg/postgres"
	"hotelhub/pkg/redis"
	"hotelhub/pkg/validator"
	"hotelhub/services/hotel-gateway/bookingcode"
	"hotelhub/services/hotel-gateway/config"
	httpDelivery "hotelhub/services/hotel-gateway/delivery/http"
	"hotelhub/services/hotel-gateway/domain/model"
	"hotelhub/services/hotel-gateway/domain/repository"
	"hotelhub/services/hotel-gateway/metadata"
	"hotelhub/services/hotel-gateway/metrics"
	"hotelhub/services/hotel-gateway/notification"
	memoryRepository "hotelhub/services/hotel-gateway/repository/memory"
	pgRepository "hotelhub/services/hotel-gateway/repository/postgres"
	redisRepository "hotelhub/services/hotel-gateway/repository/redis"
	"hotelhub/services/hotel-gateway/supplier"
	"hotelhub/services/hotel-gateway/supplier/rest"
	"hotelhub/services/hotel-gateway/usecase"
)

// main is the entry point of the application
// It performs the following steps:
// 1. Loads configuration and initializes the logger
// 2. Connects the optional infrastructure (Redis, PostgreSQL, Kafka)
// 3. Builds one authenticated executor and REST adapter per supplier
// 4. Initializes the enrichment, room detail and use case layers
// 5. Sets up HTTP routes
// 6. Starts the HTTP server with graceful shutdown
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewWithOptions().Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	appLogger := logger.NewWithOptions(
		logger.WithLevel(logger.ParseLevel(cfg.Logger.Level)),
		logger.WithFormat(cfg.Logger.Format),
	)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	gatewayMetrics := metrics.New(registry)

	// Token cache: Redis when configured, else in-process
	var tokenCache repository.TokenCache
	var redisClient redis.RedisClient
	if cfg.Infrastructure.Redis.Enabled() {
		redisClient, err = redis.NewWithConfig(cfg.Infrastructure.Redis)
		if err != nil {
			appLogger.Error("Failed to connect to redis", "error", err)
			os.Exit(1)
		}
		tokenCache = redisRepository.NewTokenCache(redisClient, appLogger)
	} else {
		appLogger.Warn("Redis is not configured, supplier tokens are cached in memory")
		tokenCache = memoryRepository.NewTokenCache(time.Now)
	}

	// Credential overrides: PostgreSQL when configured
	var (
		postgresClient postgres.PostgresClient
		overrides      repository.Credential
		cipher         *supplier.Cipher
	)
	if cfg.Infrastructure.Postgres.Enabled() {
		postgresClient, err = postgres.NewPostgresClient(cfg.Infrastructure.Postgres)
		if err != nil {
			appLogger.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		if cfg.Infrastructure.Postgres.IsUseMigrate {
			if err := postgresClient.Migrate(&model.CredentialOverride{}); err != nil {
				appLogger.Error("Failed to migrate database", "error", err)
				os.Exit(1)
			}
		}
		cipher, err = supplier.NewCipher(cfg.Security.Encryption.Key)
		if err != nil {
			appLogger.Error("Invalid encryption key", "error", err)
			os.Exit(1)
		}
		overrides = pgRepository.NewCredentialRepository(postgresClient.GetDB(), appLogger)
	}

	// Price comparison notifications: Kafka when configured, else logged
	var notifier repository.PriceNotifier
	var kafkaClient kafka.KafkaClient
	if cfg.Infrastructure.Kafka.Enabled() {
		kafkaClient, err = kafka.NewWithConfig(cfg.Infrastructure.Kafka.Config)
		if err != nil {
			appLogger.Error("Failed to create kafka producer", "error", err)
			os.Exit(1)
		}
		notifier = notification.NewKafkaNotifier(kafkaClient, cfg.Infrastructure.Kafka.Topics.PriceCompare, appLogger)
	} else {
		notifier = notification.NewLogNotifier(appLogger)
	}

	metadataRepo := metadata.New(httpclient.New(
		httpclient.WithBaseURL(cfg.Metadata.BaseURL),
		httpclient.WithTimeout(cfg.Metadata.Timeout),
		httpclient.WithRetryCount(cfg.Metadata.RetryCount),
		httpclient.WithLogger(logger.WithComponent(appLogger, "metadata")),
	), appLogger)

	// Suppliers
	codec := bookingcode.New(validator.NewValidator())
	inspector := jwt.NewWithConfig(cfg.Token)
	defaults := make(map[string]model.Credential, len(cfg.Suppliers))
	checkTimes := make(map[string]usecase.CheckTimes, len(cfg.Suppliers))
	for _, s := range cfg.Suppliers {
		defaults[s.Code] = model.Credential{Username: s.Username, Password: s.Password}
		checkTimes[s.Code] = usecase.CheckTimes{CheckIn: s.CheckInTime, CheckOut: s.CheckOutTime}
	}
	credentials := supplier.NewCredentialResolver(defaults, overrides, cipher, appLogger)

	suppliers := make([]repository.HotelSupplier, 0, len(cfg.Suppliers))
	for _, s := range cfg.Suppliers {
		supplierLogger := logger.WithSupplier(appLogger, s.Code)
		client := httpclient.New(
			httpclient.WithBaseURL(s.BaseURL),
			httpclient.WithTimeout(s.Timeout),
			httpclient.WithRetryCount(s.RetryCount),
			httpclient.WithLogger(supplierLogger),
			httpclient.WithInterceptors(
				gatewayMetrics.Interceptor(s.Code),
				metrics.NewTracingInterceptor(otel.GetTracerProvider(), s.Code),
			),
		)
		opts := []supplier.ExecutorOption{
			supplier.WithObserver(gatewayMetrics),
			supplier.WithTokenInspector(inspector),
		}
		if s.LoginPath != "" {
			opts = append(opts, supplier.WithLoginPath(s.LoginPath))
		}
		executor := supplier.NewExecutor(s.Code, client, credentials, tokenCache, supplierLogger, opts...)
		suppliers = append(suppliers, rest.New(executor, codec, supplierLogger))
	}

	// Initialize usecase
	enricher := usecase.NewEnricher(metadataRepo, usecase.EnricherConfig{
		PageSize:           cfg.Enrichment.PageSize,
		BookingConcurrency: cfg.Enrichment.BookingConcurrency,
		SupplierDefaults:   checkTimes,
	}, gatewayMetrics, appLogger)
	resolver := usecase.NewRoomDetailResolver(codec, suppliers, notifier, appLogger,
		usecase.WithFallback(cfg.RoomDetail.FallbackEnabled),
		usecase.WithRoomDetailObserver(gatewayMetrics),
	)
	hotelUseCase := usecase.NewHotelUseCase(suppliers, enricher, resolver, appLogger)

	// Initialize handlers
	hotelHandler := httpDelivery.NewHotelHandler(hotelUseCase, appLogger)
	healthHandler := httpDelivery.NewHealthHandler(cfg.SupplierCodes(), appLogger)
	var credentialHandler *httpDelivery.CredentialHandler
	if overrides != nil {
		credentialUseCase := usecase.NewCredentialUseCase(overrides, cipher, cfg.SupplierCodes(), appLogger)
		credentialHandler = httpDelivery.NewCredentialHandler(credentialUseCase, appLogger)
	}

	// Initialize router
	router := httpDelivery.NewRouter(hotelHandler, credentialHandler, healthHandler,
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{}), appLogger)

	server := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Server.Port),
		Handler:      router.SetupRoutes(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Create channel to listen for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Start HTTP server in a separate goroutine
	go func() {
		appLogger.Info("Service starting", "name", cfg.Application.Name, "version", cfg.Application.Version, "port", cfg.Server.Port, "suppliers", cfg.SupplierCodes())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Block until a signal is received
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", "error", err)
	}

	// Flushes pending price comparisons
	if kafkaClient != nil {
		if err := kafkaClient.Close(); err != nil {
			appLogger.Warn("Error closing kafka producer", "error", err)
		}
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			appLogger.Warn("Error closing redis connection", "error", err)
		}
	}
	if postgresClient != nil {
		if err := postgresClient.Close(); err != nil {
			appLogger.Warn("Error closing database connection", "error", err)
		}
	}

	appLogger.Info("Server exited")
}
