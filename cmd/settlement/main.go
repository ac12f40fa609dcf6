package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/piresc/nebengjek-settlement/internal/pkg/config"
	"github.com/piresc/nebengjek-settlement/internal/pkg/constants"
	"github.com/piresc/nebengjek-settlement/internal/pkg/custody"
	"github.com/piresc/nebengjek-settlement/internal/pkg/database"
	"github.com/piresc/nebengjek-settlement/internal/pkg/health"
	"github.com/piresc/nebengjek-settlement/internal/pkg/ledger"
	"github.com/piresc/nebengjek-settlement/internal/pkg/ledger/rpc"
	"github.com/piresc/nebengjek-settlement/internal/pkg/ledger/token"
	"github.com/piresc/nebengjek-settlement/internal/pkg/logger"
	"github.com/piresc/nebengjek-settlement/internal/pkg/metrics"
	"github.com/piresc/nebengjek-settlement/internal/pkg/middleware"
	natspkg "github.com/piresc/nebengjek-settlement/internal/pkg/nats"
	nrpkg "github.com/piresc/nebengjek-settlement/internal/pkg/newrelic"
	"github.com/piresc/nebengjek-settlement/internal/pkg/server"
	"github.com/piresc/nebengjek-settlement/services/settlement/gateway"
	"github.com/piresc/nebengjek-settlement/services/settlement/handler"
	"github.com/piresc/nebengjek-settlement/services/settlement/indexer"
	"github.com/piresc/nebengjek-settlement/services/settlement/repository"
	"github.com/piresc/nebengjek-settlement/services/settlement/usecase"
)

const (
	derivationCacheSize = 4096
	resumeBatchSize     = 500
)

func main() {
	appName := "settlement-service"
	configPath := config.GetEnv("CONFIG_PATH", "config/settlement.env")
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

	// Recover the operator key from its two halves
	operator, err := custody.LoadOperator(configs.Custody.EncryptedKey, configs.Custody.Secret)
	if err != nil {
		zapLogger.Fatal("Failed to recover operator key", zap.Error(err))
	}
	zapLogger.Info("Operator key loaded", zap.String("operator", operator.PublicKey().String()))

	treasury, err := ledger.ParsePublicKey(configs.Ledger.Treasury)
	if err != nil {
		zapLogger.Fatal("Invalid treasury address", zap.Error(err))
	}

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NATS and the settlement stream
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	streamCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = natsClient.EnsureStream(streamCtx, constants.StreamSettlement, constants.StreamSettlementMaxAge, constants.SubjectSettlementAll)
	cancel()
	if err != nil {
		zapLogger.Fatal("Failed to ensure NATS stream", zap.Error(err))
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	settlementMetrics, err := metrics.New(registry)
	if err != nil {
		zapLogger.Fatal("Failed to register metrics", zap.Error(err))
	}

	// Ledger client
	ledgerClient := rpc.NewClient(configs.Ledger.RPCURL, configs.Ledger.Commitment, configs.Ledger.RequestTimeout, zapLogger, settlementMetrics)

	deriver, err := token.NewDeriver(derivationCacheSize)
	if err != nil {
		zapLogger.Fatal("Failed to create derivation cache", zap.Error(err))
	}

	// Initialize repositories
	paymentRepo := repository.NewPaymentRepository(configs, postgresClient.GetDB())
	transferRepo := repository.NewTransferRepository(configs, postgresClient.GetDB())
	leaseRepo := repository.NewLeaseRepository(redisClient)

	// Initialize gateway
	eventGW := gateway.NewEventGW(natsClient)

	// Initialize settlement components
	builder := usecase.NewTransferBuilder(ledgerClient, operator, deriver, treasury,
		configs.Ledger.FeeNumerator, configs.Ledger.FeeDenominator)
	verifier := usecase.NewVerifier(operator.PublicKey(), deriver)
	finalizer := usecase.NewTransferFinalizer(transferRepo, eventGW, settlementMetrics)

	refIndexer := indexer.NewIndexer(configs.Indexer, ledgerClient, verifier, finalizer)
	indexerManager := indexer.NewManager(configs.Indexer, refIndexer, leaseRepo, settlementMetrics, nrApp)

	// Initialize usecase
	settlementUC, err := usecase.NewSettlementUC(configs, paymentRepo, transferRepo, ledgerClient,
		builder, verifier, finalizer, indexerManager, deriver)
	if err != nil {
		zapLogger.Fatal("Failed to create settlement use case", zap.Error(err))
	}

	if configs.Indexer.ResumeOnBoot {
		resumeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if _, err := settlementUC.ResumePending(resumeCtx, resumeBatchSize); err != nil {
			zapLogger.Error("Failed to resume pending transfers", zap.Error(err))
		}
		cancel()
	}

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecovery(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.CheckerFunc(postgresClient.Ping))
	healthService.AddChecker("redis", health.CheckerFunc(redisClient.Ping))
	healthService.AddChecker("nats", health.CheckerFunc(natsClient.CheckHealth))
	healthService.AddChecker("ledger", ledgerClient)
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// Register service routes
	limiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RedisClient: redisClient.GetClient(),
		Key:         "settlement:ratelimit",
		Limit:       30,
		Period:      time.Minute,
	})
	handler.NewHandler(settlementUC).RegisterRoutes(e, limiter)

	// Start server; indexers stop after the HTTP server has drained
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port, time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	srv.OnShutdown("indexer", indexerManager.Shutdown)

	if err := srv.Run(context.Background()); err != nil {
		zapLogger.Fatal("Server stopped with error",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
