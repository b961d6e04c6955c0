package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/agent-console/internal/api/http"
	"github.com/spec-kit/agent-console/internal/api/http/handlers"
	"github.com/spec-kit/agent-console/internal/auth"
	"github.com/spec-kit/agent-console/internal/config"
	"github.com/spec-kit/agent-console/internal/events"
	"github.com/spec-kit/agent-console/internal/observability"
	"github.com/spec-kit/agent-console/internal/persistence"
	"github.com/spec-kit/agent-console/internal/repository"
	"github.com/spec-kit/agent-console/internal/repository/memory"
	"github.com/spec-kit/agent-console/internal/service"
	"github.com/spec-kit/agent-console/internal/session"
	"github.com/spec-kit/agent-console/internal/worker"
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

	// The request queue, demo agents and the fixture dataset always live
	// in the memory store; postgres, when configured, takes over the
	// row-backed entities.
	store := memory.NewStore()
	if err := memory.Seed(store, cfg.Auth.BcryptCost); err != nil {
		logger.Fatal("failed to seed store", zap.Error(err))
	}

	var (
		customerRepo repository.CustomerRepository
		productRepo  repository.ProductRepository
		chatRepo     repository.ChatRepository
		ticketRepo   repository.TicketRepository
	)
	if pool := pg.PoolHandle(); pool != nil {
		customerRepo = repository.NewCustomerRepository(pool)
		productRepo = repository.NewProductRepository(pool)
		chatRepo = repository.NewChatRepository(pool)
		ticketRepo = repository.NewTicketRepository(pool)
	} else {
		customerRepo = memory.NewCustomerRepository(store)
		productRepo = memory.NewProductRepository(store)
		chatRepo = memory.NewChatRepository(store)
		ticketRepo = memory.NewTicketRepository(store)
	}
	requestRepo := memory.NewRequestRepository(store)
	agentRepo := memory.NewAgentRepository(store)

	var sessionStore session.Store
	if strings.EqualFold(cfg.Session.Backend, "redis") {
		redis := persistence.NewRedis(cfg.Redis, logger)
		defer redis.Close()
		sessionStore = session.NewRedisStore(redis.Client, cfg.Session.TTL())
	} else {
		sessionStore = session.NewMemoryStore()
	}

	dispatcher := events.NewInMemoryDispatcher()
	projector := service.NewTimelineProjector(ticketRepo, agentRepo, logger)
	worker.StartTimelineWorker(projector, dispatcher)

	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)
	authMiddleware := auth.NewMiddleware(tokenManager, agentRepo)

	customerService := service.NewCustomerService(customerRepo, productRepo)
	chatService := service.NewChatService(chatRepo, logger)
	ticketService := service.NewTicketService(ticketRepo, dispatcher, logger)
	queueService := service.NewQueueService(requestRepo, sessionStore, logger)
	verificationService := service.NewVerificationService(sessionStore, customerRepo, productRepo, logger)
	authService := service.NewAuthService(agentRepo, tokenManager, logger)

	metrics := observability.NewMetrics()
	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(pg, cfg.App.Version),
		Customers:      handlers.NewCustomersHandler(customerService),
		Chat:           handlers.NewChatHandler(chatService),
		Products:       handlers.NewProductsHandler(customerService),
		Tickets:        handlers.NewTicketsHandler(ticketService),
		Identity:       handlers.NewIdentityHandler(),
		Queue:          handlers.NewQueueHandler(queueService),
		Sessions:       handlers.NewSessionsHandler(verificationService),
		Agents:         handlers.NewAgentsHandler(authService),
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
