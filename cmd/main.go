package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	catalogapp "github.com/kelasfoto/kelasfoto/application/catalog"
	orderapp "github.com/kelasfoto/kelasfoto/application/order"
	paymentapp "github.com/kelasfoto/kelasfoto/application/payment"
	userapp "github.com/kelasfoto/kelasfoto/application/user"
	"github.com/kelasfoto/kelasfoto/cmd/config"
	redisclient "github.com/kelasfoto/kelasfoto/cmd/redis"
	_ "github.com/kelasfoto/kelasfoto/docs"
	catalogRepo "github.com/kelasfoto/kelasfoto/repository/catalog"
	orderRepo "github.com/kelasfoto/kelasfoto/repository/order"
	paymentRepo "github.com/kelasfoto/kelasfoto/repository/payment"
	redisRepo "github.com/kelasfoto/kelasfoto/repository/redis"
	txRepo "github.com/kelasfoto/kelasfoto/repository/tx"
	userRepo "github.com/kelasfoto/kelasfoto/repository/user"
	"github.com/kelasfoto/kelasfoto/thirdparty/ipecho"
	"github.com/kelasfoto/kelasfoto/thirdparty/rabbitmq"
	"github.com/kelasfoto/kelasfoto/thirdparty/storage"
	"github.com/kelasfoto/kelasfoto/transport"
	"github.com/kelasfoto/kelasfoto/utils/logger"
	"go.uber.org/zap"
)

// @title KELASFOTO API
// @version 1.0
// @description School photography ordering API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Object storage
	store, err := storage.New(context.Background(), cfg.Storage)
	if err != nil {
		logger.Fatal("err init storage", zap.Error(err))
	}

	// RabbitMQ is optional; order completion notifications are skipped when
	// the broker is unreachable.
	publisher, err := rabbitmq.NewPublisher(cfg.AMQP.Host, cfg.AMQP.Port, cfg.AMQP.User, cfg.AMQP.Password)
	if err != nil {
		logger.Error("err connect rabbitmq publisher", zap.Error(err))
		publisher = nil
	} else {
		defer publisher.Close()
	}

	consumer, err := rabbitmq.NewConsumer(cfg.AMQP.Host, cfg.AMQP.Port, cfg.AMQP.User, cfg.AMQP.Password, cfg.Internal.BaseURL, cfg.Internal.APIKey)
	if err != nil {
		logger.Error("err connect rabbitmq consumer", zap.Error(err))
	} else {
		defer consumer.Close()
		go func() {
			if err := consumer.Start(context.Background()); err != nil {
				logger.Error("order notification consumer stopped", zap.Error(err))
			}
		}()
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	CatalogRepo := catalogRepo.NewCatalogRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	PaymentRepo := paymentRepo.NewPaymentRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// IP echo resolver for payment request signing
	ipResolver := ipecho.NewClient(cfg.IPEcho.URL)

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, CatalogRepo, RedisRepo, store)
	CatalogApp := catalogapp.NewCatalogApp(cfg, CatalogRepo, RedisRepo, store)
	OrderApp := orderapp.NewOrderApp(cfg, TxRepo, CatalogRepo, OrderRepo, PaymentRepo, ipResolver)
	PaymentApp := paymentapp.NewPaymentApp(cfg, TxRepo, OrderRepo, PaymentRepo, UserRepo, store, publisher)

	httpTransport := transport.NewTransport(UserApp, CatalogApp, OrderApp, PaymentApp, cfg.Internal.APIKey)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
