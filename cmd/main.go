package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/wms-fulfillment/application/allocation"
	pickingapp "github.com/muhammadheryan/wms-fulfillment/application/picking"
	"github.com/muhammadheryan/wms-fulfillment/application/tasks"
	waveapp "github.com/muhammadheryan/wms-fulfillment/application/wave"
	"github.com/muhammadheryan/wms-fulfillment/cmd/config"
	redisclient "github.com/muhammadheryan/wms-fulfillment/cmd/redis"
	_ "github.com/muhammadheryan/wms-fulfillment/docs"
	"github.com/muhammadheryan/wms-fulfillment/migration"
	orderRepo "github.com/muhammadheryan/wms-fulfillment/repository/order"
	picklistRepo "github.com/muhammadheryan/wms-fulfillment/repository/picklist"
	redisRepo "github.com/muhammadheryan/wms-fulfillment/repository/redis"
	stockRepo "github.com/muhammadheryan/wms-fulfillment/repository/stock"
	txRepo "github.com/muhammadheryan/wms-fulfillment/repository/tx"
	waveRepo "github.com/muhammadheryan/wms-fulfillment/repository/wave"
	"github.com/muhammadheryan/wms-fulfillment/thirdparty/rabbitmq"
	"github.com/muhammadheryan/wms-fulfillment/transport"
	"github.com/muhammadheryan/wms-fulfillment/utils/logger"
	"github.com/muhammadheryan/wms-fulfillment/utils/metrics"
	"go.uber.org/zap"
)

// @title WMS Fulfillment API
// @version 1.0
// @description Wave allocation, release and picking
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment, cfg.ServiceName); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if cfg.Database.MigrateOnStart {
		if err := migration.Apply(ctx, db); err != nil {
			logger.Fatal("err migrate db", zap.Error(err))
		}
	}

	// Initialize Redis client
	redisClient, err := redisclient.New(ctx, cfg.Redis)
	if err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	if redisClient == nil {
		logger.Warn("redis not configured, wave lock falls back to row locks")
	} else {
		defer redisClient.Close()
	}

	// Events are best effort; the service runs without a broker.
	var publisher rabbitmq.EventPublisher
	if cfg.RabbitMQ.Host != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Error("err connect rabbitmq, events disabled", zap.Error(err))
		} else {
			publisher = p
			defer p.Close()
		}

		if cfg.RabbitMQ.ConsumeCutoffs {
			consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password,
				cfg.Auth.InternalAPIURL, cfg.Auth.InternalAPIKey)
			if err != nil {
				logger.Error("err start cutoff consumer", zap.Error(err))
			} else {
				defer consumer.Close()
				go func() {
					if err := consumer.Start(ctx); err != nil {
						logger.Error("cutoff consumer stopped", zap.Error(err))
					}
				}()
			}
		}
	}

	m := metrics.New("wms")

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	StockRepo := stockRepo.NewStockRepository(db)
	WaveRepo := waveRepo.NewWaveRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	PickListRepo := picklistRepo.NewPickListRepository(db)
	RedisRepo := redisRepo.NewRepository(redisClient)

	// Initialize application layers
	WaveApp := waveapp.NewWaveApp(cfg, waveapp.Dependencies{
		TxRepo:       TxRepo,
		WaveRepo:     WaveRepo,
		OrderRepo:    OrderRepo,
		PickListRepo: PickListRepo,
		RedisRepo:    RedisRepo,
		Allocator:    allocation.NewAllocator(StockRepo),
		TaskGen:      tasks.NewTaskGenerator(StockRepo, PickListRepo),
		Publisher:    publisher,
		Metrics:      m,
	})
	PickingApp := pickingapp.NewPickingApp(pickingapp.Dependencies{
		TxRepo:       TxRepo,
		PickListRepo: PickListRepo,
		StockRepo:    StockRepo,
		OrderRepo:    OrderRepo,
		RedisRepo:    RedisRepo,
		Publisher:    publisher,
		Metrics:      m,
	})

	httpTransport := transport.NewTransport(WaveApp, PickingApp, transport.Options{
		JWTSecret:      cfg.Auth.JWTSecret,
		InternalAPIKey: cfg.Auth.InternalAPIKey,
		Metrics:        m,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("err shutdown server", zap.Error(err))
	}
}
