package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	shipmentapp "github.com/muhammadheryan/fulfillment/application/shipment"
	"github.com/muhammadheryan/fulfillment/cmd/config"
	redisclient "github.com/muhammadheryan/fulfillment/cmd/redis"
	_ "github.com/muhammadheryan/fulfillment/docs"
	orderRepo "github.com/muhammadheryan/fulfillment/repository/order"
	productRepo "github.com/muhammadheryan/fulfillment/repository/product"
	redisRepo "github.com/muhammadheryan/fulfillment/repository/redis"
	shipmentRepo "github.com/muhammadheryan/fulfillment/repository/shipment"
	stockRepo "github.com/muhammadheryan/fulfillment/repository/stock"
	txRepo "github.com/muhammadheryan/fulfillment/repository/tx"
	"github.com/muhammadheryan/fulfillment/thirdparty/rabbitmq"
	"github.com/muhammadheryan/fulfillment/transport"
	"github.com/muhammadheryan/fulfillment/utils/logger"
	"go.uber.org/zap"
)

// @title FULFILLMENT API
// @version 1.0
// @description Order-to-shipment allocation service
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

	// Initialize RabbitMQ publisher
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer func() {
		_ = publisher.Close()
	}()

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	StockRepo := stockRepo.NewStockRepository(db)
	ShipmentRepo := shipmentRepo.NewShipmentRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	ShipmentApp := shipmentapp.NewShipmentApp(cfg, TxRepo, OrderRepo, ProductRepo, StockRepo, ShipmentRepo, RedisRepo, publisher)

	httpTransport := transport.NewTransport(cfg, ShipmentApp)

	// Start the shipment-created consumer
	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.Consumer.APIURL, cfg.Auth.InternalAPIKey)
	if err != nil {
		logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
	}
	defer func() {
		_ = consumer.Close()
	}()
	consumerCtx, cancelConsumer := context.WithCancel(context.Background())
	defer cancelConsumer()
	if err := consumer.Start(consumerCtx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}

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
