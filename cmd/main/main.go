package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"freshcart/internal/app"
	"freshcart/internal/cart"
	"freshcart/internal/checkout"
	handlersCart "freshcart/internal/handlers/cart"
	handlersCheckout "freshcart/internal/handlers/checkout"
	"freshcart/internal/kafka"
	"freshcart/internal/middleware"
	"freshcart/internal/notify"
	"freshcart/internal/pricing"
	"freshcart/internal/storage"

	_ "github.com/lib/pq"
)

const cfgPath = "config/config.yaml"

func main() {
	// init logger
	zapLogger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}

	logger := zapLogger.Sugar()
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			logger.Warnf("error to sync logger: %v", err)
		}
	}()

	// парсим конфиг
	c, err := app.NewConfig(cfgPath)
	if err != nil {
		logger.Fatalf("error to parsing config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// init storage
	kv, closeStorage := newStorage(c, logger)
	defer closeStorage()

	// init notifications
	var notifier notify.Notifier = notify.NewLogNotifier(logger)
	if len(c.CfgKafka.Brokers) > 0 {
		producer := kafka.NewProducer(c.CfgKafka.Brokers, c.CfgKafka.Topic, logger)
		defer func() {
			if err := producer.Close(); err != nil {
				logger.Warnf("error to close kafka producer: %v", err)
			}
		}()

		notifier = notify.Multi{
			notifier,
			notify.NewKafkaNotifier(producer, uuid.NewString(), logger),
		}
	}

	// init metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// init cart
	store, err := cart.NewStore(
		ctx,
		cart.NewBridge(kv, c.Cart.Key, logger),
		notifier,
		logger,
		cart.WithMetrics(cart.NewMetrics(registry)),
	)
	if err != nil {
		logger.Fatalf("error to restore cart: %v", err)
	}

	pricingCfg, err := c.PricingConfig()
	if err != nil {
		logger.Fatalf("error to parsing pricing: %v", err)
	}
	calc := pricing.NewCalculator(pricingCfg)

	formatter, err := pricing.NewFormatter(c.Cart.Currency)
	if err != nil {
		logger.Fatalf("error to init currency formatter: %v", err)
	}

	checkoutService := checkout.NewService(store, kv, calc, notifier, logger)

	// init handlers
	cartHandlers := handlersCart.NewCartHandler(logger, store, calc, formatter, notifier)
	checkoutHandlers := handlersCheckout.NewCheckoutHandler(logger, checkoutService)

	r := app.NewRouter(cartHandlers, checkoutHandlers, middleware.NewHTTPMetrics(registry), registry)

	logger.Infow("starting server",
		"type", "START",
		"addr", c.ServerPort,
		"storage", c.Storage,
	)

	srv := &http.Server{
		Addr:         c.ServerPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("can't start server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Infow("shutting down server", "type", "STOP")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), c.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("error to shutdown server: %v", err)
	}
}

// newStorage поднимает выбранное в конфиге хранилище и возвращает функцию его закрытия
func newStorage(c *app.Config, logger *zap.SugaredLogger) (storage.KeyValueStore, func()) {
	switch c.Storage {
	case app.StorageRedis:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     c.CfgRedis.Addr,
			Password: c.CfgRedis.Password,
			DB:       c.CfgRedis.DB,
		})

		return storage.NewRedisStore(redisClient, logger, c.CfgRedis.Prefix), func() {
			if err := redisClient.Close(); err != nil {
				logger.Warnf("error to close redis: %v", err)
			}
		}
	case app.StoragePostgres:
		db, err := sql.Open("postgres", c.DSN())
		if err != nil {
			logger.Fatalf("error to database start: %v", err)
		}

		db.SetMaxOpenConns(c.MaxOpenConns)
		if err := db.Ping(); err != nil {
			logger.Infof("Failed to get response to ping: %v", err)
		}

		return storage.NewPostgresStore(db, logger), func() {
			if err := db.Close(); err != nil {
				logger.Warnf("error to close database: %v", err)
			}
		}
	default:
		return storage.NewMemoryStore(), func() {}
	}
}
