package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"freshcart/internal/feed"
	"freshcart/internal/kafka"
	"freshcart/internal/storage"
)

const cfgPath = "config/notifier.yaml"

func main() {
	// Init logger
	zapLogger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	logger := zapLogger.Sugar()
	defer func() { _ = zapLogger.Sync() }()

	// Parse config
	c, err := feed.NewConfig(cfgPath)
	if err != nil {
		logger.Fatalf("Error parsing config: %v", err)
	}
	if len(c.CfgKafka.Brokers) == 0 {
		logger.Fatal("kafka.brokers must not be empty")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init storage: без redis лента живёт в памяти процесса
	var kv storage.KeyValueStore = storage.NewMemoryStore()
	if c.CfgRedis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     c.CfgRedis.Addr,
			Password: c.CfgRedis.Password,
			DB:       c.CfgRedis.DB,
		})
		defer redisClient.Close()

		kv = storage.NewRedisStore(redisClient, logger, c.CfgRedis.Prefix)
	}

	// Init Kafka Consumer
	consumer := kafka.NewConsumer(c.CfgKafka.Brokers, c.CfgKafka.Topic, c.CfgKafka.GroupID, logger)
	defer consumer.Close()

	repo := feed.NewRepository(kv, c.History, logger)
	service := feed.NewService(repo, logger)

	handler := feed.NewHandler(service, logger)
	r := mux.NewRouter()
	r.HandleFunc("/sessions/{session_id}/notifications", handler.GetNotifications).Methods("GET")

	srv := &http.Server{
		Addr:         c.ServerPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	// Start event processor
	g.Go(func() error {
		consumer.Consume(gCtx, service.ProcessEvent)
		return nil
	})

	g.Go(func() error {
		logger.Infof("Starting notifier service on %s", c.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Errorf("notifier stopped with error: %v", err)
	}
}
