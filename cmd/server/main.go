package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/resolutionofarevolution/conversion-engine-api/internal/config"
	"github.com/resolutionofarevolution/conversion-engine-api/internal/db"
	"github.com/resolutionofarevolution/conversion-engine-api/internal/events"
	eventsotel "github.com/resolutionofarevolution/conversion-engine-api/internal/events/otel"
	"github.com/resolutionofarevolution/conversion-engine-api/internal/events/producer"
	healthhandler "github.com/resolutionofarevolution/conversion-engine-api/internal/health/handler"
	orderhandler "github.com/resolutionofarevolution/conversion-engine-api/internal/order/handler"
	orderservice "github.com/resolutionofarevolution/conversion-engine-api/internal/order/service"
	"github.com/resolutionofarevolution/conversion-engine-api/internal/server"
	"github.com/resolutionofarevolution/conversion-engine-api/internal/store"
	userhandler "github.com/resolutionofarevolution/conversion-engine-api/internal/user/handler"
	userservice "github.com/resolutionofarevolution/conversion-engine-api/internal/user/service"
)

const serviceName = "conversion-engine-api"

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set; create a .env or set DATABASE_URL")
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer conn.Close()
	logger.Info("connected to database")

	providers, err := eventsotel.NewProviders(context.Background(), cfg.OTLPEndpoint, serviceName, cfg.OTLPInsecure)
	if err != nil {
		log.Fatalf("otel: %v", err)
	}
	providers.SetGlobal()

	var emitter events.Emitter
	if brokers := cfg.KafkaBrokersList(); len(brokers) > 0 {
		kp := producer.NewKafkaProducer(brokers, cfg.OrderEventsKafkaTopic)
		if kp != nil {
			emitter = kp
			defer func() { _ = kp.Close() }()
			logger.Info("order events enabled", zap.Strings("brokers", brokers),
				zap.String("topic", cfg.OrderEventsKafkaTopic))
		}
	}

	st := store.New(conn)
	orderSvc := orderservice.NewOrderService(st, emitter)
	userSvc := userservice.NewUserService(st.Users())

	router := server.NewRouter(
		orderhandler.NewHandler(orderSvc, logger),
		userhandler.NewHandler(userSvc, logger),
		healthhandler.NewHandler(conn),
		logger,
		server.Options{
			AllowedOrigins: cfg.CORSOrigins(),
			RequestTimeout: cfg.RequestTimeoutDuration(),
		},
	)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down http server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}

	// Let in-flight async event emits finish before tearing providers down.
	time.Sleep(events.ShutdownDrainDuration)
	if err := providers.Shutdown(ctx); err != nil {
		logger.Error("otel shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
