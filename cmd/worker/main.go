// worker consumes order events from Kafka and records them in the
// order_events audit table.
package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/resolutionofarevolution/conversion-engine-api/internal/config"
	"github.com/resolutionofarevolution/conversion-engine-api/internal/db"
	"github.com/resolutionofarevolution/conversion-engine-api/internal/events"
	eventsrepo "github.com/resolutionofarevolution/conversion-engine-api/internal/events/repository"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set; create a .env or set DATABASE_URL")
	}
	brokers := cfg.KafkaBrokersList()
	if len(brokers) == 0 {
		log.Fatal("KAFKA_BROKERS is not set")
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer conn.Close()

	repo := eventsrepo.NewPostgresRepository(conn)

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          cfg.OrderEventsKafkaTopic,
		GroupID:        cfg.KafkaGroupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		MaxWait:        1 * time.Second,
		CommitInterval: 1 * time.Second,
	})
	defer func() { _ = reader.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("order events worker started",
		zap.Strings("brokers", brokers),
		zap.String("topic", cfg.OrderEventsKafkaTopic),
		zap.String("group_id", cfg.KafkaGroupID))

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				logger.Info("worker stopping")
				return
			}
			logger.Error("read message", zap.Error(err))
			continue
		}

		var event events.OrderEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logger.Warn("skipping malformed event",
				zap.Int64("offset", msg.Offset),
				zap.Error(err))
			continue
		}

		if err := repo.Save(ctx, &event); err != nil {
			logger.Error("save event",
				zap.String("event_id", event.ID),
				zap.Int64("order_id", event.OrderID),
				zap.Error(err))
			continue
		}

		logger.Info("recorded order event",
			zap.String("event_id", event.ID),
			zap.String("event_type", event.EventType),
			zap.Int64("order_id", event.OrderID))
	}
}
