package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPAddr != ":8000" {
		t.Errorf("HTTPAddr = %q, want :8000", cfg.HTTPAddr)
	}
	if cfg.RequestTimeout != "60s" {
		t.Errorf("RequestTimeout = %q, want 60s", cfg.RequestTimeout)
	}
	if cfg.CORSAllowedOrigins != "*" {
		t.Errorf("CORSAllowedOrigins = %q, want *", cfg.CORSAllowedOrigins)
	}
	if cfg.OrderEventsKafkaTopic != "order-events" {
		t.Errorf("OrderEventsKafkaTopic = %q, want order-events", cfg.OrderEventsKafkaTopic)
	}
	if cfg.KafkaGroupID != "order-events-worker" {
		t.Errorf("KafkaGroupID = %q, want order-events-worker", cfg.KafkaGroupID)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/orders")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPAddr != ":9090" {
		t.Errorf("HTTPAddr = %q, want :9090", cfg.HTTPAddr)
	}
	if cfg.DatabaseURL != "postgres://localhost:5432/orders" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if got := cfg.RequestTimeoutDuration(); got != 5*time.Second {
		t.Errorf("RequestTimeoutDuration() = %v, want 5s", got)
	}

	brokers := cfg.KafkaBrokersList()
	if len(brokers) != 2 || brokers[0] != "kafka-1:9092" || brokers[1] != "kafka-2:9092" {
		t.Errorf("KafkaBrokersList() = %v", brokers)
	}
}

func TestRequestTimeoutDurationInvalid(t *testing.T) {
	cfg := &Config{RequestTimeout: "not-a-duration"}
	if got := cfg.RequestTimeoutDuration(); got != 60*time.Second {
		t.Errorf("RequestTimeoutDuration() = %v, want fallback 60s", got)
	}
	cfg.RequestTimeout = "-3s"
	if got := cfg.RequestTimeoutDuration(); got != 60*time.Second {
		t.Errorf("RequestTimeoutDuration() = %v, want fallback 60s for non-positive", got)
	}
}

func TestKafkaBrokersListEmpty(t *testing.T) {
	cfg := &Config{}
	if got := cfg.KafkaBrokersList(); got != nil {
		t.Errorf("KafkaBrokersList() = %v, want nil", got)
	}
}

func TestCORSOrigins(t *testing.T) {
	cfg := &Config{}
	if got := cfg.CORSOrigins(); len(got) != 1 || got[0] != "*" {
		t.Errorf("CORSOrigins() = %v, want [*]", got)
	}
	cfg.CORSAllowedOrigins = "https://a.example, https://b.example"
	got := cfg.CORSOrigins()
	if len(got) != 2 || got[0] != "https://a.example" || got[1] != "https://b.example" {
		t.Errorf("CORSOrigins() = %v", got)
	}
}
