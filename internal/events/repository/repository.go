package repository

import (
	"context"

	"github.com/resolutionofarevolution/conversion-engine-api/internal/events"
)

// Repository defines persistence for the order_events audit table, written
// by cmd/worker from the Kafka stream.
type Repository interface {
	// Save persists the event. The event must have ID set; inserting the
	// same event id twice is a no-op so redelivered messages stay idempotent.
	Save(ctx context.Context, e *events.OrderEvent) error
	// ListByOrder returns events recorded for the given order, oldest first.
	ListByOrder(ctx context.Context, orderID int64) ([]*events.OrderEvent, error)
}
