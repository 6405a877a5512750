// Package events defines order lifecycle events and best-effort async
// emission. Events are emitted fire-and-forget after a successful commit;
// they never affect the request outcome.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderCreated is the event type emitted after a successful create-order commit.
const OrderCreated = "order.created"

// OrderEvent is one order lifecycle event, serialized as JSON on the wire
// and in the order_events audit table.
type OrderEvent struct {
	ID          string    `json:"event_id"`
	EventType   string    `json:"event_type"`
	OrderID     int64     `json:"order_id"`
	UserID      int64     `json:"user_id"`
	TotalAmount string    `json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewOrderCreated builds an order.created event with a fresh event id.
func NewOrderCreated(orderID, userID int64, total decimal.Decimal) *OrderEvent {
	return &OrderEvent{
		ID:          uuid.NewString(),
		EventType:   OrderCreated,
		OrderID:     orderID,
		UserID:      userID,
		TotalAmount: total.String(),
		CreatedAt:   time.Now().UTC(),
	}
}

// Emitter emits order events. Callers use it best-effort: log and ignore errors.
type Emitter interface {
	// Emit sends a single event. Implementations may block briefly; call from a goroutine if needed.
	Emit(ctx context.Context, event *OrderEvent) error
	// Close releases resources (e.g. a Kafka writer). Safe to call if already closed.
	Close() error
}
