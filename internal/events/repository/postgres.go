package repository

import (
	"context"

	"github.com/resolutionofarevolution/conversion-engine-api/internal/db"
	"github.com/resolutionofarevolution/conversion-engine-api/internal/events"
	"github.com/shopspring/decimal"
)

type PostgresRepository struct {
	db db.DBTX
}

// NewPostgresRepository returns an order-event repository that uses the
// given db for persistence.
func NewPostgresRepository(dbtx db.DBTX) *PostgresRepository {
	return &PostgresRepository{db: dbtx}
}

// Save persists the event. Redelivered events (same event_id) are ignored.
func (r *PostgresRepository) Save(ctx context.Context, e *events.OrderEvent) error {
	const query = `
		INSERT INTO order_events (event_id, event_type, order_id, user_id, total_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (event_id) DO NOTHING
	`
	total, err := decimal.NewFromString(e.TotalAmount)
	if err != nil {
		total = decimal.Zero
	}
	_, err = r.db.ExecContext(ctx, query,
		e.ID, e.EventType, e.OrderID, e.UserID, total, e.CreatedAt,
	)
	return err
}

// ListByOrder returns events recorded for the given order, oldest first.
func (r *PostgresRepository) ListByOrder(ctx context.Context, orderID int64) ([]*events.OrderEvent, error) {
	const query = `
		SELECT event_id, event_type, order_id, user_id, total_amount, created_at
		FROM order_events
		WHERE order_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*events.OrderEvent
	for rows.Next() {
		var (
			e     events.OrderEvent
			total decimal.NullDecimal
		)
		if err := rows.Scan(&e.ID, &e.EventType, &e.OrderID, &e.UserID, &total, &e.CreatedAt); err != nil {
			return nil, err
		}
		if total.Valid {
			e.TotalAmount = total.Decimal.String()
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}

var _ Repository = (*PostgresRepository)(nil)
