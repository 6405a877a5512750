package repository

import (
	"context"

	"github.com/resolutionofarevolution/conversion-engine-api/internal/order/domain"
)

// Repository defines persistence for orders and their line items.
type Repository interface {
	// CreateOrder inserts a new order and assigns o.ID and o.CreatedAt.
	CreateOrder(ctx context.Context, o *domain.Order) error
	// CreateItem inserts one line item and assigns it.ID. Callers insert
	// items one at a time, in input order.
	CreateItem(ctx context.Context, it *domain.Item) error
	// ListDetailed returns the flattened order/product grid: one row per
	// (order, item) pair, inner-joined across users, addresses, and
	// products, sorted by order creation time descending. Orders with zero
	// items do not appear.
	ListDetailed(ctx context.Context) ([]domain.DetailedRow, error)
}
