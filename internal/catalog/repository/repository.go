package repository

import (
	"context"

	"github.com/resolutionofarevolution/conversion-engine-api/internal/catalog/domain"
)

// Repository defines persistence for products. The order flow only reads
// products; Create exists for cmd/seed.
type Repository interface {
	// GetByID returns the product for id, or nil if not found.
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	// GetByName returns the product with the given name, or nil if not found.
	GetByName(ctx context.Context, name string) (*domain.Product, error)
	// Create inserts a new product and assigns p.ID and p.CreatedAt.
	Create(ctx context.Context, p *domain.Product) error
}
