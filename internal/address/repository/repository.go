package repository

import (
	"context"

	"github.com/resolutionofarevolution/conversion-engine-api/internal/address/domain"
)

// Repository defines persistence for addresses.
type Repository interface {
	// Create inserts a new address row and assigns a.ID and a.CreatedAt.
	// Always inserts; identical addresses are never deduplicated.
	Create(ctx context.Context, a *domain.Address) error
}
