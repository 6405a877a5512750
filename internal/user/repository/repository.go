package repository

import (
	"context"

	"github.com/resolutionofarevolution/conversion-engine-api/internal/user/domain"
)

// Repository defines persistence for users.
type Repository interface {
	// GetByPhone returns the user with the given phone, or nil if not found.
	// Matching is byte-exact; no normalization is applied.
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
	// CreateIfAbsent inserts the user unless a row with the same phone already
	// exists. On insert it assigns u.ID and u.CreatedAt and returns true; when
	// the phone is already taken it leaves u untouched and returns false.
	CreateIfAbsent(ctx context.Context, u *domain.User) (bool, error)
}
