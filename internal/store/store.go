// Package store provides the unit-of-work factory over Postgres. A Store
// hands out repositories bound to the pool for autocommit work, and
// WithinTx runs a function with repositories bound to a single transaction
// that commits only if the function returns nil.
package store

import (
	"context"

	addressrepo "github.com/resolutionofarevolution/conversion-engine-api/internal/address/repository"
	catalogrepo "github.com/resolutionofarevolution/conversion-engine-api/internal/catalog/repository"
	orderrepo "github.com/resolutionofarevolution/conversion-engine-api/internal/order/repository"
	userrepo "github.com/resolutionofarevolution/conversion-engine-api/internal/user/repository"
)

// UnitOfWork bundles the repositories that share one transactional scope.
type UnitOfWork interface {
	Users() userrepo.Repository
	Addresses() addressrepo.Repository
	Orders() orderrepo.Repository
	Products() catalogrepo.Repository
}

// Store is an injected unit-of-work factory: repositories outside any
// transaction plus WithinTx for atomic multi-step writes. Tests substitute
// an in-memory implementation.
type Store interface {
	UnitOfWork
	// WithinTx begins a transaction, calls fn with repositories bound to it,
	// and commits when fn returns nil. Any error from fn rolls the
	// transaction back and is returned unchanged.
	WithinTx(ctx context.Context, fn func(UnitOfWork) error) error
}
