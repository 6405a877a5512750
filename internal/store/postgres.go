package store

import (
	"context"
	"database/sql"
	"fmt"

	addressrepo "github.com/resolutionofarevolution/conversion-engine-api/internal/address/repository"
	catalogrepo "github.com/resolutionofarevolution/conversion-engine-api/internal/catalog/repository"
	"github.com/resolutionofarevolution/conversion-engine-api/internal/db"
	orderrepo "github.com/resolutionofarevolution/conversion-engine-api/internal/order/repository"
	userrepo "github.com/resolutionofarevolution/conversion-engine-api/internal/user/repository"
)

// Postgres implements Store over *sql.DB.
type Postgres struct {
	db *sql.DB
	unitOfWork
}

// New returns a Postgres store over the given connection pool.
func New(sqldb *sql.DB) *Postgres {
	return &Postgres{db: sqldb, unitOfWork: newUnitOfWork(sqldb)}
}

// WithinTx begins a transaction, calls fn with repositories bound to it, and
// commits when fn returns nil. On error the transaction is rolled back and
// fn's error is returned unchanged so callers can match sentinel errors.
func (s *Postgres) WithinTx(ctx context.Context, fn func(UnitOfWork) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(newUnitOfWork(tx)); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

type unitOfWork struct {
	users     *userrepo.PostgresRepository
	addresses *addressrepo.PostgresRepository
	orders    *orderrepo.PostgresRepository
	products  *catalogrepo.PostgresRepository
}

func newUnitOfWork(dbtx db.DBTX) unitOfWork {
	return unitOfWork{
		users:     userrepo.NewPostgresRepository(dbtx),
		addresses: addressrepo.NewPostgresRepository(dbtx),
		orders:    orderrepo.NewPostgresRepository(dbtx),
		products:  catalogrepo.NewPostgresRepository(dbtx),
	}
}

func (u unitOfWork) Users() userrepo.Repository        { return u.users }
func (u unitOfWork) Addresses() addressrepo.Repository { return u.addresses }
func (u unitOfWork) Orders() orderrepo.Repository      { return u.orders }
func (u unitOfWork) Products() catalogrepo.Repository  { return u.products }

var _ Store = (*Postgres)(nil)
