package repository

import (
	"context"
	"database/sql"

	"github.com/resolutionofarevolution/conversion-engine-api/internal/address/domain"
	"github.com/resolutionofarevolution/conversion-engine-api/internal/db"
)

type PostgresRepository struct {
	db db.DBTX
}

// NewPostgresRepository returns an address repository that uses the given db
// or transaction for persistence.
func NewPostgresRepository(dbtx db.DBTX) *PostgresRepository {
	return &PostgresRepository{db: dbtx}
}

// Create inserts the address and assigns a.ID and a.CreatedAt from the database.
func (r *PostgresRepository) Create(ctx context.Context, a *domain.Address) error {
	if err := a.Validate(); err != nil {
		return err
	}
	const query = `
		INSERT INTO addresses (user_id, address_line, city, state, pincode)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING address_id, created_at
	`
	line := sql.NullString{String: a.Line, Valid: a.Line != ""}
	city := sql.NullString{String: a.City, Valid: a.City != ""}
	state := sql.NullString{String: a.State, Valid: a.State != ""}
	pincode := sql.NullString{String: a.Pincode, Valid: a.Pincode != ""}
	return r.db.QueryRowContext(ctx, query, a.UserID, line, city, state, pincode).
		Scan(&a.ID, &a.CreatedAt)
}

var _ Repository = (*PostgresRepository)(nil)
