package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/resolutionofarevolution/conversion-engine-api/internal/catalog/domain"
	"github.com/resolutionofarevolution/conversion-engine-api/internal/db"
)

type PostgresRepository struct {
	db db.DBTX
}

// NewPostgresRepository returns a product repository that uses the given db
// or transaction for persistence.
func NewPostgresRepository(dbtx db.DBTX) *PostgresRepository {
	return &PostgresRepository{db: dbtx}
}

// GetByID returns the product for id, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	const query = `
		SELECT product_id, product_name, price, stock, created_at
		FROM products
		WHERE product_id = $1
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// GetByName returns the product with the given name, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByName(ctx context.Context, name string) (*domain.Product, error) {
	const query = `
		SELECT product_id, product_name, price, stock, created_at
		FROM products
		WHERE product_name = $1
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, name))
}

// Create inserts the product and assigns p.ID and p.CreatedAt from the database.
func (r *PostgresRepository) Create(ctx context.Context, p *domain.Product) error {
	const query = `
		INSERT INTO products (product_name, price, stock)
		VALUES ($1, $2, $3)
		RETURNING product_id, created_at
	`
	return r.db.QueryRowContext(ctx, query, p.Name, p.Price, p.Stock).
		Scan(&p.ID, &p.CreatedAt)
}

func (r *PostgresRepository) scanOne(row *sql.Row) (*domain.Product, error) {
	var (
		p    domain.Product
		name sql.NullString
	)
	err := row.Scan(&p.ID, &name, &p.Price, &p.Stock, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	p.Name = name.String
	return &p, nil
}

var _ Repository = (*PostgresRepository)(nil)
