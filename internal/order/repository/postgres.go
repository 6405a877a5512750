package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/resolutionofarevolution/conversion-engine-api/internal/db"
	"github.com/resolutionofarevolution/conversion-engine-api/internal/order/domain"
)

type PostgresRepository struct {
	db db.DBTX
}

// NewPostgresRepository returns an order repository that uses the given db
// or transaction for persistence.
func NewPostgresRepository(dbtx db.DBTX) *PostgresRepository {
	return &PostgresRepository{db: dbtx}
}

// CreateOrder inserts the order and assigns o.ID and o.CreatedAt from the database.
func (r *PostgresRepository) CreateOrder(ctx context.Context, o *domain.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	const query = `
		INSERT INTO orders (user_id, address_id, subtotal, delivery_charge, total_amount,
		                    order_status, payment_status, payment_method)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING order_id, created_at
	`
	method := sql.NullString{String: o.PaymentMethod, Valid: o.PaymentMethod != ""}
	return r.db.QueryRowContext(ctx, query,
		o.UserID, o.AddressID, o.Subtotal, o.DeliveryCharge, o.TotalAmount,
		o.Status, o.PaymentStatus, method,
	).Scan(&o.ID, &o.CreatedAt)
}

// CreateItem inserts the line item and assigns it.ID from the database.
func (r *PostgresRepository) CreateItem(ctx context.Context, it *domain.Item) error {
	const query = `
		INSERT INTO order_items (order_id, product_id, quantity, price, total_price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING order_item_id
	`
	return r.db.QueryRowContext(ctx, query,
		it.OrderID, it.ProductID, it.Quantity, it.Price, it.TotalPrice,
	).Scan(&it.ID)
}

// ListDetailed returns the flattened grid. Inner joins drop orders with no
// line items; ties on created_at keep store-default ordering.
func (r *PostgresRepository) ListDetailed(ctx context.Context) ([]domain.DetailedRow, error) {
	const query = `
		SELECT o.order_id,
		       COALESCE(u.full_name, ''),
		       u.phone,
		       COALESCE(a.address_line, ''),
		       COALESCE(a.city, ''),
		       COALESCE(a.state, ''),
		       COALESCE(a.pincode, ''),
		       o.payment_method,
		       o.created_at,
		       COALESCE(p.product_name, ''),
		       oi.quantity,
		       oi.price,
		       o.total_amount
		FROM orders o
		JOIN users u ON o.user_id = u.user_id
		JOIN addresses a ON o.address_id = a.address_id
		JOIN order_items oi ON o.order_id = oi.order_id
		JOIN products p ON oi.product_id = p.product_id
		ORDER BY o.created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.DetailedRow
	for rows.Next() {
		var (
			row                        domain.DetailedRow
			line, city, state, pincode string
			method                     sql.NullString
		)
		if err := rows.Scan(
			&row.OrderID, &row.CustomerName, &row.ContactNumber,
			&line, &city, &state, &pincode,
			&method, &row.OrderedDate, &row.ProductName,
			&row.Quantity, &row.Price, &row.TotalBill,
		); err != nil {
			return nil, err
		}
		row.FullAddress = fmt.Sprintf("%s, %s, %s, %s", line, city, state, pincode)
		if method.Valid {
			row.PaymentMethod = &method.String
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

var _ Repository = (*PostgresRepository)(nil)
