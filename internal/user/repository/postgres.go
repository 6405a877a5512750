package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/resolutionofarevolution/conversion-engine-api/internal/db"
	"github.com/resolutionofarevolution/conversion-engine-api/internal/user/domain"
)

type PostgresRepository struct {
	db db.DBTX
}

// NewPostgresRepository returns a user repository that uses the given db or
// transaction for persistence.
func NewPostgresRepository(dbtx db.DBTX) *PostgresRepository {
	return &PostgresRepository{db: dbtx}
}

// GetByPhone returns the user with the given phone, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	const query = `
		SELECT user_id, phone, full_name, email, is_phone_verified, created_at
		FROM users
		WHERE phone = $1
	`
	var (
		u        domain.User
		fullName sql.NullString
		email    sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, phone).Scan(
		&u.ID, &u.Phone, &fullName, &email, &u.PhoneVerified, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	u.FullName = fullName.String
	u.Email = email.String
	return &u, nil
}

// CreateIfAbsent inserts the user with ON CONFLICT (phone) DO NOTHING so a
// concurrent insert of the same phone cannot fail the transaction. Returns
// true and fills u.ID and u.CreatedAt when this call created the row; returns
// false when another row already holds the phone.
func (r *PostgresRepository) CreateIfAbsent(ctx context.Context, u *domain.User) (bool, error) {
	if err := u.Validate(); err != nil {
		return false, err
	}
	const query = `
		INSERT INTO users (phone, full_name, email, is_phone_verified)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (phone) DO NOTHING
		RETURNING user_id, created_at
	`
	fullName := sql.NullString{String: u.FullName, Valid: u.FullName != ""}
	email := sql.NullString{String: u.Email, Valid: u.Email != ""}
	err := r.db.QueryRowContext(ctx, query, u.Phone, fullName, email, u.PhoneVerified).
		Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

var _ Repository = (*PostgresRepository)(nil)
