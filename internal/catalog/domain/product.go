package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item. Read-only for the order flow: orders reference
// products but never create, update, or decrement them.
type Product struct {
	ID        int64
	Name      string
	Price     decimal.Decimal
	Stock     int32
	CreatedAt time.Time
}
