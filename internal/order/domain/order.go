package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses set at creation. No status-update operation exists, so
// orders are immutable once written.
const (
	StatusPlaced         = "PLACED"
	PaymentStatusPending = "PENDING"
)

// Order is one placed order. TotalAmount must equal Subtotal plus
// DeliveryCharge at creation time; Subtotal must equal the sum of
// price × quantity over the order's items.
type Order struct {
	ID             int64
	UserID         int64
	AddressID      int64
	Subtotal       decimal.Decimal
	DeliveryCharge decimal.Decimal
	TotalAmount    decimal.Decimal
	Status         string
	PaymentStatus  string
	PaymentMethod  string // empty means not provided; stored as NULL
	CreatedAt      time.Time
}

// Validate validates the order for persistence. Returns an error describing the first validation failure.
func (o *Order) Validate() error {
	if o.UserID == 0 {
		return errors.New("user_id is required")
	}
	if o.AddressID == 0 {
		return errors.New("address_id is required")
	}
	if !o.TotalAmount.Equal(o.Subtotal.Add(o.DeliveryCharge)) {
		return errors.New("total_amount must equal subtotal plus delivery_charge")
	}
	return nil
}

// Item is one line item within an order: a product, its quantity, and the
// unit price at the time of order. One row per input line; duplicate
// product ids are never merged.
type Item struct {
	ID         int64
	OrderID    int64
	ProductID  int64
	Quantity   int32
	Price      decimal.Decimal
	TotalPrice decimal.Decimal
}

// LineTotal returns price × quantity for the item.
func (i *Item) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt32(i.Quantity))
}

// Subtotal returns the sum of price × quantity over items. Returns zero for
// an empty list. Decimal arithmetic throughout, so no float rounding drift.
func Subtotal(items []Item) decimal.Decimal {
	sum := decimal.Zero
	for i := range items {
		sum = sum.Add(items[i].LineTotal())
	}
	return sum
}

// DetailedRow is one row of the flattened order/product grid: one row per
// (order, line item, product) combination. TotalBill repeats the order-level
// total on every row of the same order, not the per-line total.
type DetailedRow struct {
	OrderID       int64
	CustomerName  string
	ContactNumber string
	FullAddress   string
	PaymentMethod *string // nil for orders stored without a payment method
	OrderedDate   time.Time
	ProductName   string
	Quantity      int32
	Price         decimal.Decimal
	TotalBill     decimal.Decimal
}
