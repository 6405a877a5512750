package handler

import (
	"time"

	"github.com/shopspring/decimal"

	orderdomain "github.com/resolutionofarevolution/conversion-engine-api/internal/order/domain"
	"github.com/resolutionofarevolution/conversion-engine-api/internal/order/service"
	"github.com/resolutionofarevolution/conversion-engine-api/internal/response"
)

// LineItemRequest is one requested order line.
type LineItemRequest struct {
	ProductID int64           `json:"product_id"`
	Quantity  int32           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// CreateOrderRequest is the create-order request body. Amounts decode into
// decimals straight from the JSON text, so the input's numeric precision is
// preserved end to end.
type CreateOrderRequest struct {
	Phone          string            `json:"phone"`
	FullName       string            `json:"full_name"`
	AddressLine    string            `json:"address_line"`
	City           string            `json:"city"`
	State          string            `json:"state"`
	Pincode        string            `json:"pincode"`
	Items          []LineItemRequest `json:"items"`
	DeliveryCharge decimal.Decimal   `json:"delivery_charge"`
	PaymentMethod  string            `json:"payment_method"`
}

// Validate checks required fields and returns one FieldError per failure.
// Numeric signs are deliberately not validated: negative quantities, prices,
// and delivery charges pass through to the store as given. An empty items
// list is valid; only a missing items field is rejected.
func (r *CreateOrderRequest) Validate() []response.FieldError {
	var fields []response.FieldError
	required := []struct {
		name  string
		value string
	}{
		{"phone", r.Phone},
		{"full_name", r.FullName},
		{"address_line", r.AddressLine},
		{"city", r.City},
		{"state", r.State},
		{"pincode", r.Pincode},
		{"payment_method", r.PaymentMethod},
	}
	for _, f := range required {
		if f.value == "" {
			fields = append(fields, response.FieldError{Field: f.name, Message: "required"})
		}
	}
	if r.Items == nil {
		fields = append(fields, response.FieldError{Field: "items", Message: "required"})
	}
	return fields
}

// ToInput converts the request to the service input.
func (r *CreateOrderRequest) ToInput() service.CreateOrderInput {
	items := make([]service.LineItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = service.LineItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		}
	}
	return service.CreateOrderInput{
		Phone:          r.Phone,
		FullName:       r.FullName,
		AddressLine:    r.AddressLine,
		City:           r.City,
		State:          r.State,
		Pincode:        r.Pincode,
		Items:          items,
		DeliveryCharge: r.DeliveryCharge,
		PaymentMethod:  r.PaymentMethod,
	}
}

// CreateOrderResponse is the create-order success body.
type CreateOrderResponse struct {
	Message string `json:"message"`
	OrderID int64  `json:"order_id"`
	UserID  int64  `json:"user_id"`
}

// DetailedRowResponse is one row of the orders-detailed grid. price and
// total_bill are emitted as JSON numbers, matching the fixed contract.
type DetailedRowResponse struct {
	OrderID       int64     `json:"order_id"`
	CustomerName  string    `json:"customer_name"`
	ContactNumber string    `json:"contact_number"`
	FullAddress   string    `json:"full_address"`
	PaymentMethod *string   `json:"payment_method"`
	OrderedDate   time.Time `json:"ordered_date"`
	ProductName   string    `json:"product_name"`
	Quantity      int32     `json:"quantity"`
	Price         float64   `json:"price"`
	TotalBill     float64   `json:"total_bill"`
}

func newDetailedRowResponse(row orderdomain.DetailedRow) DetailedRowResponse {
	return DetailedRowResponse{
		OrderID:       row.OrderID,
		CustomerName:  row.CustomerName,
		ContactNumber: row.ContactNumber,
		FullAddress:   row.FullAddress,
		PaymentMethod: row.PaymentMethod,
		OrderedDate:   row.OrderedDate,
		ProductName:   row.ProductName,
		Quantity:      row.Quantity,
		Price:         row.Price.InexactFloat64(),
		TotalBill:     row.TotalBill.InexactFloat64(),
	}
}
