package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	orderdomain "github.com/resolutionofarevolution/conversion-engine-api/internal/order/domain"
	"github.com/resolutionofarevolution/conversion-engine-api/internal/order/service"
)

type fakeOrderService struct {
	createRes *service.CreateOrderResult
	createErr error
	lastInput service.CreateOrderInput

	rows    []orderdomain.DetailedRow
	listErr error
}

func (f *fakeOrderService) CreateOrder(ctx context.Context, in service.CreateOrderInput) (*service.CreateOrderResult, error) {
	f.lastInput = in
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createRes, nil
}

func (f *fakeOrderService) ListDetailed(ctx context.Context) ([]orderdomain.DetailedRow, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.rows, nil
}

const validBody = `{
	"phone": "9000000001",
	"full_name": "Rahul Sharma",
	"address_line": "Sector 10",
	"city": "Navi Mumbai",
	"state": "Maharashtra",
	"pincode": "410218",
	"delivery_charge": 40,
	"payment_method": "COD",
	"items": [
		{"product_id": 1, "quantity": 2, "price": 50},
		{"product_id": 2, "quantity": 1, "price": 100}
	]
}`

func doCreateOrder(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/create-test-order", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreateOrder(rec, req)
	return rec
}

func TestCreateOrderSuccess(t *testing.T) {
	svc := &fakeOrderService{createRes: &service.CreateOrderResult{OrderID: 12, UserID: 5}}
	h := NewHandler(svc, zap.NewNop())

	rec := doCreateOrder(t, h, validBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body)
	}

	var resp CreateOrderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "Test order created successfully" {
		t.Errorf("message = %q", resp.Message)
	}
	if resp.OrderID != 12 || resp.UserID != 5 {
		t.Errorf("ids = (%d, %d), want (12, 5)", resp.OrderID, resp.UserID)
	}

	in := svc.lastInput
	if in.Phone != "9000000001" || len(in.Items) != 2 {
		t.Fatalf("unexpected service input: %+v", in)
	}
	if !in.DeliveryCharge.Equal(decimal.NewFromInt(40)) {
		t.Errorf("delivery_charge = %s, want 40", in.DeliveryCharge)
	}
	if !in.Items[1].Price.Equal(decimal.NewFromInt(100)) {
		t.Errorf("items[1].price = %s, want 100", in.Items[1].Price)
	}
}

func TestCreateOrderMissingFields(t *testing.T) {
	h := NewHandler(&fakeOrderService{}, zap.NewNop())

	rec := doCreateOrder(t, h, `{"phone":"9000000001"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var resp struct {
		Error  string `json:"error"`
		Fields []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"fields"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != "validation failed" {
		t.Errorf("error = %q", resp.Error)
	}
	names := make(map[string]bool)
	for _, f := range resp.Fields {
		names[f.Field] = true
	}
	for _, want := range []string{"full_name", "address_line", "city", "state", "pincode", "payment_method", "items"} {
		if !names[want] {
			t.Errorf("missing field error for %q, got %v", want, resp.Fields)
		}
	}
	if names["phone"] {
		t.Error("phone flagged even though it was present")
	}
}

func TestCreateOrderEmptyItemsAccepted(t *testing.T) {
	svc := &fakeOrderService{createRes: &service.CreateOrderResult{OrderID: 1, UserID: 1}}
	h := NewHandler(svc, zap.NewNop())

	body := strings.Replace(validBody, `[
		{"product_id": 1, "quantity": 2, "price": 50},
		{"product_id": 2, "quantity": 1, "price": 100}
	]`, `[]`, 1)
	rec := doCreateOrder(t, h, body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (empty items list is valid), body: %s", rec.Code, rec.Body)
	}
	if svc.lastInput.Items == nil || len(svc.lastInput.Items) != 0 {
		t.Fatalf("items = %v, want empty non-nil slice", svc.lastInput.Items)
	}
}

func TestCreateOrderNegativeAmountsPassThrough(t *testing.T) {
	svc := &fakeOrderService{createRes: &service.CreateOrderResult{OrderID: 1, UserID: 1}}
	h := NewHandler(svc, zap.NewNop())

	body := strings.Replace(validBody, `"quantity": 2, "price": 50`, `"quantity": -2, "price": -50`, 1)
	rec := doCreateOrder(t, h, body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (signs are not validated), body: %s", rec.Code, rec.Body)
	}
}

func TestCreateOrderInvalidJSON(t *testing.T) {
	h := NewHandler(&fakeOrderService{}, zap.NewNop())

	rec := doCreateOrder(t, h, `{"phone": `)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCreateOrderConflict(t *testing.T) {
	h := NewHandler(&fakeOrderService{createErr: service.ErrConflict}, zap.NewNop())

	rec := doCreateOrder(t, h, validBody)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestCreateOrderServiceError(t *testing.T) {
	h := NewHandler(&fakeOrderService{createErr: errors.New("tx failed")}, zap.NewNop())

	rec := doCreateOrder(t, h, validBody)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "tx failed") {
		t.Errorf("body %q leaks internal error detail", rec.Body.String())
	}
}

func TestListDetailed(t *testing.T) {
	method := "COD"
	ordered := time.Date(2026, 2, 27, 12, 10, 22, 0, time.UTC)
	svc := &fakeOrderService{rows: []orderdomain.DetailedRow{
		{
			OrderID:       12,
			CustomerName:  "Rahul Sharma",
			ContactNumber: "9000000001",
			FullAddress:   "Sector 10, Navi Mumbai, Maharashtra, 410218",
			PaymentMethod: &method,
			OrderedDate:   ordered,
			ProductName:   "Paracetamol 500mg",
			Quantity:      2,
			Price:         decimal.NewFromInt(50),
			TotalBill:     decimal.NewFromInt(140),
		},
		{
			OrderID:       12,
			CustomerName:  "Rahul Sharma",
			ContactNumber: "9000000001",
			FullAddress:   "Sector 10, Navi Mumbai, Maharashtra, 410218",
			PaymentMethod: nil,
			OrderedDate:   ordered,
			ProductName:   "Cough Syrup 100ml",
			Quantity:      1,
			Price:         decimal.RequireFromString("120.50"),
			TotalBill:     decimal.NewFromInt(140),
		},
	}}
	h := NewHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/orders-detailed", nil)
	rec := httptest.NewRecorder()
	h.ListDetailed(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var rows []map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &rows); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if string(rows[0]["order_id"]) != "12" {
		t.Errorf("order_id = %s, want 12", rows[0]["order_id"])
	}
	if string(rows[0]["customer_name"]) != `"Rahul Sharma"` {
		t.Errorf("customer_name = %s", rows[0]["customer_name"])
	}
	if string(rows[0]["payment_method"]) != `"COD"` {
		t.Errorf("payment_method = %s, want \"COD\"", rows[0]["payment_method"])
	}
	if string(rows[1]["payment_method"]) != "null" {
		t.Errorf("payment_method = %s, want null", rows[1]["payment_method"])
	}
	if string(rows[0]["price"]) != "50" {
		t.Errorf("price = %s, want the JSON number 50", rows[0]["price"])
	}
	if string(rows[1]["price"]) != "120.5" {
		t.Errorf("price = %s, want the JSON number 120.5", rows[1]["price"])
	}
	if string(rows[0]["total_bill"]) != "140" {
		t.Errorf("total_bill = %s, want the order-level 140 on every row", rows[0]["total_bill"])
	}
}

func TestListDetailedEmpty(t *testing.T) {
	h := NewHandler(&fakeOrderService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/orders-detailed", nil)
	rec := httptest.NewRecorder()
	h.ListDetailed(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Fatalf("body = %q, want [] (never null)", got)
	}
}

func TestListDetailedError(t *testing.T) {
	h := NewHandler(&fakeOrderService{listErr: errors.New("query failed")}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/orders-detailed", nil)
	rec := httptest.NewRecorder()
	h.ListDetailed(rec, req)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}
