// Package handler exposes order creation and the detailed order grid over
// JSON HTTP.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	orderdomain "github.com/resolutionofarevolution/conversion-engine-api/internal/order/domain"
	"github.com/resolutionofarevolution/conversion-engine-api/internal/order/service"
	"github.com/resolutionofarevolution/conversion-engine-api/internal/response"
)

// OrderService is the minimal order service needed by this handler.
type OrderService interface {
	CreateOrder(ctx context.Context, in service.CreateOrderInput) (*service.CreateOrderResult, error)
	ListDetailed(ctx context.Context) ([]orderdomain.DetailedRow, error)
}

// Handler serves POST /create-test-order and GET /orders-detailed.
type Handler struct {
	svc    OrderService
	logger *zap.Logger
}

// NewHandler returns an order handler.
func NewHandler(svc OrderService, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// CreateOrder validates the request body and runs the create-order
// transaction. Conflicting concurrent writes map to 409 so the client can
// retry the identical request.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if fields := req.Validate(); len(fields) > 0 {
		response.ValidationError(w, fields)
		return
	}

	res, err := h.svc.CreateOrder(r.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPhoneRequired):
			response.ValidationError(w, []response.FieldError{{Field: "phone", Message: "required"}})
		case errors.Is(err, service.ErrConflict):
			response.Error(w, http.StatusConflict, "conflicting write, retry the request")
		default:
			h.logger.Error("create order failed", zap.Error(err))
			response.Error(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	response.JSON(w, http.StatusOK, CreateOrderResponse{
		Message: "Test order created successfully",
		OrderID: res.OrderID,
		UserID:  res.UserID,
	})
}

// ListDetailed returns the full flattened order grid in one response.
func (h *Handler) ListDetailed(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.ListDetailed(r.Context())
	if err != nil {
		h.logger.Error("list orders detailed failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	out := make([]DetailedRowResponse, len(rows))
	for i, row := range rows {
		out[i] = newDetailedRowResponse(row)
	}
	response.JSON(w, http.StatusOK, out)
}
