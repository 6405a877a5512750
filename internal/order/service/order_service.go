package service

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	addressdomain "github.com/resolutionofarevolution/conversion-engine-api/internal/address/domain"
	"github.com/resolutionofarevolution/conversion-engine-api/internal/db"
	"github.com/resolutionofarevolution/conversion-engine-api/internal/events"
	orderdomain "github.com/resolutionofarevolution/conversion-engine-api/internal/order/domain"
	"github.com/resolutionofarevolution/conversion-engine-api/internal/store"
	userdomain "github.com/resolutionofarevolution/conversion-engine-api/internal/user/domain"
)

// Sentinel errors for the order service; the handler maps them to HTTP statuses.
var (
	// ErrPhoneRequired is returned when the phone field is empty.
	ErrPhoneRequired = errors.New("phone is required")
	// ErrConflict is returned when a unique constraint fails under concurrent
	// requests; the caller may retry the request as-is.
	ErrConflict = errors.New("conflicting write, retry the request")
)

// LineItem is one requested order line: product, quantity, and the unit
// price at order time. Quantity and price signs are not validated; the
// store accepts them as given.
type LineItem struct {
	ProductID int64
	Quantity  int32
	Price     decimal.Decimal
}

// CreateOrderInput is the validated input to CreateOrder.
type CreateOrderInput struct {
	Phone          string
	FullName       string
	AddressLine    string
	City           string
	State          string
	Pincode        string
	Items          []LineItem
	DeliveryCharge decimal.Decimal
	PaymentMethod  string
}

// CreateOrderResult holds the identifiers assigned to the new records.
type CreateOrderResult struct {
	OrderID int64
	UserID  int64
}

// OrderService implements the create-order transaction and the detailed
// order grid. All writes for one order happen in a single transaction, so a
// failure partway leaves no partial rows, address included.
type OrderService struct {
	store   store.Store
	emitter events.Emitter
	tracer  trace.Tracer
	created metric.Int64Counter
}

// NewOrderService returns an OrderService over the given store. emitter may
// be nil; order events are then skipped.
func NewOrderService(st store.Store, emitter events.Emitter) *OrderService {
	created, err := otel.Meter("order").Int64Counter("orders_created")
	if err != nil {
		otel.Handle(err)
	}
	return &OrderService{
		store:   st,
		emitter: emitter,
		tracer:  otel.Tracer("order"),
		created: created,
	}
}

// CreateOrder creates (or reuses) the user for the given phone, records a
// new address, and inserts the order with its line items — all inside one
// transaction committed only at the end.
//
// Existing users keep their stored full name; the request value is
// discarded. New users are created with is_phone_verified set, which is an
// assignment, not an actual verification step. The user insert races with
// concurrent requests for the same new phone: it runs as insert-if-absent
// and re-reads the winner's row when it loses.
func (s *OrderService) CreateOrder(ctx context.Context, in CreateOrderInput) (*CreateOrderResult, error) {
	if in.Phone == "" {
		return nil, ErrPhoneRequired
	}
	ctx, span := s.tracer.Start(ctx, "order.CreateOrder",
		trace.WithAttributes(attribute.Int("items", len(in.Items))))
	defer span.End()

	subtotal := decimal.Zero
	for _, it := range in.Items {
		subtotal = subtotal.Add(it.Price.Mul(decimal.NewFromInt32(it.Quantity)))
	}
	total := subtotal.Add(in.DeliveryCharge)

	var res CreateOrderResult
	err := s.store.WithinTx(ctx, func(uow store.UnitOfWork) error {
		user, err := uow.Users().GetByPhone(ctx, in.Phone)
		if err != nil {
			return err
		}
		if user == nil {
			u := &userdomain.User{
				Phone:         in.Phone,
				FullName:      in.FullName,
				PhoneVerified: true,
			}
			created, err := uow.Users().CreateIfAbsent(ctx, u)
			if err != nil {
				return err
			}
			if created {
				user = u
			} else {
				// Lost the insert race; the winner's row is committed by now.
				user, err = uow.Users().GetByPhone(ctx, in.Phone)
				if err != nil {
					return err
				}
				if user == nil {
					return ErrConflict
				}
			}
		}

		addr := &addressdomain.Address{
			UserID:  user.ID,
			Line:    in.AddressLine,
			City:    in.City,
			State:   in.State,
			Pincode: in.Pincode,
		}
		if err := uow.Addresses().Create(ctx, addr); err != nil {
			return err
		}

		o := &orderdomain.Order{
			UserID:         user.ID,
			AddressID:      addr.ID,
			Subtotal:       subtotal,
			DeliveryCharge: in.DeliveryCharge,
			TotalAmount:    total,
			Status:         orderdomain.StatusPlaced,
			PaymentStatus:  orderdomain.PaymentStatusPending,
			PaymentMethod:  in.PaymentMethod,
		}
		if err := uow.Orders().CreateOrder(ctx, o); err != nil {
			return err
		}

		for _, it := range in.Items {
			item := &orderdomain.Item{
				OrderID:    o.ID,
				ProductID:  it.ProductID,
				Quantity:   it.Quantity,
				Price:      it.Price,
				TotalPrice: it.Price.Mul(decimal.NewFromInt32(it.Quantity)),
			}
			if err := uow.Orders().CreateItem(ctx, item); err != nil {
				return err
			}
		}

		res = CreateOrderResult{OrderID: o.ID, UserID: user.ID}
		return nil
	})
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}

	if s.created != nil {
		s.created.Add(ctx, 1)
	}
	events.EmitAsync(s.emitter, events.NewOrderCreated(res.OrderID, res.UserID, total))
	return &res, nil
}

// ListDetailed returns the flattened order grid: one row per (order, line
// item) pair, newest orders first. Orders with no line items are excluded
// by the inner join. The full result set is returned in one call.
func (s *OrderService) ListDetailed(ctx context.Context) ([]orderdomain.DetailedRow, error) {
	ctx, span := s.tracer.Start(ctx, "order.ListDetailed")
	defer span.End()
	return s.store.Orders().ListDetailed(ctx)
}
