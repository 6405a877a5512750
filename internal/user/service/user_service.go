package service

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/resolutionofarevolution/conversion-engine-api/internal/user/domain"
)

// ErrPhoneRequired is returned when the phone field is empty; the handler maps it to a validation error.
var ErrPhoneRequired = errors.New("phone is required")

// PhoneCheck is the outcome of PhoneExists. UserID is zero when Exists is false.
type PhoneCheck struct {
	Exists bool
	UserID int64
}

// UserRepo is the minimal user repository needed by the user service.
type UserRepo interface {
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
}

// UserService implements the phone-existence check.
type UserService struct {
	users  UserRepo
	tracer trace.Tracer
}

// NewUserService returns a UserService with the given dependencies.
func NewUserService(users UserRepo) *UserService {
	return &UserService{
		users:  users,
		tracer: otel.Tracer("user"),
	}
}

// PhoneExists looks up exactly one user by byte-exact phone match. An absent
// phone is a valid non-error outcome, not a failure. No side effects, so
// repeated calls with the same phone return the same result.
func (s *UserService) PhoneExists(ctx context.Context, phone string) (*PhoneCheck, error) {
	if phone == "" {
		return nil, ErrPhoneRequired
	}
	ctx, span := s.tracer.Start(ctx, "user.PhoneExists")
	defer span.End()

	u, err := s.users.GetByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return &PhoneCheck{Exists: false}, nil
	}
	return &PhoneCheck{Exists: true, UserID: u.ID}, nil
}
