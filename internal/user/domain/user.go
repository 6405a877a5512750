package domain

import (
	"errors"
	"time"
)

// User is a customer identified externally by phone number.
type User struct {
	ID            int64
	Phone         string // unique; matched byte-exact, never normalized
	FullName      string
	Email         string // optional
	PhoneVerified bool
	CreatedAt     time.Time
}

// Validate validates the user for persistence. Returns an error describing the first validation failure.
func (u *User) Validate() error {
	if u.Phone == "" {
		return errors.New("phone is required")
	}
	return nil
}
