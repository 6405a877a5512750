package domain

import (
	"errors"
	"fmt"
	"time"
)

// Address is a delivery address owned by a user. A new row is created for
// every order; identical addresses are never deduplicated.
type Address struct {
	ID        int64
	UserID    int64
	Line      string
	City      string
	State     string
	Pincode   string
	CreatedAt time.Time
}

// Validate validates the address for persistence. Returns an error describing the first validation failure.
func (a *Address) Validate() error {
	if a.UserID == 0 {
		return errors.New("user_id is required")
	}
	return nil
}

// Full returns the single-line rendering used by the detailed order grid:
// "{line}, {city}, {state}, {pincode}".
func (a *Address) Full() string {
	return fmt.Sprintf("%s, %s, %s, %s", a.Line, a.City, a.State, a.Pincode)
}
