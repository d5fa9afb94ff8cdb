package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrRestaurantNotFound is the sentinel used by repositories when a lookup
// completes cleanly but matches no row.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// Restaurant is a single tenant, addressed by a unique subdomain.
type Restaurant struct {
	ID          uuid.UUID
	Name        string
	Subdomain   string
	Description *string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NotFoundError signals that a subdomain lookup succeeded but matched no
// restaurant. It is a separate type from backend failures so callers can
// tell "subdomain doesn't exist" apart from "couldn't check".
type NotFoundError struct {
	Subdomain string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no restaurant registered for subdomain %q", e.Subdomain)
}

func (e *NotFoundError) Unwrap() error { return ErrRestaurantNotFound }
