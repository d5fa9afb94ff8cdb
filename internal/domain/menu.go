package domain

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
)

var ErrMenuItemNotFound = errors.New("menu item not found")

// MenuItem is a dish offered by a restaurant. Prices are kept in integer
// minor units (cents) so totals never accumulate floating-point error.
type MenuItem struct {
	ID           uuid.UUID
	RestaurantID uuid.UUID
	Name         string
	Description  *string
	PriceCents   int64
	Category     string
	ImageURL     *string
	Available    bool
	Featured     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Category groups menu items for display. A nil RestaurantID marks a global
// default category visible to every tenant.
type Category struct {
	ID            uuid.UUID
	RestaurantID  *uuid.UUID
	Name          string
	Slug          string
	DisplayOrder  *int
	VisibleOnMenu bool
}

// SortCategories orders categories by display order ascending with nulls
// last, then by name. This is the single ordering policy for menus.
func SortCategories(cats []Category) {
	sort.SliceStable(cats, func(i, j int) bool {
		a, b := cats[i].DisplayOrder, cats[j].DisplayOrder
		switch {
		case a == nil && b == nil:
			return cats[i].Name < cats[j].Name
		case a == nil:
			return false
		case b == nil:
			return true
		case *a != *b:
			return *a < *b
		default:
			return cats[i].Name < cats[j].Name
		}
	})
}
