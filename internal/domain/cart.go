package domain

import "github.com/google/uuid"

// CartEntry is a menu item plus a desired quantity. Quantity is always >= 1;
// an entry that would reach zero is removed rather than kept at zero.
type CartEntry struct {
	Item     MenuItem
	Quantity int
}

// Cart is an ordered collection of entries held only for the active session.
// Insertion order is preserved, and re-adding a previously removed item
// appends at the end. At most one entry exists per menu item id.
type Cart struct {
	entries []CartEntry
}

func NewCart() *Cart {
	return &Cart{}
}

// Add increments the quantity of an existing entry in place, or appends a
// new entry with quantity 1.
func (c *Cart) Add(item MenuItem) {
	for i := range c.entries {
		if c.entries[i].Item.ID == item.ID {
			c.entries[i].Quantity++
			return
		}
	}
	c.entries = append(c.entries, CartEntry{Item: item, Quantity: 1})
}

// Remove deletes the entry for itemID. Removing an absent item is a no-op.
func (c *Cart) Remove(itemID uuid.UUID) {
	for i := range c.entries {
		if c.entries[i].Item.ID == itemID {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the quantity for itemID, keeping its position. A
// quantity of zero or less behaves exactly like Remove. Absent ids are a
// no-op.
func (c *Cart) UpdateQuantity(itemID uuid.UUID, quantity int) {
	if quantity <= 0 {
		c.Remove(itemID)
		return
	}
	for i := range c.entries {
		if c.entries[i].Item.ID == itemID {
			c.entries[i].Quantity = quantity
			return
		}
	}
}

// TotalCents returns the cart total in minor units.
func (c *Cart) TotalCents() int64 {
	var total int64
	for _, e := range c.entries {
		total += e.Item.PriceCents * int64(e.Quantity)
	}
	return total
}

// TotalItems returns the sum of all entry quantities.
func (c *Cart) TotalItems() int {
	n := 0
	for _, e := range c.entries {
		n += e.Quantity
	}
	return n
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.entries = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.entries) == 0
}

// Entries returns a copy of the cart contents in insertion order.
func (c *Cart) Entries() []CartEntry {
	out := make([]CartEntry, len(c.entries))
	copy(out, c.entries)
	return out
}
