package cart

import (
	"sync"

	"github.com/google/uuid"

	"github.com/omarkhal/dinehub/internal/domain"
)

// Snapshot is a read-only view of a session cart with derived totals.
type Snapshot struct {
	Entries    []domain.CartEntry
	TotalCents int64
	TotalItems int
}

// Store owns one cart per session. All mutations on a cart are serialized
// through the store lock, so the underlying domain.Cart stays free of
// concurrency concerns.
type Store struct {
	mu    sync.Mutex
	carts map[string]*domain.Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*domain.Cart)}
}

func (s *Store) cart(sessionID string) *domain.Cart {
	c, ok := s.carts[sessionID]
	if !ok {
		c = domain.NewCart()
		s.carts[sessionID] = c
	}
	return c
}

func (s *Store) Add(sessionID string, item domain.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(sessionID).Add(item)
}

func (s *Store) Remove(sessionID string, itemID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(sessionID).Remove(itemID)
}

func (s *Store) UpdateQuantity(sessionID string, itemID uuid.UUID, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(sessionID).UpdateQuantity(itemID, quantity)
}

func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(sessionID).Clear()
}

// Drop discards the cart entirely when a session ends.
func (s *Store) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

func (s *Store) Snapshot(sessionID string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	return Snapshot{
		Entries:    c.Entries(),
		TotalCents: c.TotalCents(),
		TotalItems: c.TotalItems(),
	}
}
