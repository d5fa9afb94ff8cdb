package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/omarkhal/dinehub/internal/adapter/logger"
	"github.com/omarkhal/dinehub/internal/app/cart"
	"github.com/omarkhal/dinehub/internal/domain"
	"github.com/omarkhal/dinehub/internal/interfaces"
)

type CartHandler struct {
	store  *cart.Store
	items  interfaces.MenuItemRepository
	logger logger.Logger
}

func NewCartHandler(store *cart.Store, items interfaces.MenuItemRepository, logger logger.Logger) *CartHandler {
	return &CartHandler{
		store:  store,
		items:  items,
		logger: logger,
	}
}

type AddToCartRequest struct {
	MenuItemID string `json:"menu_item_id"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type CartEntryResponse struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Quantity   int    `json:"quantity"`
}

type CartResponse struct {
	Items      []CartEntryResponse `json:"items"`
	TotalCents int64               `json:"total_cents"`
	TotalItems int                 `json:"total_items"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())
	respondJSON(w, http.StatusOK, toCartResponse(h.store.Snapshot(sessionID)))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	restaurant := RestaurantFromContext(r.Context())
	sessionID := sessionIDFromContext(r.Context())

	var req AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	itemID, err := uuid.Parse(req.MenuItemID)
	if err != nil {
		respondError(w, "Invalid menu item id", http.StatusBadRequest, nil)
		return
	}

	item, err := h.items.FindByID(r.Context(), restaurant.ID, itemID)
	if err != nil {
		if errors.Is(err, domain.ErrMenuItemNotFound) {
			respondError(w, "Menu item not found", http.StatusNotFound, nil)
			return
		}
		h.logger.Error("cart_add_failed", "Failed to load menu item", "", map[string]interface{}{
			"menu_item_id": itemID.String(),
		}, err)
		respondError(w, "Internal server error", http.StatusInternalServerError, nil)
		return
	}

	if !item.Available {
		respondError(w, "Menu item is not available", http.StatusConflict, nil)
		return
	}

	h.store.Add(sessionID, *item)
	respondJSON(w, http.StatusOK, toCartResponse(h.store.Snapshot(sessionID)))
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())

	itemID, err := uuid.Parse(chi.URLParam(r, "itemID"))
	if err != nil {
		respondError(w, "Invalid menu item id", http.StatusBadRequest, nil)
		return
	}

	var req UpdateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	h.store.UpdateQuantity(sessionID, itemID, req.Quantity)
	respondJSON(w, http.StatusOK, toCartResponse(h.store.Snapshot(sessionID)))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())

	itemID, err := uuid.Parse(chi.URLParam(r, "itemID"))
	if err != nil {
		respondError(w, "Invalid menu item id", http.StatusBadRequest, nil)
		return
	}

	h.store.Remove(sessionID, itemID)
	respondJSON(w, http.StatusOK, toCartResponse(h.store.Snapshot(sessionID)))
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())

	h.store.Clear(sessionID)
	respondJSON(w, http.StatusOK, toCartResponse(h.store.Snapshot(sessionID)))
}

func toCartResponse(snap cart.Snapshot) CartResponse {
	items := make([]CartEntryResponse, len(snap.Entries))
	for i, e := range snap.Entries {
		items[i] = CartEntryResponse{
			MenuItemID: e.Item.ID.String(),
			Name:       e.Item.Name,
			PriceCents: e.Item.PriceCents,
			Quantity:   e.Quantity,
		}
	}
	return CartResponse{
		Items:      items,
		TotalCents: snap.TotalCents,
		TotalItems: snap.TotalItems,
	}
}
