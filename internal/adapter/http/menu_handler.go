package http

import (
	"net/http"

	"github.com/omarkhal/dinehub/internal/adapter/logger"
	"github.com/omarkhal/dinehub/internal/app/catalog"
	"github.com/omarkhal/dinehub/internal/domain"
	"github.com/omarkhal/dinehub/internal/interfaces"
)

type MenuHandler struct {
	categories *catalog.Resolver
	items      interfaces.MenuItemRepository
	logger     logger.Logger
}

func NewMenuHandler(categories *catalog.Resolver, items interfaces.MenuItemRepository, logger logger.Logger) *MenuHandler {
	return &MenuHandler{
		categories: categories,
		items:      items,
		logger:     logger,
	}
}

type RestaurantResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Subdomain   string  `json:"subdomain"`
	Description *string `json:"description,omitempty"`
}

type CategoryResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	DisplayOrder *int   `json:"display_order,omitempty"`
	Global       bool   `json:"global"`
}

type MenuItemResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	PriceCents  int64   `json:"price_cents"`
	Category    string  `json:"category"`
	ImageURL    *string `json:"image_url,omitempty"`
	Featured    bool    `json:"featured"`
}

func (h *MenuHandler) GetRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurant := RestaurantFromContext(r.Context())

	respondJSON(w, http.StatusOK, RestaurantResponse{
		ID:          restaurant.ID.String(),
		Name:        restaurant.Name,
		Subdomain:   restaurant.Subdomain,
		Description: restaurant.Description,
	})
}

// ListCategories degrades to an empty list when the catalog backend fails.
// The failure is logged by the resolver; the storefront stays usable.
func (h *MenuHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	restaurant := RestaurantFromContext(r.Context())

	result := h.categories.Fetch(r.Context(), restaurant.ID)
	if result.Err != nil {
		respondJSON(w, http.StatusOK, []CategoryResponse{})
		return
	}

	respondJSON(w, http.StatusOK, toCategoryResponses(result.Categories))
}

func (h *MenuHandler) ListMenu(w http.ResponseWriter, r *http.Request) {
	restaurant := RestaurantFromContext(r.Context())
	category := r.URL.Query().Get("category")

	items, err := h.items.ListAvailable(r.Context(), restaurant.ID, category)
	if err != nil {
		h.logger.Error("menu_fetch_failed", "Failed to fetch menu items", "", map[string]interface{}{
			"restaurant_id": restaurant.ID.String(),
		}, err)
		respondError(w, "Internal server error", http.StatusInternalServerError, nil)
		return
	}

	respondJSON(w, http.StatusOK, toMenuItemResponses(items))
}

func (h *MenuHandler) ListFeatured(w http.ResponseWriter, r *http.Request) {
	restaurant := RestaurantFromContext(r.Context())

	items, err := h.items.ListFeatured(r.Context(), restaurant.ID)
	if err != nil {
		h.logger.Error("menu_fetch_failed", "Failed to fetch featured items", "", map[string]interface{}{
			"restaurant_id": restaurant.ID.String(),
		}, err)
		respondError(w, "Internal server error", http.StatusInternalServerError, nil)
		return
	}

	respondJSON(w, http.StatusOK, toMenuItemResponses(items))
}

func toCategoryResponses(cats []domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, len(cats))
	for i, c := range cats {
		out[i] = CategoryResponse{
			ID:           c.ID.String(),
			Name:         c.Name,
			Slug:         c.Slug,
			DisplayOrder: c.DisplayOrder,
			Global:       c.RestaurantID == nil,
		}
	}
	return out
}

func toMenuItemResponses(items []domain.MenuItem) []MenuItemResponse {
	out := make([]MenuItemResponse, len(items))
	for i, item := range items {
		out[i] = MenuItemResponse{
			ID:          item.ID.String(),
			Name:        item.Name,
			Description: item.Description,
			PriceCents:  item.PriceCents,
			Category:    item.Category,
			ImageURL:    item.ImageURL,
			Featured:    item.Featured,
		}
	}
	return out
}
