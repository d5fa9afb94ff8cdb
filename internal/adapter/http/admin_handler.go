package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/omarkhal/dinehub/internal/adapter/logger"
	"github.com/omarkhal/dinehub/internal/domain"
	"github.com/omarkhal/dinehub/internal/interfaces"
)

type AdminHandler struct {
	restaurants interfaces.RestaurantRepository
	categories  interfaces.CategoryRepository
	items       interfaces.MenuItemRepository
	orders      interfaces.OrderRepository
	tracking    interfaces.TrackingService
	logger      logger.Logger
}

func NewAdminHandler(
	restaurants interfaces.RestaurantRepository,
	categories interfaces.CategoryRepository,
	items interfaces.MenuItemRepository,
	orders interfaces.OrderRepository,
	tracking interfaces.TrackingService,
	logger logger.Logger,
) *AdminHandler {
	return &AdminHandler{
		restaurants: restaurants,
		categories:  categories,
		items:       items,
		orders:      orders,
		tracking:    tracking,
		logger:      logger,
	}
}

type CreateRestaurantRequest struct {
	Name        string  `json:"name"`
	Subdomain   string  `json:"subdomain"`
	Description *string `json:"description,omitempty"`
}

type CreateCategoryRequest struct {
	RestaurantID  *string `json:"restaurant_id,omitempty"`
	Name          string  `json:"name"`
	Slug          string  `json:"slug"`
	DisplayOrder  *int    `json:"display_order,omitempty"`
	VisibleOnMenu bool    `json:"visible_on_menu"`
}

type CreateMenuItemRequest struct {
	RestaurantID string  `json:"restaurant_id"`
	Name         string  `json:"name"`
	Description  *string `json:"description,omitempty"`
	PriceCents   int64   `json:"price_cents"`
	Category     string  `json:"category"`
	ImageURL     *string `json:"image_url,omitempty"`
	Available    bool    `json:"available"`
	Featured     bool    `json:"featured"`
}

var subdomainRegexMessage = "subdomain must be lowercase letters, digits, and hyphens"

func (h *AdminHandler) CreateRestaurant(w http.ResponseWriter, r *http.Request) {
	var req CreateRestaurantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	name := strings.TrimSpace(req.Name)
	subdomain := strings.ToLower(strings.TrimSpace(req.Subdomain))

	var errs []ValidationError
	if name == "" {
		errs = append(errs, ValidationError{Field: "name", Message: "name is required"})
	}
	if !isValidSubdomain(subdomain) {
		errs = append(errs, ValidationError{Field: "subdomain", Message: subdomainRegexMessage})
	}
	if len(errs) > 0 {
		respondError(w, "Validation failed", http.StatusBadRequest, errs)
		return
	}

	now := time.Now()
	restaurant := &domain.Restaurant{
		ID:          uuid.New(),
		Name:        name,
		Subdomain:   subdomain,
		Description: req.Description,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.restaurants.Create(r.Context(), restaurant); err != nil {
		h.logger.Error("restaurant_create_failed", "Failed to create restaurant", "", map[string]interface{}{
			"subdomain": subdomain,
		}, err)
		respondError(w, "Failed to create restaurant", http.StatusInternalServerError, nil)
		return
	}

	h.logger.Info("restaurant_created", "Restaurant created", "", map[string]interface{}{
		"restaurant_id": restaurant.ID.String(),
		"subdomain":     subdomain,
	})

	respondJSON(w, http.StatusCreated, RestaurantResponse{
		ID:          restaurant.ID.String(),
		Name:        restaurant.Name,
		Subdomain:   restaurant.Subdomain,
		Description: restaurant.Description,
	})
}

func (h *AdminHandler) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.restaurants.List(r.Context())
	if err != nil {
		respondError(w, "Internal server error", http.StatusInternalServerError, nil)
		return
	}

	resp := make([]RestaurantResponse, len(restaurants))
	for i, rest := range restaurants {
		resp[i] = RestaurantResponse{
			ID:          rest.ID.String(),
			Name:        rest.Name,
			Subdomain:   rest.Subdomain,
			Description: rest.Description,
		}
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *AdminHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Slug) == "" {
		respondError(w, "Name and slug are required", http.StatusBadRequest, nil)
		return
	}

	category := &domain.Category{
		ID:            uuid.New(),
		Name:          strings.TrimSpace(req.Name),
		Slug:          strings.TrimSpace(req.Slug),
		DisplayOrder:  req.DisplayOrder,
		VisibleOnMenu: req.VisibleOnMenu,
	}

	if req.RestaurantID != nil {
		id, err := uuid.Parse(*req.RestaurantID)
		if err != nil {
			respondError(w, "Invalid restaurant id", http.StatusBadRequest, nil)
			return
		}
		category.RestaurantID = &id
	}

	if err := h.categories.Create(r.Context(), category); err != nil {
		h.logger.Error("category_create_failed", "Failed to create category", "", map[string]interface{}{
			"slug": category.Slug,
		}, err)
		respondError(w, "Failed to create category", http.StatusInternalServerError, nil)
		return
	}

	respondJSON(w, http.StatusCreated, CategoryResponse{
		ID:           category.ID.String(),
		Name:         category.Name,
		Slug:         category.Slug,
		DisplayOrder: category.DisplayOrder,
		Global:       category.RestaurantID == nil,
	})
}

func (h *AdminHandler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	var req CreateMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	restaurantID, err := uuid.Parse(req.RestaurantID)
	if err != nil {
		respondError(w, "Invalid restaurant id", http.StatusBadRequest, nil)
		return
	}

	var errs []ValidationError
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, ValidationError{Field: "name", Message: "name is required"})
	}
	if req.PriceCents < 1 {
		errs = append(errs, ValidationError{Field: "price_cents", Message: "price must be at least 1 cent"})
	}
	if len(errs) > 0 {
		respondError(w, "Validation failed", http.StatusBadRequest, errs)
		return
	}

	now := time.Now()
	item := &domain.MenuItem{
		ID:           uuid.New(),
		RestaurantID: restaurantID,
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		PriceCents:   req.PriceCents,
		Category:     req.Category,
		ImageURL:     req.ImageURL,
		Available:    req.Available,
		Featured:     req.Featured,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := h.items.Create(r.Context(), item); err != nil {
		h.logger.Error("menu_item_create_failed", "Failed to create menu item", "", map[string]interface{}{
			"restaurant_id": restaurantID.String(),
		}, err)
		respondError(w, "Failed to create menu item", http.StatusInternalServerError, nil)
		return
	}

	respondJSON(w, http.StatusCreated, MenuItemResponse{
		ID:          item.ID.String(),
		Name:        item.Name,
		Description: item.Description,
		PriceCents:  item.PriceCents,
		Category:    item.Category,
		ImageURL:    item.ImageURL,
		Featured:    item.Featured,
	})
}

func (h *AdminHandler) UpdateRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "restaurantID"))
	if err != nil {
		respondError(w, "Invalid restaurant id", http.StatusBadRequest, nil)
		return
	}

	restaurant, err := h.restaurants.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRestaurantNotFound) {
			respondError(w, "Restaurant not found", http.StatusNotFound, nil)
			return
		}
		respondError(w, "Internal server error", http.StatusInternalServerError, nil)
		return
	}

	var req CreateRestaurantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		restaurant.Name = name
	}
	if sub := strings.ToLower(strings.TrimSpace(req.Subdomain)); sub != "" {
		if !isValidSubdomain(sub) {
			respondError(w, "Validation failed", http.StatusBadRequest, []ValidationError{
				{Field: "subdomain", Message: subdomainRegexMessage},
			})
			return
		}
		restaurant.Subdomain = sub
	}
	if req.Description != nil {
		restaurant.Description = req.Description
	}

	if err := h.restaurants.Update(r.Context(), restaurant); err != nil {
		h.logger.Error("restaurant_update_failed", "Failed to update restaurant", "", map[string]interface{}{
			"restaurant_id": id.String(),
		}, err)
		respondError(w, "Failed to update restaurant", http.StatusInternalServerError, nil)
		return
	}

	respondJSON(w, http.StatusOK, RestaurantResponse{
		ID:          restaurant.ID.String(),
		Name:        restaurant.Name,
		Subdomain:   restaurant.Subdomain,
		Description: restaurant.Description,
	})
}

func (h *AdminHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "categoryID"))
	if err != nil {
		respondError(w, "Invalid category id", http.StatusBadRequest, nil)
		return
	}

	var req CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Slug) == "" {
		respondError(w, "Name and slug are required", http.StatusBadRequest, nil)
		return
	}

	category := &domain.Category{
		ID:            id,
		Name:          strings.TrimSpace(req.Name),
		Slug:          strings.TrimSpace(req.Slug),
		DisplayOrder:  req.DisplayOrder,
		VisibleOnMenu: req.VisibleOnMenu,
	}

	if req.RestaurantID != nil {
		rid, err := uuid.Parse(*req.RestaurantID)
		if err != nil {
			respondError(w, "Invalid restaurant id", http.StatusBadRequest, nil)
			return
		}
		category.RestaurantID = &rid
	}

	if err := h.categories.Update(r.Context(), category); err != nil {
		h.logger.Error("category_update_failed", "Failed to update category", "", map[string]interface{}{
			"category_id": id.String(),
		}, err)
		respondError(w, "Failed to update category", http.StatusInternalServerError, nil)
		return
	}

	respondJSON(w, http.StatusOK, CategoryResponse{
		ID:           category.ID.String(),
		Name:         category.Name,
		Slug:         category.Slug,
		DisplayOrder: category.DisplayOrder,
		Global:       category.RestaurantID == nil,
	})
}

func (h *AdminHandler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "itemID"))
	if err != nil {
		respondError(w, "Invalid menu item id", http.StatusBadRequest, nil)
		return
	}

	var req CreateMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	restaurantID, err := uuid.Parse(req.RestaurantID)
	if err != nil {
		respondError(w, "Invalid restaurant id", http.StatusBadRequest, nil)
		return
	}

	if strings.TrimSpace(req.Name) == "" || req.PriceCents < 1 {
		respondError(w, "Validation failed", http.StatusBadRequest, nil)
		return
	}

	item := &domain.MenuItem{
		ID:           id,
		RestaurantID: restaurantID,
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		PriceCents:   req.PriceCents,
		Category:     req.Category,
		ImageURL:     req.ImageURL,
		Available:    req.Available,
		Featured:     req.Featured,
	}

	if err := h.items.Update(r.Context(), item); err != nil {
		h.logger.Error("menu_item_update_failed", "Failed to update menu item", "", map[string]interface{}{
			"menu_item_id": id.String(),
		}, err)
		respondError(w, "Failed to update menu item", http.StatusInternalServerError, nil)
		return
	}

	respondJSON(w, http.StatusOK, MenuItemResponse{
		ID:          item.ID.String(),
		Name:        item.Name,
		Description: item.Description,
		PriceCents:  item.PriceCents,
		Category:    item.Category,
		ImageURL:    item.ImageURL,
		Featured:    item.Featured,
	})
}

func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := uuid.Parse(chi.URLParam(r, "restaurantID"))
	if err != nil {
		respondError(w, "Invalid restaurant id", http.StatusBadRequest, nil)
		return
	}

	orders, err := h.orders.ListByRestaurant(r.Context(), restaurantID)
	if err != nil {
		respondError(w, "Internal server error", http.StatusInternalServerError, nil)
		return
	}

	resp := make([]map[string]interface{}, len(orders))
	for i, o := range orders {
		resp[i] = map[string]interface{}{
			"order_number":  o.Number,
			"customer_name": o.CustomerName,
			"type":          o.Type,
			"status":        o.Status,
			"total_cents":   o.TotalCents,
			"priority":      o.Priority,
			"created_at":    o.CreatedAt,
		}
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *AdminHandler) GetStationsStatus(w http.ResponseWriter, r *http.Request) {
	stations, err := h.tracking.GetStationsStatus(r.Context())
	if err != nil {
		respondError(w, "Internal server error", http.StatusInternalServerError, nil)
		return
	}

	resp := make([]map[string]interface{}, len(stations))
	for i, s := range stations {
		resp[i] = map[string]interface{}{
			"station_name":     s.StationName,
			"status":           s.Status,
			"orders_processed": s.OrdersProcessed,
			"last_seen":        s.LastSeen,
		}
	}
	respondJSON(w, http.StatusOK, resp)
}

func isValidSubdomain(s string) bool {
	if len(s) < 1 || len(s) > 63 {
		return false
	}
	for _, c := range s {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '-' {
			return false
		}
	}
	return s[0] != '-' && s[len(s)-1] != '-'
}
