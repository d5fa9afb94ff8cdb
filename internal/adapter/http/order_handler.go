package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/omarkhal/dinehub/internal/adapter/logger"
	"github.com/omarkhal/dinehub/internal/app/cart"
	"github.com/omarkhal/dinehub/internal/domain"
	"github.com/omarkhal/dinehub/internal/interfaces"
)

type OrderHandler struct {
	orders   interfaces.OrderService
	tracking interfaces.TrackingService
	store    *cart.Store
	logger   logger.Logger
}

func NewOrderHandler(orders interfaces.OrderService, tracking interfaces.TrackingService, store *cart.Store, logger logger.Logger) *OrderHandler {
	return &OrderHandler{
		orders:   orders,
		tracking: tracking,
		store:    store,
		logger:   logger,
	}
}

type CheckoutRequest struct {
	CustomerName    string  `json:"customer_name"`
	OrderType       string  `json:"order_type"`
	TableNumber     *int    `json:"table_number,omitempty"`
	DeliveryAddress *string `json:"delivery_address,omitempty"`
}

type CheckoutResponse struct {
	OrderNumber string `json:"order_number"`
	Status      string `json:"status"`
	TotalCents  int64  `json:"total_cents"`
}

// Letters, spaces, hyphens, and apostrophes only.
var customerNameRegex = regexp.MustCompile(`^[a-zA-Z\s\-']+$`)

func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	restaurant := RestaurantFromContext(r.Context())
	sessionID := sessionIDFromContext(r.Context())

	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if validationErrors := validateCheckoutRequest(req); len(validationErrors) > 0 {
		h.logger.Error("validation_failed", "Checkout validation failed", "", map[string]interface{}{
			"errors": validationErrors,
		}, fmt.Errorf("validation failed"))

		respondError(w, "Validation failed", http.StatusBadRequest, validationErrors)
		return
	}

	snap := h.store.Snapshot(sessionID)
	if len(snap.Entries) == 0 {
		respondError(w, "Cart is empty", http.StatusBadRequest, nil)
		return
	}

	cmd := interfaces.CheckoutCommand{
		RestaurantID:    restaurant.ID,
		CustomerName:    strings.TrimSpace(req.CustomerName),
		OrderType:       req.OrderType,
		TableNumber:     req.TableNumber,
		DeliveryAddress: req.DeliveryAddress,
		Entries:         snap.Entries,
	}

	order, err := h.orders.Checkout(r.Context(), cmd)
	if err != nil {
		h.logger.Error("checkout_failed", "Failed to create order", "", nil, err)
		respondError(w, err.Error(), http.StatusBadRequest, nil)
		return
	}

	// The order is persisted and published; the session cart is done.
	h.store.Clear(sessionID)

	respondJSON(w, http.StatusCreated, CheckoutResponse{
		OrderNumber: order.Number,
		Status:      string(order.Status),
		TotalCents:  order.TotalCents,
	})
}

func (h *OrderHandler) GetOrderStatus(w http.ResponseWriter, r *http.Request) {
	restaurant := RestaurantFromContext(r.Context())
	orderNumber := chi.URLParam(r, "number")

	result, err := h.tracking.GetOrderStatus(r.Context(), restaurant.ID, orderNumber)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			respondError(w, "Order not found", http.StatusNotFound, nil)
			return
		}
		respondError(w, "Internal server error", http.StatusInternalServerError, nil)
		return
	}

	resp := map[string]interface{}{
		"order_number":         result.OrderNumber,
		"current_status":       result.CurrentStatus,
		"updated_at":           result.UpdatedAt,
		"estimated_completion": result.EstimatedCompletion,
		"processed_by":         result.ProcessedBy,
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *OrderHandler) GetOrderHistory(w http.ResponseWriter, r *http.Request) {
	restaurant := RestaurantFromContext(r.Context())
	orderNumber := chi.URLParam(r, "number")

	history, err := h.tracking.GetOrderHistory(r.Context(), restaurant.ID, orderNumber)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			respondError(w, "Order not found", http.StatusNotFound, nil)
			return
		}
		respondError(w, "Internal server error", http.StatusInternalServerError, nil)
		return
	}

	resp := make([]map[string]interface{}, len(history))
	for i, log := range history {
		resp[i] = map[string]interface{}{
			"status":     log.Status,
			"timestamp":  log.ChangedAt,
			"changed_by": log.ChangedBy,
		}
	}
	respondJSON(w, http.StatusOK, resp)
}

func validateCheckoutRequest(req CheckoutRequest) []ValidationError {
	var errs []ValidationError

	customerName := strings.TrimSpace(req.CustomerName)
	if len(customerName) < 1 {
		errs = append(errs, ValidationError{
			Field:   "customer_name",
			Message: "customer name is required",
		})
	} else if len(customerName) > 100 {
		errs = append(errs, ValidationError{
			Field:   "customer_name",
			Message: "customer name must not exceed 100 characters",
		})
	} else if !customerNameRegex.MatchString(customerName) {
		errs = append(errs, ValidationError{
			Field:   "customer_name",
			Message: "customer name must contain only letters, spaces, hyphens, and apostrophes",
		})
	}

	validOrderTypes := map[string]bool{
		"dine_in":  true,
		"takeout":  true,
		"delivery": true,
	}
	if !validOrderTypes[req.OrderType] {
		errs = append(errs, ValidationError{
			Field:   "order_type",
			Message: "order type must be one of: dine_in, takeout, delivery",
		})
	}

	switch req.OrderType {
	case "dine_in":
		if req.TableNumber == nil {
			errs = append(errs, ValidationError{
				Field:   "table_number",
				Message: "table number is required for dine-in orders",
			})
		} else if *req.TableNumber < 1 || *req.TableNumber > 100 {
			errs = append(errs, ValidationError{
				Field:   "table_number",
				Message: "table number must be between 1 and 100",
			})
		}
		if req.DeliveryAddress != nil {
			errs = append(errs, ValidationError{
				Field:   "delivery_address",
				Message: "delivery address must not be present for dine-in orders",
			})
		}

	case "delivery":
		if req.DeliveryAddress == nil {
			errs = append(errs, ValidationError{
				Field:   "delivery_address",
				Message: "delivery address is required for delivery orders",
			})
		} else if len(strings.TrimSpace(*req.DeliveryAddress)) < 10 {
			errs = append(errs, ValidationError{
				Field:   "delivery_address",
				Message: "delivery address must be at least 10 characters",
			})
		}
		if req.TableNumber != nil {
			errs = append(errs, ValidationError{
				Field:   "table_number",
				Message: "table number must not be present for delivery orders",
			})
		}

	case "takeout":
		if req.TableNumber != nil {
			errs = append(errs, ValidationError{
				Field:   "table_number",
				Message: "table number must not be present for takeout orders",
			})
		}
		if req.DeliveryAddress != nil {
			errs = append(errs, ValidationError{
				Field:   "delivery_address",
				Message: "delivery address must not be present for takeout orders",
			})
		}
	}

	return errs
}
