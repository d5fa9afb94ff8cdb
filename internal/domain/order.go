package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrInvalidOrderType        = errors.New("invalid order type")
	ErrEmptyOrder              = errors.New("order must contain at least one item")
	ErrOrderNotFound           = errors.New("order not found")
)

// Order represents a checked-out restaurant order entity
type Order struct {
	ID              uuid.UUID
	Number          string
	RestaurantID    uuid.UUID
	CustomerName    string
	Type            OrderType
	TableNumber     *int
	DeliveryAddress *string
	Items           []OrderItem
	TotalCents      int64
	Priority        Priority
	Status          Status
	ProcessedBy     *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	CompletedAt     *time.Time
}

// OrderItem is a snapshot of a cart entry at checkout time
type OrderItem struct {
	ID         int
	OrderID    uuid.UUID
	MenuItemID uuid.UUID
	Name       string
	Quantity   int
	PriceCents int64
}

// NewOrderFromCart snapshots cart entries into a new order with business
// rules applied.
func NewOrderFromCart(restaurantID uuid.UUID, customerName string, orderType OrderType, entries []CartEntry, tableNumber *int, deliveryAddress *string) (*Order, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyOrder
	}

	items := make([]OrderItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, OrderItem{
			MenuItemID: e.Item.ID,
			Name:       e.Item.Name,
			Quantity:   e.Quantity,
			PriceCents: e.Item.PriceCents,
		})
	}

	order := &Order{
		ID:              uuid.New(),
		RestaurantID:    restaurantID,
		CustomerName:    customerName,
		Type:            orderType,
		TableNumber:     tableNumber,
		DeliveryAddress: deliveryAddress,
		Items:           items,
		Status:          StatusReceived,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err := order.Validate(); err != nil {
		return nil, err
	}

	order.CalculateTotal()
	order.DeterminePriority()

	return order, nil
}

// Validate applies business validation rules
func (o *Order) Validate() error {
	if o.RestaurantID == uuid.Nil {
		return errors.New("order must belong to a restaurant")
	}

	if len(o.CustomerName) < 1 || len(o.CustomerName) > 100 {
		return errors.New("customer name must be 1-100 characters")
	}

	if o.Type != OrderTypeDineIn && o.Type != OrderTypeTakeout && o.Type != OrderTypeDelivery {
		return ErrInvalidOrderType
	}

	if o.Type == OrderTypeDineIn && o.TableNumber == nil {
		return errors.New("table number required for dine-in orders")
	}

	if o.Type == OrderTypeDineIn && (o.TableNumber != nil && (*o.TableNumber < 1 || *o.TableNumber > 100)) {
		return errors.New("table number must be between 1 and 100")
	}

	if o.Type == OrderTypeDelivery && (o.DeliveryAddress == nil || len(*o.DeliveryAddress) < 10) {
		return errors.New("delivery address required (min 10 characters)")
	}

	if len(o.Items) < 1 || len(o.Items) > 50 {
		return errors.New("order must have 1-50 items")
	}

	for _, item := range o.Items {
		if len(item.Name) < 1 || len(item.Name) > 100 {
			return errors.New("item name must be 1-100 characters")
		}
		if item.Quantity < 1 || item.Quantity > 20 {
			return errors.New("item quantity must be 1-20")
		}
		if item.PriceCents < 1 || item.PriceCents > 99999 {
			return errors.New("item price must be between 1 and 99999 cents")
		}
	}

	return nil
}

// CalculateTotal calculates the total amount of the order in minor units
func (o *Order) CalculateTotal() {
	var total int64
	for _, item := range o.Items {
		total += item.PriceCents * int64(item.Quantity)
	}
	o.TotalCents = total
}

// DeterminePriority determines the priority based on total amount
func (o *Order) DeterminePriority() {
	if o.TotalCents > 10000 {
		o.Priority = PriorityHigh
	} else if o.TotalCents >= 5000 {
		o.Priority = PriorityMedium
	} else {
		o.Priority = PriorityLow
	}
}

// TransitionTo transitions the order to a new status
func (o *Order) TransitionTo(newStatus Status, processedBy string) error {
	if !o.CanTransitionTo(newStatus) {
		return ErrInvalidStatusTransition
	}

	o.Status = newStatus
	o.UpdatedAt = time.Now()

	if processedBy != "" {
		o.ProcessedBy = &processedBy
	}

	if newStatus == StatusReady {
		now := time.Now()
		o.CompletedAt = &now
	}

	return nil
}

// CanTransitionTo checks if the order can transition to the new status
func (o *Order) CanTransitionTo(newStatus Status) bool {
	validTransitions := map[Status][]Status{
		StatusReceived:  {StatusCooking, StatusCancelled},
		StatusCooking:   {StatusReady, StatusCancelled},
		StatusReady:     {StatusCompleted, StatusCancelled},
		StatusCompleted: {},
		StatusCancelled: {},
	}

	allowed := validTransitions[o.Status]
	for _, s := range allowed {
		if s == newStatus {
			return true
		}
	}
	return false
}

// GetCookingTime returns the cooking time based on order type
func (o *Order) GetCookingTime() time.Duration {
	switch o.Type {
	case OrderTypeDineIn:
		return 8 * time.Second
	case OrderTypeTakeout:
		return 10 * time.Second
	case OrderTypeDelivery:
		return 12 * time.Second
	default:
		return 10 * time.Second
	}
}
