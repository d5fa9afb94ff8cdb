package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartEntries() []CartEntry {
	return []CartEntry{
		{Item: menuItem("Margherita", 1050), Quantity: 2},
		{Item: menuItem("Cola", 300), Quantity: 1},
	}
}

func TestNewOrderFromCart(t *testing.T) {
	restaurantID := uuid.New()
	table := 5

	order, err := NewOrderFromCart(restaurantID, "John Doe", OrderTypeDineIn, cartEntries(), &table, nil)
	require.NoError(t, err)

	assert.Equal(t, restaurantID, order.RestaurantID)
	assert.Equal(t, StatusReceived, order.Status)
	assert.Equal(t, int64(2400), order.TotalCents)
	assert.Equal(t, PriorityLow, order.Priority)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Margherita", order.Items[0].Name)
	assert.Equal(t, 2, order.Items[0].Quantity)
}

func TestNewOrderFromCartEmpty(t *testing.T) {
	_, err := NewOrderFromCart(uuid.New(), "John Doe", OrderTypeTakeout, nil, nil, nil)
	assert.ErrorIs(t, err, ErrEmptyOrder)
}

func TestOrderValidation(t *testing.T) {
	table := 5
	address := "123 Main Street, Springfield"

	tests := []struct {
		name    string
		mutate  func(o *Order)
		wantErr bool
	}{
		{
			name:    "valid dine-in",
			mutate:  func(o *Order) {},
			wantErr: false,
		},
		{
			name: "missing restaurant",
			mutate: func(o *Order) {
				o.RestaurantID = uuid.Nil
			},
			wantErr: true,
		},
		{
			name: "empty customer name",
			mutate: func(o *Order) {
				o.CustomerName = ""
			},
			wantErr: true,
		},
		{
			name: "dine-in without table",
			mutate: func(o *Order) {
				o.TableNumber = nil
			},
			wantErr: true,
		},
		{
			name: "table out of range",
			mutate: func(o *Order) {
				n := 101
				o.TableNumber = &n
			},
			wantErr: true,
		},
		{
			name: "delivery without address",
			mutate: func(o *Order) {
				o.Type = OrderTypeDelivery
				o.TableNumber = nil
				o.DeliveryAddress = nil
			},
			wantErr: true,
		},
		{
			name: "delivery with short address",
			mutate: func(o *Order) {
				o.Type = OrderTypeDelivery
				o.TableNumber = nil
				short := "short"
				o.DeliveryAddress = &short
			},
			wantErr: true,
		},
		{
			name: "valid delivery",
			mutate: func(o *Order) {
				o.Type = OrderTypeDelivery
				o.TableNumber = nil
				o.DeliveryAddress = &address
			},
			wantErr: false,
		},
		{
			name: "item quantity too high",
			mutate: func(o *Order) {
				o.Items[0].Quantity = 21
			},
			wantErr: true,
		},
		{
			name: "item price zero",
			mutate: func(o *Order) {
				o.Items[0].PriceCents = 0
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := &Order{
				ID:           uuid.New(),
				RestaurantID: uuid.New(),
				CustomerName: "John Doe",
				Type:         OrderTypeDineIn,
				TableNumber:  &table,
				Items: []OrderItem{
					{Name: "Margherita", Quantity: 2, PriceCents: 1050},
				},
			}
			tt.mutate(order)

			err := order.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDeterminePriority(t *testing.T) {
	tests := []struct {
		totalCents int64
		want       Priority
	}{
		{2400, PriorityLow},
		{4999, PriorityLow},
		{5000, PriorityMedium},
		{10000, PriorityMedium},
		{10001, PriorityHigh},
	}

	for _, tt := range tests {
		o := &Order{TotalCents: tt.totalCents}
		o.DeterminePriority()
		assert.Equal(t, tt.want, o.Priority, "total %d", tt.totalCents)
	}
}

func TestStatusTransitions(t *testing.T) {
	order := &Order{Status: StatusReceived}

	require.NoError(t, order.TransitionTo(StatusCooking, "grill-1"))
	assert.Equal(t, StatusCooking, order.Status)
	require.NotNil(t, order.ProcessedBy)
	assert.Equal(t, "grill-1", *order.ProcessedBy)

	require.NoError(t, order.TransitionTo(StatusReady, "grill-1"))
	assert.NotNil(t, order.CompletedAt)

	// Terminal states accept nothing.
	require.NoError(t, order.TransitionTo(StatusCompleted, "counter"))
	assert.ErrorIs(t, order.TransitionTo(StatusCooking, "grill-1"), ErrInvalidStatusTransition)
}

func TestStatusTransitionRejected(t *testing.T) {
	order := &Order{Status: StatusReceived}
	assert.ErrorIs(t, order.TransitionTo(StatusReady, "grill-1"), ErrInvalidStatusTransition)
	assert.Equal(t, StatusReceived, order.Status)
}
