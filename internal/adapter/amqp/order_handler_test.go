package amqp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarkhal/dinehub/internal/adapter/logger"
	"github.com/omarkhal/dinehub/internal/domain"
	"github.com/omarkhal/dinehub/internal/interfaces"
)

type fakeKitchenService struct {
	processed []interfaces.OrderMessage
	err       error
}

func (f *fakeKitchenService) Start(ctx context.Context) error    { return nil }
func (f *fakeKitchenService) Shutdown(ctx context.Context) error { return nil }
func (f *fakeKitchenService) ProcessOrder(ctx context.Context, msg interfaces.OrderMessage) error {
	if f.err != nil {
		return f.err
	}
	f.processed = append(f.processed, msg)
	return nil
}

func TestHandleOrder(t *testing.T) {
	svc := &fakeKitchenService{}
	h := NewOrderHandler(svc, logger.NewCapture())

	msg := interfaces.OrderMessage{
		OrderNumber:  "ORD_20260831_001",
		RestaurantID: uuid.New(),
		OrderType:    domain.OrderTypeTakeout,
		TotalCents:   2400,
		Priority:     domain.PriorityLow,
	}
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	require.NoError(t, h.HandleOrder(context.Background(), body))
	require.Len(t, svc.processed, 1)
	assert.Equal(t, "ORD_20260831_001", svc.processed[0].OrderNumber)
	assert.Equal(t, int64(2400), svc.processed[0].TotalCents)
}

func TestHandleOrderBadPayload(t *testing.T) {
	svc := &fakeKitchenService{}
	capture := logger.NewCapture()
	h := NewOrderHandler(svc, capture)

	err := h.HandleOrder(context.Background(), []byte("{not json"))
	require.Error(t, err)
	assert.Empty(t, svc.processed)
	assert.NotNil(t, capture.Find("message_parse_failed"))
}

func TestHandleNotificationBadPayload(t *testing.T) {
	h := NewNotificationHandler(logger.NewCapture())
	assert.Error(t, h.HandleNotification(context.Background(), []byte("{not json")))
}
