package kitchen

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/omarkhal/dinehub/internal/adapter/logger"
	"github.com/omarkhal/dinehub/internal/domain"
	"github.com/omarkhal/dinehub/internal/interfaces"
)

// Service drives a kitchen display station: it registers itself, consumes
// checked-out orders, and advances them received -> cooking -> ready.
type Service struct {
	orderRepo         interfaces.OrderRepository
	stationRepo       interfaces.StationRepository
	publisher         interfaces.MessagePublisher
	logger            logger.Logger
	stationName       string
	orderTypes        []string
	heartbeatInterval time.Duration
	cookTime          time.Duration
}

func NewService(
	orderRepo interfaces.OrderRepository,
	stationRepo interfaces.StationRepository,
	publisher interfaces.MessagePublisher,
	logger logger.Logger,
	stationName string,
	orderTypes string,
	heartbeatInterval int,
) *Service {
	var types []string
	if orderTypes != "" {
		types = strings.Split(orderTypes, ",")
	}

	return &Service{
		orderRepo:         orderRepo,
		stationRepo:       stationRepo,
		publisher:         publisher,
		logger:            logger,
		stationName:       stationName,
		orderTypes:        types,
		heartbeatInterval: time.Duration(heartbeatInterval) * time.Second,
	}
}

func (s *Service) Start(ctx context.Context) error {
	station, err := s.stationRepo.FindByName(ctx, s.stationName)
	if err == nil {
		if station.Status == domain.StationStatusOnline {
			return fmt.Errorf("station with name %s is already online", s.stationName)
		}
		station.Status = domain.StationStatusOnline
		station.LastSeen = time.Now()
		if err := s.stationRepo.Update(ctx, station); err != nil {
			return err
		}
	} else {
		typeStr := "general"
		if len(s.orderTypes) > 0 {
			typeStr = strings.Join(s.orderTypes, ",")
		}
		station, err = domain.NewStation(s.stationName, typeStr)
		if err != nil {
			return err
		}
		if err := s.stationRepo.Create(ctx, station); err != nil {
			return err
		}
	}

	s.logger.Info("station_registered", fmt.Sprintf("Station %s registered", s.stationName), "", nil)

	go s.heartbeatLoop(ctx)

	return nil
}

func (s *Service) heartbeatLoop(ctx context.Context) {
	ticker := time.NewTicker(s.heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.stationRepo.UpdateHeartbeat(ctx, s.stationName); err != nil {
				s.logger.Error("heartbeat_failed", "Failed to update heartbeat", "", nil, err)
			} else {
				s.logger.Debug("heartbeat_sent", "Heartbeat sent", "", nil)
			}
		}
	}
}

func (s *Service) Shutdown(ctx context.Context) error {
	station, err := s.stationRepo.FindByName(ctx, s.stationName)
	if err != nil {
		return err
	}
	station.SetOffline()
	return s.stationRepo.Update(ctx, station)
}

func (s *Service) ProcessOrder(ctx context.Context, msg interfaces.OrderMessage) error {
	if len(s.orderTypes) > 0 {
		supported := false
		for _, t := range s.orderTypes {
			if t == string(msg.OrderType) {
				supported = true
				break
			}
		}
		if !supported {
			// The "cannot handle order type" prefix makes the consumer Nack
			// with requeue so another station picks the order up.
			return fmt.Errorf("station %s cannot handle order type %s", s.stationName, msg.OrderType)
		}
	}

	s.logger.Debug("order_processing_started", fmt.Sprintf("Processing order %s", msg.OrderNumber), "", map[string]interface{}{
		"order": msg.OrderNumber,
	})

	order, err := s.orderRepo.FindByNumber(ctx, msg.OrderNumber)
	if err != nil {
		return err
	}

	// Idempotency: already cooking or done, skip.
	if order.Status != domain.StatusReceived {
		return nil
	}

	if err := s.updateStatusAndNotify(ctx, order, domain.StatusCooking); err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.cookingTime(order)):
	}

	if err := s.updateStatusAndNotify(ctx, order, domain.StatusReady); err != nil {
		return err
	}

	if err := s.stationRepo.IncrementOrdersProcessed(ctx, s.stationName); err != nil {
		s.logger.Error("db_error", "Failed to increment station stats", "", nil, err)
	}

	s.logger.Debug("order_completed", fmt.Sprintf("Order %s completed", msg.OrderNumber), "", nil)
	return nil
}

func (s *Service) cookingTime(order *domain.Order) time.Duration {
	if s.cookTime > 0 {
		return s.cookTime
	}
	return order.GetCookingTime()
}

func (s *Service) updateStatusAndNotify(ctx context.Context, order *domain.Order, newStatus domain.Status) error {
	oldStatus := order.Status

	if err := order.TransitionTo(newStatus, s.stationName); err != nil {
		return err
	}

	if err := s.orderRepo.UpdateStatusWithLog(ctx, order, s.stationName); err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	notification := interfaces.StatusUpdateMessage{
		OrderNumber:  order.Number,
		RestaurantID: order.RestaurantID,
		OldStatus:    oldStatus,
		NewStatus:    newStatus,
		ChangedBy:    s.stationName,
		Timestamp:    time.Now(),
	}

	if newStatus == domain.StatusCooking {
		notification.EstimatedCompletion = time.Now().Add(s.cookingTime(order))
	}

	if err := s.publisher.PublishStatusUpdate(ctx, notification); err != nil {
		// A missed notification must not block the cooking pipeline.
		s.logger.Error("rabbitmq_publish_failed", "Failed to publish status update", "", nil, err)
	}

	return nil
}
