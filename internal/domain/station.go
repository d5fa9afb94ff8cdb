package domain

import (
	"errors"
	"time"
)

// Station is a kitchen display station that consumes checked-out orders and
// advances them through the cooking pipeline.
type Station struct {
	ID              int
	Name            string
	OrderTypes      string
	Status          StationStatus
	LastSeen        time.Time
	OrdersProcessed int
	CreatedAt       time.Time
}

type StationStatus string

const (
	StationStatusOnline  StationStatus = "online"
	StationStatusOffline StationStatus = "offline"
)

// NewStation creates a new kitchen station.
func NewStation(name, orderTypes string) (*Station, error) {
	if name == "" {
		return nil, errors.New("station name is required")
	}

	return &Station{
		Name:       name,
		OrderTypes: orderTypes,
		Status:     StationStatusOnline,
		LastSeen:   time.Now(),
		CreatedAt:  time.Now(),
	}, nil
}

// UpdateHeartbeat refreshes the station's last seen timestamp.
func (s *Station) UpdateHeartbeat() {
	s.LastSeen = time.Now()
	s.Status = StationStatusOnline
}

// SetOffline marks the station as offline.
func (s *Station) SetOffline() {
	s.Status = StationStatusOffline
}

// IncrementOrdersProcessed bumps the processed order count.
func (s *Station) IncrementOrdersProcessed() {
	s.OrdersProcessed++
}

// IsOnline reports whether the station is considered online given the
// heartbeat timeout.
func (s *Station) IsOnline(heartbeatTimeout time.Duration) bool {
	if s.Status == StationStatusOffline {
		return false
	}
	return time.Since(s.LastSeen) <= heartbeatTimeout
}
