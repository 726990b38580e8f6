package entities

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	OrderPriorityMin = 1
	OrderPriorityMax = 10
)

var (
	ErrPriorityOutOfRange = errors.New("priority out of range")
	ErrInvalidWeight      = errors.New("weight must be greater than 0")
)

type Order struct {
	ID                uuid.UUID
	PickupLocation    Point
	DeliveryLocation  Point
	Status            OrderStatusType
	Priority          int
	WeightKg          float64
	CreatedAt         time.Time
	AssignedCourierID *uuid.UUID
}

func NewOrder(pickup, delivery Point, priority int, weightKg float64) (*Order, error) {
	if priority < OrderPriorityMin || priority > OrderPriorityMax {
		return nil, fmt.Errorf("priority=%d must be in [%d, %d]: %w",
			priority, OrderPriorityMin, OrderPriorityMax, ErrPriorityOutOfRange)
	}
	if weightKg <= 0 {
		return nil, fmt.Errorf("weight=%v: %w", weightKg, ErrInvalidWeight)
	}

	return &Order{
		ID:               uuid.New(),
		PickupLocation:   pickup,
		DeliveryLocation: delivery,
		Status:           OrderCreated,
		Priority:         priority,
		WeightKg:         weightKg,
		CreatedAt:        time.Now().UTC(),
	}, nil
}

type OrderCreate struct {
	PickupX   float64
	PickupY   float64
	DeliveryX float64
	DeliveryY float64
	Priority  int
	WeightKg  float64
}

type OrderStatusType string

const (
	OrderCreated   OrderStatusType = "created"
	OrderSearching OrderStatusType = "searching"
	OrderAssigned  OrderStatusType = "assigned"
	OrderQueued    OrderStatusType = "queued"
	OrderCompleted OrderStatusType = "completed"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// OrderStatuses возвращает все статусы в стабильном порядке,
// используется для zero-fill статистики.
func OrderStatuses() []OrderStatusType {
	return []OrderStatusType{OrderCreated, OrderSearching, OrderAssigned, OrderQueued, OrderCompleted}
}
