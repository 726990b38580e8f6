package entities

import (
	"time"

	"github.com/google/uuid"
)

type Courier struct {
	ID                   uuid.UUID
	Location             Point
	TransportType        CourierTransportType
	Status               CourierStatusType
	CompletedOrdersToday int
	CreatedAt            time.Time
}

func NewCourier(location Point, transportType CourierTransportType) *Courier {
	return &Courier{
		ID:            uuid.New(),
		Location:      location,
		TransportType: transportType,
		Status:        CourierFree,
		CreatedAt:     time.Now().UTC(),
	}
}

type CourierTransportType string

const (
	Pedestrian CourierTransportType = "pedestrian"
	Bicycle    CourierTransportType = "bicycle"
	Car        CourierTransportType = "car"
)

func (t CourierTransportType) String() string {
	return string(t)
}

// TransportWeight - множитель расстояния в скоринге, чем меньше тем лучше.
func (t CourierTransportType) TransportWeight() float64 {
	switch t {
	case Car:
		return 0.7
	case Bicycle:
		return 1.0
	case Pedestrian:
		return 1.5
	default:
		return 0
	}
}

// MaxWeightKg - грузоподъемность транспорта в килограммах.
func (t CourierTransportType) MaxWeightKg() float64 {
	switch t {
	case Car:
		return 50.0
	case Bicycle:
		return 15.0
	case Pedestrian:
		return 5.0
	default:
		return 0
	}
}

// CanCarry - граница включительно: заказ ровно в максимальный вес берем.
func (t CourierTransportType) CanCarry(weightKg float64) bool {
	return weightKg <= t.MaxWeightKg()
}

type CourierStatusType string

const (
	CourierFree    CourierStatusType = "free"
	CourierBusy    CourierStatusType = "busy"
	CourierOffline CourierStatusType = "offline"
)

func (s CourierStatusType) String() string {
	return string(s)
}

// CourierStatuses возвращает все статусы в стабильном порядке,
// используется для zero-fill статистики.
func CourierStatuses() []CourierStatusType {
	return []CourierStatusType{CourierFree, CourierBusy, CourierOffline}
}

type CourierCreate struct {
	X             float64
	Y             float64
	TransportType CourierTransportType
}

type CourierModify struct {
	ID     *uuid.UUID
	X      *float64
	Y      *float64
	Status *CourierStatusType
}
