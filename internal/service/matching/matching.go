package matching

import (
	"math"

	"dispatch/internal/entities"
)

const (
	priorityCoefficient       = 0.5
	distanceTiebreakThreshold = 1.0
)

// ScoreBased выбирает курьера по формуле
//
//	score = distance * transportWeight - priority * 0.5
//
// меньше - лучше. При близких расстояниях (разница < 1.0) выигрывает
// курьер с меньшим числом выполненных за день заказов, чтобы нагрузка
// распределялась по свежести, а не по субъюнитовой разнице расстояний.
type ScoreBased struct{}

func NewScoreBased() *ScoreBased {
	return &ScoreBased{}
}

// FindBestCourier - чистая функция без побочных эффектов. Кандидаты
// обрабатываются в порядке переданного списка: при полном равенстве
// побеждает первый встреченный.
func (s *ScoreBased) FindBestCourier(order *entities.Order, candidates []*entities.Courier) (*entities.Courier, bool) {
	if len(candidates) == 0 {
		return nil, false
	}

	eligible := make([]*entities.Courier, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.TransportType.CanCarry(order.WeightKg) {
			eligible = append(eligible, candidate)
		}
	}
	if len(eligible) == 0 {
		return nil, false
	}

	var (
		best         *entities.Courier
		bestScore    = math.MaxFloat64
		bestDistance = math.MaxFloat64
	)

	for _, candidate := range eligible {
		distance := candidate.Location.DistanceTo(order.PickupLocation)
		score := distance*candidate.TransportType.TransportWeight() - float64(order.Priority)*priorityCoefficient

		better := false
		switch {
		case best == nil:
			better = true
		case math.Abs(distance-bestDistance) < distanceTiebreakThreshold:
			// Tie-break: расстояния почти равны, смотрим на дневную выработку.
			if candidate.CompletedOrdersToday < best.CompletedOrdersToday {
				better = true
			} else if candidate.CompletedOrdersToday == best.CompletedOrdersToday && score < bestScore {
				better = true
			}
		case score < bestScore:
			better = true
		}

		if better {
			best = candidate
			bestScore = score
			bestDistance = distance
		}
	}

	return best, true
}
