//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_test
package dispatch

import (
	"context"

	"dispatch/internal/entities"
	"github.com/google/uuid"
)

type CourierRepository interface {
	Save(ctx context.Context, courier *entities.Courier) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Courier, error)
	GetFree(ctx context.Context) ([]*entities.Courier, error)
	CountByStatus(ctx context.Context, status entities.CourierStatusType) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type OrderRepository interface {
	Save(ctx context.Context, order *entities.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error)
	CountByStatus(ctx context.Context, status entities.OrderStatusType) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// Strategy - подменяемый алгоритм подбора курьера.
// Возвращает лучшего из кандидатов либо false, если никто не подходит.
type Strategy interface {
	FindBestCourier(order *entities.Order, candidates []*entities.Courier) (*entities.Courier, bool)
}
