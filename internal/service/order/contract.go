//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"dispatch/internal/entities"
	"github.com/google/uuid"
)

type Repository interface {
	Save(ctx context.Context, order *entities.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error)
	GetByStatus(ctx context.Context, status entities.OrderStatusType) ([]entities.Order, error)
}

type DispatchEngine interface {
	Dispatch(ctx context.Context, order *entities.Order) error
	CompleteOrder(ctx context.Context, order *entities.Order) (*entities.Order, error)
}
