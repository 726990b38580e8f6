//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_test
package courier

import (
	"context"

	"dispatch/internal/entities"
	"github.com/google/uuid"
)

type Repository interface {
	Save(ctx context.Context, courier *entities.Courier) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Courier, error)
	GetAll(ctx context.Context) ([]entities.Courier, error)
	GetFree(ctx context.Context) ([]*entities.Courier, error)
	ResetCompletedToday(ctx context.Context) (int64, error)
}
