package order

import (
	"context"
	"sync"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"github.com/google/uuid"
)

// Repository - потокобезопасное in-memory хранилище заказов.
// Хранит и отдает копии, см. repository/courier.
type Repository struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]entities.Order
}

func New() *Repository {
	return &Repository{
		orders: make(map[uuid.UUID]entities.Order),
	}
}

func (r *Repository) Save(_ context.Context, order *entities.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders[order.ID] = *order
	return nil
}

func (r *Repository) GetByID(_ context.Context, id uuid.UUID) (*entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}
	return &order, nil
}

func (r *Repository) GetByStatus(_ context.Context, status entities.OrderStatusType) ([]entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]entities.Order, 0)
	for _, order := range r.orders {
		if order.Status == status {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

func (r *Repository) CountByStatus(_ context.Context, status entities.OrderStatusType) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, order := range r.orders {
		if order.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *Repository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.orders)), nil
}
