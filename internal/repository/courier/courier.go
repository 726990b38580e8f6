package courier

import (
	"context"
	"sync"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"github.com/google/uuid"
)

// Repository - потокобезопасное in-memory хранилище курьеров.
// Хранит и отдает копии, поэтому снапшот, который мутирует движок
// диспетчеризации, не виден конкурентным читателям до Save.
type Repository struct {
	mu       sync.RWMutex
	couriers map[uuid.UUID]entities.Courier
}

func New() *Repository {
	return &Repository{
		couriers: make(map[uuid.UUID]entities.Courier),
	}
}

func (r *Repository) Save(_ context.Context, courier *entities.Courier) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.couriers[courier.ID] = *courier
	return nil
}

func (r *Repository) GetByID(_ context.Context, id uuid.UUID) (*entities.Courier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	courier, ok := r.couriers[id]
	if !ok {
		return nil, repository.ErrCourierNotFound
	}
	return &courier, nil
}

func (r *Repository) GetAll(_ context.Context) ([]entities.Courier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	couriers := make([]entities.Courier, 0, len(r.couriers))
	for _, courier := range r.couriers {
		couriers = append(couriers, courier)
	}
	return couriers, nil
}

// GetFree возвращает свободных курьеров, каждый элемент - отдельная копия.
func (r *Repository) GetFree(_ context.Context) ([]*entities.Courier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	free := make([]*entities.Courier, 0)
	for _, courier := range r.couriers {
		if courier.Status == entities.CourierFree {
			c := courier
			free = append(free, &c)
		}
	}
	return free, nil
}

// ResetCompletedToday обнуляет дневные счетчики выполненных заказов.
// Возвращает количество курьеров, у которых счетчик был ненулевым.
func (r *Repository) ResetCompletedToday(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var affected int64
	for id, courier := range r.couriers {
		if courier.CompletedOrdersToday == 0 {
			continue
		}
		courier.CompletedOrdersToday = 0
		r.couriers[id] = courier
		affected++
	}
	return affected, nil
}

func (r *Repository) CountByStatus(_ context.Context, status entities.CourierStatusType) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, courier := range r.couriers {
		if courier.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *Repository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.couriers)), nil
}
