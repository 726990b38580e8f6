package order

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"github.com/google/uuid"
)

type Service struct {
	repository Repository
	dispatcher DispatchEngine
}

func New(repository Repository, dispatcher DispatchEngine) *Service {
	return &Service{
		repository: repository,
		dispatcher: dispatcher,
	}
}

// CreateOrder создает заказ и сразу запускает поиск курьера.
// Заказ без свободных курьеров возвращается в статусе queued, это не ошибка.
func (s *Service) CreateOrder(ctx context.Context, orderCreate entities.OrderCreate) (*entities.Order, error) {
	pickup, err := entities.NewPoint(orderCreate.PickupX, orderCreate.PickupY)
	if err != nil {
		return nil, fmt.Errorf("pickup location: %w", err)
	}

	delivery, err := entities.NewPoint(orderCreate.DeliveryX, orderCreate.DeliveryY)
	if err != nil {
		return nil, fmt.Errorf("delivery location: %w", err)
	}

	newOrder, err := entities.NewOrder(pickup, delivery, orderCreate.Priority, orderCreate.WeightKg)
	if err != nil {
		return nil, fmt.Errorf("new order: %w", err)
	}

	if err := s.repository.Save(ctx, newOrder); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}

	if err := s.dispatcher.Dispatch(ctx, newOrder); err != nil {
		return nil, fmt.Errorf("dispatch order: %w", err)
	}

	return newOrder, nil
}

func (s *Service) GetOrder(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	orderEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return orderEntity, nil
}

func (s *Service) CompleteOrder(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	orderEntity, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	completedOrder, err := s.dispatcher.CompleteOrder(ctx, orderEntity)
	if err != nil {
		return nil, fmt.Errorf("complete order: %w", err)
	}
	return completedOrder, nil
}

func (s *Service) GetOrdersByStatus(ctx context.Context, status entities.OrderStatusType) ([]entities.Order, error) {
	if !isValidStatus(status.String()) {
		return nil, ErrInvalidStatus
	}

	orders, err := s.repository.GetByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("get orders by status: %w", err)
	}
	return orders, nil
}
