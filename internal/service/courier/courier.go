package courier

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
}

func New(repository Repository) *Service {
	return &Service{
		repository: repository,
	}
}

func (s *Service) RegisterCourier(ctx context.Context, courierCreate entities.CourierCreate) (*entities.Courier, error) {
	if !isValidTransport(courierCreate.TransportType.String()) {
		return nil, ErrInvalidTransport
	}

	location, err := entities.NewPoint(courierCreate.X, courierCreate.Y)
	if err != nil {
		return nil, fmt.Errorf("courier location: %w", err)
	}

	newCourier := entities.NewCourier(location, courierCreate.TransportType)
	if err := s.repository.Save(ctx, newCourier); err != nil {
		return nil, fmt.Errorf("save courier: %w", err)
	}

	return newCourier, nil
}

func (s *Service) GetCourier(ctx context.Context, id uuid.UUID) (*entities.Courier, error) {
	courierEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCourierNotFound) {
			return nil, ErrCourierNotFound
		}
		return nil, fmt.Errorf("get courier: %w", err)
	}
	return courierEntity, nil
}

func (s *Service) GetFreeCouriers(ctx context.Context) ([]*entities.Courier, error) {
	couriers, err := s.repository.GetFree(ctx)
	if err != nil {
		return nil, fmt.Errorf("get free couriers: %w", err)
	}
	return couriers, nil
}

func (s *Service) GetAllCouriers(ctx context.Context) ([]entities.Courier, error) {
	couriers, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get couriers: %w", err)
	}
	return couriers, nil
}

// ResetCompletedToday обнуляет дневные счетчики выполненных заказов.
func (s *Service) ResetCompletedToday(ctx context.Context) (int64, error) {
	affected, err := s.repository.ResetCompletedToday(ctx)
	if err != nil {
		return 0, fmt.Errorf("reset completed counters: %w", err)
	}
	return affected, nil
}

// UpdateCourier - независимый путь обновления локации и статуса.
// Намеренно не берет dispatch lock: обновление локации это best-effort
// телеметрия, гонка с идущим подбором по чуть устаревшей точке допустима.
func (s *Service) UpdateCourier(ctx context.Context, courierModify entities.CourierModify) (*entities.Courier, error) {
	if courierModify.ID == nil {
		return nil, ErrMissingRequiredFields
	}
	if courierModify.X == nil && courierModify.Y == nil && courierModify.Status == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}
	if (courierModify.X == nil) != (courierModify.Y == nil) {
		return nil, fmt.Errorf("location needs both coordinates: %w", ErrMissingRequiredFields)
	}
	if courierModify.Status != nil && !isValidStatus(courierModify.Status.String()) {
		return nil, ErrInvalidStatus
	}

	courierEntity, err := s.GetCourier(ctx, *courierModify.ID)
	if err != nil {
		return nil, err
	}

	if courierModify.X != nil {
		location, err := entities.NewPoint(*courierModify.X, *courierModify.Y)
		if err != nil {
			return nil, fmt.Errorf("courier location: %w", err)
		}
		courierEntity.Location = location
	}
	if courierModify.Status != nil {
		courierEntity.Status = *courierModify.Status
	}

	if err := s.repository.Save(ctx, courierEntity); err != nil {
		return nil, fmt.Errorf("save courier: %w", err)
	}
	return courierEntity, nil
}
