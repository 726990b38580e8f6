// Package seed наполняет пустое in-memory хранилище демо-курьерами,
// чтобы сервис можно было прогнать руками сразу после старта.
package seed

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type CourierService interface {
	RegisterCourier(ctx context.Context, courierCreate entities.CourierCreate) (*entities.Courier, error)
}

var demoCouriers = []entities.CourierCreate{
	{X: 10, Y: 10, TransportType: entities.Pedestrian},
	{X: 25, Y: 30, TransportType: entities.Bicycle},
	{X: 50, Y: 50, TransportType: entities.Car},
	{X: 80, Y: 20, TransportType: entities.Bicycle},
	{X: 15, Y: 75, TransportType: entities.Car},
	{X: 60, Y: 90, TransportType: entities.Pedestrian},
	{X: 35, Y: 45, TransportType: entities.Car},
	{X: 70, Y: 65, TransportType: entities.Bicycle},
}

func DemoCouriers(ctx context.Context, log logger.Logger, service CourierService) error {
	for _, courierCreate := range demoCouriers {
		courierEntity, err := service.RegisterCourier(ctx, courierCreate)
		if err != nil {
			return fmt.Errorf("seed courier: %w", err)
		}
		log.With(
			logger.NewField("courier_id", courierEntity.ID),
			logger.NewField("transport", courierEntity.TransportType),
		).Info("demo courier registered")
	}
	return nil
}
