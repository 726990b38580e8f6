//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	courier_location_put "dispatch/internal/handlers/rest/courier_location_put"
	courier_post "dispatch/internal/handlers/rest/courier_post"
	couriers_free_get "dispatch/internal/handlers/rest/couriers_free_get"
	couriers_get "dispatch/internal/handlers/rest/couriers_get"
	dispatch_stats_get "dispatch/internal/handlers/rest/dispatch_stats_get"
	order_complete_post "dispatch/internal/handlers/rest/order_complete_post"
	order_get "dispatch/internal/handlers/rest/order_get"
	order_post "dispatch/internal/handlers/rest/order_post"
	orders_get "dispatch/internal/handlers/rest/orders_get"
	"dispatch/internal/handlers/tasks/completed_orders_reset"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/seed"

	courierRepo "dispatch/internal/repository/courier"
	orderRepo "dispatch/internal/repository/order"
	courierService "dispatch/internal/service/courier"
	dispatchService "dispatch/internal/service/dispatch"
	"dispatch/internal/service/matching"
	orderService "dispatch/internal/service/order"

	"dispatch/pkg/background"
	"dispatch/pkg/logger"

	"github.com/google/wire"
)

type (
	ResetInterval time.Duration
)

type Application struct {
	ServiceOrder      ServiceOrder
	ServiceCourier    ServiceCourier
	ServiceDispatch   ServiceDispatch
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_post.Service
	order_get.Service
	order_complete_post.Service
	orders_get.Service
}

type ServiceCourier interface {
	courier_post.Service
	couriers_get.Service
	couriers_free_get.Service
	courier_location_put.Service
	seed.CourierService
}

type ServiceDispatch interface {
	dispatch_stats_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideResetInterval,

		courierRepo.New,
		orderRepo.New,

		matching.NewScoreBased,
		provideDispatch,
		provideServiceCourier,
		provideServiceOrder,

		provideResetTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceCourier), new(*courierService.Service)),
		wire.Bind(new(ServiceDispatch), new(*dispatchService.Dispatch)),

		wire.Bind(new(courierService.Repository), new(*courierRepo.Repository)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.DispatchEngine), new(*dispatchService.Dispatch)),

		wire.Bind(new(dispatchService.CourierRepository), new(*courierRepo.Repository)),
		wire.Bind(new(dispatchService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(dispatchService.Strategy), new(*matching.ScoreBased)),

		wire.Bind(new(completed_orders_reset.Service), new(*courierService.Service)),
	)
	return &Application{}, nil
}

func provideDispatch(
	orders dispatchService.OrderRepository,
	couriers dispatchService.CourierRepository,
	strategy dispatchService.Strategy,
) *dispatchService.Dispatch {
	return dispatchService.New(orders, couriers, strategy)
}

func provideServiceCourier(repository courierService.Repository) *courierService.Service {
	return courierService.New(repository)
}

func provideServiceOrder(
	repository orderService.Repository,
	dispatcher orderService.DispatchEngine,
) *orderService.Service {
	return orderService.New(repository, dispatcher)
}

func provideResetInterval(cfg *config.Config) ResetInterval {
	return ResetInterval(cfg.Tasks.CompletedOrdersResetInterval)
}

func provideResetTask(
	log logger.Logger,
	courierService completed_orders_reset.Service,
	interval ResetInterval,
) *completed_orders_reset.CompletedOrdersReset {
	return completed_orders_reset.NewCompletedOrdersReset(log, courierService, time.Duration(interval))
}

func provideTaskList(
	resetTask *completed_orders_reset.CompletedOrdersReset,
) []background.Task {
	// Нулевой интервал выключает задачу: не регистрируем ее,
	// чтобы воркер не прогонял ее на прогреве с нулевым таймаутом.
	if resetTask.TTL() <= 0 {
		return nil
	}
	return []background.Task{
		resetTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
