package dispatch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"github.com/google/uuid"
)

// Dispatch - движок диспетчеризации. Владеет FIFO-очередью заказов,
// которым не нашлось курьера, и счетчиком назначений.
type Dispatch struct {
	orders   OrderRepository
	couriers CourierRepository
	strategy Strategy

	// dispatchMu сериализует "прочитать свободных курьеров -> выбрать ->
	// закоммитить назначение" как одну атомарную секцию. Разрыв секции
	// вернул бы TOCTOU-гонку, где два запроса забирают одного курьера.
	dispatchMu sync.Mutex
	queue      []uuid.UUID

	queueLen         atomic.Int64
	totalAssignments atomic.Int64
}

func New(orders OrderRepository, couriers CourierRepository, strategy Strategy) *Dispatch {
	return &Dispatch{
		orders:   orders,
		couriers: couriers,
		strategy: strategy,
	}
}

// Dispatch ищет курьера для заказа. Заказ либо назначается, либо встает
// в хвост очереди - отсутствие свободных курьеров не ошибка.
func (d *Dispatch) Dispatch(ctx context.Context, order *entities.Order) error {
	// Статус searching сохраняем до входа в критическую секцию,
	// чтобы конкурентное чтение статистики могло его увидеть.
	order.Status = entities.OrderSearching
	if err := d.orders.Save(ctx, order); err != nil {
		return fmt.Errorf("save searching order: %w", err)
	}

	d.dispatchMu.Lock()
	defer d.dispatchMu.Unlock()

	freeCouriers, err := d.couriers.GetFree(ctx)
	if err != nil {
		return fmt.Errorf("get free couriers: %w", err)
	}

	bestCourier, found := d.strategy.FindBestCourier(order, freeCouriers)
	if !found {
		order.Status = entities.OrderQueued
		if err := d.orders.Save(ctx, order); err != nil {
			return fmt.Errorf("save queued order: %w", err)
		}
		d.queue = append(d.queue, order.ID)
		d.queueLen.Store(int64(len(d.queue)))
		return nil
	}

	if err := d.assign(ctx, order, bestCourier); err != nil {
		return fmt.Errorf("assign courier: %w", err)
	}
	return nil
}

// CompleteOrder завершает назначенный заказ, освобождает курьера и
// прогоняет очередь, чтобы освободившийся курьер сразу забрал бэклог.
func (d *Dispatch) CompleteOrder(ctx context.Context, order *entities.Order) (*entities.Order, error) {
	if order.Status != entities.OrderAssigned {
		return nil, fmt.Errorf("%w: current status %q", ErrInvalidOrderState, order.Status)
	}

	order.Status = entities.OrderCompleted
	if err := d.orders.Save(ctx, order); err != nil {
		return nil, fmt.Errorf("save completed order: %w", err)
	}

	if order.AssignedCourierID != nil {
		if err := d.freeCourier(ctx, *order.AssignedCourierID); err != nil {
			return nil, err
		}
	}

	d.dispatchMu.Lock()
	d.processQueueLocked(ctx)
	d.dispatchMu.Unlock()

	return order, nil
}

// Stats читает счетчики без dispatch lock: слегка устаревшие значения
// для статистики приемлемы.
func (d *Dispatch) Stats(ctx context.Context) (*entities.DispatchStats, error) {
	totalOrders, err := d.orders.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}

	ordersByStatus := make(map[entities.OrderStatusType]int64, len(entities.OrderStatuses()))
	for _, status := range entities.OrderStatuses() {
		count, err := d.orders.CountByStatus(ctx, status)
		if err != nil {
			return nil, fmt.Errorf("count orders by status: %w", err)
		}
		ordersByStatus[status] = count
	}

	totalCouriers, err := d.couriers.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count couriers: %w", err)
	}

	couriersByStatus := make(map[entities.CourierStatusType]int64, len(entities.CourierStatuses()))
	for _, status := range entities.CourierStatuses() {
		count, err := d.couriers.CountByStatus(ctx, status)
		if err != nil {
			return nil, fmt.Errorf("count couriers by status: %w", err)
		}
		couriersByStatus[status] = count
	}

	return &entities.DispatchStats{
		TotalOrders:      totalOrders,
		OrdersByStatus:   ordersByStatus,
		TotalCouriers:    totalCouriers,
		CouriersByStatus: couriersByStatus,
		TotalAssignments: d.totalAssignments.Load(),
		QueuedOrders:     d.queueLen.Load(),
	}, nil
}

func (d *Dispatch) QueueSize() int {
	return int(d.queueLen.Load())
}

// assign вызывается только под dispatchMu.
func (d *Dispatch) assign(ctx context.Context, order *entities.Order, courier *entities.Courier) error {
	order.Status = entities.OrderAssigned
	courierID := courier.ID
	order.AssignedCourierID = &courierID
	if err := d.orders.Save(ctx, order); err != nil {
		return fmt.Errorf("save assigned order: %w", err)
	}

	courier.Status = entities.CourierBusy
	if err := d.couriers.Save(ctx, courier); err != nil {
		return fmt.Errorf("save busy courier: %w", err)
	}

	d.totalAssignments.Add(1)
	return nil
}

func (d *Dispatch) freeCourier(ctx context.Context, courierID uuid.UUID) error {
	courier, err := d.couriers.GetByID(ctx, courierID)
	if err != nil {
		// Заказ, назначенный через движок, чужого ID содержать не может,
		// но пропавший курьер не должен блокировать завершение заказа.
		if errors.Is(err, repository.ErrCourierNotFound) {
			return nil
		}
		return fmt.Errorf("get assigned courier: %w", err)
	}

	courier.Status = entities.CourierFree
	courier.CompletedOrdersToday++
	if err := d.couriers.Save(ctx, courier); err != nil {
		return fmt.Errorf("save freed courier: %w", err)
	}
	return nil
}

// processQueueLocked вызывается только под dispatchMu. Пробуем только
// голову очереди: если ей никто не подошел, проход останавливается,
// чтобы сохранить строгий FIFO и не сканировать весь бэклог.
func (d *Dispatch) processQueueLocked(ctx context.Context) {
	for len(d.queue) > 0 {
		headID := d.queue[0]

		queuedOrder, err := d.orders.GetByID(ctx, headID)
		if err != nil || queuedOrder.Status != entities.OrderQueued {
			// Устаревшая запись: заказ отменили или поменяли извне.
			d.popHeadLocked()
			continue
		}

		freeCouriers, err := d.couriers.GetFree(ctx)
		if err != nil {
			return
		}

		bestCourier, found := d.strategy.FindBestCourier(queuedOrder, freeCouriers)
		if !found {
			return
		}

		d.popHeadLocked()
		if err := d.assign(ctx, queuedOrder, bestCourier); err != nil {
			return
		}
	}
}

func (d *Dispatch) popHeadLocked() {
	d.queue = d.queue[1:]
	d.queueLen.Store(int64(len(d.queue)))
}
