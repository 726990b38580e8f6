package completed_orders_reset

import (
	"context"
	"time"

	"dispatch/pkg/logger"
)

type Service interface {
	ResetCompletedToday(ctx context.Context) (int64, error)
}

// CompletedOrdersReset периодически обнуляет дневные счетчики курьеров,
// чтобы тай-брейк по загруженности не застревал на вчерашней статистике.
type CompletedOrdersReset struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewCompletedOrdersReset(log logger.Logger, service Service, interval time.Duration) *CompletedOrdersReset {
	return &CompletedOrdersReset{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (c *CompletedOrdersReset) TTL() time.Duration {
	return c.interval
}

func (c *CompletedOrdersReset) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, c.interval)
	defer cancel()

	affected, err := c.service.ResetCompletedToday(ctxWithTimeout)

	if affected > 0 {
		c.log.With(
			logger.NewField("couriers_reset", affected),
		).Info("completed orders reset")
	}

	return err
}

func (c *CompletedOrdersReset) Info() string {
	return "completed orders reset"
}
