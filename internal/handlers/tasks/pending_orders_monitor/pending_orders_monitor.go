package pending_orders_monitor

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"marketplace/pkg/logger"
)

var stalePendingOrders = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "marketplace_stale_pending_orders",
	Help: "Pending orders older than the configured staleness threshold.",
})

type Service interface {
	CountStalePending(ctx context.Context, staleAfter time.Duration) (int64, error)
}

type PendingOrdersMonitor struct {
	log        logger.Logger
	service    Service
	interval   time.Duration
	staleAfter time.Duration
}

func NewPendingOrdersMonitor(log logger.Logger, service Service, interval, staleAfter time.Duration) *PendingOrdersMonitor {
	return &PendingOrdersMonitor{
		log:        log,
		service:    service,
		interval:   interval,
		staleAfter: staleAfter,
	}
}

func (m *PendingOrdersMonitor) TTL() time.Duration {
	return m.interval
}

func (m *PendingOrdersMonitor) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, m.interval)
	defer cancel()

	count, err := m.service.CountStalePending(ctxWithTimeout, m.staleAfter)
	if err != nil {
		return err
	}

	stalePendingOrders.Set(float64(count))

	if count > 0 {
		m.log.With(
			logger.NewField("stale_pending_orders", count),
		).Warn("pending orders monitor")
	}

	return nil
}

func (m *PendingOrdersMonitor) Info() string {
	return "pending orders monitor"
}
