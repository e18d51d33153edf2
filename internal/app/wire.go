//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"marketplace/internal/gateway/kafka/orderevents"
	mealbox_get "marketplace/internal/handlers/rest/mealbox_get"
	mealbox_post "marketplace/internal/handlers/rest/mealbox_post"
	mealboxes_get "marketplace/internal/handlers/rest/mealboxes_get"
	order_cancel_put "marketplace/internal/handlers/rest/order_cancel_put"
	order_confirm_put "marketplace/internal/handlers/rest/order_confirm_put"
	order_deliver_put "marketplace/internal/handlers/rest/order_deliver_put"
	order_get "marketplace/internal/handlers/rest/order_get"
	order_post "marketplace/internal/handlers/rest/order_post"
	order_tracking_get "marketplace/internal/handlers/rest/order_tracking_get"
	vendor_orders_get "marketplace/internal/handlers/rest/vendor_orders_get"
	"marketplace/internal/handlers/tasks/pending_orders_monitor"
	order_tracking_ws "marketplace/internal/handlers/ws/order_tracking_ws"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/factory/order_code"
	"marketplace/internal/pkg/ws"

	mealboxRepo "marketplace/internal/repository/mealbox"
	orderRepo "marketplace/internal/repository/order"
	catalogService "marketplace/internal/service/catalog"
	orderService "marketplace/internal/service/order"
	trackingService "marketplace/internal/service/tracking"

	"marketplace/pkg/background"
	"marketplace/pkg/logger"
	"marketplace/pkg/querier"
	"marketplace/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	MonitorInterval time.Duration
	StaleAfter      time.Duration
)

type Application struct {
	ServiceOrder      ServiceOrder
	ServiceCatalog    ServiceCatalog
	Hub               *ws.Hub
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_post.Service
	order_get.Service
	order_tracking_get.Service
	order_confirm_put.Service
	order_cancel_put.Service
	order_deliver_put.Service
	vendor_orders_get.Service
}

type ServiceCatalog interface {
	mealbox_post.Service
	mealbox_get.Service
	mealboxes_get.Service
}

// InitializeApplication for the HTTP service (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideMonitorInterval,
		provideStaleAfter,

		provideOrderRepository,
		provideMealBoxRepository,

		provideHub,
		provideOrderEventsGateway,
		provideNotifier,
		order_code.New,

		provideServiceCatalog,
		provideServiceOrder,

		providePendingOrdersMonitorTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceCatalog), new(*catalogService.Service)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(catalogService.Repository), new(*mealboxRepo.Repository)),
		wire.Bind(new(orderService.CatalogService), new(*catalogService.Service)),
		wire.Bind(new(orderService.Notifier), new(*trackingService.Notifier)),
		wire.Bind(new(orderService.CodeFactory), new(*order_code.CodeFactory)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(trackingService.Hub), new(*ws.Hub)),
		wire.Bind(new(trackingService.EventGateway), new(*orderevents.Gateway)),

		wire.Bind(new(pending_orders_monitor.Service), new(*orderService.Service)),
	)
	return &Application{}, nil
}

type ServiceTracking interface {
	order_tracking_ws.Service
}

type KafkaWorkerApp struct {
	ServiceTracking ServiceTracking
	Hub             *ws.Hub
	Relay           *trackingService.Relay
}

// InitializeKafkaWorkerApp for the relay worker (cmd/worker-tracking-relay)
func InitializeKafkaWorkerApp(
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
) *KafkaWorkerApp {
	wire.Build(
		provideQuerier,
		provideOrderRepository,

		provideHub,
		provideTrackingQuery,
		provideRelay,

		wire.Struct(new(KafkaWorkerApp), "*"),

		wire.Bind(new(ServiceTracking), new(*trackingService.Query)),
		wire.Bind(new(trackingService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(trackingService.Hub), new(*ws.Hub)),
	)
	return nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideMealBoxRepository(querier *querier.Querier) *mealboxRepo.Repository {
	return mealboxRepo.New(querier)
}

func provideHub(log logger.Logger) *ws.Hub {
	return ws.NewHub(log)
}

func provideOrderEventsGateway(producer sarama.SyncProducer, cfg *config.Config) *orderevents.Gateway {
	return orderevents.New(producer, cfg.Kafka.Topic)
}

func provideNotifier(log logger.Logger, hub trackingService.Hub, gateway trackingService.EventGateway) *trackingService.Notifier {
	return trackingService.New(log, hub, gateway)
}

func provideServiceCatalog(repository catalogService.Repository) *catalogService.Service {
	return catalogService.New(repository)
}

func provideServiceOrder(
	repository orderService.Repository,
	catalog orderService.CatalogService,
	notifier orderService.Notifier,
	codeFactory orderService.CodeFactory,
	txManager orderService.TxManager,
) *orderService.Service {
	return orderService.New(
		repository,
		catalog,
		notifier,
		codeFactory,
		txManager,
	)
}

func provideTrackingQuery(repository trackingService.OrderRepository) *trackingService.Query {
	return trackingService.NewQuery(repository)
}

func provideRelay(log logger.Logger, hub trackingService.Hub) *trackingService.Relay {
	return trackingService.NewRelay(log, hub)
}

func provideMonitorInterval(cfg *config.Config) MonitorInterval {
	return MonitorInterval(cfg.Tasks.PendingOrdersMonitorInterval)
}

func provideStaleAfter(cfg *config.Config) StaleAfter {
	return StaleAfter(cfg.Tasks.PendingOrderStaleAfter)
}

func providePendingOrdersMonitorTask(
	log logger.Logger,
	service pending_orders_monitor.Service,
	interval MonitorInterval,
	staleAfter StaleAfter,
) *pending_orders_monitor.PendingOrdersMonitor {
	return pending_orders_monitor.NewPendingOrdersMonitor(log, service, time.Duration(interval), time.Duration(staleAfter))
}

func provideTaskList(
	pendingOrdersMonitorTask *pending_orders_monitor.PendingOrdersMonitor,
) []background.Task {
	return []background.Task{
		pendingOrdersMonitorTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
