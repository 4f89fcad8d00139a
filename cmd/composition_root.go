package cmd

import (
	"log/slog"
	"strings"

	"fulfillment/internal/adapters/out/kafka"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/auditrepo"
	"fulfillment/internal/adapters/out/postgres/commercerepo"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	notifier    *kafka.Notifier
	sideEffects *commands.SideEffects
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	notifier := kafka.NewNotifier(
		strings.Split(config.KafkaHost, ","),
		config.KafkaNotificationTopic,
	)

	sideEffects := commands.NewSideEffects(
		commercerepo.NewGormCommerceProjector(gormDB),
		notifier,
		auditrepo.NewGormAuditSink(gormDB),
		logger,
	)

	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:    notifier,
		sideEffects: sideEffects,
	}
}

// Close drains in-flight side effects and releases outbound connections.
func (c *CompositionRoot) Close() error {
	c.sideEffects.Wait()
	return c.notifier.Close()
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateFulfillmentOrderCommandHandler() commands.CreateFulfillmentOrderCommandHandler {
	return commands.NewCreateFulfillmentOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.sideEffects)
}

func (c *CompositionRoot) CreateBulkOrderActionCommandHandler() commands.BulkOrderActionCommandHandler {
	return commands.NewBulkOrderActionCommandHandler(c.orderUoWFactory(), c.sideEffects)
}

func (c *CompositionRoot) CreateAssignStaffCommandHandler() commands.AssignStaffCommandHandler {
	return commands.NewAssignStaffCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSetTrackingCommandHandler() commands.SetTrackingCommandHandler {
	return commands.NewSetTrackingCommandHandler(c.orderUoWFactory(), c.sideEffects)
}

func (c *CompositionRoot) CreateSetRTOAddressCommandHandler() commands.SetRTOAddressCommandHandler {
	return commands.NewSetRTOAddressCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddInternalNoteCommandHandler() commands.AddInternalNoteCommandHandler {
	return commands.NewAddInternalNoteCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSetOrderFlagsCommandHandler() commands.SetOrderFlagsCommandHandler {
	return commands.NewSetOrderFlagsCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkDelayedOrdersCommandHandler() commands.MarkDelayedOrdersCommandHandler {
	return commands.NewMarkDelayedOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListActiveOrdersQueryHandler() queries.ListActiveOrdersQueryHandler {
	return queries.NewListActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
