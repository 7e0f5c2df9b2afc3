package cmd

import (
	"log/slog"

	"gorm.io/gorm"

	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/notificationrepo"
	"fulfillment/internal/core/application/eventhandlers"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	dispatcher ports.EventDispatcher
}

// NewCompositionRoot wires the adapters together. The dispatcher's
// notification repository is bound to the base DB handle on purpose:
// fan-out writes happen outside any command transaction.
func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	smsSender ports.SMSSender,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		dispatcher: eventhandlers.NewDispatcher(
			notificationrepo.NewGormNotificationRepository(gormDB),
			smsSender,
			logger,
		),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDriverCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateCancelDeliveryCommandHandler() commands.CancelDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelDeliveryCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateRescheduleDeliveryCommandHandler() commands.RescheduleDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRescheduleDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkDeliveredCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUndeliveredOrdersQueryHandler() queries.GetUndeliveredOrdersQueryHandler {
	return queries.NewGetUndeliveredOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveDeliveriesQueryHandler() queries.GetActiveDeliveriesQueryHandler {
	return queries.NewGetActiveDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOverdueDeliveriesQueryHandler() queries.GetOverdueDeliveriesQueryHandler {
	return queries.NewGetOverdueDeliveriesQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncFulfillmentUoWFactory func() commands.FulfillmentUoW

func (f FuncFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}
