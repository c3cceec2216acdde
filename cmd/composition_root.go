package cmd

import (
	"workshop/internal/adapters/out/postgres"
	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) taskUoWFactory() commands.TaskUoWFactory {
	return FuncTaskUoWFactory(func() commands.TaskUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) workUoWFactory() commands.WorkUoWFactory {
	return FuncWorkUoWFactory(func() commands.WorkUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) inventoryUoWFactory() commands.InventoryUoWFactory {
	return FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) billingUoWFactory() commands.BillingUoWFactory {
	return FuncBillingUoWFactory(func() commands.BillingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAssignOrderWorkerCommandHandler() commands.AssignOrderWorkerCommandHandler {
	return commands.NewAssignOrderWorkerCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateConfirmPickupCommandHandler() commands.ConfirmPickupCommandHandler {
	return commands.NewConfirmPickupCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateScheduleInstallationCommandHandler() commands.ScheduleInstallationCommandHandler {
	return commands.NewScheduleInstallationCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateConfirmInstallationCommandHandler() commands.ConfirmInstallationCommandHandler {
	return commands.NewConfirmInstallationCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateArchiveOrderCommandHandler() commands.ArchiveOrderCommandHandler {
	return commands.NewArchiveOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateHoldOrderCommandHandler() commands.HoldOrderCommandHandler {
	return commands.NewHoldOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateResumeOrderCommandHandler() commands.ResumeOrderCommandHandler {
	return commands.NewResumeOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateCreateTaskCommandHandler() commands.CreateTaskCommandHandler {
	return commands.NewCreateTaskCommandHandler(c.taskUoWFactory())
}

func (c *CompositionRoot) CreateUpdateTaskCommandHandler() commands.UpdateTaskCommandHandler {
	return commands.NewUpdateTaskCommandHandler(c.taskUoWFactory())
}

func (c *CompositionRoot) CreateAssignTaskWorkerCommandHandler() commands.AssignTaskWorkerCommandHandler {
	return commands.NewAssignTaskWorkerCommandHandler(c.taskUoWFactory())
}

func (c *CompositionRoot) CreateUpdateTaskStatusCommandHandler() commands.UpdateTaskStatusCommandHandler {
	return commands.NewUpdateTaskStatusCommandHandler(c.workUoWFactory())
}

func (c *CompositionRoot) CreateDeleteTaskCommandHandler() commands.DeleteTaskCommandHandler {
	return commands.NewDeleteTaskCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateReviewQualityCommandHandler() commands.ReviewQualityCommandHandler {
	return commands.NewReviewQualityCommandHandler(c.workUoWFactory())
}

func (c *CompositionRoot) CreateStartSessionCommandHandler() commands.StartSessionCommandHandler {
	return commands.NewStartSessionCommandHandler(c.workUoWFactory())
}

func (c *CompositionRoot) CreateStopSessionCommandHandler() commands.StopSessionCommandHandler {
	return commands.NewStopSessionCommandHandler(c.workUoWFactory())
}

func (c *CompositionRoot) CreateAddInventoryItemCommandHandler() commands.AddInventoryItemCommandHandler {
	return commands.NewAddInventoryItemCommandHandler(c.inventoryUoWFactory())
}

func (c *CompositionRoot) CreateRestockInventoryItemCommandHandler() commands.RestockInventoryItemCommandHandler {
	return commands.NewRestockInventoryItemCommandHandler(c.inventoryUoWFactory())
}

func (c *CompositionRoot) CreateConsumeMaterialCommandHandler() commands.ConsumeMaterialCommandHandler {
	return commands.NewConsumeMaterialCommandHandler(c.inventoryUoWFactory())
}

func (c *CompositionRoot) CreateGenerateInvoiceCommandHandler() commands.GenerateInvoiceCommandHandler {
	return commands.NewGenerateInvoiceCommandHandler(c.billingUoWFactory())
}

func (c *CompositionRoot) CreateDeleteInvoiceCommandHandler() commands.DeleteInvoiceCommandHandler {
	return commands.NewDeleteInvoiceCommandHandler(c.billingUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderSummaryQueryHandler() queries.GetOrderSummaryQueryHandler {
	return queries.NewGetOrderSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOpenSessionsQueryHandler() queries.GetOpenSessionsQueryHandler {
	return queries.NewGetOpenSessionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInvoiceDetailQueryHandler() queries.GetInvoiceDetailQueryHandler {
	return queries.NewGetInvoiceDetailQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncTaskUoWFactory func() commands.TaskUoW

func (f FuncTaskUoWFactory) Create() commands.TaskUoW {
	return f()
}

type FuncWorkUoWFactory func() commands.WorkUoW

func (f FuncWorkUoWFactory) Create() commands.WorkUoW {
	return f()
}

type FuncInventoryUoWFactory func() commands.InventoryUoW

func (f FuncInventoryUoWFactory) Create() commands.InventoryUoW {
	return f()
}

type FuncBillingUoWFactory func() commands.BillingUoW

func (f FuncBillingUoWFactory) Create() commands.BillingUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
