package cmd

import (
	"pharmaledger/internal/adapters/out/postgres"
	"pharmaledger/internal/core/application/usecases/commands"
	"pharmaledger/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	clock      commands.Clock
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      nil, // handlers default to time.Now
	}
}

func (c *CompositionRoot) CreateRegisterCompanyCommandHandler() commands.RegisterCompanyCommandHandler {
	var f commands.CompanyUoWFactory = FuncCompanyUoWFactory(func() commands.CompanyUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterCompanyCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateAddDrugCommandHandler() commands.AddDrugCommandHandler {
	var f commands.DrugUoWFactory = FuncDrugUoWFactory(func() commands.DrugUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddDrugCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateCreatePurchaseOrderCommandHandler() commands.CreatePurchaseOrderCommandHandler {
	var f commands.PurchaseOrderUoWFactory = FuncPurchaseOrderUoWFactory(func() commands.PurchaseOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePurchaseOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateUpdateShipmentCommandHandler() commands.UpdateShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateShipmentCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateRetailDrugCommandHandler() commands.RetailDrugCommandHandler {
	var f commands.DrugUoWFactory = FuncDrugUoWFactory(func() commands.DrugUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRetailDrugCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateGetDrugQueryHandler() queries.GetDrugQueryHandler {
	return queries.NewGetDrugQueryHandler(postgres.NewGormLedger(c.gormDB))
}

func (c *CompositionRoot) CreateGetDrugHistoryQueryHandler() queries.GetDrugHistoryQueryHandler {
	return queries.NewGetDrugHistoryQueryHandler(postgres.NewGormLedger(c.gormDB))
}

func (c *CompositionRoot) CreateGetInTransitShipmentsQueryHandler() queries.GetInTransitShipmentsQueryHandler {
	return queries.NewGetInTransitShipmentsQueryHandler(c.gormDB)
}

type FuncCompanyUoWFactory func() commands.CompanyUoW

func (f FuncCompanyUoWFactory) Create() commands.CompanyUoW {
	return f()
}

type FuncDrugUoWFactory func() commands.DrugUoW

func (f FuncDrugUoWFactory) Create() commands.DrugUoW {
	return f()
}

type FuncPurchaseOrderUoWFactory func() commands.PurchaseOrderUoW

func (f FuncPurchaseOrderUoWFactory) Create() commands.PurchaseOrderUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}
