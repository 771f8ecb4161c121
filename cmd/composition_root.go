package cmd

import (
	"requisition/internal/adapters/out/postgres"
	"requisition/internal/adapters/out/postgres/packagingtyperepo"
	"requisition/internal/core/application/usecases/commands"
	"requisition/internal/core/application/usecases/queries"

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

func (c *CompositionRoot) CreateSubmitRequisitionCommandHandler() commands.SubmitRequisitionCommandHandler {
	var f commands.RequisitionUoWFactory = FuncRequisitionUoWFactory(func() commands.RequisitionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitRequisitionCommandHandler(f)
}

func (c *CompositionRoot) CreateTransitionRequisitionCommandHandler() commands.TransitionRequisitionCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionRequisitionCommandHandler(f)
}

func (c *CompositionRoot) CreateReleaseForDispatchCommandHandler() commands.ReleaseForDispatchCommandHandler {
	var f commands.RequisitionUoWFactory = FuncRequisitionUoWFactory(func() commands.RequisitionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReleaseForDispatchCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignBatchCommandHandler() commands.AssignBatchCommandHandler {
	var f commands.RequisitionUoWFactory = FuncRequisitionUoWFactory(func() commands.RequisitionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignBatchCommandHandler(f)
}

func (c *CompositionRoot) CreateGetActiveRequisitionsQueryHandler() queries.GetActiveRequisitionsQueryHandler {
	return queries.NewGetActiveRequisitionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetReadyForBatchingQueryHandler() queries.GetReadyForBatchingQueryHandler {
	return queries.NewGetReadyForBatchingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreatePreviewPackagingQueryHandler() queries.PreviewPackagingQueryHandler {
	return queries.NewPreviewPackagingQueryHandler(packagingtyperepo.NewGormCatalogRepository(c.gormDB))
}

func (c *CompositionRoot) CreateCatalogRepository() *packagingtyperepo.GormCatalogRepository {
	return packagingtyperepo.NewGormCatalogRepository(c.gormDB)
}

type FuncRequisitionUoWFactory func() commands.RequisitionUoW

func (f FuncRequisitionUoWFactory) Create() commands.RequisitionUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
