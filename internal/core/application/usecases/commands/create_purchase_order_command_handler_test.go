package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pharmaledger/internal/core/application/usecases/commands"
	"pharmaledger/internal/core/domain/model/company"
	"pharmaledger/internal/pkg/errs"
)

func Test_CreatePurchaseOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	actor := mustActor("distributor-admin", company.Distributor)
	cmd, err := commands.NewCreatePurchaseOrderCommand(actor, "CRN002", "CRN001", "Paracetamol", 3)
	require.NoError(t, err)

	buyer, err := company.NewCompany("CRN002", "VG Pharma", "Vizag", company.Distributor, "someone", fixedTime)
	require.NoError(t, err)
	seller, err := company.NewCompany("CRN001", "Sun Pharma", "Mumbai", company.Manufacturer, "someone", fixedTime)
	require.NoError(t, err)

	companies := new(MockCompanyRepository)
	orders := new(MockPurchaseOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("Companies").Return(companies).Once(),
		companies.On("GetByCRN", ctx, "CRN002").Return(buyer, nil).Once(),
		uow.On("Companies").Return(companies).Once(),
		companies.On("GetByCRN", ctx, "CRN001").Return(seller, nil).Once(),
		uow.On("PurchaseOrders").Return(orders).Once(),
		orders.On("Save", ctx, mock.AnythingOfType("*purchaseorder.PurchaseOrder")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreatePurchaseOrderCommandHandler(
		FuncPurchaseOrderUoWFactory(func() commands.PurchaseOrderUoW { return uow }), fixedClock,
	)
	po, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "company:CRN002", po.BuyerRef())
	assert.Equal(t, "company:CRN001", po.SellerRef())
	assert.Equal(t, 3, po.Quantity())
	uow.AssertExpectations(t)
	companies.AssertExpectations(t)
	orders.AssertExpectations(t)
}

func Test_CreatePurchaseOrderCommandHandler_Handle_HierarchyViolation(t *testing.T) {
	ctx := t.Context()
	actor := mustActor("retailer-admin", company.Retailer)
	cmd, err := commands.NewCreatePurchaseOrderCommand(actor, "CRN003", "CRN001", "Paracetamol", 3)
	require.NoError(t, err)

	// a retailer skipping the distributor and buying straight from the
	// manufacturer
	buyer, err := company.NewCompany("CRN003", "Upgrad", "Mumbai", company.Retailer, "someone", fixedTime)
	require.NoError(t, err)
	seller, err := company.NewCompany("CRN001", "Sun Pharma", "Mumbai", company.Manufacturer, "someone", fixedTime)
	require.NoError(t, err)

	companies := new(MockCompanyRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("Companies").Return(companies).Once(),
		companies.On("GetByCRN", ctx, "CRN003").Return(buyer, nil).Once(),
		uow.On("Companies").Return(companies).Once(),
		companies.On("GetByCRN", ctx, "CRN001").Return(seller, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreatePurchaseOrderCommandHandler(
		FuncPurchaseOrderUoWFactory(func() commands.PurchaseOrderUoW { return uow }), fixedClock,
	)
	_, err = h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrHierarchyViolation)
	uow.AssertExpectations(t)
}

func Test_CreatePurchaseOrderCommandHandler_Handle_UnauthorizedRole(t *testing.T) {
	actor := mustActor("manufacturer-admin", company.Manufacturer)
	cmd, err := commands.NewCreatePurchaseOrderCommand(actor, "CRN001", "CRN000", "Paracetamol", 3)
	require.NoError(t, err)

	h := commands.NewCreatePurchaseOrderCommandHandler(
		FuncPurchaseOrderUoWFactory(func() commands.PurchaseOrderUoW {
			t.Fatal("unit of work must not be created for unauthorized callers")
			return nil
		}), fixedClock,
	)
	_, err = h.Handle(t.Context(), cmd)

	assert.ErrorIs(t, err, errs.ErrUnauthorized)
}

func Test_CreatePurchaseOrderCommandHandler_Handle_UnknownSeller(t *testing.T) {
	ctx := t.Context()
	actor := mustActor("distributor-admin", company.Distributor)
	cmd, err := commands.NewCreatePurchaseOrderCommand(actor, "CRN002", "CRN999", "Paracetamol", 3)
	require.NoError(t, err)

	buyer, err := company.NewCompany("CRN002", "VG Pharma", "Vizag", company.Distributor, "someone", fixedTime)
	require.NoError(t, err)

	companies := new(MockCompanyRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("Companies").Return(companies).Once(),
		companies.On("GetByCRN", ctx, "CRN002").Return(buyer, nil).Once(),
		uow.On("Companies").Return(companies).Once(),
		companies.On("GetByCRN", ctx, "CRN999").
			Return(nil, errs.NewObjectNotFoundError("companyCRN", "CRN999")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreatePurchaseOrderCommandHandler(
		FuncPurchaseOrderUoWFactory(func() commands.PurchaseOrderUoW { return uow }), fixedClock,
	)
	_, err = h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}
