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

func Test_RetailDrugCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	actor := mustActor("retailer-admin", company.Retailer)
	cmd, err := commands.NewRetailDrugCommand(actor, "Paracetamol", "001", "CRN003", "AADHAR-1234")
	require.NoError(t, err)

	retailer, err := company.NewCompany("CRN003", "Upgrad", "Mumbai", company.Retailer, "someone", fixedTime)
	require.NoError(t, err)

	// unit has reached the retailer through the usual chain
	unit := newTestDrug(t, "Paracetamol", "001", "company:CRN001")
	require.NoError(t, unit.Ship("company:CRN001", "company:CRN500", fixedTime))
	require.NoError(t, unit.Deliver("company:CRN500", "company:CRN003", "shipmentOrder:CRN003-Paracetamol", fixedTime))

	companies := new(MockCompanyRepository)
	drugs := new(MockDrugRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("Companies").Return(companies).Once(),
		companies.On("GetByCRN", ctx, "CRN003").Return(retailer, nil).Once(),
		uow.On("Drugs").Return(drugs).Once(),
		drugs.On("Get", ctx, "Paracetamol", "001").Return(unit, nil).Once(),
		uow.On("Drugs").Return(drugs).Once(),
		drugs.On("Update", ctx, unit).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewRetailDrugCommandHandler(
		FuncDrugUoWFactory(func() commands.DrugUoW { return uow }), fixedClock,
	)
	sold, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "AADHAR-1234", sold.OwnerRef())
	uow.AssertExpectations(t)
	companies.AssertExpectations(t)
	drugs.AssertExpectations(t)
}

func Test_RetailDrugCommandHandler_Handle_RetailerDoesNotOwnUnit(t *testing.T) {
	ctx := t.Context()
	actor := mustActor("retailer-admin", company.Retailer)
	cmd, err := commands.NewRetailDrugCommand(actor, "Paracetamol", "001", "CRN003", "AADHAR-1234")
	require.NoError(t, err)

	retailer, err := company.NewCompany("CRN003", "Upgrad", "Mumbai", company.Retailer, "someone", fixedTime)
	require.NoError(t, err)

	// still with the manufacturer
	unit := newTestDrug(t, "Paracetamol", "001", "company:CRN001")

	companies := new(MockCompanyRepository)
	drugs := new(MockDrugRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("Companies").Return(companies)
	uow.On("Drugs").Return(drugs)
	companies.On("GetByCRN", ctx, "CRN003").Return(retailer, nil).Once()
	drugs.On("Get", ctx, "Paracetamol", "001").Return(unit, nil).Once()

	h := commands.NewRetailDrugCommandHandler(
		FuncDrugUoWFactory(func() commands.DrugUoW { return uow }), fixedClock,
	)
	_, err = h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrOwnershipMismatch)
	assert.Equal(t, "company:CRN001", unit.OwnerRef())
	drugs.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func Test_RetailDrugCommandHandler_Handle_UnauthorizedRole(t *testing.T) {
	actor := mustActor("distributor-admin", company.Distributor)
	cmd, err := commands.NewRetailDrugCommand(actor, "Paracetamol", "001", "CRN002", "AADHAR-1234")
	require.NoError(t, err)

	h := commands.NewRetailDrugCommandHandler(
		FuncDrugUoWFactory(func() commands.DrugUoW {
			t.Fatal("unit of work must not be created for unauthorized callers")
			return nil
		}), fixedClock,
	)
	_, err = h.Handle(t.Context(), cmd)

	assert.ErrorIs(t, err, errs.ErrUnauthorized)
}
