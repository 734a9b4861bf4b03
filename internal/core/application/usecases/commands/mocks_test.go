package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pharmaledger/internal/core/application/usecases/commands"
	"pharmaledger/internal/core/domain/model/company"
	"pharmaledger/internal/core/domain/model/drug"
	"pharmaledger/internal/core/domain/model/identity"
	"pharmaledger/internal/core/domain/model/purchaseorder"
	"pharmaledger/internal/core/domain/model/shipment"
	"pharmaledger/internal/core/ports"
)

// fixedTime pins record timestamps in handler tests.
var fixedTime = time.Date(2021, 6, 15, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedTime
}

func zeroActor() identity.Actor {
	return identity.Actor{}
}

func mustActor(id string, role company.Role) identity.Actor {
	actor, err := identity.NewActor(id, role)
	if err != nil {
		panic(err)
	}
	return actor
}

func newTestDrug(t *testing.T, name, serialNo, manufacturerRef string) *drug.Drug {
	t.Helper()
	unit, err := drug.NewDrug(name, serialNo, "2021-01-01", "2023-01-01",
		manufacturerRef, "manufacturer-admin", "tx-0", fixedTime)
	require.NoError(t, err)
	return unit
}

type MockCompanyRepository struct{ mock.Mock }

func (m *MockCompanyRepository) Add(ctx context.Context, aggregate *company.Company) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCompanyRepository) GetByCRN(ctx context.Context, crn string) (*company.Company, error) {
	args := m.Called(ctx, crn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*company.Company), args.Error(1)
}

type MockDrugRepository struct{ mock.Mock }

func (m *MockDrugRepository) Add(ctx context.Context, aggregate *drug.Drug) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDrugRepository) Update(ctx context.Context, aggregate *drug.Drug) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDrugRepository) Get(ctx context.Context, name, serialNo string) (*drug.Drug, error) {
	args := m.Called(ctx, name, serialNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*drug.Drug), args.Error(1)
}

func (m *MockDrugRepository) GetByAssetID(ctx context.Context, assetID string) (*drug.Drug, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*drug.Drug), args.Error(1)
}

type MockPurchaseOrderRepository struct{ mock.Mock }

func (m *MockPurchaseOrderRepository) Save(ctx context.Context, aggregate *purchaseorder.PurchaseOrder) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) Get(ctx context.Context, buyerCRN, drugName string) (*purchaseorder.PurchaseOrder, error) {
	args := m.Called(ctx, buyerCRN, drugName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*purchaseorder.PurchaseOrder), args.Error(1)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, buyerCRN, drugName string) (*shipment.Shipment, error) {
	args := m.Called(ctx, buyerCRN, drugName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

// MockUoW satisfies every narrow unit of work interface in the package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) TxID() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockUoW) Companies() ports.CompanyRepository {
	args := m.Called()
	return args.Get(0).(ports.CompanyRepository)
}

func (m *MockUoW) Drugs() ports.DrugRepository {
	args := m.Called()
	return args.Get(0).(ports.DrugRepository)
}

func (m *MockUoW) PurchaseOrders() ports.PurchaseOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.PurchaseOrderRepository)
}

func (m *MockUoW) Shipments() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

type FuncCompanyUoWFactory func() commands.CompanyUoW

func (f FuncCompanyUoWFactory) Create() commands.CompanyUoW { return f() }

type FuncDrugUoWFactory func() commands.DrugUoW

func (f FuncDrugUoWFactory) Create() commands.DrugUoW { return f() }

type FuncPurchaseOrderUoWFactory func() commands.PurchaseOrderUoW

func (f FuncPurchaseOrderUoWFactory) Create() commands.PurchaseOrderUoW { return f() }

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW { return f() }
