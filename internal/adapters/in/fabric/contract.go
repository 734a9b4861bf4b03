// Package fabric exposes the supply chain engine as a Hyperledger Fabric
// smart contract. Each contract method builds the command from the
// invocation arguments, wires a unit of work over the chaincode stub, and
// returns the stored record form.
package fabric

import (
	"context"
	"strconv"
	"strings"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"

	"pharmaledger/internal/adapters/out/fabricledger"
	"pharmaledger/internal/adapters/out/ledgerrepo/companyrepo"
	"pharmaledger/internal/adapters/out/ledgerrepo/drugrepo"
	"pharmaledger/internal/adapters/out/ledgerrepo/porepo"
	"pharmaledger/internal/adapters/out/ledgerrepo/shipmentrepo"
	"pharmaledger/internal/core/application/usecases/commands"
	"pharmaledger/internal/core/application/usecases/queries"
	"pharmaledger/internal/core/domain/model/company"
	"pharmaledger/internal/pkg/errs"
)

// PharmanetContract is the chaincode entry point for the pharma network.
type PharmanetContract struct {
	contractapi.Contract
}

type funcCompanyUoWFactory func() commands.CompanyUoW

func (f funcCompanyUoWFactory) Create() commands.CompanyUoW { return f() }

type funcDrugUoWFactory func() commands.DrugUoW

func (f funcDrugUoWFactory) Create() commands.DrugUoW { return f() }

type funcPurchaseOrderUoWFactory func() commands.PurchaseOrderUoW

func (f funcPurchaseOrderUoWFactory) Create() commands.PurchaseOrderUoW { return f() }

type funcShipmentUoWFactory func() commands.ShipmentUoW

func (f funcShipmentUoWFactory) Create() commands.ShipmentUoW { return f() }

func unitOfWork(tctx contractapi.TransactionContextInterface) *fabricledger.StubUnitOfWork {
	return fabricledger.NewStubUnitOfWork(fabricledger.NewStubLedger(tctx.GetStub()))
}

// RegisterCompany registers a participant on the network.
func (c *PharmanetContract) RegisterCompany(tctx contractapi.TransactionContextInterface,
	companyCRN, companyName, location, organisationRole string,
) (*companyrepo.CompanyDTO, error) {
	actor, err := actorFromContext(tctx)
	if err != nil {
		return nil, err
	}

	role, err := company.RoleFromString(organisationRole)
	if err != nil {
		return nil, err
	}

	cmd, err := commands.NewRegisterCompanyCommand(actor, companyCRN, companyName, location, role)
	if err != nil {
		return nil, err
	}

	uow := unitOfWork(tctx)
	handler := commands.NewRegisterCompanyCommandHandler(
		funcCompanyUoWFactory(func() commands.CompanyUoW { return uow }),
		clockFromStub(tctx.GetStub()),
	)

	registered, err := handler.Handle(context.Background(), cmd)
	if err != nil {
		return nil, err
	}

	dto, err := companyrepo.FromDomain(registered)
	if err != nil {
		return nil, err
	}
	return &dto, nil
}

// AddDrug registers a newly manufactured drug unit.
func (c *PharmanetContract) AddDrug(tctx contractapi.TransactionContextInterface,
	drugName, serialNo, mfgDate, expDate, companyCRN string,
) (*drugrepo.DrugDTO, error) {
	actor, err := actorFromContext(tctx)
	if err != nil {
		return nil, err
	}

	cmd, err := commands.NewAddDrugCommand(actor, drugName, serialNo, mfgDate, expDate, companyCRN)
	if err != nil {
		return nil, err
	}

	uow := unitOfWork(tctx)
	handler := commands.NewAddDrugCommandHandler(
		funcDrugUoWFactory(func() commands.DrugUoW { return uow }),
		clockFromStub(tctx.GetStub()),
	)

	unit, err := handler.Handle(context.Background(), cmd)
	if err != nil {
		return nil, err
	}

	dto, err := drugrepo.FromDomain(unit)
	if err != nil {
		return nil, err
	}
	return &dto, nil
}

// CreatePO records a purchase order between two trading partners.
func (c *PharmanetContract) CreatePO(tctx contractapi.TransactionContextInterface,
	buyerCRN, sellerCRN, drugName, quantity string,
) (*porepo.PurchaseOrderDTO, error) {
	actor, err := actorFromContext(tctx)
	if err != nil {
		return nil, err
	}

	qty, err := strconv.Atoi(strings.TrimSpace(quantity))
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity", err)
	}

	cmd, err := commands.NewCreatePurchaseOrderCommand(actor, buyerCRN, sellerCRN, drugName, qty)
	if err != nil {
		return nil, err
	}

	uow := unitOfWork(tctx)
	handler := commands.NewCreatePurchaseOrderCommandHandler(
		funcPurchaseOrderUoWFactory(func() commands.PurchaseOrderUoW { return uow }),
		clockFromStub(tctx.GetStub()),
	)

	po, err := handler.Handle(context.Background(), cmd)
	if err != nil {
		return nil, err
	}

	dto, err := porepo.FromDomain(po)
	if err != nil {
		return nil, err
	}
	return &dto, nil
}

// CreateShipment dispatches the units fulfilling a purchase order. The
// asset list arrives as a comma-separated string of unit identifiers.
func (c *PharmanetContract) CreateShipment(tctx contractapi.TransactionContextInterface,
	buyerCRN, drugName, listOfAssets, transporterCRN string,
) (*shipmentrepo.ShipmentDTO, error) {
	actor, err := actorFromContext(tctx)
	if err != nil {
		return nil, err
	}

	assetIDs := make([]string, 0)
	for _, id := range strings.Split(listOfAssets, ",") {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			assetIDs = append(assetIDs, trimmed)
		}
	}

	cmd, err := commands.NewCreateShipmentCommand(actor, buyerCRN, drugName, assetIDs, transporterCRN)
	if err != nil {
		return nil, err
	}

	uow := unitOfWork(tctx)
	handler := commands.NewCreateShipmentCommandHandler(
		funcShipmentUoWFactory(func() commands.ShipmentUoW { return uow }),
		clockFromStub(tctx.GetStub()),
	)

	consignment, err := handler.Handle(context.Background(), cmd)
	if err != nil {
		return nil, err
	}

	dto, err := shipmentrepo.FromDomain(consignment)
	if err != nil {
		return nil, err
	}
	return &dto, nil
}

// UpdateShipment marks a consignment delivered and transfers its units to
// the buyer.
func (c *PharmanetContract) UpdateShipment(tctx contractapi.TransactionContextInterface,
	buyerCRN, drugName, transporterCRN string,
) (*shipmentrepo.ShipmentDTO, error) {
	actor, err := actorFromContext(tctx)
	if err != nil {
		return nil, err
	}

	cmd, err := commands.NewUpdateShipmentCommand(actor, buyerCRN, drugName, transporterCRN)
	if err != nil {
		return nil, err
	}

	uow := unitOfWork(tctx)
	handler := commands.NewUpdateShipmentCommandHandler(
		funcShipmentUoWFactory(func() commands.ShipmentUoW { return uow }),
		clockFromStub(tctx.GetStub()),
	)

	consignment, err := handler.Handle(context.Background(), cmd)
	if err != nil {
		return nil, err
	}

	dto, err := shipmentrepo.FromDomain(consignment)
	if err != nil {
		return nil, err
	}
	return &dto, nil
}

// RetailDrug sells a unit to an end consumer.
func (c *PharmanetContract) RetailDrug(tctx contractapi.TransactionContextInterface,
	drugName, serialNo, retailerCRN, customerAadhar string,
) (*drugrepo.DrugDTO, error) {
	actor, err := actorFromContext(tctx)
	if err != nil {
		return nil, err
	}

	cmd, err := commands.NewRetailDrugCommand(actor, drugName, serialNo, retailerCRN, customerAadhar)
	if err != nil {
		return nil, err
	}

	uow := unitOfWork(tctx)
	handler := commands.NewRetailDrugCommandHandler(
		funcDrugUoWFactory(func() commands.DrugUoW { return uow }),
		clockFromStub(tctx.GetStub()),
	)

	unit, err := handler.Handle(context.Background(), cmd)
	if err != nil {
		return nil, err
	}

	dto, err := drugrepo.FromDomain(unit)
	if err != nil {
		return nil, err
	}
	return &dto, nil
}

// ViewHistory returns every committed version of a unit's record.
func (c *PharmanetContract) ViewHistory(tctx contractapi.TransactionContextInterface,
	drugName, serialNo string,
) ([]queries.GetDrugHistoryQueryResponse, error) {
	actor, err := actorFromContext(tctx)
	if err != nil {
		return nil, err
	}

	query, err := queries.NewGetDrugHistoryQuery(actor, drugName, serialNo)
	if err != nil {
		return nil, err
	}

	handler := queries.NewGetDrugHistoryQueryHandler(fabricledger.NewStubLedger(tctx.GetStub()))
	return handler.Handle(context.Background(), query)
}

// ViewDrugCurrentState returns a unit's current record.
func (c *PharmanetContract) ViewDrugCurrentState(tctx contractapi.TransactionContextInterface,
	drugName, serialNo string,
) (*queries.GetDrugQueryResponse, error) {
	actor, err := actorFromContext(tctx)
	if err != nil {
		return nil, err
	}

	query, err := queries.NewGetDrugQuery(actor, drugName, serialNo)
	if err != nil {
		return nil, err
	}

	handler := queries.NewGetDrugQueryHandler(fabricledger.NewStubLedger(tctx.GetStub()))
	state, err := handler.Handle(context.Background(), query)
	if err != nil {
		return nil, err
	}
	return &state, nil
}
