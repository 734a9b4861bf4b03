package services_test

import (
	"testing"

	"pharmaledger/internal/core/domain/model/company"
	"pharmaledger/internal/core/domain/services"
	"pharmaledger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allRoles = []company.Role{
	company.Manufacturer, company.Distributor, company.Retailer, company.Transporter,
}

func TestAuthorize_Table(t *testing.T) {
	// Expected policy, one row per operation.
	allowed := map[services.Operation]map[company.Role]bool{
		services.OpRegisterCompany: {
			company.Manufacturer: true, company.Distributor: true,
			company.Retailer: true, company.Transporter: true,
		},
		services.OpAddDrug: {company.Manufacturer: true},
		services.OpCreatePurchaseOrder: {
			company.Distributor: true, company.Retailer: true,
		},
		services.OpCreateShipment: {
			company.Manufacturer: true, company.Distributor: true,
		},
		services.OpUpdateShipment: {company.Transporter: true},
		services.OpRetailDrug:     {company.Retailer: true},
		services.OpViewHistory: {
			company.Manufacturer: true, company.Distributor: true,
			company.Retailer: true, company.Transporter: true,
		},
		services.OpViewDrugCurrentState: {
			company.Manufacturer: true, company.Distributor: true,
			company.Retailer: true, company.Transporter: true,
		},
	}

	for op, roles := range allowed {
		for _, role := range allRoles {
			err := services.Authorize(op, role)
			if roles[role] {
				require.NoError(t, err, "%s should allow %s", op, role)
			} else {
				require.ErrorIs(t, err, errs.ErrUnauthorized, "%s should reject %s", op, role)
			}
		}
	}
}

func TestAuthorize_UnknownsRejected(t *testing.T) {
	require.ErrorIs(t, services.Authorize(services.UnknownOperation, company.Manufacturer), errs.ErrUnauthorized)
	require.ErrorIs(t, services.Authorize(services.OpAddDrug, company.UnknownRole), errs.ErrUnauthorized)
}

func TestAuthorize_ErrorNamesOperationAndRole(t *testing.T) {
	err := services.Authorize(services.OpAddDrug, company.Distributor)

	var unauthorized *errs.UnauthorizedError
	require.ErrorAs(t, err, &unauthorized)
	assert.Equal(t, "addDrug", unauthorized.Operation)
	assert.Equal(t, "Distributor", unauthorized.Role)
}

func TestOperation_String(t *testing.T) {
	assert.Equal(t, "createPO", services.OpCreatePurchaseOrder.String())
	assert.Equal(t, "unknown", services.UnknownOperation.String())
	assert.Equal(t, "unknown", services.Operation(42).String())
}
