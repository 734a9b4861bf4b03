package http_test

import (
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	pharmahttp "pharmaledger/internal/adapters/in/http"
	"pharmaledger/internal/adapters/out/memledger"
	"pharmaledger/internal/core/application/usecases/commands"
	"pharmaledger/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type funcCompanyUoWFactory func() commands.CompanyUoW

func (f funcCompanyUoWFactory) Create() commands.CompanyUoW { return f() }

type funcDrugUoWFactory func() commands.DrugUoW

func (f funcDrugUoWFactory) Create() commands.DrugUoW { return f() }

type funcPurchaseOrderUoWFactory func() commands.PurchaseOrderUoW

func (f funcPurchaseOrderUoWFactory) Create() commands.PurchaseOrderUoW { return f() }

type funcShipmentUoWFactory func() commands.ShipmentUoW

func (f funcShipmentUoWFactory) Create() commands.ShipmentUoW { return f() }

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	store := memledger.NewStore()
	factory := memledger.NewMemUnitOfWorkFactory(store)
	clock := commands.Clock(func() time.Time { return time.Date(2021, 6, 15, 10, 30, 0, 0, time.UTC) })

	server := pharmahttp.NewServer(
		pharmahttp.HeaderIdentityResolver{},
		commands.NewRegisterCompanyCommandHandler(
			funcCompanyUoWFactory(func() commands.CompanyUoW { return factory.Create() }), clock),
		commands.NewAddDrugCommandHandler(
			funcDrugUoWFactory(func() commands.DrugUoW { return factory.Create() }), clock),
		commands.NewCreatePurchaseOrderCommandHandler(
			funcPurchaseOrderUoWFactory(func() commands.PurchaseOrderUoW { return factory.Create() }), clock),
		commands.NewCreateShipmentCommandHandler(
			funcShipmentUoWFactory(func() commands.ShipmentUoW { return factory.Create() }), clock),
		commands.NewUpdateShipmentCommandHandler(
			funcShipmentUoWFactory(func() commands.ShipmentUoW { return factory.Create() }), clock),
		commands.NewRetailDrugCommandHandler(
			funcDrugUoWFactory(func() commands.DrugUoW { return factory.Create() }), clock),
		queries.NewGetDrugQueryHandler(store),
		queries.NewGetDrugHistoryQueryHandler(store),
		queries.GetInTransitShipmentsQueryHandler{},
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return e
}

func doJSON(e *echo.Echo, method, target, callerID, callerRole, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if callerID != "" {
		req.Header.Set(pharmahttp.HeaderCallerID, callerID)
	}
	if callerRole != "" {
		req.Header.Set(pharmahttp.HeaderCallerRole, callerRole)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func Test_RegisterCompany_Created(t *testing.T) {
	e := newTestEcho(t)

	rec := doJSON(e, nethttp.MethodPost, "/api/v1/companies", "sunpharma-admin", "manufacturer",
		`{"companyCRN":"CRN001","companyName":"Sun Pharma","location":"Mumbai","organisationRole":"manufacturer"}`)

	require.Equal(t, nethttp.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "company:CRN001", body["companyID"])
	assert.Equal(t, "manufacturer", body["organisationRole"])
	assert.Equal(t, "sunpharma-admin", body["requestedBy"])
}

func Test_RegisterCompany_DuplicateConflicts(t *testing.T) {
	e := newTestEcho(t)
	payload := `{"companyCRN":"CRN001","companyName":"Sun Pharma","location":"Mumbai","organisationRole":"manufacturer"}`

	rec := doJSON(e, nethttp.MethodPost, "/api/v1/companies", "sunpharma-admin", "manufacturer", payload)
	require.Equal(t, nethttp.StatusCreated, rec.Code)

	rec = doJSON(e, nethttp.MethodPost, "/api/v1/companies", "sunpharma-admin", "manufacturer", payload)
	assert.Equal(t, nethttp.StatusConflict, rec.Code)
}

func Test_RegisterCompany_MissingIdentityForbidden(t *testing.T) {
	e := newTestEcho(t)

	rec := doJSON(e, nethttp.MethodPost, "/api/v1/companies", "", "",
		`{"companyCRN":"CRN001","companyName":"Sun Pharma","location":"Mumbai","organisationRole":"manufacturer"}`)

	assert.Equal(t, nethttp.StatusForbidden, rec.Code)
}

func Test_AddDrug_RequiresManufacturerRole(t *testing.T) {
	e := newTestEcho(t)

	rec := doJSON(e, nethttp.MethodPost, "/api/v1/drugs", "vg-admin", "distributor",
		`{"drugName":"Paracetamol","serialNo":"001","mfgDate":"2021-01-01","expDate":"2023-01-01","companyCRN":"CRN001"}`)

	assert.Equal(t, nethttp.StatusForbidden, rec.Code)
}

func Test_AddDrug_Created(t *testing.T) {
	e := newTestEcho(t)

	rec := doJSON(e, nethttp.MethodPost, "/api/v1/companies", "sunpharma-admin", "manufacturer",
		`{"companyCRN":"CRN001","companyName":"Sun Pharma","location":"Mumbai","organisationRole":"manufacturer"}`)
	require.Equal(t, nethttp.StatusCreated, rec.Code)

	rec = doJSON(e, nethttp.MethodPost, "/api/v1/drugs", "sunpharma-admin", "manufacturer",
		`{"drugName":"Paracetamol","serialNo":"001","mfgDate":"2021-01-01","expDate":"2023-01-01","companyCRN":"CRN001"}`)
	require.Equal(t, nethttp.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "drug:Paracetamol-001", body["productID"])
	assert.Equal(t, "company:CRN001", body["owner"])
}

func Test_GetDrug_NotFound(t *testing.T) {
	e := newTestEcho(t)

	rec := doJSON(e, nethttp.MethodGet, "/api/v1/drugs/Paracetamol/404", "vg-admin", "retailer", "")

	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
}

func Test_GetDrugHistory_ReturnsVersions(t *testing.T) {
	e := newTestEcho(t)

	rec := doJSON(e, nethttp.MethodPost, "/api/v1/companies", "sunpharma-admin", "manufacturer",
		`{"companyCRN":"CRN001","companyName":"Sun Pharma","location":"Mumbai","organisationRole":"manufacturer"}`)
	require.Equal(t, nethttp.StatusCreated, rec.Code)

	rec = doJSON(e, nethttp.MethodPost, "/api/v1/drugs", "sunpharma-admin", "manufacturer",
		`{"drugName":"Paracetamol","serialNo":"001","mfgDate":"2021-01-01","expDate":"2023-01-01","companyCRN":"CRN001"}`)
	require.Equal(t, nethttp.StatusCreated, rec.Code)

	rec = doJSON(e, nethttp.MethodGet, "/api/v1/drugs/Paracetamol/001/history", "sunpharma-admin", "manufacturer", "")
	require.Equal(t, nethttp.StatusOK, rec.Code)

	var history []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	require.Len(t, history, 1)
}

func Test_CreatePurchaseOrder_HierarchyViolation(t *testing.T) {
	e := newTestEcho(t)

	rec := doJSON(e, nethttp.MethodPost, "/api/v1/companies", "sunpharma-admin", "manufacturer",
		`{"companyCRN":"CRN001","companyName":"Sun Pharma","location":"Mumbai","organisationRole":"manufacturer"}`)
	require.Equal(t, nethttp.StatusCreated, rec.Code)

	rec = doJSON(e, nethttp.MethodPost, "/api/v1/companies", "upgrad-admin", "retailer",
		`{"companyCRN":"CRN003","companyName":"upgrad","location":"Mumbai","organisationRole":"retailer"}`)
	require.Equal(t, nethttp.StatusCreated, rec.Code)

	// Retailer buying straight from the manufacturer skips the distributor tier.
	rec = doJSON(e, nethttp.MethodPost, "/api/v1/purchase-orders", "upgrad-admin", "retailer",
		`{"buyerCRN":"CRN003","sellerCRN":"CRN001","drugName":"Paracetamol","quantity":2}`)
	assert.Equal(t, nethttp.StatusUnprocessableEntity, rec.Code)
}
