// Package http exposes the supply-chain engine over a REST API. Handlers
// resolve the caller from identity headers, translate request bodies into
// commands and queries, and map domain failures onto HTTP statuses.
package http

import (
	"net/http"

	"pharmaledger/internal/adapters/out/ledgerrepo/companyrepo"
	"pharmaledger/internal/adapters/out/ledgerrepo/drugrepo"
	"pharmaledger/internal/adapters/out/ledgerrepo/porepo"
	"pharmaledger/internal/adapters/out/ledgerrepo/shipmentrepo"
	"pharmaledger/internal/core/application/usecases/commands"
	"pharmaledger/internal/core/application/usecases/queries"
	"pharmaledger/internal/core/domain/model/company"
	"pharmaledger/internal/core/ports"
	"pharmaledger/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	identity ports.IdentityResolver

	// Command handlers
	registerCompanyHandler commands.RegisterCompanyCommandHandler
	addDrugHandler         commands.AddDrugCommandHandler
	createPOHandler        commands.CreatePurchaseOrderCommandHandler
	createShipmentHandler  commands.CreateShipmentCommandHandler
	updateShipmentHandler  commands.UpdateShipmentCommandHandler
	retailDrugHandler      commands.RetailDrugCommandHandler

	// Query handlers
	getDrugHandler               queries.GetDrugQueryHandler
	getDrugHistoryHandler        queries.GetDrugHistoryQueryHandler
	getInTransitShipmentsHandler queries.GetInTransitShipmentsQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	identity ports.IdentityResolver,
	registerCompanyHandler commands.RegisterCompanyCommandHandler,
	addDrugHandler commands.AddDrugCommandHandler,
	createPOHandler commands.CreatePurchaseOrderCommandHandler,
	createShipmentHandler commands.CreateShipmentCommandHandler,
	updateShipmentHandler commands.UpdateShipmentCommandHandler,
	retailDrugHandler commands.RetailDrugCommandHandler,
	getDrugHandler queries.GetDrugQueryHandler,
	getDrugHistoryHandler queries.GetDrugHistoryQueryHandler,
	getInTransitShipmentsHandler queries.GetInTransitShipmentsQueryHandler,
) *Server {
	return &Server{
		identity:                     identity,
		registerCompanyHandler:       registerCompanyHandler,
		addDrugHandler:               addDrugHandler,
		createPOHandler:              createPOHandler,
		createShipmentHandler:        createShipmentHandler,
		updateShipmentHandler:        updateShipmentHandler,
		retailDrugHandler:            retailDrugHandler,
		getDrugHandler:               getDrugHandler,
		getDrugHistoryHandler:        getDrugHistoryHandler,
		getInTransitShipmentsHandler: getInTransitShipmentsHandler,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance. All routes
// run behind ActorMiddleware so handlers always see a resolved caller.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1", ActorMiddleware)

	api.POST("/companies", s.RegisterCompany)
	api.POST("/drugs", s.AddDrug)
	api.POST("/purchase-orders", s.CreatePurchaseOrder)
	api.POST("/shipments", s.CreateShipment)
	api.PUT("/shipments/:buyerCRN/:drugName/delivery", s.UpdateShipment)
	api.POST("/drugs/:drugName/:serialNo/retail", s.RetailDrug)
	api.GET("/drugs/:drugName/:serialNo", s.GetDrug)
	api.GET("/drugs/:drugName/:serialNo/history", s.GetDrugHistory)
	api.GET("/shipments/in-transit", s.GetInTransitShipments)
}

type registerCompanyRequest struct {
	CompanyCRN       string `json:"companyCRN"`
	CompanyName      string `json:"companyName"`
	Location         string `json:"location"`
	OrganisationRole string `json:"organisationRole"`
}

// RegisterCompany handles POST /api/v1/companies.
func (s *Server) RegisterCompany(ctx echo.Context) error {
	var req registerCompanyRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	actor, err := s.identity.Resolve(ctx.Request().Context())
	if err != nil {
		return respondError(ctx, err)
	}

	role, err := company.RoleFromString(req.OrganisationRole)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRegisterCompanyCommand(actor, req.CompanyCRN, req.CompanyName, req.Location, role)
	if err != nil {
		return respondError(ctx, err)
	}

	registered, err := s.registerCompanyHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	dto, err := companyrepo.FromDomain(registered)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, dto)
}

type addDrugRequest struct {
	DrugName   string `json:"drugName"`
	SerialNo   string `json:"serialNo"`
	MfgDate    string `json:"mfgDate"`
	ExpDate    string `json:"expDate"`
	CompanyCRN string `json:"companyCRN"`
}

// AddDrug handles POST /api/v1/drugs.
func (s *Server) AddDrug(ctx echo.Context) error {
	var req addDrugRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	actor, err := s.identity.Resolve(ctx.Request().Context())
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAddDrugCommand(actor, req.DrugName, req.SerialNo, req.MfgDate, req.ExpDate, req.CompanyCRN)
	if err != nil {
		return respondError(ctx, err)
	}

	added, err := s.addDrugHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	dto, err := drugrepo.FromDomain(added)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, dto)
}

type createPurchaseOrderRequest struct {
	BuyerCRN  string `json:"buyerCRN"`
	SellerCRN string `json:"sellerCRN"`
	DrugName  string `json:"drugName"`
	Quantity  int    `json:"quantity"`
}

// CreatePurchaseOrder handles POST /api/v1/purchase-orders.
func (s *Server) CreatePurchaseOrder(ctx echo.Context) error {
	var req createPurchaseOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	actor, err := s.identity.Resolve(ctx.Request().Context())
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreatePurchaseOrderCommand(actor, req.BuyerCRN, req.SellerCRN, req.DrugName, req.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createPOHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	dto, err := porepo.FromDomain(created)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, dto)
}

type createShipmentRequest struct {
	BuyerCRN       string   `json:"buyerCRN"`
	DrugName       string   `json:"drugName"`
	ListOfAssets   []string `json:"listOfAssets"`
	TransporterCRN string   `json:"transporterCRN"`
}

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var req createShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	actor, err := s.identity.Resolve(ctx.Request().Context())
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateShipmentCommand(actor, req.BuyerCRN, req.DrugName, req.ListOfAssets, req.TransporterCRN)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	dto, err := shipmentrepo.FromDomain(created)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, dto)
}

type updateShipmentRequest struct {
	TransporterCRN string `json:"transporterCRN"`
}

// UpdateShipment handles PUT /api/v1/shipments/:buyerCRN/:drugName/delivery.
func (s *Server) UpdateShipment(ctx echo.Context) error {
	var req updateShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	actor, err := s.identity.Resolve(ctx.Request().Context())
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateShipmentCommand(actor, ctx.Param("buyerCRN"), ctx.Param("drugName"), req.TransporterCRN)
	if err != nil {
		return respondError(ctx, err)
	}

	delivered, err := s.updateShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	dto, err := shipmentrepo.FromDomain(delivered)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, dto)
}

type retailDrugRequest struct {
	RetailerCRN    string `json:"retailerCRN"`
	CustomerAadhar string `json:"customerAadhar"`
}

// RetailDrug handles POST /api/v1/drugs/:drugName/:serialNo/retail.
func (s *Server) RetailDrug(ctx echo.Context) error {
	var req retailDrugRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	actor, err := s.identity.Resolve(ctx.Request().Context())
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRetailDrugCommand(actor, ctx.Param("drugName"), ctx.Param("serialNo"), req.RetailerCRN, req.CustomerAadhar)
	if err != nil {
		return respondError(ctx, err)
	}

	sold, err := s.retailDrugHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	dto, err := drugrepo.FromDomain(sold)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, dto)
}

// GetDrug handles GET /api/v1/drugs/:drugName/:serialNo.
func (s *Server) GetDrug(ctx echo.Context) error {
	actor, err := s.identity.Resolve(ctx.Request().Context())
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetDrugQuery(actor, ctx.Param("drugName"), ctx.Param("serialNo"))
	if err != nil {
		return respondError(ctx, err)
	}

	unit, err := s.getDrugHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, unit)
}

// GetDrugHistory handles GET /api/v1/drugs/:drugName/:serialNo/history.
func (s *Server) GetDrugHistory(ctx echo.Context) error {
	actor, err := s.identity.Resolve(ctx.Request().Context())
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetDrugHistoryQuery(actor, ctx.Param("drugName"), ctx.Param("serialNo"))
	if err != nil {
		return respondError(ctx, err)
	}

	history, err := s.getDrugHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, history)
}

// GetInTransitShipments handles GET /api/v1/shipments/in-transit.
func (s *Server) GetInTransitShipments(ctx echo.Context) error {
	query := queries.NewGetInTransitShipmentsQuery()

	shipments, err := s.getInTransitShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipments)
}
