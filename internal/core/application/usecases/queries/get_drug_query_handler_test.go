package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmaledger/internal/adapters/out/ledgerrepo/drugrepo"
	"pharmaledger/internal/adapters/out/memledger"
	"pharmaledger/internal/core/application/usecases/queries"
	"pharmaledger/internal/core/domain/model/company"
	"pharmaledger/internal/core/domain/model/drug"
	"pharmaledger/internal/core/domain/model/identity"
	"pharmaledger/internal/pkg/errs"
)

var fixedTime = time.Date(2021, 6, 15, 10, 30, 0, 0, time.UTC)

func mustActor(t *testing.T, id string, role company.Role) identity.Actor {
	t.Helper()
	actor, err := identity.NewActor(id, role)
	require.NoError(t, err)
	return actor
}

func storeWithUnit(t *testing.T) *memledger.Store {
	t.Helper()
	store := memledger.NewStore()
	repo := drugrepo.NewLedgerDrugRepository(store)

	unit, err := drug.NewDrug("Paracetamol", "001", "2021-01-01", "2023-01-01",
		"company:CRN001", "manufacturer-admin", "tx-1", fixedTime)
	require.NoError(t, err)
	require.NoError(t, repo.Add(context.Background(), unit))
	return store
}

func Test_GetDrugQueryHandler_Handle_ReturnsStoredRecord(t *testing.T) {
	ctx := context.Background()
	store := storeWithUnit(t)
	actor := mustActor(t, "retailer-admin", company.Retailer)

	query, err := queries.NewGetDrugQuery(actor, "Paracetamol", "001")
	require.NoError(t, err)

	h := queries.NewGetDrugQueryHandler(store)
	state, err := h.Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, "drug:Paracetamol-001", state.ProductID)
	assert.Equal(t, "company:CRN001", state.Owner)
	assert.Equal(t, "tx-1", state.TransactionID)
	assert.Empty(t, state.Shipment)
}

func Test_GetDrugQueryHandler_Handle_UnknownUnit(t *testing.T) {
	store := memledger.NewStore()
	actor := mustActor(t, "retailer-admin", company.Retailer)

	query, err := queries.NewGetDrugQuery(actor, "Paracetamol", "404")
	require.NoError(t, err)

	h := queries.NewGetDrugQueryHandler(store)
	_, err = h.Handle(context.Background(), query)

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func Test_GetDrugQueryHandler_Handle_UnconstructedQuery(t *testing.T) {
	h := queries.NewGetDrugQueryHandler(memledger.NewStore())

	_, err := h.Handle(context.Background(), queries.GetDrugQuery{})

	assert.ErrorIs(t, err, queries.ErrGetDrugQueryIsNotConstructed)
}

func Test_NewGetDrugQuery_Validation(t *testing.T) {
	actor := mustActor(t, "retailer-admin", company.Retailer)

	_, err := queries.NewGetDrugQuery(actor, "", "001")
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewGetDrugQuery(actor, "Paracetamol", "")
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewGetDrugQuery(identity.Actor{}, "Paracetamol", "001")
	assert.Error(t, err)
}
