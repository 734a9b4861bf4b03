package queries_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmaledger/internal/adapters/out/ledgerrepo/drugrepo"
	"pharmaledger/internal/adapters/out/memledger"
	"pharmaledger/internal/core/application/usecases/queries"
	"pharmaledger/internal/core/domain/model/company"
	"pharmaledger/internal/core/domain/model/drug"
	"pharmaledger/internal/pkg/errs"
)

func Test_GetDrugHistoryQueryHandler_Handle_ReturnsVersionsOldestFirst(t *testing.T) {
	ctx := context.Background()
	store := memledger.NewStore()
	repo := drugrepo.NewLedgerDrugRepository(store)

	unit, err := drug.NewDrug("Paracetamol", "001", "2021-01-01", "2023-01-01",
		"company:CRN001", "manufacturer-admin", "tx-1", fixedTime)
	require.NoError(t, err)
	require.NoError(t, repo.Add(ctx, unit))

	require.NoError(t, unit.Ship("company:CRN001", "company:CRN500", fixedTime))
	require.NoError(t, repo.Update(ctx, unit))

	actor := mustActor(t, "distributor-admin", company.Distributor)
	query, err := queries.NewGetDrugHistoryQuery(actor, "Paracetamol", "001")
	require.NoError(t, err)

	h := queries.NewGetDrugHistoryQueryHandler(store)
	versions, err := h.Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, versions, 2)

	var first, second struct {
		Owner string `json:"owner"`
	}
	require.NoError(t, json.Unmarshal(versions[0].Record, &first))
	require.NoError(t, json.Unmarshal(versions[1].Record, &second))
	assert.Equal(t, "company:CRN001", first.Owner)
	assert.Equal(t, "company:CRN500", second.Owner)
	assert.NotEmpty(t, versions[0].TransactionID)
}

func Test_GetDrugHistoryQueryHandler_Handle_UnknownUnit(t *testing.T) {
	actor := mustActor(t, "distributor-admin", company.Distributor)
	query, err := queries.NewGetDrugHistoryQuery(actor, "Paracetamol", "404")
	require.NoError(t, err)

	h := queries.NewGetDrugHistoryQueryHandler(memledger.NewStore())
	_, err = h.Handle(context.Background(), query)

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func Test_GetDrugHistoryQueryHandler_Handle_UnconstructedQuery(t *testing.T) {
	h := queries.NewGetDrugHistoryQueryHandler(memledger.NewStore())

	_, err := h.Handle(context.Background(), queries.GetDrugHistoryQuery{})

	assert.ErrorIs(t, err, queries.ErrGetDrugHistoryQueryIsNotConstructed)
}
