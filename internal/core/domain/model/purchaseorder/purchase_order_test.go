package purchaseorder_test

import (
	"testing"
	"time"

	"pharmaledger/internal/core/domain/model/company"
	"pharmaledger/internal/core/domain/model/purchaseorder"
	"pharmaledger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCompany(t *testing.T, crn string, role company.Role) *company.Company {
	t.Helper()
	c, err := company.NewCompany(crn, crn+" Ltd", "Mumbai", role, "x509::admin", time.Now().UTC())
	require.NoError(t, err)
	return c
}

func TestNewPurchaseOrder(t *testing.T) {
	now := time.Now().UTC()
	manufacturer := newCompany(t, "MAN001", company.Manufacturer)
	distributor := newCompany(t, "DIS001", company.Distributor)
	retailer := newCompany(t, "RET001", company.Retailer)
	transporter := newCompany(t, "TRA001", company.Transporter)

	t.Run("distributor_buys_from_manufacturer", func(t *testing.T) {
		po, err := purchaseorder.NewPurchaseOrder(distributor, manufacturer, "Paracetamol", 3, "x509::dist", now)

		require.NoError(t, err)
		require.NoError(t, po.Validate())
		assert.Equal(t, "DIS001", po.BuyerCRN())
		assert.Equal(t, "Paracetamol", po.DrugName())
		assert.Equal(t, 3, po.Quantity())
		assert.Equal(t, "company:DIS001", po.BuyerRef())
		assert.Equal(t, "company:MAN001", po.SellerRef())

		key, err := po.Key()
		require.NoError(t, err)
		assert.Equal(t, "purchaseOrder:DIS001-Paracetamol", key.String())
	})

	t.Run("retailer_buys_from_distributor", func(t *testing.T) {
		_, err := purchaseorder.NewPurchaseOrder(retailer, distributor, "Paracetamol", 1, "x509::ret", now)
		require.NoError(t, err)
	})

	t.Run("retailer_skipping_to_manufacturer_rejected", func(t *testing.T) {
		_, err := purchaseorder.NewPurchaseOrder(retailer, manufacturer, "Paracetamol", 1, "x509::ret", now)
		require.ErrorIs(t, err, errs.ErrHierarchyViolation)
	})

	t.Run("same_tier_rejected", func(t *testing.T) {
		otherRetailer := newCompany(t, "RET002", company.Retailer)
		_, err := purchaseorder.NewPurchaseOrder(retailer, otherRetailer, "Paracetamol", 1, "x509::ret", now)
		require.ErrorIs(t, err, errs.ErrHierarchyViolation)
	})

	t.Run("upward_purchase_rejected", func(t *testing.T) {
		_, err := purchaseorder.NewPurchaseOrder(distributor, retailer, "Paracetamol", 1, "x509::dist", now)
		require.ErrorIs(t, err, errs.ErrHierarchyViolation)
	})

	t.Run("transporter_cannot_be_party", func(t *testing.T) {
		_, err := purchaseorder.NewPurchaseOrder(transporter, manufacturer, "Paracetamol", 1, "x509::tra", now)
		require.ErrorIs(t, err, errs.ErrHierarchyViolation)

		_, err = purchaseorder.NewPurchaseOrder(distributor, transporter, "Paracetamol", 1, "x509::dist", now)
		require.ErrorIs(t, err, errs.ErrHierarchyViolation)
	})

	t.Run("non_positive_quantity_rejected", func(t *testing.T) {
		_, err := purchaseorder.NewPurchaseOrder(distributor, manufacturer, "Paracetamol", 0, "x509::dist", now)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = purchaseorder.NewPurchaseOrder(distributor, manufacturer, "Paracetamol", -2, "x509::dist", now)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unconstructed_party_rejected", func(t *testing.T) {
		var zero company.Company
		_, err := purchaseorder.NewPurchaseOrder(&zero, manufacturer, "Paracetamol", 1, "x509::dist", now)
		require.ErrorIs(t, err, company.ErrCompanyIsNotConstructed)
	})
}

func TestRestorePurchaseOrder(t *testing.T) {
	now := time.Now().UTC()

	po, err := purchaseorder.RestorePurchaseOrder(
		"DIS001", "Paracetamol", 3, "company:DIS001", "company:MAN001", "x509::dist", now)

	require.NoError(t, err)
	require.NoError(t, po.Validate())
	assert.Equal(t, "company:MAN001", po.SellerRef())
	assert.Equal(t, now, po.CreatedAt())
}

func TestPurchaseOrder_Validate_ZeroValue(t *testing.T) {
	var po purchaseorder.PurchaseOrder
	require.ErrorIs(t, po.Validate(), purchaseorder.ErrPurchaseOrderIsNotConstructed)
}
