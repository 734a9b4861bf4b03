package company_test

import (
	"testing"
	"time"

	"pharmaledger/internal/core/domain/model/company"
	"pharmaledger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompany(t *testing.T) {
	now := time.Now().UTC()

	t.Run("valid_manufacturer", func(t *testing.T) {
		c, err := company.NewCompany("MAN001", "Sun Pharma", "Mumbai", company.Manufacturer, "x509::user1", now)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "MAN001", c.CRN())
		assert.Equal(t, "Sun Pharma", c.Name())
		assert.Equal(t, "Mumbai", c.Location())
		assert.Equal(t, company.Manufacturer, c.Role())
		assert.Equal(t, 1, c.HierarchyRank())
		assert.Equal(t, "x509::user1", c.RegisteredBy())
		assert.Equal(t, now, c.RegisteredAt())

		key, err := c.Key()
		require.NoError(t, err)
		assert.Equal(t, "company:MAN001", key.String())
	})

	t.Run("transporter_has_no_rank", func(t *testing.T) {
		c, err := company.NewCompany("TRA001", "FedCarrier", "Delhi", company.Transporter, "x509::user2", now)

		require.NoError(t, err)
		assert.Equal(t, 0, c.HierarchyRank())
	})

	t.Run("missing_fields_rejected", func(t *testing.T) {
		_, err := company.NewCompany("", "Sun Pharma", "Mumbai", company.Manufacturer, "x509::user1", now)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = company.NewCompany("MAN001", "", "Mumbai", company.Manufacturer, "x509::user1", now)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = company.NewCompany("MAN001", "Sun Pharma", "", company.Manufacturer, "x509::user1", now)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid_role_rejected", func(t *testing.T) {
		_, err := company.NewCompany("MAN001", "Sun Pharma", "Mumbai", company.UnknownRole, "x509::user1", now)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreCompany(t *testing.T) {
	now := time.Now().UTC()

	c, err := company.RestoreCompany("DIS001", "MedLife", "Pune", company.Distributor, 2, "x509::user3", now)

	require.NoError(t, err)
	require.NoError(t, c.Validate())
	assert.Equal(t, 2, c.HierarchyRank())
}

func TestCompany_Validate_ZeroValue(t *testing.T) {
	var c company.Company
	require.ErrorIs(t, c.Validate(), company.ErrCompanyIsNotConstructed)

	var nilCompany *company.Company
	require.ErrorIs(t, nilCompany.Validate(), company.ErrCompanyIsNotConstructed)
}
