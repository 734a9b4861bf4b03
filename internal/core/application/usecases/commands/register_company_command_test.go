package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmaledger/internal/core/application/usecases/commands"
	"pharmaledger/internal/core/domain/model/company"
	"pharmaledger/internal/pkg/errs"
)

func Test_NewRegisterCompanyCommand_Success(t *testing.T) {
	actor := mustActor("manufacturer-admin", company.Manufacturer)

	cmd, err := commands.NewRegisterCompanyCommand(actor, "CRN001", "Sun Pharma", "Mumbai", company.Manufacturer)

	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.Equal(t, "CRN001", cmd.CRN())
	assert.Equal(t, "Sun Pharma", cmd.Name())
	assert.Equal(t, "Mumbai", cmd.Location())
	assert.Equal(t, company.Manufacturer, cmd.Role())
}

func Test_NewRegisterCompanyCommand_Validation(t *testing.T) {
	actor := mustActor("manufacturer-admin", company.Manufacturer)

	tests := map[string]struct {
		crn      string
		name     string
		location string
		role     company.Role
	}{
		"empty crn":      {"", "Sun Pharma", "Mumbai", company.Manufacturer},
		"empty name":     {"CRN001", "", "Mumbai", company.Manufacturer},
		"empty location": {"CRN001", "Sun Pharma", "", company.Manufacturer},
		"unknown role":   {"CRN001", "Sun Pharma", "Mumbai", company.UnknownRole},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := commands.NewRegisterCompanyCommand(actor, tc.crn, tc.name, tc.location, tc.role)
			assert.Error(t, err)
		})
	}
}

func Test_RegisterCompanyCommand_ValidateRejectsZeroValue(t *testing.T) {
	var cmd commands.RegisterCompanyCommand

	assert.ErrorIs(t, cmd.Validate(), commands.ErrRegisterCompanyCommandIsNotConstructed)
}

func Test_NewRegisterCompanyCommand_RejectsUnconstructedActor(t *testing.T) {
	_, err := commands.NewRegisterCompanyCommand(
		zeroActor(), "CRN001", "Sun Pharma", "Mumbai", company.Manufacturer,
	)

	assert.Error(t, err)
}

func Test_NewRegisterCompanyCommand_EmptyCRNReportsParam(t *testing.T) {
	actor := mustActor("manufacturer-admin", company.Manufacturer)

	_, err := commands.NewRegisterCompanyCommand(actor, "", "Sun Pharma", "Mumbai", company.Manufacturer)

	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
