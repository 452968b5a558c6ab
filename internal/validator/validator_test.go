package validator

import (
	"testing"

	"github.com/cockroachdb/errors"
	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Object   string          `json:"objeto" validate:"required"`
	Email    string          `json:"email,omitempty" validate:"omitempty,email"`
	Amount   decimal.Decimal `json:"valor" validate:"required"`
	Optional string          `json:"observacao,omitempty"`
}

func TestValidateRequest(t *testing.T) {
	err := ValidateRequest(sampleRequest{Object: "Aquisição de merenda", Amount: decimal.NewFromInt(10)})
	assert.NoError(t, err)
}

func TestValidateRequestMissingFields(t *testing.T) {
	err := ValidateRequest(sampleRequest{Email: "not-an-email"})
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))

	details := ierr.ReportableDetails(err)
	assert.ElementsMatch(t, []any{"objeto", "valor"}, details["missing_fields"])
	assert.Equal(t, "must be a valid email", details["email"])
	assert.Contains(t, errors.GetAllHints(err), "Request validation failed")
}
