package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	authdomain "github.com/rpsgarage/servicecenter/internal/auth/domain"
	invoicedomain "github.com/rpsgarage/servicecenter/internal/invoice/domain"
	requestdomain "github.com/rpsgarage/servicecenter/internal/servicerequest/domain"
	vehicledomain "github.com/rpsgarage/servicecenter/internal/vehicle/domain"
	"gorm.io/gorm"
)

func TestMapErrorValidation(t *testing.T) {
	status, payload := mapError(invoicedomain.ErrInvalidTaxPercent)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "validation_error", payload.Type)
	if assert.Len(t, payload.Errors, 1) {
		assert.Equal(t, "invalid_tax_percent", payload.Errors[0].Code)
		assert.Equal(t, "tax_percent", payload.Errors[0].Field)
	}
}

func TestMapErrorStatuses(t *testing.T) {
	cases := []struct {
		err    error
		status int
		typ    string
	}{
		{authdomain.ErrInvalidCredentials, http.StatusUnauthorized, "unauthorized"},
		{authdomain.ErrSessionExpired, http.StatusUnauthorized, "unauthorized"},
		{authdomain.ErrUserDisabled, http.StatusUnauthorized, "unauthorized"},
		{ErrForbidden, http.StatusForbidden, "forbidden"},
		{invoicedomain.ErrAlreadyExists, http.StatusConflict, "conflict"},
		{vehicledomain.ErrNumberTaken, http.StatusConflict, "conflict"},
		{invoicedomain.ErrNotFound, http.StatusNotFound, "not_found"},
		{requestdomain.ErrNotFound, http.StatusNotFound, "not_found"},
		{gorm.ErrRecordNotFound, http.StatusNotFound, "not_found"},
		{requestdomain.ErrInvalidStatus, http.StatusBadRequest, "validation_error"},
		{gorm.ErrInvalidTransaction, http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		status, payload := mapError(tc.err)
		assert.Equal(t, tc.status, status, "%v", tc.err)
		assert.Equal(t, tc.typ, payload.Type, "%v", tc.err)
	}
}

func TestMapErrorConflictMessage(t *testing.T) {
	_, payload := mapError(invoicedomain.ErrAlreadyExists)
	assert.Equal(t, "invoice already exists for this service request", payload.Message)

	_, payload = mapError(vehicledomain.ErrNumberTaken)
	assert.Equal(t, "conflict", payload.Message)
}
