package respond_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gotienda/internal/api/respond"
	"gotienda/internal/domain"
	apperror "gotienda/internal/errors"
	"gotienda/internal/pkg/logger"
)

func TestHandle_ValidationErrorCarriesFields(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/sellers", nil)

	err := apperror.NewFieldValidationError("Dados inválidos.", map[string]string{"links[0].url": "URL inválida"})
	respond.Handle(rec, req, logger.NewNop(), nil, err, http.StatusCreated)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body domain.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION_ERROR", body.Category)
	assert.Equal(t, "URL inválida", body.Fields["links[0].url"])
}

func TestHandle_Success(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)

	respond.Handle(rec, req, logger.NewNop(), map[string]string{"ok": "sim"}, nil, http.StatusOK)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":"sim"}`, rec.Body.String())
}

func TestLedgerFilter(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/purchases?from=2026-03-01&to=2026-03-31&supplier=Once", nil)

	filter, err := respond.LedgerFilter(req)

	require.NoError(t, err)
	assert.Equal(t, "Once", filter.Supplier)
	assert.Equal(t, 1, filter.From.Day())
	assert.Equal(t, 31, filter.To.Day())
	assert.Equal(t, 23, filter.To.Hour())

	_, err = respond.LedgerFilter(httptest.NewRequest(http.MethodGet, "/v1/sales?from=01/03/2026", nil))
	var vErr *apperror.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestPeriod(t *testing.T) {
	p, err := respond.Period(httptest.NewRequest(http.MethodGet, "/v1/sales/stats", nil))
	require.NoError(t, err)
	assert.Equal(t, domain.PeriodMonth, p)

	_, err = respond.Period(httptest.NewRequest(http.MethodGet, "/v1/sales/stats?period=year", nil))
	var vErr *apperror.ValidationError
	assert.ErrorAs(t, err, &vErr)
}
