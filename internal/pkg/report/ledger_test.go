package report_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"gotienda/internal/domain"
	"gotienda/internal/pkg/report"
)

func TestWriteSales(t *testing.T) {
	soldAt := time.Date(2026, time.March, 18, 10, 30, 0, 0, time.UTC)
	sales := []domain.Sale{
		{Product: domain.ProductSummary{Code: "P00001", Name: "Remera"}, Quantity: 2, UnitPrice: 100, PaymentMethod: domain.PaymentCash, Total: 200, NetProfit: 80, SoldAt: soldAt},
		{Product: domain.ProductSummary{Code: "P00002", Name: "Jean"}, Quantity: 1, UnitPrice: 300, PaymentMethod: domain.PaymentCreditCard, CommissionPercent: 10, Total: 300, NetProfit: 120, SoldAt: soldAt},
	}

	var buf bytes.Buffer
	require.NoError(t, report.WriteSales(&buf, sales))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Ventas")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Fecha", rows[0][0])
	assert.Equal(t, "2026-03-18 10:30", rows[1][0])
	assert.Equal(t, "P00002", rows[2][1])
	assert.Equal(t, "TOTAL", rows[3][0])
	assert.Equal(t, "3", rows[3][5])
	assert.Equal(t, "500", rows[3][9])
	assert.Equal(t, "200", rows[3][10])
}

func TestWritePurchases_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WritePurchases(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Compras")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Proveedor", rows[0][7])
	assert.Equal(t, "TOTAL", rows[1][0])
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "ventas-20260318.xlsx", report.FileName("ventas", time.Date(2026, time.March, 18, 0, 0, 0, 0, time.UTC)))
}
