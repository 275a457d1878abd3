package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gotienda/internal/domain"
	"gotienda/internal/repository"
)

func TestLedgerWhere(t *testing.T) {
	where, args := repository.LedgerWhere(domain.LedgerFilter{}, "s.sold_at", "")
	assert.Empty(t, where)
	assert.Empty(t, args)

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC)
	where, args = repository.LedgerWhere(domain.LedgerFilter{From: &from, To: &to, Supplier: " Mayorista "}, "pu.purchased_at", "pu.supplier")

	assert.Equal(t, " WHERE pu.purchased_at >= $1 AND pu.purchased_at <= $2 AND pu.supplier ILIKE $3", where)
	assert.Equal(t, []interface{}{from, to, "%Mayorista%"}, args)
}

func TestLedgerWhere_IgnoresSupplierForSales(t *testing.T) {
	where, args := repository.LedgerWhere(domain.LedgerFilter{Supplier: "x"}, "s.sold_at", "")
	assert.Empty(t, where)
	assert.Empty(t, args)
}
