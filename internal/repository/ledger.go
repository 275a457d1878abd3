// Package repository reúne o que é comum aos repositórios PostgreSQL.
package repository

import (
	"fmt"
	"strings"

	"gotienda/internal/domain"
)

// LedgerWhere monta a cláusula WHERE de período (e fornecedor, se supplierCol não for vazio)
// para as consultas do livro de vendas e compras. Os limites de data são inclusivos.
func LedgerWhere(filter domain.LedgerFilter, dateCol, supplierCol string) (string, []interface{}) {
	var (
		where []string
		args  []interface{}
	)
	if filter.From != nil {
		args = append(args, *filter.From)
		where = append(where, fmt.Sprintf("%s >= $%d", dateCol, len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		where = append(where, fmt.Sprintf("%s <= $%d", dateCol, len(args)))
	}
	if supplierCol != "" && strings.TrimSpace(filter.Supplier) != "" {
		args = append(args, "%"+strings.TrimSpace(filter.Supplier)+"%")
		where = append(where, fmt.Sprintf("%s ILIKE $%d", supplierCol, len(args)))
	}
	if len(where) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(where, " AND "), args
}
