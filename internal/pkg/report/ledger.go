// Package report gera as planilhas de exportação do livro de vendas e compras.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"gotienda/internal/domain"
)

const (
	salesSheet     = "Ventas"
	purchasesSheet = "Compras"
	dateLayout     = "2006-01-02 15:04"
)

var (
	salesHeader = []interface{}{
		"Fecha", "Código", "Producto", "Talle", "Color", "Cantidad",
		"Precio unitario", "Medio de pago", "Comisión %", "Total", "Ganancia neta", "Notas",
	}
	purchasesHeader = []interface{}{
		"Fecha", "Código", "Producto", "Talle", "Color", "Cantidad",
		"Precio unitario", "Proveedor", "Total", "Notas",
	}
)

// WriteSales escreve as vendas em uma planilha XLSX, com uma linha de totais no fim.
func WriteSales(w io.Writer, sales []domain.Sale) error {
	rows := make([][]interface{}, 0, len(sales)+1)
	var units int
	var total, profit float64
	for _, s := range sales {
		rows = append(rows, []interface{}{
			s.SoldAt.Format(dateLayout), s.Product.Code, s.Product.Name, s.Product.Size, s.Product.Color,
			s.Quantity, s.UnitPrice, string(s.PaymentMethod), s.CommissionPercent, s.Total, s.NetProfit, s.Notes,
		})
		units += s.Quantity
		total += s.Total
		profit += s.NetProfit
	}
	rows = append(rows, []interface{}{"TOTAL", nil, nil, nil, nil, units, nil, nil, nil, total, profit, nil})

	return write(w, salesSheet, salesHeader, rows)
}

// WritePurchases escreve as compras em uma planilha XLSX, com uma linha de totais no fim.
func WritePurchases(w io.Writer, purchases []domain.Purchase) error {
	rows := make([][]interface{}, 0, len(purchases)+1)
	var units int
	var total float64
	for _, p := range purchases {
		rows = append(rows, []interface{}{
			p.PurchasedAt.Format(dateLayout), p.Product.Code, p.Product.Name, p.Product.Size, p.Product.Color,
			p.Quantity, p.UnitPrice, p.Supplier, p.Total, p.Notes,
		})
		units += p.Quantity
		total += p.Total
	}
	rows = append(rows, []interface{}{"TOTAL", nil, nil, nil, nil, units, nil, nil, total, nil})

	return write(w, purchasesSheet, purchasesHeader, rows)
}

// FileName monta o nome do anexo, e.g. "ventas-20260318.xlsx".
func FileName(kind string, now time.Time) string {
	return fmt.Sprintf("%s-%s.xlsx", kind, now.Format("20060102"))
}

func write(w io.Writer, sheet string, header []interface{}, rows [][]interface{}) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("falha ao nomear a planilha: %w", err)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("falha ao escrever o cabeçalho: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("falha ao criar estilo: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(header))
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", bold); err != nil {
		return fmt.Errorf("falha ao aplicar estilo: %w", err)
	}

	for i := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("falha ao escrever a linha %d: %w", i+2, err)
		}
	}
	totalRow := len(rows) + 1
	if err := f.SetCellStyle(sheet, fmt.Sprintf("A%d", totalRow), fmt.Sprintf("%s%d", lastCol, totalRow), bold); err != nil {
		return fmt.Errorf("falha ao aplicar estilo: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("falha ao gerar o XLSX: %w", err)
	}
	return nil
}
