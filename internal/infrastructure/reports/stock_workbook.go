// Package reports renders inventory snapshots as spreadsheets.
package reports

import (
	"fmt"
	"time"

	"rental_backend/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

const stockSheet = "Stock"

var stockHeaders = []string{
	"Item Code", "Description", "Category", "Unit", "Daily Rate",
	"Total", "Available", "Rented", "Maintenance", "Damaged", "Location", "Status",
}

// StockWorkbook writes one row per equipment followed by a totals row.
func StockWorkbook(items []entities.Equipment, generatedAt time.Time) (*excelize.File, string, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", stockSheet); err != nil {
		return nil, "", err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, "", err
	}

	for i, h := range stockHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(stockSheet, cell, h)
		f.SetCellStyle(stockSheet, cell, cell, headerStyle)
	}

	var total, available, rented, maintenance, damaged int
	for idx, e := range items {
		row := idx + 2
		f.SetCellValue(stockSheet, fmt.Sprintf("A%d", row), e.ItemCode)
		f.SetCellValue(stockSheet, fmt.Sprintf("B%d", row), e.Description)
		f.SetCellValue(stockSheet, fmt.Sprintf("C%d", row), string(e.Category))
		f.SetCellValue(stockSheet, fmt.Sprintf("D%d", row), string(e.Unit))
		f.SetCellValue(stockSheet, fmt.Sprintf("E%d", row), e.DailyRate.InexactFloat64())
		f.SetCellValue(stockSheet, fmt.Sprintf("F%d", row), e.QuantityTotal)
		f.SetCellValue(stockSheet, fmt.Sprintf("G%d", row), e.QuantityAvailable)
		f.SetCellValue(stockSheet, fmt.Sprintf("H%d", row), e.QuantityRented)
		f.SetCellValue(stockSheet, fmt.Sprintf("I%d", row), e.QuantityMaintenance)
		f.SetCellValue(stockSheet, fmt.Sprintf("J%d", row), e.QuantityDamaged)
		f.SetCellValue(stockSheet, fmt.Sprintf("K%d", row), e.Location)
		f.SetCellValue(stockSheet, fmt.Sprintf("L%d", row), string(e.Status))

		total += e.QuantityTotal
		available += e.QuantityAvailable
		rented += e.QuantityRented
		maintenance += e.QuantityMaintenance
		damaged += e.QuantityDamaged
	}

	summaryRow := len(items) + 2
	summaryStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellValue(stockSheet, fmt.Sprintf("A%d", summaryRow), "Total")
	f.SetCellValue(stockSheet, fmt.Sprintf("F%d", summaryRow), total)
	f.SetCellValue(stockSheet, fmt.Sprintf("G%d", summaryRow), available)
	f.SetCellValue(stockSheet, fmt.Sprintf("H%d", summaryRow), rented)
	f.SetCellValue(stockSheet, fmt.Sprintf("I%d", summaryRow), maintenance)
	f.SetCellValue(stockSheet, fmt.Sprintf("J%d", summaryRow), damaged)
	f.SetCellStyle(stockSheet, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("L%d", summaryRow), summaryStyle)

	widths := []float64{14, 30, 14, 8, 10, 8, 10, 8, 12, 10, 16, 12}
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(stockSheet, col, col, w)
	}

	filename := fmt.Sprintf("stock_%s.xlsx", generatedAt.UTC().Format("20060102_150405"))
	return f, filename, nil
}
