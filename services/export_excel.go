package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

const excelSheetName = "Material Bill"

// GenerateBillExcel creates a spreadsheet rendition of the bill and returns
// the file contents as a byte slice. It mirrors the PDF document: title,
// date, one row per included line item in invoice order, and a grand-total
// band.
func GenerateBillExcel(inv Invoice, hasUnits bool, date time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Rename default sheet.
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, excelSheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	// Column references depend on whether the catalog carries units.
	headers := []string{"Product", "Qty", "Unit", "Price", "Subtotal"}
	widths := []float64{28, 10, 14, 16, 16}
	if !hasUnits {
		headers = []string{"Product", "Quantity", "Price", "Subtotal"}
		widths = []float64{28, 12, 16, 16}
	}
	columns := []string{"A", "B", "C", "D", "E"}[:len(headers)]
	lastCol := columns[len(columns)-1]

	for i, col := range columns {
		if err := f.SetColWidth(excelSheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 16,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Size: 11,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "#FFFFFF",
			Size:  11,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#667EEA"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	rowStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Size: 10,
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create row style: %w", err)
	}

	totalLabelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 12,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "right",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create total label style: %w", err)
	}

	totalValueStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 12,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create total value style: %w", err)
	}

	// ── Header Rows (1-2) ───────────────────────────────────────────────

	if err := f.MergeCell(excelSheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(excelSheetName, "A1", billTitle)
	f.SetCellStyle(excelSheetName, "A1", lastCol+"1", titleStyle)

	if err := f.MergeCell(excelSheetName, "A2", lastCol+"2"); err != nil {
		return nil, fmt.Errorf("merge date: %w", err)
	}
	f.SetCellValue(excelSheetName, "A2", "Date: "+date.Format("02/01/2006"))
	f.SetCellStyle(excelSheetName, "A2", lastCol+"2", subtitleStyle)

	// ── Row 4: Column Headers ───────────────────────────────────────────

	for i, h := range headers {
		f.SetCellValue(excelSheetName, fmt.Sprintf("%s4", columns[i]), h)
	}
	f.SetCellStyle(excelSheetName, "A4", lastCol+"4", headerStyle)

	// ── Data Rows (starting row 5) ──────────────────────────────────────

	row := 5
	for _, item := range inv.Items {
		cells := []any{
			sanitizeExcelCell(item.Product.Name),
			FormatQuantity(item.Quantity, item.Product.AllowFractional),
		}
		if hasUnits {
			cells = append(cells, sanitizeExcelCell(item.Product.Unit))
		}
		cells = append(cells,
			FormatRupees(item.UnitPrice),
			FormatRupees(item.Subtotal),
		)

		rowStr := fmt.Sprintf("%d", row)
		for i, v := range cells {
			f.SetCellValue(excelSheetName, columns[i]+rowStr, v)
		}
		f.SetCellStyle(excelSheetName, "A"+rowStr, lastCol+rowStr, rowStyle)
		row++
	}

	// ── Grand Total ─────────────────────────────────────────────────────

	// Skip a blank row.
	row++
	totalRow := fmt.Sprintf("%d", row)
	labelCol := columns[len(columns)-2]
	f.SetCellValue(excelSheetName, labelCol+totalRow, "Grand Total:")
	f.SetCellStyle(excelSheetName, labelCol+totalRow, labelCol+totalRow, totalLabelStyle)
	f.SetCellValue(excelSheetName, lastCol+totalRow, FormatRupees(inv.GrandTotal))
	f.SetCellStyle(excelSheetName, lastCol+totalRow, lastCol+totalRow, totalValueStyle)

	// ── Write to buffer ─────────────────────────────────────────────────

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
