package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateExcel renders the quote as an XLSX workbook and returns its bytes.
func GenerateExcel(data QuoteExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Quote"
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	widths := map[string]float64{"A": 52, "B": 16}
	for colRef, width := range widths {
		if err := f.SetColWidth(sheetName, colRef, colRef, width); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", colRef, err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}
	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "left",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	itemStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 10},
	})
	if err != nil {
		return nil, fmt.Errorf("create item style: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create total style: %w", err)
	}

	// Title block.
	if err := f.MergeCell(sheetName, "A1", "B1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", sanitizeCell(data.Title))
	f.SetCellStyle(sheetName, "A1", "B1", titleStyle)

	f.SetCellValue(sheetName, "A2", fmt.Sprintf("%s | Ref: %s | %s", data.StudioName, data.QuoteRef, data.Date))
	f.SetCellStyle(sheetName, "A2", "A2", subtitleStyle)

	if data.Customer.Name != "" {
		f.SetCellValue(sheetName, "A3", sanitizeCell(fmt.Sprintf("Prepared for: %s (%s)", data.Customer.Name, data.Customer.Email)))
		f.SetCellStyle(sheetName, "A3", "A3", subtitleStyle)
	}
	if data.Service != "" {
		f.SetCellValue(sheetName, "A4", sanitizeCell("Service: "+data.Service))
		f.SetCellStyle(sheetName, "A4", "A4", subtitleStyle)
	}

	// Column headers on row 6.
	f.SetCellValue(sheetName, "A6", "Description")
	f.SetCellValue(sheetName, "B6", "Amount")
	f.SetCellStyle(sheetName, "A6", "B6", headerStyle)

	// Line items.
	rowNum := 7
	for _, item := range data.Items {
		cellA := fmt.Sprintf("A%d", rowNum)
		cellB := fmt.Sprintf("B%d", rowNum)
		f.SetCellValue(sheetName, cellA, sanitizeCell(item.Label))
		f.SetCellValue(sheetName, cellB, formatAED(item.Amount))
		f.SetCellStyle(sheetName, cellA, cellB, itemStyle)
		rowNum++
	}

	// Total row after a blank line.
	rowNum++
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), "Estimated Total")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowNum), formatAED(data.Total))
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("B%d", rowNum), totalStyle)
	rowNum += 2

	// Terms.
	for _, term := range data.Terms {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), sanitizeCell(term))
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("A%d", rowNum), subtitleStyle)
		rowNum++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeCell prevents formula injection by prefixing dangerous leading
// characters with a single quote.
func sanitizeCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}
