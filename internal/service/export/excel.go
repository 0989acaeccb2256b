package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"paint-quote/internal/service/quote"
)

const (
	sheetQuotation = "Quotation"
	sheetMaterials = "Materials"
	sheetLabour    = "Labour"
)

// Excel writes the quotation workbook: configs with totals, materials and
// labour, each on its own sheet with a frozen header row.
func Excel(s *quote.Summary) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetQuotation)
	if _, err := f.NewSheet(sheetMaterials); err != nil {
		return nil, fmt.Errorf("materials sheet: %w", err)
	}
	if _, err := f.NewSheet(sheetLabour); err != nil {
		return nil, fmt.Errorf("labour sheet: %w", err)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	totalStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})

	writeHeader(f, sheetQuotation, headerStyle, []string{"Item", "Type", "System", "Paint type", "Area (sq.ft)", "Rate", "Amount"})
	row := 2
	for _, c := range s.Configs {
		f.SetSheetRow(sheetQuotation, cellName(1, row), &[]any{
			configTitle(c.Label, c.SectionName, string(c.AreaType)),
			string(c.AreaType),
			string(c.PaintingSystem),
			string(c.PaintTypeCategory),
			c.Area,
			c.PerSqFtRate,
			s.Totals.Amount(c.ID),
		})
		row++
	}

	row++
	totals := []struct {
		name  string
		value float64
	}{
		{"Project cost", s.Totals.CompanyProjectCost},
		{"Material cost", s.Totals.MaterialCost},
		{"Labour cost", s.Totals.LabourCost},
		{fmt.Sprintf("Margin (%g%%)", s.MarginPercent), s.Totals.MarginCost},
		{"Total", s.Totals.ActualTotalCost},
	}
	for _, t := range totals {
		f.SetCellValue(sheetQuotation, cellName(6, row), t.name)
		f.SetCellValue(sheetQuotation, cellName(7, row), t.value)
		f.SetCellStyle(sheetQuotation, cellName(6, row), cellName(7, row), totalStyle)
		row++
	}

	writeHeader(f, sheetMaterials, headerStyle, []string{"Config", "Layer", "Product", "Area", "Coats", "Coverage", "Quantity", "Packs", "Cost", "Note"})
	for i, m := range s.Materials {
		f.SetSheetRow(sheetMaterials, cellName(1, i+2), &[]any{
			m.ConfigID,
			categoryTitle(string(m.Category)),
			m.ProductName,
			m.Area,
			m.Coats,
			m.CoverageRate,
			m.Quantity,
			packsText(m),
			m.Cost,
			materialNote(m),
		})
	}

	writeHeader(f, sheetLabour, headerStyle, []string{"Config", "Task", "Area", "Coats", "Coverage/day", "Days"})
	row = 2
	for _, l := range s.Labour {
		for _, t := range l.Tasks {
			f.SetSheetRow(sheetLabour, cellName(1, row), &[]any{
				configTitle(l.Label, "", l.AreaType),
				categoryTitle(t.Name),
				t.Area,
				t.Coats,
				t.Coverage,
				t.DaysRequired,
			})
			row++
		}
	}
	row++
	f.SetCellValue(sheetLabour, cellName(5, row), "Total days")
	f.SetCellValue(sheetLabour, cellName(6, row), s.TotalLabourDays)
	f.SetCellStyle(sheetLabour, cellName(5, row), cellName(6, row), totalStyle)

	f.SetColWidth(sheetQuotation, "A", "A", 28)
	f.SetColWidth(sheetQuotation, "B", "G", 15)
	f.SetColWidth(sheetMaterials, "A", "J", 15)
	f.SetColWidth(sheetLabour, "A", "F", 15)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func writeHeader(f *excelize.File, sheet string, style int, headers []string) {
	for i, name := range headers {
		f.SetCellValue(sheet, cellName(i+1, 1), name)
	}
	f.SetCellStyle(sheet, "A1", cellName(len(headers), 1), style)
	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func materialNote(m quote.MaterialLine) string {
	switch {
	case m.PackWarning != "":
		return m.PackWarning
	case m.CoverageNotConfigured:
		return "coverage not configured, default rate used"
	}
	return ""
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
