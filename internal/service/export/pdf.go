package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"paint-quote/internal/service/quote"
)

// Page layout constants (A4 portrait in mm).
const (
	pageWidth   = 210.0
	marginLeft  = 15.0
	marginRight = 15.0
	marginTop   = 15.0
	contentW    = pageWidth - marginLeft - marginRight
	rowHeight   = 6.0
	qrSize      = 28.0
)

// qrPayload is what the quotation QR code encodes.
type qrPayload struct {
	QuotationNo string  `json:"quotation_no"`
	ProjectID   int64   `json:"project_id"`
	Total       float64 `json:"total"`
}

// PDF renders a printable quotation with a lookup QR code in the header.
func PDF(s *quote.Summary) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	if err := renderHeader(pdf, s); err != nil {
		return nil, err
	}

	renderTable(pdf, "Work items",
		[]string{"Item", "System", "Area", "Rate", "Amount"},
		[]float64{70, 30, 25, 25, 30},
		configRows(s))

	renderTable(pdf, "Materials",
		[]string{"Product", "Layer", "Qty", "Packs", "Cost"},
		[]float64{55, 25, 20, 50, 30},
		materialRows(s))

	renderTotals(pdf, s)

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func renderHeader(pdf *fpdf.Fpdf, s *quote.Summary) error {
	payload, err := json.Marshal(qrPayload{
		QuotationNo: s.Project.QuotationNo,
		ProjectID:   s.Project.ID,
		Total:       s.Totals.ActualTotalCost,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal qr payload: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(payload), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%d", s.Project.ID)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	pdf.ImageOptions(imgName, pageWidth-marginRight-qrSize, marginTop, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	pdf.SetXY(marginLeft, marginTop)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW-qrSize, 9, "Painting Quotation", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	lines := []string{
		"Quotation: " + s.Project.QuotationNo,
		"Project: " + s.Project.Name,
		"Customer: " + s.Project.Customer,
		fmt.Sprintf("Crew: %d workers, %g h/day", s.Crew.Workers, s.Crew.WorkingHours),
	}
	for _, l := range lines {
		pdf.CellFormat(contentW-qrSize, 5, l, "", 1, "L", false, 0, "")
	}

	pdf.SetY(marginTop + qrSize + 4)
	return nil
}

func renderTable(pdf *fpdf.Fpdf, title string, headers []string, widths []float64, rows [][]string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentW, 8, title, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(224, 224, 224)
	for i, h := range headers {
		pdf.CellFormat(widths[i], rowHeight, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		for i, v := range row {
			align := "L"
			if i > 1 {
				align = "R"
			}
			pdf.CellFormat(widths[i], rowHeight, v, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)
}

func renderTotals(pdf *fpdf.Fpdf, s *quote.Summary) {
	rows := [][2]string{
		{"Project cost", money(s.Totals.CompanyProjectCost)},
		{"Material cost", money(s.Totals.MaterialCost)},
		{fmt.Sprintf("Labour cost (%d days)", s.TotalLabourDays), money(s.Totals.LabourCost)},
		{fmt.Sprintf("Margin (%g%%)", s.MarginPercent), money(s.Totals.MarginCost)},
		{"Total", money(s.Totals.ActualTotalCost)},
	}

	for i, r := range rows {
		style := ""
		if i == len(rows)-1 {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 10)
		pdf.CellFormat(contentW-40, rowHeight, r[0], "", 0, "R", false, 0, "")
		pdf.CellFormat(40, rowHeight, r[1], "", 1, "R", false, 0, "")
	}
}

func configRows(s *quote.Summary) [][]string {
	rows := make([][]string, 0, len(s.Configs))
	for _, c := range s.Configs {
		rows = append(rows, []string{
			configTitle(c.Label, c.SectionName, string(c.AreaType)),
			string(c.PaintingSystem),
			fmt.Sprintf("%.2f", c.Area),
			fmt.Sprintf("%.2f", c.PerSqFtRate),
			money(s.Totals.Amount(c.ID)),
		})
	}
	return rows
}

func materialRows(s *quote.Summary) [][]string {
	rows := make([][]string, 0, len(s.Materials))
	for _, m := range s.Materials {
		rows = append(rows, []string{
			m.ProductName,
			categoryTitle(string(m.Category)),
			fmt.Sprintf("%g", m.Quantity),
			packsText(m),
			money(m.Cost),
		})
	}
	return rows
}

func money(v float64) string {
	return fmt.Sprintf("Rs. %.2f", v)
}
