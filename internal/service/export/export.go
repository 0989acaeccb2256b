// Package export renders project quotations as Excel workbooks and PDF
// documents.
package export

import (
	"context"
	"fmt"

	"paint-quote/internal/service/quote"
)

type SummaryProvider interface {
	ProjectSummary(ctx context.Context, projectID int64) (*quote.Summary, error)
}

type ExportService struct {
	quotes SummaryProvider
}

func NewExportService(quotes SummaryProvider) *ExportService {
	return &ExportService{quotes: quotes}
}

func (s *ExportService) GenerateExcel(ctx context.Context, projectID int64) ([]byte, error) {
	const op = "service.export.GenerateExcel"

	summary, err := s.quotes.ProjectSummary(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	b, err := Excel(summary)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return b, nil
}

func (s *ExportService) GeneratePDF(ctx context.Context, projectID int64) ([]byte, error) {
	const op = "service.export.GeneratePDF"

	summary, err := s.quotes.ProjectSummary(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	b, err := PDF(summary)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return b, nil
}

func configTitle(label, section, areaType string) string {
	switch {
	case label != "":
		return label
	case section != "":
		return section
	}
	return areaType
}

func categoryTitle(category string) string {
	switch category {
	case "putty":
		return "Putty"
	case "primer":
		return "Primer"
	case "emulsion":
		return "Emulsion"
	}
	return category
}

func packsText(line quote.MaterialLine) string {
	switch {
	case line.PricingNotConfigured:
		return "pricing not configured"
	case len(line.Packs.Packs) == 0:
		return "-"
	}

	text := ""
	for i, p := range line.Packs.Packs {
		if i > 0 {
			text += ", "
		}
		label := p.Label
		if label == "" {
			label = fmt.Sprintf("%g", p.Size)
		}
		text += fmt.Sprintf("%d x %s", p.Quantity, label)
	}
	return text
}
