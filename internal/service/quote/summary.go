package quote

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"paint-quote/internal/service/estimate"
	"paint-quote/internal/storage"
)

// MaterialLine is the quantity and purchase plan of one product on one config.
type MaterialLine struct {
	ConfigID              string                    `json:"config_id,omitempty"`
	Category              estimate.MaterialCategory `json:"category,omitempty"`
	ProductName           string                    `json:"product_name"`
	Area                  float64                   `json:"area"`
	Coats                 int                       `json:"coats"`
	CoverageRate          float64                   `json:"coverage_rate"`
	Quantity              float64                   `json:"quantity"`
	Packs                 estimate.PackCombination  `json:"packs"`
	Cost                  float64                   `json:"cost"`
	CoverageNotConfigured bool                      `json:"coverage_not_configured"`
	PricingNotConfigured  bool                      `json:"pricing_not_configured"`
	PackWarning           string                    `json:"pack_warning,omitempty"`
}

type Summary struct {
	Project          storage.Project               `json:"project"`
	Configs          []storage.AreaConfig          `json:"configs"`
	Materials        []MaterialLine                `json:"materials"`
	Labour           []estimate.ConfigLabourResult `json:"labour"`
	Crew             estimate.Crew                 `json:"crew"`
	LabourRatePerDay float64                       `json:"labour_rate_per_day"`
	TotalLabourDays  int                           `json:"total_labour_days"`
	MarginPercent    float64                       `json:"margin_percent"`
	Totals           estimate.ProjectTotals        `json:"totals"`
}

// catalog is the coverage and pricing of the products a quotation uses.
type catalog struct {
	coverage map[string]string
	packs    map[string][]estimate.PackOption
}

func (s *QuoteService) ProjectSummary(ctx context.Context, projectID int64) (*Summary, error) {
	const op = "service.quote.ProjectSummary"

	var (
		project *storage.Project
		configs []storage.AreaConfig
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		project, err = s.storage.GetProject(gCtx, projectID)
		if err != nil {
			return fmt.Errorf("project: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		configs, err = s.storage.GetAreaConfigs(gCtx, projectID)
		if err != nil {
			return fmt.Errorf("area configs: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sorted := estimate.SortByGlobalDisplayOrder(configs)

	cat, err := s.loadCatalog(ctx, productNames(sorted))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	crew, rate := s.crew(project)

	summary := &Summary{
		Project:          *project,
		Configs:          sorted,
		Materials:        []MaterialLine{},
		Labour:           make([]estimate.ConfigLabourResult, 0, len(sorted)),
		Crew:             crew,
		LabourRatePerDay: rate,
		MarginPercent:    s.margin(project),
	}

	var materialCost float64
	for _, cfg := range sorted {
		for _, category := range estimate.Categories {
			name := productFor(category, cfg.SelectedMaterials)
			coats := estimate.CoatsFor(category, cfg.Coats)
			if name == "" || coats <= 0 {
				continue
			}
			line := s.materialLine(name, cfg.Area, coats, cat)
			line.ConfigID = cfg.ID
			line.Category = category
			materialCost += line.Cost
			summary.Materials = append(summary.Materials, line)
		}

		labour := estimate.ConfigLabour(cfg, crew)
		summary.TotalLabourDays += labour.TotalDays
		summary.Labour = append(summary.Labour, labour)
	}

	labourCost := float64(summary.TotalLabourDays) * float64(crew.Workers) * rate
	summary.Totals = estimate.Totals(sorted, materialCost, labourCost, summary.MarginPercent)

	return summary, nil
}

// MaterialEstimate prices a single product for an area outside any project.
func (s *QuoteService) MaterialEstimate(ctx context.Context, productName string, area float64, coats int) (*MaterialLine, error) {
	const op = "service.quote.MaterialEstimate"

	cat, err := s.loadCatalog(ctx, []string{productName})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	line := s.materialLine(productName, area, coats, cat)
	return &line, nil
}

func (s *QuoteService) loadCatalog(ctx context.Context, names []string) (catalog, error) {
	cat := catalog{
		coverage: map[string]string{},
		packs:    map[string][]estimate.PackOption{},
	}
	if len(names) == 0 {
		return cat, nil
	}

	var (
		specs  []storage.CoverageSpec
		prices []storage.PackPrice
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		specs, err = s.storage.GetCoverageSpecs(gCtx, names)
		if err != nil {
			return fmt.Errorf("coverage specs: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		prices, err = s.storage.GetPackPrices(gCtx, names)
		if err != nil {
			return fmt.Errorf("pack prices: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return cat, err
	}

	for _, spec := range specs {
		cat.coverage[spec.ProductName] = spec.CoverageRangeText
	}
	for _, p := range prices {
		size := estimate.ParsePackSize(p.SizeLabel)
		if size <= 0 {
			continue
		}
		cat.packs[p.ProductName] = append(cat.packs[p.ProductName], estimate.PackOption{
			Label: p.SizeLabel,
			Size:  size,
			Price: p.Price,
		})
	}

	return cat, nil
}

// materialLine never fails: missing coverage falls back to the default rate
// and missing prices leave the line uncosted.
func (s *QuoteService) materialLine(name string, area float64, coats int, cat catalog) MaterialLine {
	text, ok := cat.coverage[name]
	line := MaterialLine{
		ProductName:           name,
		Area:                  area,
		Coats:                 coats,
		CoverageRate:          s.engine.CoverageRate(text),
		CoverageNotConfigured: !ok || text == "",
		Packs:                 estimate.PackCombination{Packs: []estimate.PackLine{}},
	}
	line.Quantity = estimate.MaterialQuantity(area, line.CoverageRate, coats)

	options := cat.packs[name]
	if len(options) == 0 {
		line.PricingNotConfigured = true
		return line
	}

	combo, err := s.engine.PackCombination(line.Quantity, options)
	if errors.Is(err, estimate.ErrPackCombinationNotFound) {
		line.PackWarning = err.Error()
	}
	line.Packs = combo
	line.Cost = combo.TotalCost

	return line
}

func productFor(category estimate.MaterialCategory, m storage.SelectedMaterials) string {
	switch category {
	case estimate.CategoryPutty:
		return m.Putty
	case estimate.CategoryPrimer:
		return m.Primer
	case estimate.CategoryEmulsion:
		return m.Emulsion
	}
	return ""
}

func productNames(configs []storage.AreaConfig) []string {
	seen := map[string]struct{}{}
	for _, cfg := range configs {
		for _, category := range estimate.Categories {
			if estimate.CoatsFor(category, cfg.Coats) <= 0 {
				continue
			}
			if name := productFor(category, cfg.SelectedMaterials); name != "" {
				seen[name] = struct{}{}
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
