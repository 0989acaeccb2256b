// Package quote assembles project quotations from stored projects, area
// configs and the product catalog using the estimation engine.
package quote

import (
	"context"

	"paint-quote/internal/config"
	"paint-quote/internal/constants"
	"paint-quote/internal/service/estimate"
	"paint-quote/internal/storage"
)

type QuoteStorage interface {
	GetProject(ctx context.Context, id int64) (*storage.Project, error)
	GetProjectRooms(ctx context.Context, projectID int64) ([]storage.Room, error)
	GetAreaConfigs(ctx context.Context, projectID int64) ([]storage.AreaConfig, error)
	SaveAreaConfigs(ctx context.Context, projectID int64, configs []storage.AreaConfig) error
	GetCoverageSpecs(ctx context.Context, names []string) ([]storage.CoverageSpec, error)
	GetPackPrices(ctx context.Context, names []string) ([]storage.PackPrice, error)
}

// Defaults fill in what a project leaves unset.
type Defaults struct {
	Margin           float64
	Workers          int
	WorkingHours     float64
	StandardHours    float64
	LabourRatePerDay float64
}

func DefaultsFromConfig(cfg config.Estimate) Defaults {
	d := Defaults{
		Margin:           cfg.DefaultMargin,
		Workers:          cfg.DefaultWorkers,
		WorkingHours:     cfg.DefaultWorkingHours,
		StandardHours:    cfg.StandardHours,
		LabourRatePerDay: cfg.LabourRatePerDay,
	}
	if d.StandardHours <= 0 {
		d.StandardHours = constants.StandardHoursPerDay
	}
	if d.Workers <= 0 {
		d.Workers = 1
	}
	return d
}

type QuoteService struct {
	storage  QuoteStorage
	engine   *estimate.Engine
	defaults Defaults
}

func NewQuoteService(storage QuoteStorage, engine *estimate.Engine, defaults Defaults) *QuoteService {
	if engine == nil {
		engine = estimate.New(nil)
	}
	return &QuoteService{storage: storage, engine: engine, defaults: defaults}
}

// crew resolves the project's crew against the defaults.
func (s *QuoteService) crew(p *storage.Project) (estimate.Crew, float64) {
	crew := estimate.Crew{
		Workers:       s.defaults.Workers,
		WorkingHours:  s.defaults.WorkingHours,
		StandardHours: s.defaults.StandardHours,
	}
	rate := s.defaults.LabourRatePerDay

	if p.Workers > 0 {
		crew.Workers = p.Workers
	}
	if p.WorkingHours > 0 {
		crew.WorkingHours = p.WorkingHours
	}
	if p.LabourRatePerDay > 0 {
		rate = p.LabourRatePerDay
	}

	return crew, rate
}

// margin is the dealer margin of a project, limited to 0..10 %.
func (s *QuoteService) margin(p *storage.Project) float64 {
	v := s.defaults.Margin
	if p.MarginPercent != nil {
		v = *p.MarginPercent
	}
	return estimate.MarginPercent(v, constants.MaxDealerMargin)
}
