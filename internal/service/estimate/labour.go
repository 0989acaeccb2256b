package estimate

import (
	"math"
	"strings"

	"paint-quote/internal/constants"
	"paint-quote/internal/storage"
)

type MaterialCategory string

const (
	CategoryPutty    MaterialCategory = "putty"
	CategoryPrimer   MaterialCategory = "primer"
	CategoryEmulsion MaterialCategory = "emulsion"
)

// Categories is the order in which a crew applies the layers.
var Categories = []MaterialCategory{CategoryPutty, CategoryPrimer, CategoryEmulsion}

type LabourTask struct {
	Name         string  `json:"name"`
	Area         float64 `json:"area"`
	Coats        int     `json:"coats"`
	TotalWork    float64 `json:"total_work"`
	Coverage     float64 `json:"coverage"`
	DaysRequired int     `json:"days_required"`
}

type ConfigLabourResult struct {
	ConfigID  string       `json:"config_id"`
	AreaType  string       `json:"area_type"`
	Label     string       `json:"label,omitempty"`
	Tasks     []LabourTask `json:"tasks"`
	TotalDays int          `json:"total_days"`
}

// Crew describes who does the work. WorkingHours <= 0 means a standard day.
type Crew struct {
	Workers       int     `json:"workers"`
	WorkingHours  float64 `json:"working_hours"`
	StandardHours float64 `json:"standard_hours"`
}

// LabourInput is one task for the quick productivity breakdown.
type LabourInput struct {
	Name     string  `json:"name"`
	Area     float64 `json:"area"`
	Coats    int     `json:"coats"`
	Coverage float64 `json:"coverage"`
}

// LabourDays is ceil(area × coats / (coverage × workers)), or 0 when there is
// no work or no capacity.
func LabourDays(area float64, coats int, coverage float64, workers int) int {
	work := finite(area) * float64(max(coats, 0))
	capacity := finite(coverage) * float64(max(workers, 0))
	if work <= 0 || capacity <= 0 {
		return 0
	}
	return max(int(math.Ceil(work/capacity-packEps)), 1)
}

// HourAdjustedCoverage scales a standard-day rate to a crew working fewer (or
// more) hours.
func HourAdjustedCoverage(coverage, workingHours, standardHours float64) float64 {
	coverage = finite(coverage)
	if standardHours <= 0 {
		standardHours = constants.StandardHoursPerDay
	}
	if workingHours <= 0 || math.IsNaN(workingHours) {
		return coverage
	}
	return coverage * workingHours / standardHours
}

// LabourCoverage picks the sq.ft/day/worker rate for a layer of a config.
// Enamel work uses the oil-based table regardless of paint type.
func LabourCoverage(category MaterialCategory, cfg storage.AreaConfig) float64 {
	return constants.LabourCoverage[labourSystem(cfg)][string(category)]
}

func labourSystem(cfg storage.AreaConfig) string {
	if isEnamel(cfg) {
		return constants.LabourEnamel
	}
	switch cfg.PaintTypeCategory {
	case storage.PaintExterior:
		return constants.LabourExterior
	case storage.PaintWaterproofing:
		return constants.LabourWaterproofing
	default:
		return constants.LabourInterior
	}
}

func isEnamel(cfg storage.AreaConfig) bool {
	if storage.AreaType(strings.ToLower(string(cfg.AreaType))) == storage.AreaEnamel {
		return true
	}
	return containsAny(strings.ToLower(cfg.Label+" "+cfg.SectionName), constants.EnamelKeywords)
}

// CoatsFor returns the configured coats of one layer.
func CoatsFor(category MaterialCategory, c storage.CoatConfiguration) int {
	switch category {
	case CategoryPutty:
		return c.Putty
	case CategoryPrimer:
		return c.Primer
	case CategoryEmulsion:
		return c.Emulsion
	}
	return 0
}

// ConfigLabour estimates putty, primer and emulsion days for one config with
// the hour-adjusted rates. Layers without coats are left out, and the layers
// run one after another so their days add up.
func ConfigLabour(cfg storage.AreaConfig, crew Crew) ConfigLabourResult {
	res := ConfigLabourResult{
		ConfigID: cfg.ID,
		AreaType: string(cfg.AreaType),
		Label:    cfg.Label,
		Tasks:    []LabourTask{},
	}

	area := finite(cfg.Area)
	for _, category := range Categories {
		coats := CoatsFor(category, cfg.Coats)
		if coats <= 0 {
			continue
		}

		coverage := HourAdjustedCoverage(LabourCoverage(category, cfg), crew.WorkingHours, crew.StandardHours)
		task := LabourTask{
			Name:         string(category),
			Area:         area,
			Coats:        coats,
			TotalWork:    area * float64(coats),
			Coverage:     coverage,
			DaysRequired: LabourDays(area, coats, coverage, crew.Workers),
		}
		res.Tasks = append(res.Tasks, task)
		res.TotalDays += task.DaysRequired
	}

	return res
}

// QuickLabour is the per-task breakdown with the plain productivity formula.
func QuickLabour(inputs []LabourInput, workers int) ConfigLabourResult {
	res := ConfigLabourResult{Tasks: []LabourTask{}}
	for _, in := range inputs {
		if in.Coats <= 0 {
			continue
		}
		area := finite(in.Area)
		task := LabourTask{
			Name:         in.Name,
			Area:         area,
			Coats:        in.Coats,
			TotalWork:    area * float64(in.Coats),
			Coverage:     finite(in.Coverage),
			DaysRequired: LabourDays(area, in.Coats, in.Coverage, workers),
		}
		res.Tasks = append(res.Tasks, task)
		res.TotalDays += task.DaysRequired
	}
	return res
}
