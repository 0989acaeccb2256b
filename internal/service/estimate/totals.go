package estimate

import (
	"math"

	"paint-quote/internal/constants"
	"paint-quote/internal/storage"
)

// ConfigAmount is the company amount charged for one config.
type ConfigAmount struct {
	ConfigID string  `json:"config_id"`
	Amount   float64 `json:"amount"`
}

type ProjectTotals struct {
	ConfigAmounts      []ConfigAmount `json:"config_amounts"`
	CompanyProjectCost float64        `json:"company_project_cost"`
	MaterialCost       float64        `json:"material_cost"`
	LabourCost         float64        `json:"labour_cost"`
	MarginCost         float64        `json:"margin_cost"`
	ActualTotalCost    float64        `json:"actual_total_cost"`
}

// Totals computes the quotation figures. Bad numbers count as 0 and a NaN
// margin falls back to the default; the margin is clamped to 0..100.
func Totals(configs []storage.AreaConfig, materialCost, labourCost, marginPercent float64) ProjectTotals {
	amounts := make([]ConfigAmount, 0, len(configs))
	var company float64
	for _, c := range configs {
		amount := finite(c.Area) * finite(c.PerSqFtRate)
		amounts = append(amounts, ConfigAmount{ConfigID: c.ID, Amount: amount})
		company += amount
	}

	margin := MarginPercent(marginPercent, 100)
	materialCost = finite(materialCost)
	labourCost = finite(labourCost)
	marginCost := company * margin / 100

	return ProjectTotals{
		ConfigAmounts:      amounts,
		CompanyProjectCost: company,
		MaterialCost:       materialCost,
		LabourCost:         labourCost,
		MarginCost:         marginCost,
		ActualTotalCost:    materialCost + labourCost + marginCost,
	}
}

// Amount returns the engine amount of a config, or 0 when it is not listed.
func (t ProjectTotals) Amount(configID string) float64 {
	for _, a := range t.ConfigAmounts {
		if a.ConfigID == configID {
			return a.Amount
		}
	}
	return 0
}

// MarginPercent coerces a margin into 0..limit, using the default for NaN/Inf.
func MarginPercent(v, limit float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = constants.DefaultMargin
	}
	if v < 0 {
		return 0
	}
	if v > limit {
		return limit
	}
	return v
}
