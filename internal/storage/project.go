package storage

type AreaType string

const (
	AreaWall    AreaType = "wall"
	AreaCeiling AreaType = "ceiling"
	AreaFloor   AreaType = "floor"
	AreaEnamel  AreaType = "enamel"
	AreaCustom  AreaType = "custom"
)

type PaintingSystem string

const (
	SystemFresh   PaintingSystem = "Fresh"
	SystemRepaint PaintingSystem = "Repaint"
)

type PaintTypeCategory string

const (
	PaintInterior      PaintTypeCategory = "Interior"
	PaintExterior      PaintTypeCategory = "Exterior"
	PaintWaterproofing PaintTypeCategory = "Waterproofing"
)

// SelectedMaterials holds the product names chosen for each layer. An empty
// name means the layer is not applied.
type SelectedMaterials struct {
	Putty    string `json:"putty"`
	Primer   string `json:"primer"`
	Emulsion string `json:"emulsion"`
}

type CoatConfiguration struct {
	Putty    int `json:"putty"`
	Primer   int `json:"primer"`
	Emulsion int `json:"emulsion"`
}

// AreaConfig is one paint-job line item of a project.
type AreaConfig struct {
	ID                string            `json:"id"`
	AreaType          AreaType          `json:"area_type"`
	PaintingSystem    PaintingSystem    `json:"painting_system"`
	Area              float64           `json:"area"`
	PerSqFtRate       float64           `json:"per_sq_ft_rate"`
	SelectedMaterials SelectedMaterials `json:"selected_materials"`
	Coats             CoatConfiguration `json:"coat_configuration"`
	PaintTypeCategory PaintTypeCategory `json:"paint_type_category"`
	SectionName       string            `json:"section_name,omitempty"`
	Label             string            `json:"label,omitempty"`
	DisplayOrder      int               `json:"display_order,omitempty"`
}

type Project struct {
	ID               int64    `json:"id"`
	QuotationNo      string   `json:"quotation_no"`
	Name             string   `json:"name"`
	Customer         string   `json:"customer"`
	DealerID         int64    `json:"dealer_id"`
	MarginPercent    *float64 `json:"margin_percent"`
	Workers          int      `json:"workers"`
	WorkingHours     float64  `json:"working_hours"`
	LabourRatePerDay float64  `json:"labour_rate_per_day"`
}
