package constants

const (
	DefaultCoverageRate = 100.0
	StandardHoursPerDay = 8.0
	DefaultMargin       = 10.0
	MaxDealerMargin     = 10.0
)

const (
	LabourInterior      = "Interior"
	LabourExterior      = "Exterior"
	LabourWaterproofing = "Waterproofing"
	LabourEnamel        = "Enamel"
)

// LabourCoverage is the sq.ft one worker completes per standard day, per coat.
var LabourCoverage = map[string]map[string]float64{
	LabourInterior: {
		"putty":    400,
		"primer":   800,
		"emulsion": 700,
	},
	LabourExterior: {
		"putty":    300,
		"primer":   700,
		"emulsion": 600,
	},
	LabourWaterproofing: {
		"putty":    300,
		"primer":   600,
		"emulsion": 500,
	},
	// oil-based system for doors, windows and grills
	LabourEnamel: {
		"putty":    250,
		"primer":   350,
		"emulsion": 300,
	},
}

var (
	// ordering keywords, matched against lowercased labels
	WallKeywords    = []string{"wall"}
	CeilingKeywords = []string{"ceiling"}
	FloorKeywords   = []string{"floor"}
	CustomKeywords  = []string{"separate"}
	EnamelKeywords  = []string{"enamel", "door & window", "door and window", "door&window"}
)
