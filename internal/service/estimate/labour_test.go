package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paint-quote/internal/storage"
)

func TestLabourDays(t *testing.T) {
	tests := []struct {
		name     string
		area     float64
		coats    int
		coverage float64
		workers  int
		expect   int
	}{
		{"exact", 1400, 1, 700, 2, 1},
		{"rounds up", 1401, 1, 700, 2, 2},
		{"coats multiply work", 700, 3, 700, 1, 3},
		{"tiny work is one day", 1, 1, 700, 4, 1},
		{"zero area", 0, 2, 700, 2, 0},
		{"zero coats", 500, 0, 700, 2, 0},
		{"zero workers", 500, 2, 700, 0, 0},
		{"zero coverage", 500, 2, 0, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, LabourDays(tt.area, tt.coats, tt.coverage, tt.workers))
		})
	}
}

func TestHourAdjustedCoverage(t *testing.T) {
	assert.Equal(t, 350.0, HourAdjustedCoverage(700, 4, 8))
	assert.Equal(t, 700.0, HourAdjustedCoverage(700, 0, 8))
	assert.Equal(t, 525.0, HourAdjustedCoverage(700, 6, 0), "standard hours default to 8")
}

func TestLabourCoverage_Tables(t *testing.T) {
	interior := storage.AreaConfig{AreaType: storage.AreaWall, PaintTypeCategory: storage.PaintInterior}
	exterior := storage.AreaConfig{AreaType: storage.AreaWall, PaintTypeCategory: storage.PaintExterior}
	enamel := storage.AreaConfig{AreaType: storage.AreaEnamel, PaintTypeCategory: storage.PaintInterior}
	byLabel := storage.AreaConfig{Label: "Door & Window", PaintTypeCategory: storage.PaintExterior}

	assert.Equal(t, 700.0, LabourCoverage(CategoryEmulsion, interior))
	assert.Equal(t, 600.0, LabourCoverage(CategoryEmulsion, exterior))
	assert.Equal(t, 300.0, LabourCoverage(CategoryEmulsion, enamel))
	assert.Equal(t, 350.0, LabourCoverage(CategoryPrimer, byLabel))
	assert.Equal(t, 400.0, LabourCoverage(CategoryPutty, storage.AreaConfig{}))
}

func TestConfigLabour_SerialTasks(t *testing.T) {
	cfg := storage.AreaConfig{
		ID:                "cfg-1",
		AreaType:          storage.AreaWall,
		Area:              1000,
		PaintTypeCategory: storage.PaintInterior,
		Coats:             storage.CoatConfiguration{Putty: 2, Primer: 1, Emulsion: 2},
	}

	res := ConfigLabour(cfg, Crew{Workers: 2, StandardHours: 8})

	require.Len(t, res.Tasks, 3)
	assert.Equal(t, "putty", res.Tasks[0].Name)
	assert.Equal(t, "primer", res.Tasks[1].Name)
	assert.Equal(t, "emulsion", res.Tasks[2].Name)

	// putty 2000/(400×2)=2.5→3, primer 1000/(800×2)→1, emulsion 2000/(700×2)→2
	assert.Equal(t, 3, res.Tasks[0].DaysRequired)
	assert.Equal(t, 1, res.Tasks[1].DaysRequired)
	assert.Equal(t, 2, res.Tasks[2].DaysRequired)
	assert.Equal(t, 6, res.TotalDays)
	assert.Equal(t, 2000.0, res.Tasks[0].TotalWork)
}

func TestConfigLabour_SkipsLayersWithoutCoats(t *testing.T) {
	cfg := storage.AreaConfig{
		AreaType:       storage.AreaCeiling,
		PaintingSystem: storage.SystemRepaint,
		Area:           300,
		Coats:          storage.CoatConfiguration{Putty: 0, Primer: -1, Emulsion: 2},
	}

	res := ConfigLabour(cfg, Crew{Workers: 1})

	require.Len(t, res.Tasks, 1)
	assert.Equal(t, "emulsion", res.Tasks[0].Name)
	assert.Equal(t, 1, res.TotalDays)
}

func TestConfigLabour_HourAdjusted(t *testing.T) {
	cfg := storage.AreaConfig{
		Area:  1400,
		Coats: storage.CoatConfiguration{Emulsion: 1},
	}

	full := ConfigLabour(cfg, Crew{Workers: 1, WorkingHours: 8, StandardHours: 8})
	half := ConfigLabour(cfg, Crew{Workers: 1, WorkingHours: 4, StandardHours: 8})

	assert.Equal(t, 2, full.TotalDays)
	assert.Equal(t, 4, half.TotalDays)
	assert.Equal(t, 350.0, half.Tasks[0].Coverage)
}

func TestQuickLabour(t *testing.T) {
	res := QuickLabour([]LabourInput{
		{Name: "putty", Area: 500, Coats: 2, Coverage: 400},
		{Name: "primer", Area: 500, Coats: 0, Coverage: 800},
		{Name: "emulsion", Area: 500, Coats: 2, Coverage: 700},
	}, 1)

	require.Len(t, res.Tasks, 2)
	assert.Equal(t, 3, res.Tasks[0].DaysRequired)
	assert.Equal(t, 2, res.Tasks[1].DaysRequired)
	assert.Equal(t, 5, res.TotalDays)
}
