package estimate

import (
	"sort"
	"strings"

	"paint-quote/internal/constants"
	"paint-quote/internal/storage"
)

const (
	OrderWall = iota + 1
	OrderCeiling
	OrderFloor
	OrderCustomSection
	OrderEnamel
	OrderCustomEnamel
	OrderUnknown
)

// DisplayClass returns the display priority of a config. It looks at the area
// type first and falls back to keywords in the label and section name.
func DisplayClass(cfg storage.AreaConfig) int {
	areaType := storage.AreaType(strings.ToLower(strings.TrimSpace(string(cfg.AreaType))))
	text := strings.ToLower(cfg.Label + " " + cfg.SectionName)
	enamel := areaType == storage.AreaEnamel || containsAny(text, constants.EnamelKeywords)

	if areaType == storage.AreaCustom || strings.TrimSpace(cfg.SectionName) != "" {
		if enamel {
			return OrderCustomEnamel
		}
		return OrderCustomSection
	}

	switch areaType {
	case storage.AreaWall:
		return OrderWall
	case storage.AreaCeiling:
		return OrderCeiling
	case storage.AreaFloor:
		return OrderFloor
	case storage.AreaEnamel:
		return OrderEnamel
	}

	switch {
	case containsAny(text, constants.CustomKeywords):
		if enamel {
			return OrderCustomEnamel
		}
		return OrderCustomSection
	case enamel:
		return OrderEnamel
	case containsAny(text, constants.WallKeywords):
		return OrderWall
	case containsAny(text, constants.CeilingKeywords):
		return OrderCeiling
	case containsAny(text, constants.FloorKeywords):
		return OrderFloor
	}

	return OrderUnknown
}

// SortByGlobalDisplayOrder assigns DisplayOrder to a copy of configs and sorts
// it by (display order, original position). The input is not modified.
func SortByGlobalDisplayOrder(configs []storage.AreaConfig) []storage.AreaConfig {
	sorted := make([]storage.AreaConfig, len(configs))
	copy(sorted, configs)

	for i := range sorted {
		sorted[i].DisplayOrder = DisplayClass(sorted[i])
	}

	// stable sort keeps the creation index as tie-break
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DisplayOrder < sorted[j].DisplayOrder
	})

	return sorted
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
