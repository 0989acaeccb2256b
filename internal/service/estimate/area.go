package estimate

import (
	"math"

	"paint-quote/internal/storage"
)

type RoomInput struct {
	Dimensions       storage.RoomDimensions   `json:"dimensions"`
	Openings         []storage.AreaAdjustment `json:"openings"`
	ExtraSurfaces    []storage.AreaAdjustment `json:"extra_surfaces"`
	DoorWindowGrills []storage.AreaAdjustment `json:"door_window_grills"`
}

// AreaOptions selects the adjusted-wall formula. The zero value is the
// canonical one: door/window/grill area is reported but not added to walls.
type AreaOptions struct {
	AddDoorWindowGrill bool `json:"add_door_window_grill"`
}

type RoomAreaResult struct {
	FloorArea                float64 `json:"floor_area"`
	WallArea                 float64 `json:"wall_area"`
	CeilingArea              float64 `json:"ceiling_area"`
	AdjustedWallArea         float64 `json:"adjusted_wall_area"`
	TotalOpeningArea         float64 `json:"total_opening_area"`
	TotalExtraSurface        float64 `json:"total_extra_surface"`
	TotalDoorWindowGrillArea float64 `json:"total_door_window_grill_area"`
}

func RoomFromStorage(r storage.Room) RoomInput {
	return RoomInput{
		Dimensions:       r.Dimensions,
		Openings:         r.Openings,
		ExtraSurfaces:    r.ExtraSurfaces,
		DoorWindowGrills: r.DoorWindowGrills,
	}
}

// RoomArea derives all areas of a room. Dimensions are multiplied at full
// precision and the products are accumulated in ten-thousandths of a sq.ft,
// so the result is rounded exactly once.
func RoomArea(room RoomInput, opts AreaOptions) RoomAreaResult {
	l := finite(room.Dimensions.Length)
	w := finite(room.Dimensions.Width)
	h := finite(room.Dimensions.Height)

	floor := scaled(l * w)
	wall := floor
	if h > 0 {
		wall = scaled(2 * (l + w) * h)
	}

	openings := sumAdjustments(room.Openings)
	extra := sumAdjustments(room.ExtraSurfaces)
	grills := sumAdjustments(room.DoorWindowGrills)

	adjusted := wall - openings + extra
	if opts.AddDoorWindowGrill {
		adjusted += grills
	}

	return RoomAreaResult{
		FloorArea:                fromScaled(floor),
		WallArea:                 fromScaled(wall),
		CeilingArea:              fromScaled(floor),
		AdjustedWallArea:         fromScaled(adjusted),
		TotalOpeningArea:         fromScaled(openings),
		TotalExtraSurface:        fromScaled(extra),
		TotalDoorWindowGrillArea: fromScaled(grills),
	}
}

// scaled converts an area in sq.ft to ten-thousandths of a sq.ft.
func scaled(v float64) int64 {
	return int64(math.Round(finite(v) * 10000))
}

// sumAdjustments returns the total in ten-thousandths of a sq.ft.
func sumAdjustments(list []storage.AreaAdjustment) int64 {
	var total int64
	for _, a := range list {
		total += scaled(a.Area)
	}
	return total
}

func fromScaled(v int64) float64 {
	return math.Round(float64(v)/100) / 100
}
