package storage

// RoomDimensions are measured in feet.
type RoomDimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// AreaAdjustment is a single opening, extra surface or door/window/grill, in sq.ft.
type AreaAdjustment struct {
	Name string  `json:"name,omitempty"`
	Area float64 `json:"area"`
}

type Room struct {
	ID               int64            `json:"id"`
	ProjectID        int64            `json:"project_id"`
	Name             string           `json:"name"`
	Dimensions       RoomDimensions   `json:"dimensions"`
	Openings         []AreaAdjustment `json:"openings"`
	ExtraSurfaces    []AreaAdjustment `json:"extra_surfaces"`
	DoorWindowGrills []AreaAdjustment `json:"door_window_grills"`
}
