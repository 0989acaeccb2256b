package calculate

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"paint-quote/internal/service/estimate"
)

// CalculateRoomArea returns the areas of the room in the body. With
// ?grill=add the door/window/grill total is added to the adjusted wall area.
func CalculateRoomArea(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.areas.CalculateRoomArea"

		var room estimate.RoomInput
		if err := json.NewDecoder(r.Body).Decode(&room); err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Warn("Invalid room JSON")
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		opts := estimate.AreaOptions{AddDoorWindowGrill: r.URL.Query().Get("grill") == "add"}

		render.JSON(w, r, estimate.RoomArea(room, opts))
	}
}
