package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"paint-quote/internal/service/estimate"
	"paint-quote/internal/service/quote"
	"paint-quote/internal/storage"
)

type RoomAreasProvider interface {
	RoomAreas(ctx context.Context, projectID int64, opts estimate.AreaOptions) ([]quote.RoomAreas, error)
}

type Response struct {
	Rooms []quote.RoomAreas `json:"rooms"`
}

func GetRoomAreas(log *slog.Logger, provider RoomAreasProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.areas.GetRoomAreas"

		projectID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Invalid project id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		opts := estimate.AreaOptions{AddDoorWindowGrill: r.URL.Query().Get("grill") == "add"}

		rooms, err := provider.RoomAreas(ctx, projectID, opts)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Project not found", http.StatusNotFound)
				return
			}
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to fetch room areas")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{Rooms: rooms})
	}
}
