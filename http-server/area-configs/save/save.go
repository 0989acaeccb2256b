package save

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"paint-quote/internal/storage"
)

type ConfigsSaver interface {
	SaveAreaConfigs(ctx context.Context, projectID int64, configs []storage.AreaConfig) ([]storage.AreaConfig, error)
}

type Request struct {
	Configs []storage.AreaConfig `json:"configs"`
}

type Response struct {
	Configs []storage.AreaConfig `json:"configs"`
}

func SaveAreaConfigs(log *slog.Logger, saver ConfigsSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.area_configs.SaveAreaConfigs"

		projectID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Invalid project id", http.StatusBadRequest)
			return
		}

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		saved, err := saver.SaveAreaConfigs(ctx, projectID, req.Configs)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Project not found", http.StatusNotFound)
				return
			}
			log.With(
				slog.String("op", op),
				slog.Int64("project_id", projectID),
				slog.String("error", err.Error()),
			).Error("Failed to save area configs")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{Configs: saved})
	}
}
