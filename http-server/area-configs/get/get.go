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

	"paint-quote/internal/storage"
)

type ConfigsProvider interface {
	SortedConfigs(ctx context.Context, projectID int64) ([]storage.AreaConfig, error)
}

type Response struct {
	Configs []storage.AreaConfig `json:"configs"`
}

// GetAreaConfigs lists a project's configs in display order.
func GetAreaConfigs(log *slog.Logger, provider ConfigsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.area_configs.GetAreaConfigs"

		projectID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Invalid project id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		configs, err := provider.SortedConfigs(ctx, projectID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Project not found", http.StatusNotFound)
				return
			}
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to fetch area configs")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{Configs: configs})
	}
}
