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

	"paint-quote/internal/service/quote"
	"paint-quote/internal/storage"
)

type SummaryProvider interface {
	ProjectSummary(ctx context.Context, projectID int64) (*quote.Summary, error)
}

func GetProjectSummary(log *slog.Logger, provider SummaryProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.summary.GetProjectSummary"

		projectID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Invalid project id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		summary, err := provider.ProjectSummary(ctx, projectID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				log.With(slog.String("op", op), slog.Int64("project_id", projectID)).Warn("Project not found")
				http.Error(w, "Project not found", http.StatusNotFound)
				return
			}
			log.With(
				slog.String("op", op),
				slog.Int64("project_id", projectID),
				slog.String("error", err.Error()),
			).Error("Failed to build project summary")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, summary)
	}
}
