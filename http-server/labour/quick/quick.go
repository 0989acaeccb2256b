package quick

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"paint-quote/internal/service/estimate"
)

type Request struct {
	Workers int                    `json:"workers"`
	Tasks   []estimate.LabourInput `json:"tasks"`
}

// EstimateLabour is the quick per-task breakdown with the plain productivity
// formula.
func EstimateLabour(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.labour.EstimateLabour"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Warn("Invalid labour JSON")
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		if req.Workers <= 0 {
			http.Error(w, "workers must be positive", http.StatusBadRequest)
			return
		}

		render.JSON(w, r, estimate.QuickLabour(req.Tasks, req.Workers))
	}
}
