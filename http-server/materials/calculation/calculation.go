package calculation

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"

	"paint-quote/internal/service/quote"
)

type MaterialEstimator interface {
	MaterialEstimate(ctx context.Context, productName string, area float64, coats int) (*quote.MaterialLine, error)
}

type Request struct {
	ProductName string  `json:"product_name"`
	Area        float64 `json:"area"`
	Coats       int     `json:"coats"`
}

// CalculateMaterial prices one product for an area.
func CalculateMaterial(log *slog.Logger, estimator MaterialEstimator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.materials.CalculateMaterial"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		req.ProductName = strings.TrimSpace(req.ProductName)
		if req.ProductName == "" {
			http.Error(w, "product_name is required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		line, err := estimator.MaterialEstimate(ctx, req.ProductName, req.Area, req.Coats)
		if err != nil {
			log.Error("Failed to calculate material", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, line)
	}
}
