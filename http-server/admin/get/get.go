package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"paint-quote/internal/storage"
)

type CategoriesProvider interface {
	GetCustomCategories(ctx context.Context) ([]storage.CustomCategory, error)
}

type Response struct {
	Categories []storage.CustomCategory `json:"categories"`
}

func GetCategories(log *slog.Logger, provider CategoriesProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.GetCategories"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		categories, err := provider.GetCustomCategories(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to fetch categories")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{Categories: categories})
	}
}
