package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"paint-quote/internal/storage"
)

type CategoryDeleter interface {
	DeleteCustomCategory(ctx context.Context, id int64) error
}

// DeleteCategory answers 409 while the category still has priced products.
func DeleteCategory(log *slog.Logger, deleter CategoryDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.DeleteCategory"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Invalid category id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		err = deleter.DeleteCustomCategory(ctx, id)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrNotFound):
				http.Error(w, "Category not found", http.StatusNotFound)
			case errors.Is(err, storage.ErrCategoryInUse):
				log.With(slog.String("op", op), slog.Int64("category_id", id)).Warn("Category in use")
				http.Error(w, "Category has priced products", http.StatusConflict)
			default:
				log.Error("Failed to delete category", "op", op, "error", err)
				http.Error(w, "Internal server error", http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
