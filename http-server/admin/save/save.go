package save

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"

	"paint-quote/internal/storage"
)

type CatalogCreator interface {
	CreateCustomCategory(ctx context.Context, name string) (int64, error)
	CreateCustomProduct(ctx context.Context, p storage.CustomProduct) (int64, error)
}

type CreatedResponse struct {
	ID int64 `json:"id"`
}

func SaveCategory(log *slog.Logger, creator CatalogCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.SaveCategory"

		var category storage.CustomCategory
		if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		name := strings.TrimSpace(category.Name)
		if name == "" {
			http.Error(w, "name is required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := creator.CreateCustomCategory(ctx, name)
		if err != nil {
			if errors.Is(err, storage.ErrCategoryExists) {
				http.Error(w, "Category already exists", http.StatusConflict)
				return
			}
			log.Error("Failed to create category", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, CreatedResponse{ID: id})
	}
}

func SaveProduct(log *slog.Logger, creator CatalogCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.SaveProduct"

		var product storage.CustomProduct
		if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		product.Name = strings.TrimSpace(product.Name)
		if product.Name == "" || product.CategoryID <= 0 {
			http.Error(w, "name and category_id are required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := creator.CreateCustomProduct(ctx, product)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrNotFound):
				http.Error(w, "Category not found", http.StatusNotFound)
			case errors.Is(err, storage.ErrProductExists):
				http.Error(w, "Product already exists", http.StatusConflict)
			default:
				log.Error("Failed to create product", slog.String("op", op), slog.String("error", err.Error()))
				http.Error(w, "Internal server error", http.StatusInternalServerError)
			}
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, CreatedResponse{ID: id})
	}
}
