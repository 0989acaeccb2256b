package quotation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"paint-quote/internal/storage"
)

type QuotationGenerator interface {
	GenerateExcel(ctx context.Context, projectID int64) ([]byte, error)
	GeneratePDF(ctx context.Context, projectID int64) ([]byte, error)
}

const (
	contentTypeExcel = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF   = "application/pdf"
)

// DownloadQuotation sends the project quotation as xlsx (default) or pdf.
func DownloadQuotation(log *slog.Logger, gen QuotationGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.quotation.DownloadQuotation"

		projectID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Invalid project id", http.StatusBadRequest)
			return
		}

		format := r.URL.Query().Get("format")
		if format == "" {
			format = "xlsx"
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		var (
			body        []byte
			contentType string
		)
		switch format {
		case "xlsx":
			body, err = gen.GenerateExcel(ctx, projectID)
			contentType = contentTypeExcel
		case "pdf":
			body, err = gen.GeneratePDF(ctx, projectID)
			contentType = contentTypePDF
		default:
			http.Error(w, "format must be xlsx or pdf", http.StatusBadRequest)
			return
		}

		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Project not found", http.StatusNotFound)
				return
			}
			log.Error("failed to generate quotation", "op", op, "format", format, "err", err)
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		fileName := fmt.Sprintf("Quotation_%d_%s.%s", projectID, time.Now().Format("2006-01-02_150405"), format)

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", "attachment; filename="+fileName)
		w.Write(body)
	}
}
