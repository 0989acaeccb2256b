package main

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"paint-quote/internal/config"
	"paint-quote/internal/service/estimate"
	"paint-quote/internal/service/export"
	"paint-quote/internal/service/quote"
)

func testRouter() http.Handler {
	cfg := config.Config{
		CORSOrigins: []string{"http://localhost:5173"},
		AdminLogin:  "admin",
		AdminPass:   "pass",
	}
	quotes := quote.NewQuoteService(nil, estimate.New(nil), quote.Defaults{})
	return routes(cfg, slog.Default(), nil, quotes, export.NewExportService(quotes))
}

func TestRoutes_PublicCalculator(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/areas/calculate",
		strings.NewReader(`{"dimensions": {"length": 10, "width": 10, "height": 10}}`))

	testRouter().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"wall_area":400`)
}

func TestRoutes_AdminRequiresAuth(t *testing.T) {
	rr := httptest.NewRecorder()

	testRouter().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/admin/categories", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRoutes_CORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/projects/1/summary", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rr := httptest.NewRecorder()

	testRouter().ServeHTTP(rr, req)

	assert.Equal(t, "http://localhost:5173", rr.Header().Get("Access-Control-Allow-Origin"))
}
