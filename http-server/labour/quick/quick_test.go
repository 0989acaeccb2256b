package quick

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paint-quote/internal/service/estimate"
)

func TestEstimateLabour(t *testing.T) {
	handler := EstimateLabour(slog.Default())

	body := `{
		"workers": 2,
		"tasks": [
			{"name": "putty", "area": 1000, "coats": 2, "coverage": 400},
			{"name": "primer", "area": 1000, "coats": 0, "coverage": 800},
			{"name": "emulsion", "area": 1000, "coats": 2, "coverage": 700}
		]
	}`
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/labour/estimate", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp estimate.ConfigLabourResult
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))
	require.Len(t, resp.Tasks, 2)
	assert.Equal(t, 3, resp.Tasks[0].DaysRequired)
	assert.Equal(t, 2, resp.Tasks[1].DaysRequired)
	assert.Equal(t, 5, resp.TotalDays)
}

func TestEstimateLabour_BadRequest(t *testing.T) {
	handler := EstimateLabour(slog.Default())

	for _, body := range []string{`[`, `{"workers": 0, "tasks": []}`} {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/labour/estimate", strings.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, rr.Code, body)
	}
}
