package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"paint-quote/internal/service/estimate"
	"paint-quote/internal/service/quote"
	"paint-quote/internal/storage"
)

type MockSummaryProvider struct {
	mock.Mock
}

func (m *MockSummaryProvider) ProjectSummary(ctx context.Context, projectID int64) (*quote.Summary, error) {
	args := m.Called(ctx, projectID)
	s, _ := args.Get(0).(*quote.Summary)
	return s, args.Error(1)
}

func newRouter(p SummaryProvider) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/projects/{id}/summary", GetProjectSummary(slog.Default(), p))
	return r
}

func TestGetProjectSummary(t *testing.T) {
	p := new(MockSummaryProvider)
	p.On("ProjectSummary", mock.Anything, int64(12)).Return(&quote.Summary{
		Project:         storage.Project{ID: 12, Name: "Lake view"},
		TotalLabourDays: 4,
		MarginPercent:   8,
		Totals:          estimate.ProjectTotals{CompanyProjectCost: 1000, MarginCost: 80, ActualTotalCost: 580},
	}, nil)

	rr := httptest.NewRecorder()
	newRouter(p).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/projects/12/summary", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp quote.Summary
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))
	assert.Equal(t, "Lake view", resp.Project.Name)
	assert.Equal(t, 4, resp.TotalLabourDays)
	assert.Equal(t, 580.0, resp.Totals.ActualTotalCost)
	p.AssertExpectations(t)
}

func TestGetProjectSummary_Errors(t *testing.T) {
	p := new(MockSummaryProvider)
	p.On("ProjectSummary", mock.Anything, int64(1)).Return(nil, storage.ErrNotFound)
	p.On("ProjectSummary", mock.Anything, int64(2)).Return(nil, errors.New("timeout"))

	cases := map[string]int{
		"/api/projects/one/summary": http.StatusBadRequest,
		"/api/projects/1/summary":   http.StatusNotFound,
		"/api/projects/2/summary":   http.StatusInternalServerError,
	}

	for path, want := range cases {
		rr := httptest.NewRecorder()
		newRouter(p).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, want, rr.Code, path)
	}
}
