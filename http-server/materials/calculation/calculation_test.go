package calculation

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"paint-quote/internal/service/estimate"
	"paint-quote/internal/service/quote"
)

type MockMaterialEstimator struct {
	mock.Mock
}

func (m *MockMaterialEstimator) MaterialEstimate(ctx context.Context, productName string, area float64, coats int) (*quote.MaterialLine, error) {
	args := m.Called(ctx, productName, area, coats)
	line, _ := args.Get(0).(*quote.MaterialLine)
	return line, args.Error(1)
}

func TestCalculateMaterial_Success(t *testing.T) {
	est := new(MockMaterialEstimator)
	est.On("MaterialEstimate", mock.Anything, "Royale", 260.0, 2).Return(&quote.MaterialLine{
		ProductName:  "Royale",
		Area:         260,
		Coats:        2,
		CoverageRate: 130,
		Quantity:     4,
		Packs: estimate.PackCombination{
			Packs:     []estimate.PackLine{{Label: "4 L", Size: 4, Quantity: 1, Price: 1800}},
			TotalCost: 1800,
		},
		Cost: 1800,
	}, nil)

	handler := CalculateMaterial(slog.Default(), est)

	req := httptest.NewRequest(http.MethodPost, "/api/materials/calculation",
		strings.NewReader(`{"product_name": " Royale ", "area": 260, "coats": 2}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp quote.MaterialLine
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))
	assert.Equal(t, 4.0, resp.Quantity)
	assert.Equal(t, 1800.0, resp.Cost)
	require.Len(t, resp.Packs.Packs, 1)
	assert.Equal(t, "4 L", resp.Packs.Packs[0].Label)

	est.AssertExpectations(t)
}

func TestCalculateMaterial_BadRequest(t *testing.T) {
	est := new(MockMaterialEstimator)
	handler := CalculateMaterial(slog.Default(), est)

	for _, body := range []string{`{`, `{"area": 100, "coats": 1}`, `{"product_name": "  "}`} {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/materials/calculation", strings.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, rr.Code, body)
	}

	est.AssertNotCalled(t, "MaterialEstimate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCalculateMaterial_ServiceError(t *testing.T) {
	est := new(MockMaterialEstimator)
	est.On("MaterialEstimate", mock.Anything, "Royale", 10.0, 1).Return(nil, errors.New("db error"))

	handler := CalculateMaterial(slog.Default(), est)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/materials/calculation",
		strings.NewReader(`{"product_name": "Royale", "area": 10, "coats": 1}`)))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
