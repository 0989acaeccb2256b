package save

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"paint-quote/internal/storage"
)

type MockCatalogCreator struct {
	mock.Mock
}

func (m *MockCatalogCreator) CreateCustomCategory(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogCreator) CreateCustomProduct(ctx context.Context, p storage.CustomProduct) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func TestSaveCategory_Success(t *testing.T) {
	c := new(MockCatalogCreator)
	c.On("CreateCustomCategory", mock.Anything, "Texture").Return(int64(11), nil)

	rr := httptest.NewRecorder()
	SaveCategory(slog.Default(), c).ServeHTTP(rr,
		httptest.NewRequest(http.MethodPost, "/api/admin/categories", strings.NewReader(`{"name": " Texture "}`)))

	require.Equal(t, http.StatusCreated, rr.Code)

	var resp CreatedResponse
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))
	assert.Equal(t, int64(11), resp.ID)
	c.AssertExpectations(t)
}

func TestSaveCategory_Errors(t *testing.T) {
	c := new(MockCatalogCreator)
	c.On("CreateCustomCategory", mock.Anything, "Texture").Return(int64(0), storage.ErrCategoryExists)

	cases := map[string]int{
		`{`:                   http.StatusBadRequest,
		`{"name": ""}`:        http.StatusBadRequest,
		`{"name": "Texture"}`: http.StatusConflict,
	}

	for body, want := range cases {
		rr := httptest.NewRecorder()
		SaveCategory(slog.Default(), c).ServeHTTP(rr,
			httptest.NewRequest(http.MethodPost, "/api/admin/categories", strings.NewReader(body)))
		assert.Equal(t, want, rr.Code, body)
	}
}

func TestSaveProduct(t *testing.T) {
	c := new(MockCatalogCreator)
	c.On("CreateCustomProduct", mock.Anything, storage.CustomProduct{CategoryID: 2, Name: "Gold Finish"}).Return(int64(5), nil)
	c.On("CreateCustomProduct", mock.Anything, storage.CustomProduct{CategoryID: 9, Name: "Ghost"}).Return(int64(0), storage.ErrNotFound)
	c.On("CreateCustomProduct", mock.Anything, storage.CustomProduct{CategoryID: 2, Name: "Teak Polish"}).Return(int64(0), storage.ErrProductExists)

	cases := []struct {
		body    string
		want    int
		message string
	}{
		{`{"category_id": 2, "name": "Gold Finish"}`, http.StatusCreated, ""},
		{`{"category_id": 9, "name": "Ghost"}`, http.StatusNotFound, "Category not found"},
		{`{"category_id": 2, "name": "Teak Polish"}`, http.StatusConflict, "Product already exists"},
		{`{"name": "No category"}`, http.StatusBadRequest, ""},
	}

	for _, tc := range cases {
		rr := httptest.NewRecorder()
		SaveProduct(slog.Default(), c).ServeHTTP(rr,
			httptest.NewRequest(http.MethodPost, "/api/admin/products", strings.NewReader(tc.body)))
		assert.Equal(t, tc.want, rr.Code, tc.body)
		if tc.message != "" {
			assert.Contains(t, rr.Body.String(), tc.message)
		}
	}
}
