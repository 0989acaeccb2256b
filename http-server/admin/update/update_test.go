package update

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"paint-quote/internal/storage"
)

type MockCategoryRenamer struct {
	mock.Mock
}

func (m *MockCategoryRenamer) RenameCustomCategory(ctx context.Context, id int64, name string) error {
	return m.Called(ctx, id, name).Error(0)
}

func TestRenameCategory(t *testing.T) {
	m := new(MockCategoryRenamer)
	m.On("RenameCustomCategory", mock.Anything, int64(1), "Textures").Return(nil)
	m.On("RenameCustomCategory", mock.Anything, int64(2), "Textures").Return(storage.ErrNotFound)
	m.On("RenameCustomCategory", mock.Anything, int64(3), "Textures").Return(storage.ErrCategoryExists)
	m.On("RenameCustomCategory", mock.Anything, int64(4), "Textures").Return(errors.New("lock wait timeout"))

	r := chi.NewRouter()
	r.Put("/api/admin/categories/{id}", RenameCategory(slog.Default(), m))

	cases := []struct {
		path string
		body string
		want int
	}{
		{"/api/admin/categories/1", `{"name": "Textures"}`, http.StatusOK},
		{"/api/admin/categories/2", `{"name": "Textures"}`, http.StatusNotFound},
		{"/api/admin/categories/3", `{"name": "Textures"}`, http.StatusConflict},
		{"/api/admin/categories/4", `{"name": "Textures"}`, http.StatusInternalServerError},
		{"/api/admin/categories/1", `{"name": ""}`, http.StatusBadRequest},
		{"/api/admin/categories/z", `{"name": "Textures"}`, http.StatusBadRequest},
	}

	for _, tc := range cases {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, tc.path, strings.NewReader(tc.body)))
		assert.Equal(t, tc.want, rr.Code, tc.path+" "+tc.body)
	}
}
