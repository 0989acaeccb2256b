package save

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

	"paint-quote/internal/storage"
)

type MockConfigsSaver struct {
	mock.Mock
}

func (m *MockConfigsSaver) SaveAreaConfigs(ctx context.Context, projectID int64, configs []storage.AreaConfig) ([]storage.AreaConfig, error) {
	args := m.Called(ctx, projectID, configs)
	saved, _ := args.Get(0).([]storage.AreaConfig)
	return saved, args.Error(1)
}

func newRouter(s ConfigsSaver) http.Handler {
	r := chi.NewRouter()
	r.Put("/api/projects/{id}/area-configs", SaveAreaConfigs(slog.Default(), s))
	return r
}

func TestSaveAreaConfigs_Success(t *testing.T) {
	s := new(MockConfigsSaver)
	s.On("SaveAreaConfigs", mock.Anything, int64(4), mock.MatchedBy(func(c []storage.AreaConfig) bool {
		return len(c) == 1 &&
			c[0].AreaType == storage.AreaCeiling &&
			c[0].Area == 150 &&
			c[0].SelectedMaterials.Emulsion == "Royale" &&
			c[0].Coats.Emulsion == 2
	})).Return([]storage.AreaConfig{{ID: "generated", AreaType: storage.AreaCeiling, DisplayOrder: 2}}, nil)

	body := `{"configs": [{
		"area_type": "ceiling",
		"painting_system": "Fresh",
		"area": 150,
		"per_sq_ft_rate": 12,
		"selected_materials": {"emulsion": "Royale"},
		"coat_configuration": {"emulsion": 2},
		"paint_type_category": "Interior"
	}]}`

	rr := httptest.NewRecorder()
	newRouter(s).ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/api/projects/4/area-configs", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp Response
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))
	require.Len(t, resp.Configs, 1)
	assert.Equal(t, "generated", resp.Configs[0].ID)
	assert.Equal(t, 2, resp.Configs[0].DisplayOrder)
	s.AssertExpectations(t)
}

func TestSaveAreaConfigs_Errors(t *testing.T) {
	s := new(MockConfigsSaver)
	s.On("SaveAreaConfigs", mock.Anything, int64(8), mock.Anything).Return(nil, storage.ErrNotFound)
	s.On("SaveAreaConfigs", mock.Anything, int64(9), mock.Anything).Return(nil, errors.New("deadlock"))

	cases := []struct {
		path string
		body string
		want int
	}{
		{"/api/projects/4/area-configs", `{`, http.StatusBadRequest},
		{"/api/projects/x/area-configs", `{"configs": []}`, http.StatusBadRequest},
		{"/api/projects/8/area-configs", `{"configs": []}`, http.StatusNotFound},
		{"/api/projects/9/area-configs", `{"configs": []}`, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		rr := httptest.NewRecorder()
		newRouter(s).ServeHTTP(rr, httptest.NewRequest(http.MethodPut, tc.path, strings.NewReader(tc.body)))
		assert.Equal(t, tc.want, rr.Code, tc.path)
	}
}
