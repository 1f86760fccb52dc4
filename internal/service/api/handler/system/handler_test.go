package system

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkkaiser/catalog-server/internal/catalog"
	"github.com/darkkaiser/catalog-server/internal/pkg/version"
)

type stubStatus catalog.Snapshot

func (s stubStatus) Snapshot() catalog.Snapshot { return catalog.Snapshot(s) }

func TestNewHandler_Panics(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "CatalogStatus는 필수입니다", func() { NewHandler(nil, version.Info{}) })
}

func TestHealthCheckHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		snap        catalog.Snapshot
		wantStatus  string
		wantDep     string
		wantMessage string
	}{
		{name: "로드 전", snap: catalog.Snapshot{State: catalog.StateEmpty}, wantStatus: "healthy", wantDep: "empty"},
		{name: "정상", snap: catalog.Snapshot{State: catalog.StatePopulated}, wantStatus: "healthy", wantDep: "populated"},
		{
			name:        "샘플 목록 대체",
			snap:        catalog.Snapshot{State: catalog.StateFallback, LastError: "source unreachable"},
			wantStatus:  "degraded",
			wantDep:     "fallback",
			wantMessage: "source unreachable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewHandler(stubStatus(tt.snap), version.Info{})

			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)
			require.NoError(t, h.HealthCheckHandler(c))
			require.Equal(t, http.StatusOK, rec.Code)

			var resp HealthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.GreaterOrEqual(t, resp.Uptime, int64(0))
			require.Contains(t, resp.Dependencies, "catalog")
			assert.Equal(t, tt.wantDep, resp.Dependencies["catalog"].Status)
			assert.Equal(t, tt.wantMessage, resp.Dependencies["catalog"].Message)
		})
	}
}

func TestVersionHandler(t *testing.T) {
	t.Parallel()

	info := version.Info{Version: "1.2.0", Commit: "abc1234", GoVersion: "go1.24.11", Platform: "linux/amd64"}
	h := NewHandler(stubStatus{}, info)

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/version", nil), rec)
	require.NoError(t, h.VersionHandler(c))

	var got version.Info
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, info, got)
}
