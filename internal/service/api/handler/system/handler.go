// Package system 헬스체크와 버전 정보 API를 제공합니다.
package system

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/darkkaiser/catalog-server/internal/catalog"
	"github.com/darkkaiser/catalog-server/internal/pkg/version"
	"github.com/darkkaiser/catalog-server/internal/service/api/constants"
)

// CatalogStatus 카탈로그 캐시 상태를 제공합니다.
type CatalogStatus interface {
	Snapshot() catalog.Snapshot
}

// HealthResponse 헬스체크 응답입니다.
type HealthResponse struct {
	Status       string                      `json:"status" example:"healthy"`
	Uptime       int64                       `json:"uptime" example:"3600"`
	Dependencies map[string]DependencyStatus `json:"dependencies"`
}

// DependencyStatus 외부 의존성의 상태입니다.
type DependencyStatus struct {
	Status  string `json:"status" example:"populated"`
	Message string `json:"message,omitempty"`
}

// Handler 시스템 API 요청을 처리합니다.
type Handler struct {
	catalog   CatalogStatus
	buildInfo version.Info
	startedAt time.Time
}

// NewHandler Handler를 생성합니다.
func NewHandler(c CatalogStatus, buildInfo version.Info) *Handler {
	if c == nil {
		panic("CatalogStatus는 필수입니다")
	}

	return &Handler{catalog: c, buildInfo: buildInfo, startedAt: time.Now()}
}

// HealthCheckHandler godoc
// @Summary 서버 상태 확인
// @Description 카탈로그가 샘플 목록으로 대체된 경우 status는 degraded입니다.
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	snap := h.catalog.Snapshot()

	status := constants.HealthStatusHealthy
	if snap.State == catalog.StateFallback {
		status = constants.HealthStatusDegraded
	}

	return c.JSON(http.StatusOK, HealthResponse{
		Status: status,
		Uptime: int64(time.Since(h.startedAt).Seconds()),
		Dependencies: map[string]DependencyStatus{
			constants.DependencyCatalog: {Status: snap.State.String(), Message: snap.LastError},
		},
	})
}

// VersionHandler godoc
// @Summary 버전 정보 조회
// @Tags System
// @Produce json
// @Success 200 {object} version.Info
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, h.buildInfo)
}
