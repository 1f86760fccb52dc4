// Package api 카탈로그 HTTP API 서버를 제공합니다.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"

	_ "github.com/darkkaiser/catalog-server/docs"
	"github.com/darkkaiser/catalog-server/internal/config"
	"github.com/darkkaiser/catalog-server/internal/pkg/version"
	"github.com/darkkaiser/catalog-server/internal/service/api/constants"
	"github.com/darkkaiser/catalog-server/internal/service/api/handler/system"
	v1 "github.com/darkkaiser/catalog-server/internal/service/api/v1"
	"github.com/darkkaiser/catalog-server/internal/service/api/v1/handler"
	applog "github.com/darkkaiser/catalog-server/pkg/log"
)

// CatalogService API가 사용하는 카탈로그 기능입니다.
type CatalogService interface {
	handler.CatalogService
	system.CatalogStatus
}

// Service API 서버의 생명주기를 관리합니다.
//
// Start로 시작하면 별도 고루틴에서 HTTP(S) 서버를 실행하고, 서비스 종료 컨텍스트가 취소되면
// Graceful Shutdown(최대 5초)을 수행한 뒤 WaitGroup에 완료를 알립니다.
type Service struct {
	appConfig *config.AppConfig

	catalog CatalogService
	contact handler.ContactService

	buildInfo version.Info

	running   bool
	runningMu sync.Mutex
}

// NewService Service 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig, catalogService CatalogService, contactService handler.ContactService, buildInfo version.Info) *Service {
	if appConfig == nil {
		panic("AppConfig는 필수입니다")
	}
	if catalogService == nil {
		panic("CatalogService는 필수입니다")
	}
	if contactService == nil {
		panic("ContactService는 필수입니다")
	}

	return &Service{
		appConfig: appConfig,
		catalog:   catalogService,
		contact:   contactService,
		buildInfo: buildInfo,
	}
}

// Start API 서비스를 시작합니다. 즉시 반환되며 서버는 고루틴에서 실행됩니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info("API 서비스 시작중...")

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn("API 서비스가 이미 시작됨!!!")
		return nil
	}

	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG)

	applog.WithComponent(constants.ComponentService).Info("API 서비스 시작됨")

	return nil
}

// runServiceLoop 서버를 실행하고, 종료 신호를 받거나 서버가 먼저 멈출 때까지 기다립니다.
func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()
	defer s.markStopped()

	e := s.setupServer()

	serveErr := make(chan error, 1)
	go func() { serveErr <- s.serve(e) }()

	select {
	case err := <-serveErr:
		// 포트 바인딩 실패 등으로 서버가 먼저 종료된 경우
		applog.WithComponent(constants.ComponentService).Error("API 서비스가 예기치 않게 종료되었습니다")
		s.logServeResult(err)
		return

	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info("API 서비스 중지중...")
	}

	s.shutdown(e)
	s.logServeResult(<-serveErr)
}

// setupServer 핸들러, 미들웨어, 라우트가 구성된 Echo 인스턴스를 생성합니다.
func (s *Service) setupServer() *echo.Echo {
	apiConfig := s.appConfig.API

	e := NewHTTPServer(HTTPServerConfig{
		Debug:              s.appConfig.Debug,
		AllowOrigins:       apiConfig.CORS.AllowOrigins,
		RequestTimeout:     apiConfig.RequestTimeout,
		BodyLimit:          apiConfig.BodyLimit,
		RateLimitPerSecond: apiConfig.RateLimit.RequestsPerSecond,
		RateLimitBurst:     apiConfig.RateLimit.Burst,
		EnableHSTS:         apiConfig.TLSServer,
	})

	RegisterRoutes(e, system.NewHandler(s.catalog, s.buildInfo))
	v1.RegisterRoutes(e, handler.NewHandler(s.catalog, s.contact))

	return e
}

// serve 설정에 따라 HTTP 또는 HTTPS로 요청을 받습니다. 서버가 멈출 때까지 반환하지 않습니다.
func (s *Service) serve(e *echo.Echo) error {
	apiConfig := s.appConfig.API
	address := fmt.Sprintf(":%d", apiConfig.ListenPort)

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": apiConfig.ListenPort,
		"tls":  apiConfig.TLSServer,
	}).Info("API 서비스 > http 서버 시작")

	if apiConfig.TLSServer {
		return e.StartTLS(address, apiConfig.TLSCertFile, apiConfig.TLSKeyFile)
	}
	return e.Start(address)
}

// logServeResult serve의 반환 값을 기록합니다. http.ErrServerClosed는 정상 종료입니다.
func (s *Service) logServeResult(err error) {
	switch {
	case err == nil:
	case errors.Is(err, http.ErrServerClosed):
		applog.WithComponent(constants.ComponentService).Info("API 서비스 > http 서버 중지됨")
	default:
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"port":  s.appConfig.API.ListenPort,
			"error": err,
		}).Error("API 서비스 > http 서버를 구성하는 중에 치명적인 오류가 발생하였습니다")
	}
}

// shutdown 진행 중인 요청을 최대 ShutdownTimeout 동안 마무리하고 서버를 닫습니다.
func (s *Service) shutdown(e *echo.Echo) {
	ctx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error("API 서비스 > http 서버 종료 중 오류 발생")
	}
}

func (s *Service) markStopped() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info("API 서비스 중지됨")
}
