package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/catalog-server/internal/catalog"
	"github.com/darkkaiser/catalog-server/internal/catalog/loader"
	"github.com/darkkaiser/catalog-server/internal/catalog/mapper"
	"github.com/darkkaiser/catalog-server/internal/catalog/source"
	"github.com/darkkaiser/catalog-server/internal/config"
	"github.com/darkkaiser/catalog-server/internal/pkg/fetcher"
	"github.com/darkkaiser/catalog-server/internal/pkg/version"
	"github.com/darkkaiser/catalog-server/internal/service"
	"github.com/darkkaiser/catalog-server/internal/service/api"
	"github.com/darkkaiser/catalog-server/internal/service/contact"
	"github.com/darkkaiser/catalog-server/internal/service/scheduler"
	applog "github.com/darkkaiser/catalog-server/pkg/log"
)

// @title Catalog Server API
// @version 1.0
// @description 의료 장비 유통 카탈로그 서버의 REST API입니다.
// @description
// @description ## 주요 기능
// @description - CSV/XLSX 원본에서 읽은 상품 목록 조회, 검색, 정렬
// @description - 장바구니 견적 계산
// @description - 문의 양식 접수 (메일 발송, WhatsApp 링크)
// @description - 카탈로그 캐시 관리 (상태 조회, 다시 로드, 비우기, CSV 내보내기)

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser

// @BasePath /

const component = "main"

const banner = `
   ____      _        _                   ____
  / ___|__ _| |_ __ _| | ___   __ _      / ___|  ___ _ ____   _____ _ __
 | |   / _' | __/ _' | |/ _ \ / _' |_____\___ \ / _ \ '__\ \ / / _ \ '__|
 | |__| (_| | || (_| | | (_) | (_| |_____|___) |  __/ |   \ V /  __/ |
  \____\__,_|\__\__,_|_|\___/ \__, |     |____/ \___|_|    \_/ \___|_|
                              |___/                       %s
--------------------------------------------------------------------------------
`

func main() {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := loadConfig(os.Args[1:])
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	logOpts := applog.NewProductionOptions(config.AppName)
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	applog.SetDebugMode(appConfig.Debug)

	buildInfo := version.Get()
	fmt.Printf(banner, buildInfo.Version)

	applog.WithComponentAndFields(component, applog.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent(component).Warn(warning)
	}

	services, err := newServices(appConfig, buildInfo)
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{"error": err}).Error("서비스 구성 실패")
		appLogCloser.Close()
		os.Exit(1)
	}

	serviceStopCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(serviceStopCtx, services); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{"error": err}).Error("서비스 초기화 실패로 프로그램을 종료합니다")
		appLogCloser.Close()
		os.Exit(1)
	}
}

// loadConfig 첫 번째 실행 인자가 있으면 설정 파일 경로로 사용합니다.
func loadConfig(args []string) (*config.AppConfig, error) {
	if len(args) > 0 && args[0] != "" {
		return config.LoadWithFile(args[0])
	}
	return config.Load()
}

// newServices 설정에 따라 카탈로그, 문의, 스케줄러, API 서비스를 조립합니다. 반환 순서가 시작 순서입니다.
func newServices(appConfig *config.AppConfig, buildInfo version.Info) ([]service.Service, error) {
	catalogService, err := newCatalogService(appConfig)
	if err != nil {
		return nil, err
	}

	contactService, err := newContactService(appConfig.Contact)
	if err != nil {
		return nil, err
	}

	reload := appConfig.Catalog.Reload
	schedulerService := scheduler.NewService(scheduler.Config{
		Enabled:  reload.Enabled,
		TimeSpec: reload.TimeSpec,
		WarmUp:   reload.WarmUp,
	}, catalogService)

	apiService := api.NewService(appConfig, catalogService, contactService, buildInfo)

	return []service.Service{schedulerService, apiService}, nil
}

func newCatalogService(appConfig *config.AppConfig) (*catalog.Service, error) {
	cfg := appConfig.Catalog

	httpFetcher := fetcher.NewFromConfig(fetcher.Config{
		Timeout:       cfg.LoadTimeout,
		MaxRetries:    appConfig.HTTPRetry.MaxRetries,
		MinRetryDelay: appConfig.HTTPRetry.RetryDelay,
		MaxBytes:      cfg.MaxBytes,
	})

	resolver, err := source.NewResolver(cfg.BaseURL, source.NewHTTPSource(httpFetcher))
	if err != nil {
		return nil, err
	}

	l := loader.New(resolver, loader.WithMapperOptions(
		mapper.WithIDStrategy(mapper.IDStrategy(cfg.IDStrategy)),
		mapper.WithHTMLStripping(cfg.StripHTML),
	))

	return catalog.New(l, cfg.SourceID, catalog.WithLoadTimeout(cfg.LoadTimeout)), nil
}

func newContactService(cfg config.ContactConfig) (*contact.Service, error) {
	mailer := contact.NewSMTPMailer(contact.SMTPConfig{
		Host:               cfg.SMTP.Host,
		Port:               cfg.SMTP.Port,
		Username:           cfg.SMTP.Username,
		Password:           cfg.SMTP.Password,
		From:               cfg.SMTP.From,
		InsecureSkipVerify: cfg.SMTP.InsecureSkipVerify,
	})

	var notifier contact.Notifier
	if cfg.Telegram.Enabled {
		n, err := contact.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Telegram.Timeout)
		if err != nil {
			return nil, err
		}
		notifier = n
	}

	return contact.New(contact.Config{
		SiteName:       cfg.SiteName,
		Recipient:      cfg.Recipient,
		WhatsAppNumber: cfg.WhatsAppNumber,
		NodeID:         cfg.NodeID,
	}, mailer, notifier)
}

// run 서비스를 순서대로 시작하고 serviceStopCtx가 취소될 때까지 기다린 뒤 모든 서비스의 종료를 기다립니다.
// 시작에 실패한 서비스가 있으면 이미 시작된 서비스를 중지하고 에러를 반환합니다.
func run(serviceStopCtx context.Context, services []service.Service) error {
	ctx, cancel := context.WithCancel(serviceStopCtx)
	defer cancel()

	serviceStopWG := &sync.WaitGroup{}

	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(ctx, serviceStopWG); err != nil {
			cancel()
			serviceStopWG.Wait()
			return err
		}
	}

	applog.WithComponent(component).Info("서버 가동 완료")

	<-ctx.Done()

	applog.WithComponent(component).Info("종료 신호를 수신했습니다. 서비스를 중지합니다")
	serviceStopWG.Wait()

	return nil
}
