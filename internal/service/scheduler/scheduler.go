// Package scheduler 카탈로그를 Cron 스케줄에 맞춰 주기적으로 다시 로드합니다.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/darkkaiser/catalog-server/internal/catalog"
	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
	"github.com/darkkaiser/catalog-server/pkg/cronx"
	applog "github.com/darkkaiser/catalog-server/pkg/log"
)

// component Scheduler 서비스의 로깅용 컴포넌트 이름
const component = "scheduler.service"

// Reloader 카탈로그를 강제로 다시 로드합니다.
type Reloader interface {
	Reload(ctx context.Context) catalog.Snapshot
}

var _ Reloader = (*catalog.Service)(nil)

// Config 주기적 다시 로드 설정입니다.
type Config struct {
	Enabled  bool
	TimeSpec string

	// WarmUp 서비스 시작 직후 한 번 로드할지 여부
	WarmUp bool
}

// Scheduler Config.TimeSpec마다 Reloader.Reload를 실행하는 서비스입니다.
type Scheduler struct {
	cfg      Config
	reloader Reloader

	cron *cron.Cron

	running   bool
	runningMu sync.Mutex
}

// NewService 새로운 Scheduler 서비스 인스턴스를 생성합니다.
func NewService(cfg Config, reloader Reloader) *Scheduler {
	if reloader == nil {
		panic("Reloader는 필수입니다")
	}

	return &Scheduler{cfg: cfg, reloader: reloader}
}

// Start 스케줄러를 시작합니다. serviceStopCtx가 취소되면 스케줄러를 중지하고 serviceStopWG.Done()을 호출합니다.
//
// 비활성화된 경우에도 WarmUp이 설정되어 있으면 시작 시 한 번 로드합니다.
func (s *Scheduler) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(component).Info("서비스 시작 진입: Scheduler 서비스 초기화 프로세스를 시작합니다")

	if s.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("Scheduler 서비스가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	if s.cfg.Enabled {
		if err := cronx.Validate(s.cfg.TimeSpec); err != nil {
			serviceStopWG.Done()
			return apperrors.Wrap(err, apperrors.InvalidInput, "카탈로그 다시 로드 스케줄(time_spec)이 올바르지 않습니다")
		}

		logger := cron.VerbosePrintfLogger(applog.StandardLogger())
		s.cron = cron.New(
			cron.WithParser(cronx.StandardParser()),
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		)

		// 종료 시 cron.Stop()이 실행 중인 로드의 완료를 기다리므로 서비스 종료 신호와 분리된 컨텍스트를 사용한다.
		if _, err := s.cron.AddFunc(s.cfg.TimeSpec, func() { s.reload(context.Background(), "schedule") }); err != nil {
			serviceStopWG.Done()
			return apperrors.Wrap(err, apperrors.InvalidInput, "카탈로그 다시 로드 스케줄 등록에 실패했습니다")
		}

		s.cron.Start()
	}
	s.running = true

	applog.WithComponentAndFields(component, applog.Fields{
		"enabled":   s.cfg.Enabled,
		"time_spec": s.cfg.TimeSpec,
		"warm_up":   s.cfg.WarmUp,
	}).Info("서비스 시작 완료: Scheduler 서비스가 정상적으로 초기화되었습니다")

	var warmUp sync.WaitGroup
	if s.cfg.WarmUp {
		warmUp.Add(1)
		go func() {
			defer warmUp.Done()
			s.reload(serviceStopCtx, "warm_up")
		}()
	}

	go func() {
		defer serviceStopWG.Done()

		<-serviceStopCtx.Done()

		warmUp.Wait()
		s.Stop()
	}()

	return nil
}

// Stop 실행 중인 스케줄러를 중지합니다. 진행 중인 로드가 있으면 끝날 때까지 기다립니다.
func (s *Scheduler) Stop() {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return
	}

	applog.WithComponent(component).Info("종료 절차 진입: Scheduler 서비스 중지 시그널을 수신했습니다")

	if s.cron != nil {
		<-s.cron.Stop().Done()
	}

	s.cron = nil
	s.running = false

	applog.WithComponent(component).Info("Scheduler 서비스 종료 완료: 모든 리소스가 정리되었습니다")
}

func (s *Scheduler) reload(ctx context.Context, trigger string) {
	started := time.Now()
	snap := s.reloader.Reload(ctx)

	entry := applog.WithComponentAndFields(component, applog.Fields{
		"trigger":    trigger,
		"state":      snap.State.String(),
		"products":   snap.ProductCount,
		"elapsed_ms": time.Since(started).Milliseconds(),
	})
	if snap.State == catalog.StateFallback {
		entry.WithField("last_error", snap.LastError).Warn("카탈로그 다시 로드에 실패하여 샘플 상품 목록을 제공합니다")
		return
	}
	entry.Info("카탈로그 다시 로드 완료")
}
