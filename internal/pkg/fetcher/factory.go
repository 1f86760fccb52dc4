package fetcher

import "time"

// Config Fetcher 체인 구성입니다.
type Config struct {
	// Timeout 요청 전체 타임아웃 (0: 30초)
	Timeout time.Duration

	// UserAgent 요청에 User-Agent가 없을 때 사용할 값
	UserAgent string

	// MaxRetries 최대 재시도 횟수 (0~10으로 보정)
	MaxRetries int

	// MinRetryDelay, MaxRetryDelay 지수 백오프 범위 (최소 1초, 최대 기본값 30초)
	MinRetryDelay time.Duration
	MaxRetryDelay time.Duration

	// AllowedStatusCodes 성공으로 볼 상태 코드 (비어 있으면 200만 허용)
	AllowedStatusCodes []int

	// MaxBytes 응답 본문 최대 크기 (0 이하: 10MB, NoLimit: 제한 없음)
	MaxBytes int64

	DisableLogging bool
}

// NewFromConfig cfg에 따라 Fetcher 체인을 조립합니다. opts는 HTTPFetcher에 마지막으로 적용됩니다.
func NewFromConfig(cfg Config, opts ...HTTPOption) Fetcher {
	httpOpts := append([]HTTPOption{WithTimeout(cfg.Timeout), WithUserAgent(cfg.UserAgent)}, opts...)

	var f Fetcher = NewHTTPFetcher(httpOpts...)
	f = NewMaxBytesFetcher(f, cfg.MaxBytes)
	f = NewStatusCodeFetcher(f, cfg.AllowedStatusCodes...)
	f = NewRetryFetcher(f, cfg.MaxRetries, cfg.MinRetryDelay, cfg.MaxRetryDelay)
	if !cfg.DisableLogging {
		f = NewLoggingFetcher(f)
	}
	return f
}
