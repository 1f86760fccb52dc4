package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/darkkaiser/catalog-server/internal/service/api/constants"
	"github.com/darkkaiser/catalog-server/internal/service/api/httputil"
	appmiddleware "github.com/darkkaiser/catalog-server/internal/service/api/middleware"
	applog "github.com/darkkaiser/catalog-server/pkg/log"
)

// HTTPServerConfig HTTP 서버 생성에 필요한 설정입니다.
type HTTPServerConfig struct {
	Debug bool

	// AllowOrigins CORS에서 허용할 Origin 목록 (예: ["https://beatsmed.com"])
	AllowOrigins []string

	// RequestTimeout 요청 처리 제한 시간 (0이면 60초)
	RequestTimeout time.Duration

	// BodyLimit 요청 본문 최대 크기 (예: "1M", 빈 값이면 1M)
	BodyLimit string

	// RateLimitPerSecond, RateLimitBurst IP별 요청 제한 (RateLimitPerSecond가 0이면 제한하지 않음)
	RateLimitPerSecond float64
	RateLimitBurst     int

	// EnableHSTS TLS로 서비스할 때 Strict-Transport-Security 헤더를 추가합니다.
	EnableHSTS bool
}

// NewHTTPServer 미들웨어 체인이 설정된 Echo 인스턴스를 생성합니다. 라우트는 포함하지 않습니다.
//
// 미들웨어 적용 순서:
//
//  1. PanicRecovery: 이후 모든 미들웨어와 핸들러의 panic을 복구
//  2. RequestID: X-Request-ID 부여 (로그에 포함되도록 로깅보다 먼저)
//  3. Server 헤더 제거
//  4. HTTPLogger: 429, 413, 503 응답도 기록되도록 제한 미들웨어보다 먼저
//  5. RateLimiting: IP별 요청 제한, 초과 시 429
//  6. BodyLimit: 초과 시 413
//  7. Timeout: 초과 시 503
//  8. CORS
//  9. Secure: 보안 헤더
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	// StartTLS는 e.TLSServer를 사용하므로 두 서버 모두에 적용한다.
	for _, srv := range []*http.Server{e.Server, e.TLSServer} {
		srv.ReadTimeout = constants.DefaultReadTimeout
		srv.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
		srv.WriteTimeout = constants.DefaultWriteTimeout
		srv.IdleTimeout = constants.DefaultIdleTimeout
	}

	// Echo 내부 로그를 애플리케이션 로거로 통합한다.
	e.Logger = appmiddleware.Logger{Logger: applog.StandardLogger()}

	e.HTTPErrorHandler = httputil.ErrorHandler

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = constants.DefaultRequestTimeout
	}
	bodyLimit := cfg.BodyLimit
	if bodyLimit == "" {
		bodyLimit = constants.DefaultBodyLimit
	}

	// 1. Panic 복구
	e.Use(appmiddleware.PanicRecovery())
	// 2. Request ID
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	// 3. Server 헤더 제거
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Del(echo.HeaderServer)
			return next(c)
		}
	})
	// 4. HTTP 로깅
	e.Use(appmiddleware.HTTPLogger())
	// 5. Rate Limiting
	e.Use(appmiddleware.RateLimiting(cfg.RateLimitPerSecond, cfg.RateLimitBurst))
	// 6. Body Limit
	e.Use(middleware.BodyLimit(bodyLimit))
	// 7. Timeout
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout:      timeout,
		ErrorMessage: constants.ErrMsgRequestTimeout,
	}))
	// 8. CORS
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodDelete},
	}))
	// 9. 보안 헤더
	secure := middleware.DefaultSecureConfig
	if cfg.EnableHSTS {
		secure.HSTSMaxAge = 31536000
	}
	e.Use(middleware.SecureWithConfig(secure))

	return e
}
