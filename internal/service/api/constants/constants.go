// Package constants API 서비스 전반에서 공유하는 상수를 정의합니다.
package constants

import "time"

// 로그 발생 위치(컴포넌트) 식별을 위한 상수입니다.
const (
	ComponentService      = "api.service"
	ComponentHandler      = "api.handler"
	ComponentMiddleware   = "api.middleware"
	ComponentErrorHandler = "api.error_handler"
)

// HTTP 서버 기본값입니다.
const (
	DefaultReadTimeout       = 30 * time.Second
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultWriteTimeout      = 120 * time.Second
	DefaultIdleTimeout       = 120 * time.Second

	// DefaultRequestTimeout 요청 처리 기본 제한 시간입니다. 초과 시 503을 응답합니다.
	DefaultRequestTimeout = 60 * time.Second

	// DefaultBodyLimit 요청 본문 최대 크기입니다.
	DefaultBodyLimit = "1M"

	// ShutdownTimeout Graceful Shutdown 최대 대기 시간입니다.
	ShutdownTimeout = 5 * time.Second
)

// 헬스체크 상태입니다.
const (
	HealthStatusHealthy  = "healthy"
	HealthStatusDegraded = "degraded"

	// DependencyCatalog 카탈로그 캐시 의존성 ID
	DependencyCatalog = "catalog"
)

// 클라이언트에게 반환되는 에러 메시지입니다.
const (
	ErrMsgBadRequest          = "잘못된 요청입니다"
	ErrMsgInvalidJSON         = "잘못된 JSON 형식입니다"
	ErrMsgNotFound            = "페이지를 찾을 수 없습니다"
	ErrMsgProductNotFound     = "상품을 찾을 수 없습니다"
	ErrMsgTooManyRequests     = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요"
	ErrMsgInternalServer      = "내부 서버 오류가 발생했습니다"
	ErrMsgServiceUnavailable  = "서비스를 일시적으로 사용할 수 없습니다"
	ErrMsgRequestTimeout      = "요청 처리 시간이 초과되었습니다"
	ErrMsgInvalidSortKey      = "지원하지 않는 정렬 기준입니다"
	ErrMsgCartLinesRequired   = "견적을 계산할 상품(items)이 없습니다"
	ErrMsgContactSubmitFailed = "Failed to submit contact form"
	ErrMsgContactInvalidBody  = "Invalid request body"
)

// SensitiveQueryParams 로그에 남길 때 마스킹해야 하는 쿼리 파라미터 목록입니다.
var SensitiveQueryParams = []string{
	"api_key",
	"password",
	"token",
	"secret",
}
