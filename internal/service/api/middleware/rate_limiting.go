package middleware

import (
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/darkkaiser/catalog-server/internal/service/api/constants"
	"github.com/darkkaiser/catalog-server/internal/service/api/httputil"
	applog "github.com/darkkaiser/catalog-server/pkg/log"
)

const headerRetryAfter = "Retry-After"

const (
	// clientIdleTTL 이 시간 동안 요청이 없던 IP의 Token Bucket은 정리 대상입니다.
	clientIdleTTL = 10 * time.Minute

	// pruneEvery 정리는 새 IP가 이 수만큼 추가될 때마다 한 번 수행한다.
	pruneEvery = 1024
)

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipRateLimiter IP 주소별 Token Bucket을 관리합니다. 오래 사용되지 않은 IP는 새 IP가 추가될 때 정리됩니다.
type ipRateLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	added   int

	rate  rate.Limit
	burst int
	now   func() time.Time
}

func newIPRateLimiter(requestsPerSecond float64, burst int) *ipRateLimiter {
	return &ipRateLimiter{
		clients: make(map[string]*client),
		rate:    rate.Limit(requestsPerSecond),
		burst:   burst,
		now:     time.Now,
	}
}

// getLimiter ip의 Limiter를 반환합니다. 없으면 새로 생성합니다.
func (i *ipRateLimiter) getLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	now := i.now()
	if c, ok := i.clients[ip]; ok {
		c.lastSeen = now
		return c.limiter
	}

	i.added++
	if i.added%pruneEvery == 0 {
		i.prune(now)
	}

	c := &client{limiter: rate.NewLimiter(i.rate, i.burst), lastSeen: now}
	i.clients[ip] = c
	return c.limiter
}

// prune clientIdleTTL 이상 요청이 없던 IP를 제거합니다. i.mu를 잡은 상태에서 호출해야 합니다.
func (i *ipRateLimiter) prune(now time.Time) {
	for ip, c := range i.clients {
		if now.Sub(c.lastSeen) >= clientIdleTTL {
			delete(i.clients, ip)
		}
	}
}

// RateLimiting 클라이언트 IP별로 초당 요청 수를 제한하는 미들웨어를 반환합니다.
// 제한을 넘으면 Retry-After 헤더와 함께 429로 응답합니다.
//
// requestsPerSecond가 0이면 제한하지 않습니다.
//
// Panics:
//   - requestsPerSecond가 음수인 경우
//   - requestsPerSecond가 양수인데 burst가 0 이하인 경우
func RateLimiting(requestsPerSecond float64, burst int) echo.MiddlewareFunc {
	if requestsPerSecond < 0 {
		panic("[RateLimiting] requestsPerSecond는 0 이상이어야 합니다")
	}
	if requestsPerSecond == 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	if burst <= 0 {
		panic("[RateLimiting] burst는 양수여야 합니다")
	}

	limiter := newIPRateLimiter(requestsPerSecond, burst)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			if !limiter.getLimiter(ip).Allow() {
				applog.WithComponentAndFields(constants.ComponentMiddleware, applog.Fields{
					"remote_ip": ip,
					"path":      c.Request().URL.Path,
					"method":    c.Request().Method,
				}).Warn("요청 속도 제한을 초과하여 요청을 거부합니다")

				c.Response().Header().Set(headerRetryAfter, "1")
				return httputil.NewTooManyRequestsError(constants.ErrMsgTooManyRequests)
			}

			return next(c)
		}
	}
}
