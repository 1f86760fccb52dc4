package fetcher

import (
	"net/http"
	"time"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "catalog-server"
)

// HTTPFetcher net/http 클라이언트로 요청을 전송하는 체인의 가장 안쪽 Fetcher입니다.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

var _ Fetcher = (*HTTPFetcher)(nil)

// HTTPOption HTTPFetcher 설정을 변경합니다.
type HTTPOption func(*HTTPFetcher)

// WithTimeout 요청 전체 타임아웃을 지정합니다. 0 이하이면 기본값(30초)을 사용합니다.
func WithTimeout(d time.Duration) HTTPOption {
	return func(f *HTTPFetcher) {
		if d > 0 {
			f.client.Timeout = d
		}
	}
}

// WithUserAgent 요청에 User-Agent가 없을 때 사용할 값을 지정합니다.
func WithUserAgent(ua string) HTTPOption {
	return func(f *HTTPFetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// WithTransport 테스트 등에서 RoundTripper를 교체합니다.
func WithTransport(rt http.RoundTripper) HTTPOption {
	return func(f *HTTPFetcher) { f.client.Transport = rt }
}

func NewHTTPFetcher(opts ...HTTPOption) *HTTPFetcher {
	f := &HTTPFetcher{
		client:    &http.Client{Timeout: defaultTimeout},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *HTTPFetcher) Do(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", f.userAgent)
	}
	return f.client.Do(req)
}
