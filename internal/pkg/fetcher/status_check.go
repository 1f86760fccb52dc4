package fetcher

import (
	"net/http"
	"slices"
)

const bodySnippetLimit = 1024

// StatusCodeFetcher 허용되지 않은 상태 코드의 응답을 *HTTPStatusError로 바꿉니다.
// 허용 목록이 비어 있으면 200 OK만 허용합니다.
type StatusCodeFetcher struct {
	delegate Fetcher
	allowed  []int
}

var _ Fetcher = (*StatusCodeFetcher)(nil)

func NewStatusCodeFetcher(delegate Fetcher, allowed ...int) *StatusCodeFetcher {
	if delegate == nil {
		panic("fetcher: StatusCodeFetcher의 delegate가 nil입니다")
	}
	return &StatusCodeFetcher{delegate: delegate, allowed: allowed}
}

func (f *StatusCodeFetcher) Do(req *http.Request) (*http.Response, error) {
	resp, err := f.delegate.Do(req)
	if err != nil {
		return resp, err
	}

	if f.isAllowed(resp.StatusCode) {
		return resp, nil
	}

	statusErr := newHTTPStatusError(resp, redactURL(req.URL), readSnippet(resp.Body, bodySnippetLimit))
	drainAndCloseBody(resp.Body)

	return nil, statusErr
}

func (f *StatusCodeFetcher) isAllowed(code int) bool {
	if len(f.allowed) == 0 {
		return code == http.StatusOK
	}
	return slices.Contains(f.allowed, code)
}
