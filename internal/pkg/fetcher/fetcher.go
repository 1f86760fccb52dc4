// Package fetcher 카탈로그 원본을 내려받는 HTTP 클라이언트 체인을 제공합니다.
//
// 체인은 데코레이터로 구성되며 NewFromConfig가 다음 순서로 조립합니다. (바깥쪽 → 안쪽)
//
//	LoggingFetcher → RetryFetcher → StatusCodeFetcher → MaxBytesFetcher → HTTPFetcher
//
// 상태 코드 검증은 시도마다 수행되어야 하므로 RetryFetcher 안쪽에 위치합니다.
package fetcher

import (
	"context"
	"net/http"
)

const component = "fetcher"

// Fetcher HTTP 요청을 수행합니다. 반환된 응답의 Body는 호출자가 닫아야 합니다.
type Fetcher interface {
	Do(req *http.Request) (*http.Response, error)
}

// Get url로 GET 요청을 보냅니다.
func Get(ctx context.Context, f Fetcher, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, newErrInvalidRequest(url, err)
	}

	resp, err := f.Do(req)
	if err != nil {
		if resp != nil {
			drainAndCloseBody(resp.Body)
		}
		return nil, err
	}
	return resp, nil
}
