package source

import (
	"context"
	"net/url"
	"strings"

	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
)

// Resolver 원본 식별자를 기준 위치에 맞춰 해석한 뒤 HTTP 또는 파일 Fetcher에 위임합니다.
//
//   - 절대 http(s) URL: HTTP
//   - 상대 식별자 + URL 기준 위치: 기준 URL에 결합해 HTTP
//   - 상대 식별자 + 디렉토리 기준 위치(또는 없음): 파일
type Resolver struct {
	base *url.URL
	http Fetcher
	file Fetcher
}

var _ Fetcher = (*Resolver)(nil)

// NewResolver base는 "https://host/assets/" 같은 URL이거나 디렉토리 경로입니다.
// httpFetcher가 nil이면 HTTP 위치는 실패합니다.
func NewResolver(base string, httpFetcher Fetcher) (*Resolver, error) {
	r := &Resolver{http: httpFetcher}

	if isHTTPURL(base) {
		u, err := url.Parse(base)
		if err != nil {
			return nil, apperrors.Wrapf(err, apperrors.InvalidInput, "카탈로그 기준 URL(%s)이 올바르지 않습니다", base)
		}
		if !strings.HasSuffix(u.Path, "/") {
			u.Path += "/"
		}
		r.base = u
		r.file = NewFileSource("")
	} else {
		r.file = NewFileSource(base)
	}

	return r, nil
}

// Resolve location을 실제 위치로 해석합니다.
func (r *Resolver) Resolve(location string) string {
	if isHTTPURL(location) || r.base == nil {
		return location
	}

	ref, err := url.Parse(strings.TrimPrefix(location, "/"))
	if err != nil {
		return location
	}
	return r.base.ResolveReference(ref).String()
}

func (r *Resolver) Fetch(ctx context.Context, location string) (*Resource, error) {
	resolved := r.Resolve(location)
	if isHTTPURL(resolved) {
		if r.http == nil {
			return nil, apperrors.Newf(apperrors.Internal, "HTTP 카탈로그 원본(%s)을 가져올 Fetcher가 없습니다", resolved)
		}
		return r.http.Fetch(ctx, resolved)
	}
	return r.file.Fetch(ctx, resolved)
}

func isHTTPURL(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
