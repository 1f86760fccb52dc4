package fetcher

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
)

// maxDrainBytes 커넥션 재사용을 위해 버리는 본문의 최대 크기입니다. 이보다 크면 커넥션을 포기합니다.
const maxDrainBytes = 64 * 1024

var drainBufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 32*1024)
		return &b
	},
}

func drainAndCloseBody(body io.ReadCloser) {
	if body == nil {
		return
	}
	defer body.Close()

	buf := drainBufPool.Get().(*[]byte)
	defer drainBufPool.Put(buf)

	_, _ = io.CopyBuffer(io.Discard, io.LimitReader(body, maxDrainBytes), *buf)
}

func readSnippet(body io.Reader, n int64) string {
	if body == nil {
		return ""
	}
	b, _ := io.ReadAll(io.LimitReader(body, n))
	return strings.TrimSpace(string(b))
}

var sensitiveQueryKeys = []string{"token", "key", "secret", "password", "signature", "auth"}

// redactURL 사용자 정보와 민감한 쿼리 파라미터를 가린 URL 문자열을 반환합니다.
func redactURL(u *url.URL) string {
	if u == nil {
		return ""
	}

	ru := *u
	if u.User != nil {
		ru.User = url.User("xxxxx")
	}
	if u.RawQuery != "" {
		q := ru.Query()
		for key := range q {
			lower := strings.ToLower(key)
			for _, s := range sensitiveQueryKeys {
				if strings.Contains(lower, s) {
					q.Set(key, "xxxxx")
					break
				}
			}
		}
		ru.RawQuery = q.Encode()
	}
	return ru.String()
}

func redactHeaders(h http.Header) http.Header {
	if h == nil {
		return nil
	}
	masked := h.Clone()
	for _, key := range []string{"Authorization", "Proxy-Authorization", "Cookie", "Set-Cookie"} {
		if masked.Get(key) != "" {
			masked.Set(key, "***")
		}
	}
	return masked
}
