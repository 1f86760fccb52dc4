package fetcher

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
)

// sequenceServer 요청마다 statuses의 값을 차례로 응답하고, 소진되면 마지막 값을 반복합니다.
func sequenceServer(t *testing.T, statuses []int, header http.Header) (*httptest.Server, *int32) {
	t.Helper()

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		n := int(atomic.AddInt32(&calls, 1)) - 1
		if n >= len(statuses) {
			n = len(statuses) - 1
		}
		for k, v := range header {
			w.Header()[k] = v
		}
		w.WriteHeader(statuses[n])
		_, _ = io.WriteString(w, "body")
	}))
	t.Cleanup(srv.Close)

	return srv, &calls
}

func noWait(context.Context, time.Duration) error { return nil }

func newTestRetryChain(maxRetries int) *RetryFetcher {
	f := NewRetryFetcher(NewStatusCodeFetcher(NewHTTPFetcher()), maxRetries, time.Second, 5*time.Second)
	f.wait = noWait
	return f
}

func TestStatusCodeFetcher(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		allowed  []int
		wantErr  bool
		wantType apperrors.ErrorType
	}{
		{name: "200 허용", status: http.StatusOK},
		{name: "404는 NotFound", status: http.StatusNotFound, wantErr: true, wantType: apperrors.NotFound},
		{name: "503은 Unavailable", status: http.StatusServiceUnavailable, wantErr: true, wantType: apperrors.Unavailable},
		{name: "403은 ExecutionFailed", status: http.StatusForbidden, wantErr: true, wantType: apperrors.ExecutionFailed},
		{name: "허용 목록의 204", status: http.StatusNoContent, allowed: []int{http.StatusOK, http.StatusNoContent}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv, _ := sequenceServer(t, []int{tt.status}, nil)
			f := NewStatusCodeFetcher(NewHTTPFetcher(), tt.allowed...)

			resp, err := Get(context.Background(), f, srv.URL)
			if !tt.wantErr {
				require.NoError(t, err)
				resp.Body.Close()
				return
			}

			require.Error(t, err)
			var statusErr *HTTPStatusError
			require.True(t, apperrors.As(err, &statusErr))
			assert.Equal(t, tt.status, statusErr.StatusCode)
			assert.True(t, apperrors.Is(err, tt.wantType))
		})
	}
}

func TestRetryFetcher(t *testing.T) {
	t.Parallel()

	t.Run("일시적 장애 후 성공", func(t *testing.T) {
		t.Parallel()

		srv, calls := sequenceServer(t, []int{503, 502, 200}, nil)
		resp, err := Get(context.Background(), newTestRetryChain(3), srv.URL)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.EqualValues(t, 3, atomic.LoadInt32(calls))
	})

	t.Run("404는 재시도하지 않음", func(t *testing.T) {
		t.Parallel()

		srv, calls := sequenceServer(t, []int{404}, nil)
		_, err := Get(context.Background(), newTestRetryChain(3), srv.URL)
		require.Error(t, err)
		assert.EqualValues(t, 1, atomic.LoadInt32(calls))
	})

	t.Run("재시도 소진", func(t *testing.T) {
		t.Parallel()

		srv, calls := sequenceServer(t, []int{500}, nil)
		_, err := Get(context.Background(), newTestRetryChain(2), srv.URL)
		require.Error(t, err)
		assert.EqualValues(t, 3, atomic.LoadInt32(calls))
		assert.True(t, apperrors.Is(err, apperrors.Unavailable))
		assert.Contains(t, err.Error(), msgMaxRetriesExceeded)
	})

	t.Run("POST는 재시도하지 않음", func(t *testing.T) {
		t.Parallel()

		srv, calls := sequenceServer(t, []int{503, 200}, nil)
		req, err := http.NewRequest(http.MethodPost, srv.URL, strings.NewReader("x"))
		require.NoError(t, err)

		_, err = newTestRetryChain(3).Do(req)
		require.Error(t, err)
		assert.EqualValues(t, 1, atomic.LoadInt32(calls))
	})

	t.Run("Retry-After가 최대 대기 시간 초과", func(t *testing.T) {
		t.Parallel()

		srv, calls := sequenceServer(t, []int{429}, http.Header{"Retry-After": []string{"120"}})
		_, err := Get(context.Background(), newTestRetryChain(3), srv.URL)
		require.Error(t, err)
		assert.EqualValues(t, 1, atomic.LoadInt32(calls))
		assert.Contains(t, err.Error(), "최대 대기 시간")
	})

	t.Run("컨텍스트 취소 시 중단", func(t *testing.T) {
		t.Parallel()

		srv, _ := sequenceServer(t, []int{503}, nil)
		f := NewRetryFetcher(NewStatusCodeFetcher(NewHTTPFetcher()), 3, time.Second, 5*time.Second)
		ctx, cancel := context.WithCancel(context.Background())
		f.wait = func(ctx context.Context, _ time.Duration) error {
			cancel()
			<-ctx.Done()
			return ctx.Err()
		}

		_, err := Get(ctx, f, srv.URL)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestMaxBytesFetcher(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		// Content-Length 없이 청크로 전송
		w.(http.Flusher).Flush()
		_, _ = io.WriteString(w, strings.Repeat("a", 100))
	}))
	defer srv.Close()

	resp, err := Get(context.Background(), NewMaxBytesFetcher(NewHTTPFetcher(), 10), srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	_, err = io.ReadAll(resp.Body)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrResponseBodyTooLarge)

	assert.IsType(t, &HTTPFetcher{}, NewMaxBytesFetcher(NewHTTPFetcher(), NoLimit))
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	gotUA := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA <- r.Header.Get("User-Agent")
		_, _ = io.WriteString(w, "Product Code,Product Name\n")
	}))
	defer srv.Close()

	f := NewFromConfig(Config{UserAgent: "catalog-test", MaxRetries: 2})
	resp, err := Get(context.Background(), f, srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "Product Code,Product Name\n", string(body))
	assert.Equal(t, "catalog-test", <-gotUA)
}

func TestParseRetryAfter(t *testing.T) {
	t.Parallel()

	d, ok := parseRetryAfter("3")
	assert.True(t, ok)
	assert.Equal(t, 3*time.Second, d)

	d, ok = parseRetryAfter(time.Now().Add(-time.Hour).UTC().Format(http.TimeFormat))
	assert.True(t, ok)
	assert.Zero(t, d)

	_, ok = parseRetryAfter("soon")
	assert.False(t, ok)
	_, ok = parseRetryAfter("-1")
	assert.False(t, ok)
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, normalizeMaxRetries(-1))
	assert.Equal(t, maxAllowedRetries, normalizeMaxRetries(100))

	minDelay, maxDelay := normalizeRetryDelays(0, 0)
	assert.Equal(t, time.Second, minDelay)
	assert.Equal(t, defaultMaxRetryDelay, maxDelay)

	minDelay, maxDelay = normalizeRetryDelays(5*time.Second, 2*time.Second)
	assert.Equal(t, 5*time.Second, minDelay)
	assert.Equal(t, 5*time.Second, maxDelay)
}

func TestRedactURL(t *testing.T) {
	t.Parallel()

	u, err := url.Parse("https://user:pw@docs.example.com/export?format=csv&api_key=abc")
	require.NoError(t, err)

	out := redactURL(u)
	assert.NotContains(t, out, "pw")
	assert.NotContains(t, out, "abc")
	assert.Contains(t, out, "format=csv")
}
