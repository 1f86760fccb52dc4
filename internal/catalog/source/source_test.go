package source

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkkaiser/catalog-server/internal/pkg/fetcher"
	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
)

func newCatalogServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/assets/products.csv", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		_, _ = io.WriteString(w, "\xEF\xBB\xBFProduct Code,Product Name\nD1,Chair\n")
	})
	mux.HandleFunc("/assets/latin1.csv", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/csv; charset=iso-8859-1")
		_, _ = w.Write([]byte("Name\nCaf\xe9\n"))
	})
	mux.HandleFunc("/assets/undeclared.csv", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		_, _ = io.WriteString(w, asciiRows+"Z9,Café Ünit\n")
	})
	mux.HandleFunc("/assets/undeclared-latin1.csv", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("Name\nCaf\xe9\n"))
	})
	mux.HandleFunc("/assets/products.xlsx", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write([]byte("PK"))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// charset 추측에 쓰이는 첫 1024바이트를 넘기는 ASCII 행들
var asciiRows = "Product Code,Product Name\n" + strings.Repeat("A1,Plain Item\n", 200)

func newTestHTTPSource() *HTTPSource {
	return NewHTTPSource(fetcher.NewFromConfig(fetcher.Config{DisableLogging: true}))
}

func TestHTTPSource_Fetch(t *testing.T) {
	t.Parallel()

	srv := newCatalogServer(t)
	s := newTestHTTPSource()

	t.Run("CSV 다운로드와 BOM 제거", func(t *testing.T) {
		t.Parallel()

		res, err := s.Fetch(context.Background(), srv.URL+"/assets/products.csv")
		require.NoError(t, err)
		assert.Equal(t, "Product Code,Product Name\nD1,Chair\n", string(res.Body))
		assert.False(t, res.IsSpreadsheet())
	})

	t.Run("charset 변환", func(t *testing.T) {
		t.Parallel()

		res, err := s.Fetch(context.Background(), srv.URL+"/assets/latin1.csv")
		require.NoError(t, err)
		assert.Equal(t, "Name\nCafé\n", string(res.Body))
	})

	t.Run("charset 선언 없이 ASCII 뒤에 오는 UTF-8 유지", func(t *testing.T) {
		t.Parallel()

		res, err := s.Fetch(context.Background(), srv.URL+"/assets/undeclared.csv")
		require.NoError(t, err)
		assert.Equal(t, asciiRows+"Z9,Café Ünit\n", string(res.Body))
	})

	t.Run("charset 선언 없는 비 UTF-8 본문은 추측해서 변환", func(t *testing.T) {
		t.Parallel()

		res, err := s.Fetch(context.Background(), srv.URL+"/assets/undeclared-latin1.csv")
		require.NoError(t, err)
		assert.Equal(t, "Name\nCafé\n", string(res.Body))
	})

	t.Run("확장자로 XLSX 판별", func(t *testing.T) {
		t.Parallel()

		res, err := s.Fetch(context.Background(), srv.URL+"/assets/products.xlsx")
		require.NoError(t, err)
		assert.Equal(t, ContentTypeXLSX, res.ContentType)
		assert.True(t, res.IsSpreadsheet())
	})

	t.Run("404는 상태 코드를 담은 에러", func(t *testing.T) {
		t.Parallel()

		_, err := s.Fetch(context.Background(), srv.URL+"/assets/missing.csv")
		require.Error(t, err)

		var statusErr *fetcher.HTTPStatusError
		require.True(t, apperrors.As(err, &statusErr))
		assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
		assert.True(t, apperrors.Is(err, apperrors.Unavailable))
	})
}

func TestFileSource_Fetch(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "data"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "data", "products.csv"), []byte("a,b\n1,2\n"), 0o600))

	s := NewFileSource(root)

	res, err := s.Fetch(context.Background(), "/data/products.csv")
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", string(res.Body))
	assert.Equal(t, ContentTypeCSV, res.ContentType)

	_, err = s.Fetch(context.Background(), "data/missing.csv")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.NotFound))

	// 루트 밖으로 나가는 경로는 루트 기준으로 정리된다.
	_, err = s.Fetch(context.Background(), "../../etc/passwd")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.NotFound))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Fetch(ctx, "data/products.csv")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResolver(t *testing.T) {
	t.Parallel()

	srv := newCatalogServer(t)

	t.Run("URL 기준 위치", func(t *testing.T) {
		t.Parallel()

		r, err := NewResolver(srv.URL+"/assets", newTestHTTPSource())
		require.NoError(t, err)

		assert.Equal(t, srv.URL+"/assets/products.csv", r.Resolve("/products.csv"))
		assert.Equal(t, "https://cdn.example.com/x.csv", r.Resolve("https://cdn.example.com/x.csv"))

		res, err := r.Fetch(context.Background(), "products.csv")
		require.NoError(t, err)
		assert.Contains(t, string(res.Body), "D1,Chair")
	})

	t.Run("디렉토리 기준 위치", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "products.csv"), []byte("local"), 0o600))

		r, err := NewResolver(root, newTestHTTPSource())
		require.NoError(t, err)

		res, err := r.Fetch(context.Background(), "/products.csv")
		require.NoError(t, err)
		assert.Equal(t, "local", string(res.Body))

		res, err = r.Fetch(context.Background(), srv.URL+"/assets/products.csv")
		require.NoError(t, err)
		assert.Contains(t, string(res.Body), "D1,Chair")
	})

	t.Run("HTTP Fetcher 없음", func(t *testing.T) {
		t.Parallel()

		r, err := NewResolver("", nil)
		require.NoError(t, err)

		_, err = r.Fetch(context.Background(), "https://example.com/x.csv")
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.Internal))
	})
}
