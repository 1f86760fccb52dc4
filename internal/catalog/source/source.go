// Package source 카탈로그 원본 리소스를 위치(URL 또는 파일 경로)로부터 가져옵니다.
//
// 로더는 Fetcher 인터페이스에만 의존하며, 실행 환경에 따른 기준 위치 해석은 Resolver가 담당합니다.
package source

import (
	"context"
	"path"
	"strings"
)

const component = "catalog.source"

// Resource 가져온 원본 리소스입니다.
type Resource struct {
	// Location 실제로 읽은 위치 (해석된 URL 또는 파일 경로)
	Location string

	// ContentType 응답 또는 확장자로 판단한 MIME 타입 (알 수 없으면 빈 값)
	ContentType string

	Body []byte
}

// Fetcher location의 원본 리소스를 가져옵니다.
type Fetcher interface {
	Fetch(ctx context.Context, location string) (*Resource, error)
}

// FetcherFunc 함수를 Fetcher로 사용할 수 있게 합니다.
type FetcherFunc func(ctx context.Context, location string) (*Resource, error)

func (f FetcherFunc) Fetch(ctx context.Context, location string) (*Resource, error) {
	return f(ctx, location)
}

const (
	ContentTypeCSV  = "text/csv"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// IsSpreadsheet 리소스가 XLSX 문서인지 확인합니다.
func (r *Resource) IsSpreadsheet() bool {
	if strings.HasPrefix(strings.ToLower(r.ContentType), ContentTypeXLSX) {
		return true
	}

	return contentTypeByExt(r.Location) == ContentTypeXLSX
}

func contentTypeByExt(location string) string {
	if i := strings.IndexAny(location, "?#"); i >= 0 {
		location = location[:i]
	}
	switch strings.ToLower(path.Ext(location)) {
	case ".csv":
		return ContentTypeCSV
	case ".xlsx":
		return ContentTypeXLSX
	}
	return ""
}
