package source

import (
	"bytes"
	"context"
	"io"
	"mime"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"

	"github.com/darkkaiser/catalog-server/internal/pkg/fetcher"
	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
	applog "github.com/darkkaiser/catalog-server/pkg/log"
)

// HTTPSource fetcher 체인으로 원본을 내려받습니다.
//
// 200 이외의 응답은 상태 코드를 담은 *fetcher.HTTPStatusError로 실패합니다.
// 텍스트 응답은 UTF-8이 아닌 charset이 선언되었거나 본문이 올바른 UTF-8이 아닐 때만 UTF-8로 변환합니다.
// charset 선언이 없으면 앞부분만 보고 추측하므로 유효한 UTF-8 본문은 그대로 둡니다.
type HTTPSource struct {
	fetcher fetcher.Fetcher
}

var _ Fetcher = (*HTTPSource)(nil)

func NewHTTPSource(f fetcher.Fetcher) *HTTPSource {
	if f == nil {
		panic("source: HTTPSource의 fetcher가 nil입니다")
	}
	return &HTTPSource{fetcher: f}
}

func (s *HTTPSource) Fetch(ctx context.Context, location string) (*Resource, error) {
	resp, err := fetcher.Get(ctx, s.fetcher, location)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.Unavailable, "카탈로그 원본(%s)을 가져오지 못했습니다", location)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.System, "카탈로그 원본(%s)을 읽는 중 오류가 발생했습니다", location)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	contentType := resp.Header.Get("Content-Type")
	if needsTranscode(contentType, data) {
		r, err := charset.NewReader(bytes.NewReader(data), contentType)
		if err != nil {
			return nil, apperrors.Wrapf(err, apperrors.ParsingFailed, "카탈로그 원본(%s)의 인코딩을 변환할 수 없습니다", location)
		}
		if data, err = io.ReadAll(r); err != nil {
			return nil, apperrors.Wrapf(err, apperrors.ParsingFailed, "카탈로그 원본(%s)의 인코딩을 변환할 수 없습니다", location)
		}
	}

	if contentType == "" || strings.HasPrefix(contentType, "application/octet-stream") {
		if byExt := contentTypeByExt(location); byExt != "" {
			contentType = byExt
		}
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"location":     location,
		"content_type": contentType,
		"bytes":        len(data),
	}).Debug("카탈로그 원본 다운로드 완료")

	return &Resource{Location: location, ContentType: contentType, Body: data}, nil
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func needsTranscode(contentType string, data []byte) bool {
	if contentType == "" {
		return false
	}
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.HasPrefix(mediaType, "text/") {
		return false
	}
	if cs := strings.ToLower(strings.TrimSpace(params["charset"])); cs != "" {
		return cs != "utf-8" && cs != "utf8"
	}
	return !utf8.Valid(data)
}
