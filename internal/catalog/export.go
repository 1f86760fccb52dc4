package catalog

import (
	"context"

	"github.com/gocarina/gocsv"

	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
)

// ExportCSV 현재 카탈로그를 원본과 같은 헤더 이름의 CSV로 변환합니다.
// 결과는 다시 로드할 수 있는 형식이며, 평점과 리뷰 수는 포함하지 않습니다.
func (s *Service) ExportCSV(ctx context.Context) ([]byte, error) {
	data, err := gocsv.MarshalBytes(s.cached(ctx, false))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.Internal, "카탈로그를 CSV로 변환하지 못했습니다")
	}
	return data, nil
}
