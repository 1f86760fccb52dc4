// Package loader 원본 리소스를 가져와 파싱하고 매핑하여 상품 목록을 만듭니다.
package loader

import (
	"context"

	"github.com/darkkaiser/catalog-server/internal/catalog/domain"
	"github.com/darkkaiser/catalog-server/internal/catalog/mapper"
	"github.com/darkkaiser/catalog-server/internal/catalog/source"
	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
	applog "github.com/darkkaiser/catalog-server/pkg/log"
)

const component = "catalog.loader"

// Stats 한 번의 로드에서 행이 처리된 결과입니다.
type Stats struct {
	TotalRows  int `json:"totalRows"`
	Accepted   int `json:"accepted"`
	Mismatched int `json:"mismatched"`
	MissingID  int `json:"missingId"`
	Duplicates int `json:"duplicates"`
}

// Result 로드 결과입니다. Products는 원본의 행 순서를 유지합니다.
type Result struct {
	Location string
	Products []domain.Product
	Stats    Stats
}

// Option Loader 설정을 변경합니다.
type Option func(*Loader)

// WithMapperOptions 각 로드에서 Mapper를 만들 때 적용할 옵션을 지정합니다.
func WithMapperOptions(opts ...mapper.Option) Option {
	return func(l *Loader) { l.mapperOpts = append(l.mapperOpts, opts...) }
}

// Loader 카탈로그 원본 하나를 상품 목록으로 변환합니다.
type Loader struct {
	fetcher    source.Fetcher
	mapperOpts []mapper.Option
}

func New(f source.Fetcher, opts ...Option) *Loader {
	if f == nil {
		panic("loader: source.Fetcher가 nil입니다")
	}

	l := &Loader{fetcher: f}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load sourceID의 원본을 읽어 상품 목록을 반환합니다.
//
// 가져오기 실패와 필수 헤더 누락은 에러입니다. 헤더와 데이터 행이 없으면 빈 목록을 반환합니다.
// 필드 수가 헤더와 다른 행, ID가 없는 행(reject 정책), 중복 ID 행은 건너뛰고 Stats에 집계합니다.
func (l *Loader) Load(ctx context.Context, sourceID string) (*Result, error) {
	res, err := l.fetcher.Fetch(ctx, sourceID)
	if err != nil {
		return nil, err
	}

	rows, err := decode(res)
	if err != nil {
		return nil, err
	}

	result := &Result{Location: res.Location, Products: []domain.Product{}}
	if len(rows) < 2 {
		applog.WithComponentAndFields(component, applog.Fields{
			"source": sourceID,
			"rows":   len(rows),
		}).Warn("카탈로그 원본에 데이터 행이 없습니다")
		return result, nil
	}

	header, data := rows[0], rows[1:]
	m := mapper.New(header, l.mapperOpts...)
	if err := m.ValidateHeader(); err != nil {
		return nil, apperrors.Wrapf(err, apperrors.ParsingFailed, "카탈로그 원본(%s)의 헤더가 올바르지 않습니다", sourceID)
	}

	seen := make(map[string]int, len(data))
	result.Stats.TotalRows = len(data)

	for i, values := range data {
		rowNumber := i + 1

		if len(values) != m.Width() {
			result.Stats.Mismatched++
			applog.WithComponentAndFields(component, applog.Fields{
				"source":   sourceID,
				"row":      rowNumber,
				"expected": m.Width(),
				"actual":   len(values),
			}).Warn("필드 수가 헤더와 일치하지 않아 행을 건너뜁니다")
			continue
		}

		p, err := m.Map(values, rowNumber)
		if err != nil {
			result.Stats.MissingID++
			applog.WithComponentAndFields(component, applog.Fields{
				"source": sourceID,
				"row":    rowNumber,
				"error":  err,
			}).Warn("Product Code가 없어 행을 건너뜁니다")
			continue
		}

		if first, dup := seen[p.ID]; dup {
			result.Stats.Duplicates++
			applog.WithComponentAndFields(component, applog.Fields{
				"source":     sourceID,
				"row":        rowNumber,
				"first_row":  first,
				"product_id": p.ID,
			}).Warn("중복된 상품 ID의 행을 건너뜁니다")
			continue
		}
		seen[p.ID] = rowNumber

		result.Products = append(result.Products, p)
	}

	result.Stats.Accepted = len(result.Products)

	applog.WithComponentAndFields(component, applog.Fields{
		"source":     sourceID,
		"location":   res.Location,
		"total_rows": result.Stats.TotalRows,
		"accepted":   result.Stats.Accepted,
		"mismatched": result.Stats.Mismatched,
		"missing_id": result.Stats.MissingID,
		"duplicates": result.Stats.Duplicates,
	}).Info("카탈로그 로드 완료")

	return result, nil
}
