// Package mapper 카탈로그 원본의 헤더 행과 값 행을 domain.Product로 변환합니다.
package mapper

import (
	"fmt"
	"hash/fnv"
	"math"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/cast"

	"github.com/darkkaiser/catalog-server/internal/catalog/asseturl"
	"github.com/darkkaiser/catalog-server/internal/catalog/domain"
	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
)

// IDStrategy Product Code가 비어 있는 행의 ID 결정 방식입니다.
type IDStrategy string

const (
	// IDStrategyHash 이름, 카테고리, 브랜드의 해시로 ID를 만듭니다. 행 순서가 바뀌어도 유지됩니다.
	IDStrategyHash IDStrategy = "hash"

	// IDStrategyRow 데이터 행 번호로 ID를 만듭니다. (product-<행 번호>)
	IDStrategyRow IDStrategy = "row"

	// IDStrategyReject 코드가 없는 행을 거부합니다.
	IDStrategyReject IDStrategy = "reject"
)

// Valid 정의된 전략인지 여부를 반환합니다.
func (s IDStrategy) Valid() bool {
	switch s {
	case IDStrategyHash, IDStrategyRow, IDStrategyReject:
		return true
	}
	return false
}

var (
	// ErrMissingProductCode IDStrategyReject에서 Product Code가 빈 행입니다.
	ErrMissingProductCode = apperrors.New(apperrors.InvalidInput, "Product Code가 비어 있는 행입니다")

	// ErrMissingHeader 필수 헤더가 없습니다.
	ErrMissingHeader = apperrors.New(apperrors.ParsingFailed, "카탈로그 원본에 필수 헤더가 없습니다")
)

var (
	priceDisallowed = regexp.MustCompile(`[^0-9.\-]`)
	numericPrefix   = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)`)
	markup          = regexp.MustCompile(`<[a-zA-Z/!][^>]*>`)
)

// Option Mapper 설정을 변경합니다.
type Option func(*Mapper)

// WithIDStrategy ID 결정 방식을 지정합니다. 알 수 없는 값은 무시됩니다.
func WithIDStrategy(s IDStrategy) Option {
	return func(m *Mapper) {
		if s.Valid() {
			m.idStrategy = s
		}
	}
}

// WithHTMLStripping 상품 설명에 포함된 HTML 태그를 제거하고 텍스트만 남깁니다.
func WithHTMLStripping(enabled bool) Option {
	return func(m *Mapper) { m.stripHTML = enabled }
}

// Mapper 하나의 헤더에 대해 값 행을 Product로 변환합니다. 동시에 사용해도 안전합니다.
type Mapper struct {
	header     []string
	cols       [numColumns]int
	idStrategy IDStrategy
	stripHTML  bool
}

// New 헤더 행으로 Mapper를 생성합니다.
func New(header []string, opts ...Option) *Mapper {
	m := &Mapper{
		header:     header,
		cols:       resolveColumns(header),
		idStrategy: IDStrategyHash,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Width 헤더의 필드 수입니다. 값 행의 필드 수는 이와 같아야 합니다.
func (m *Mapper) Width() int { return len(m.header) }

// IDStrategy 현재 ID 결정 방식을 반환합니다.
func (m *Mapper) IDStrategy() IDStrategy { return m.idStrategy }

// ValidateHeader Product Code, Product Name, Main Category 헤더가 모두 있는지 확인합니다.
// 헤더 순서나 그 외 컬럼의 존재 여부는 검사하지 않습니다.
func (m *Mapper) ValidateHeader() error {
	var missing []string
	for _, c := range requiredColumns {
		if m.cols[c] < 0 {
			missing = append(missing, columnAliases[c][0])
		}
	}
	if len(missing) > 0 {
		return apperrors.Wrapf(ErrMissingHeader, apperrors.ParsingFailed, "필수 헤더 누락: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Map 값 행을 Product로 변환합니다. row는 1부터 시작하는 데이터 행 번호입니다.
//
// 값이 비었거나 형식이 잘못된 필드는 기본값으로 대체되며, 에러는 IDStrategyReject에서
// Product Code가 비어 있을 때만 반환됩니다.
func (m *Mapper) Map(values []string, row int) (domain.Product, error) {
	p := domain.Product{
		Name:        m.textOr(values, colName, domain.DefaultName),
		Category:    m.textOr(values, colCategory, domain.DefaultCategory),
		Description: m.description(values),
		Image:       asseturl.Normalize(m.textOr(values, colImage, domain.PlaceholderImage)),
		Price:       ParsePrice(m.text(values, colPrice)),
		InStock:     true,
		CatalogLink: m.text(values, colCatalogue),
		VideoLink:   m.text(values, colVideo),
		SubCategory: m.text(values, colSubCategory),
	}

	p.Brand = m.text(values, colDepartment)
	if p.Brand == "" {
		p.Brand = p.SubCategory
	}
	if p.Brand == "" {
		p.Brand = domain.DefaultBrand
	}

	if v, ok := parseRating(m.text(values, colRating)); ok {
		p.Rating = &v
	}
	if v, ok := parseReviews(m.text(values, colReviews)); ok {
		p.Reviews = &v
	}

	p.ID = m.text(values, colCode)
	if p.ID == "" {
		switch m.idStrategy {
		case IDStrategyReject:
			return domain.Product{}, apperrors.Wrapf(ErrMissingProductCode, apperrors.InvalidInput, "%d번째 행", row)
		case IDStrategyRow:
			p.ID = fmt.Sprintf("product-%d", row)
		default:
			p.ID = HashID(p.Name, p.Category, p.Brand)
		}
	}

	return p, nil
}

func (m *Mapper) text(values []string, c column) string {
	i := m.cols[c]
	if i < 0 || i >= len(values) {
		return ""
	}
	return strings.TrimSpace(values[i])
}

func (m *Mapper) textOr(values []string, c column, def string) string {
	if v := m.text(values, c); v != "" {
		return v
	}
	return def
}

func (m *Mapper) description(values []string) string {
	v := m.text(values, colDescription)
	if m.stripHTML && markup.MatchString(v) {
		v = htmlText(v)
	}
	if v == "" {
		return domain.DefaultDescription
	}
	return v
}

// htmlText HTML 조각의 텍스트만 추출합니다. <br>은 줄바꿈으로 바꿉니다.
func htmlText(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("script, style").Remove()
	return strings.TrimSpace(doc.Text())
}

// ParsePrice 가격 문자열에서 숫자, '.', '-' 외의 문자를 제거한 뒤 앞쪽의 숫자 부분을 해석합니다.
// 해석할 수 없거나 음수이면 0을 반환합니다.
//
//	"1,299.99" → 1299.99, "AED 500" → 500, "" → 0, "abc" → 0
func ParsePrice(raw string) float64 {
	s := numericPrefix.FindString(priceDisallowed.ReplaceAllString(raw, ""))
	if s == "" {
		return 0
	}

	v, err := cast.ToFloat64E(s)
	// -0도 0으로 돌려준다.
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0
	}
	return v
}

func parseRating(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	v, err := cast.ToFloat64E(raw)
	if err != nil || math.IsNaN(v) || v < 0 || v > 5 {
		return 0, false
	}
	return math.Abs(v), true
}

func parseReviews(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	// 8진수 해석을 피하기 위해 실수로 읽은 뒤 정수로 변환한다.
	v, err := cast.ToFloat64E(strings.ReplaceAll(raw, ",", ""))
	if err != nil || math.IsNaN(v) || v < 0 || v > math.MaxInt32 {
		return 0, false
	}
	return int(v), true
}

// HashID 이름, 카테고리, 브랜드로 만든 안정적인 ID를 반환합니다. (product-<FNV-1a 32bit hex>)
func HashID(name, category, brand string) string {
	h := fnv.New32a()
	for _, part := range []string{name, category, brand} {
		_, _ = h.Write([]byte(strings.ToLower(strings.TrimSpace(part))))
		_, _ = h.Write([]byte{0})
	}
	return fmt.Sprintf("product-%08x", h.Sum32())
}
