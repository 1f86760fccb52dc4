package catalog

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/darkkaiser/catalog-server/internal/catalog/domain"
)

// ProductsByCategory category에 속한 상품 목록을 반환합니다. "All"이면 전체 목록을 반환합니다.
// 카테고리 비교는 대소문자를 구분합니다.
func (s *Service) ProductsByCategory(ctx context.Context, category string) []domain.Product {
	return filter(s.cached(ctx, false), func(p domain.Product) bool { return inCategory(p, category) })
}

// ProductByID id가 정확히 일치하는 첫 번째 상품을 반환합니다.
func (s *Service) ProductByID(ctx context.Context, id string) (domain.Product, bool) {
	for _, p := range s.cached(ctx, false) {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return domain.Product{}, false
}

// Search 이름, 설명, 브랜드 중 하나에 query가 포함된 상품 목록을 반환합니다.
// 대소문자를 구분하지 않으며, 빈 검색어는 모든 상품과 일치합니다.
func (s *Service) Search(ctx context.Context, query string) []domain.Product {
	q := normalizeQuery(query)
	return filter(s.cached(ctx, false), func(p domain.Product) bool { return matches(p, q) })
}

// Query 상품 목록 조회 조건입니다. 빈 필드는 조건으로 사용하지 않습니다.
type Query struct {
	Category string
	Search   string
	Sort     domain.SortKey

	// Reload 조회 전에 원본을 강제로 다시 로드합니다.
	Reload bool
}

// Find 카테고리와 검색어를 모두 만족하는 상품을 Sort 순서로 반환합니다.
func (s *Service) Find(ctx context.Context, q Query) []domain.Product {
	search := normalizeQuery(q.Search)
	matched := filter(s.cached(ctx, q.Reload), func(p domain.Product) bool {
		return (q.Category == "" || inCategory(p, q.Category)) && matches(p, search)
	})
	if q.Sort == "" {
		return matched
	}
	return SortProducts(matched, q.Sort)
}

func filter(products []domain.Product, keep func(domain.Product) bool) []domain.Product {
	matched := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if keep(p) {
			matched = append(matched, p.Clone())
		}
	}
	return matched
}

func inCategory(p domain.Product, category string) bool {
	return category == domain.AllCategories || p.Category == category
}

func normalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// matches q는 normalizeQuery를 거친 값이어야 합니다.
func matches(p domain.Product, q string) bool {
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Brand), q)
}

// SortProducts key 순서로 정렬한 새 목록을 반환합니다. 입력 목록은 변경하지 않습니다.
//
// 정렬은 안정적이어서 같은 값의 상품은 입력 순서를 유지합니다.
// 알 수 없는 key는 입력 순서 그대로의 복사본을 반환합니다.
func SortProducts(products []domain.Product, key domain.SortKey) []domain.Product {
	sorted := domain.CloneAll(products)

	switch key {
	case domain.SortNameAsc, domain.SortNameDesc:
		// Collator는 동시에 사용할 수 없으므로 호출마다 생성한다.
		c := collate.New(language.English, collate.IgnoreCase)
		slices.SortStableFunc(sorted, func(a, b domain.Product) int {
			if key == domain.SortNameDesc {
				return c.CompareString(b.Name, a.Name)
			}
			return c.CompareString(a.Name, b.Name)
		})

	case domain.SortPriceAsc:
		slices.SortStableFunc(sorted, func(a, b domain.Product) int { return cmp.Compare(a.Price, b.Price) })

	case domain.SortPriceDesc:
		slices.SortStableFunc(sorted, func(a, b domain.Product) int { return cmp.Compare(b.Price, a.Price) })

	case domain.SortRatingDesc:
		slices.SortStableFunc(sorted, func(a, b domain.Product) int { return cmp.Compare(ratingOf(b), ratingOf(a)) })

	case domain.SortPopularity:
		slices.SortStableFunc(sorted, func(a, b domain.Product) int { return cmp.Compare(reviewsOf(b), reviewsOf(a)) })
	}

	return sorted
}

func ratingOf(p domain.Product) float64 {
	if p.Rating == nil {
		return 0
	}
	return *p.Rating
}

func reviewsOf(p domain.Product) int {
	if p.Reviews == nil {
		return 0
	}
	return *p.Reviews
}
