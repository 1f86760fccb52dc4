package domain

// SortKey 상품 목록 정렬 기준입니다.
type SortKey string

const (
	SortNameAsc    SortKey = "name-asc"
	SortNameDesc   SortKey = "name-desc"
	SortPriceAsc   SortKey = "price-asc"
	SortPriceDesc  SortKey = "price-desc"
	SortRatingDesc SortKey = "rating-desc"
	SortPopularity SortKey = "popularity"
)

// Known 정의된 정렬 기준인지 여부를 반환합니다.
func (k SortKey) Known() bool {
	switch k {
	case SortNameAsc, SortNameDesc, SortPriceAsc, SortPriceDesc, SortRatingDesc, SortPopularity:
		return true
	}
	return false
}
