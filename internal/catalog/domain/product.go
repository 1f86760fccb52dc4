// Package domain 카탈로그 상품과 장바구니 항목 모델을 정의합니다.
package domain

const (
	// PlaceholderImage 이미지가 없는 상품에 사용하는 기본 이미지 경로입니다.
	PlaceholderImage = "/api/placeholder/300/300"

	DefaultName        = "Unnamed Product"
	DefaultCategory    = "General"
	DefaultBrand       = "Unknown"
	DefaultDescription = "No description available"

	// AllCategories 전체 상품을 의미하는 카테고리 이름입니다. 카테고리 목록의 첫 번째 항목이 됩니다.
	AllCategories = "All"
)

// Product 카탈로그의 상품 한 건입니다.
//
// 한 스냅샷 안에서 ID는 유일하고, Price는 0 이상이며,
// Category, Brand, Description, Image는 비어 있지 않습니다.
type Product struct {
	ID          string   `json:"id" csv:"Product Code"`
	Name        string   `json:"name" csv:"Product Name"`
	Price       float64  `json:"price" csv:"Price"`
	Image       string   `json:"image" csv:"Image"`
	Category    string   `json:"category" csv:"Main Category"`
	Brand       string   `json:"brand" csv:"Department"`
	Description string   `json:"description" csv:"Description"`
	InStock     bool     `json:"inStock" csv:"-"`
	Rating      *float64 `json:"rating,omitempty" csv:"-"`
	Reviews     *int     `json:"reviews,omitempty" csv:"-"`
	CatalogLink string   `json:"catalogLink,omitempty" csv:"Catalogue"`
	VideoLink   string   `json:"videoLink,omitempty" csv:"Video Link"`
	SubCategory string   `json:"subCategory,omitempty" csv:"Product Sub Category"`
}

// Clone 포인터 필드까지 복사한 Product를 반환합니다.
func (p Product) Clone() Product {
	if p.Rating != nil {
		v := *p.Rating
		p.Rating = &v
	}
	if p.Reviews != nil {
		v := *p.Reviews
		p.Reviews = &v
	}
	return p
}

// CloneAll 목록의 깊은 복사본을 반환합니다. nil 목록은 빈 목록이 됩니다.
func CloneAll(products []Product) []Product {
	out := make([]Product, len(products))
	for i, p := range products {
		out[i] = p.Clone()
	}
	return out
}

// Float64Ptr, IntPtr 선택 필드 값을 만들 때 사용합니다.
func Float64Ptr(v float64) *float64 { return &v }

func IntPtr(v int) *int { return &v }
