package catalog

import "github.com/darkkaiser/catalog-server/internal/catalog/domain"

// fallbackProducts 원본을 로드할 수 없을 때 대신 제공하는 샘플 상품 목록입니다.
// 호출할 때마다 새 목록을 반환합니다.
func fallbackProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "FALLBACK1",
			Name:        "Dental Compressor A101",
			Price:       1299.99,
			Image:       domain.PlaceholderImage,
			Category:    "DENTAL",
			Brand:       "DENTAL",
			Description: "Oil-free dental compressor with 25L tank, designed for dental clinics with quiet operation.",
			InStock:     true,
			Rating:      domain.Float64Ptr(4.5),
			Reviews:     domain.IntPtr(28),
		},
		{
			ID:          "FALLBACK2",
			Name:        "Medical Equipment Sample",
			Price:       899.99,
			Image:       domain.PlaceholderImage,
			Category:    "MEDICAL",
			Brand:       "MEDICAL",
			Description: "Professional medical equipment for healthcare facilities.",
			InStock:     true,
			Rating:      domain.Float64Ptr(4.3),
			Reviews:     domain.IntPtr(15),
		},
		{
			ID:          "FALLBACK3",
			Name:        "Laboratory Instrument",
			Price:       2499.99,
			Image:       domain.PlaceholderImage,
			Category:    "LABORATORY",
			Brand:       "LABORATORY",
			Description: "High-precision laboratory instrument for research and diagnostics.",
			InStock:     true,
			Rating:      domain.Float64Ptr(4.7),
			Reviews:     domain.IntPtr(42),
		},
	}
}
