package mapper

import (
	"regexp"
	"strings"

	"github.com/iancoleman/strcase"
)

// column 원본 헤더에서 인식하는 논리 컬럼입니다.
type column int

const (
	colCode column = iota
	colName
	colCategory
	colDepartment
	colSubCategory
	colDescription
	colImage
	colPrice
	colCatalogue
	colVideo
	colRating
	colReviews

	numColumns
)

// columnAliases 논리 컬럼별 헤더 이름 후보입니다. 앞쪽 후보가 우선합니다.
var columnAliases = [numColumns][]string{
	colCode:        {"Product Code", "Code", "SKU"},
	colName:        {"Product Name", "Name"},
	colCategory:    {"Product Main Category", "Main Category", "Category"},
	colDepartment:  {"Department"},
	colSubCategory: {"Product Sub Category", "Sub Category"},
	colDescription: {"Description"},
	colImage:       {"Image 2", "Image"},
	colPrice:       {"Price 1 (Customer type 1)", "Price"},
	colCatalogue:   {"Catalogue", "Catalog"},
	colVideo:       {"Video Link", "Video"},
	colRating:      {"Rating"},
	colReviews:     {"Reviews", "Review Count"},
}

var requiredColumns = []column{colCode, colName, colCategory}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// canonicalKey 대소문자, 앞뒤 공백, 구분자 차이를 무시하는 헤더 비교 키를 반환합니다.
// "DEPARTMENT ", "Department", "department"는 모두 같은 키가 됩니다.
func canonicalKey(header string) string {
	s := strings.ToLower(strcase.ToSnake(strings.TrimSpace(header)))
	return strings.Trim(nonAlnum.ReplaceAllString(s, "_"), "_")
}

// resolveColumns 헤더에서 각 논리 컬럼의 위치를 찾습니다. 없는 컬럼은 -1입니다.
func resolveColumns(header []string) [numColumns]int {
	positions := make(map[string]int, len(header))
	for i, h := range header {
		key := canonicalKey(h)
		if _, exists := positions[key]; !exists {
			positions[key] = i
		}
	}

	var idx [numColumns]int
	for c := column(0); c < numColumns; c++ {
		idx[c] = -1
		for _, alias := range columnAliases[c] {
			if pos, ok := positions[canonicalKey(alias)]; ok {
				idx[c] = pos
				break
			}
		}
	}
	return idx
}
