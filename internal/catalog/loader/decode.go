package loader

import (
	"bytes"
	"sort"

	"github.com/360EntSecGroup-Skylar/excelize"

	"github.com/darkkaiser/catalog-server/internal/catalog/source"
	"github.com/darkkaiser/catalog-server/internal/catalog/tabular"
	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
)

// decode 리소스를 행 목록으로 변환합니다. XLSX는 첫 번째 시트를, 그 외에는 쉼표 구분 텍스트로 읽습니다.
func decode(res *source.Resource) ([][]string, error) {
	if res.IsSpreadsheet() {
		return decodeSpreadsheet(res.Body)
	}
	return tabular.Parse(string(res.Body)), nil
}

func decodeSpreadsheet(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ParsingFailed, "XLSX 카탈로그 원본을 열 수 없습니다")
	}

	sheets := f.GetSheetMap()
	if len(sheets) == 0 {
		return nil, nil
	}

	indexes := make([]int, 0, len(sheets))
	for i := range sheets {
		indexes = append(indexes, i)
	}
	sort.Ints(indexes)

	rows := tabular.Compact(f.GetRows(sheets[indexes[0]]))
	if len(rows) == 0 {
		return rows, nil
	}

	// 시트는 값이 있는 마지막 셀까지만 행을 반환하므로 헤더 폭에 맞춰 빈 셀을 채운다.
	width := len(rows[0])
	for i, row := range rows[1:] {
		if len(row) < width {
			padded := make([]string, width)
			copy(padded, row)
			rows[i+1] = padded
		}
	}

	return rows, nil
}
