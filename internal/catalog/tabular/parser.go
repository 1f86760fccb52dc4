// Package tabular 쉼표로 구분된 카탈로그 원본 텍스트를 행/필드 목록으로 분해합니다.
//
// RFC-4180과 유사하지만 엄격하지 않은 형식을 허용합니다. 큰따옴표로 감싼 필드 안에는
// 쉼표와 줄바꿈이 들어갈 수 있고, 큰따옴표는 두 번 써서 표현합니다.
// 모든 필드는 앞뒤 공백이 제거되며, 모든 필드가 빈 행은 버려집니다.
package tabular

import "strings"

// Parse content를 행 목록으로 분해합니다. 첫 번째 행이 헤더입니다.
//
// 필드 수 검사는 하지 않습니다. 헤더와 필드 수가 다른 행의 처리는 호출자가 결정합니다.
// 따옴표 밖의 CRLF는 줄 끝으로 처리하고, 따옴표 안의 CRLF는 필드 값에 그대로 남습니다.
func Parse(content string) [][]string {
	lines := strings.Split(content, "\n")

	p := &parser{}
	for i, line := range lines {
		// 행 끝의 '\r'은 마지막 필드에 붙었다가 endField의 공백 제거로 사라진다.
		p.scan(line)

		// 따옴표 안에서 줄이 끝나면 줄바꿈을 필드 값으로 보존하고 다음 줄에서 이어간다.
		if p.inQuotes && i < len(lines)-1 {
			p.field.WriteByte('\n')
			continue
		}
		p.endRow()
	}

	return p.rows
}

type parser struct {
	inQuotes bool
	field    strings.Builder
	row      []string
	rows     [][]string
}

func (p *parser) scan(line string) {
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			if p.inQuotes && i+1 < len(line) && line[i+1] == '"' {
				p.field.WriteByte('"')
				i++
				continue
			}
			p.inQuotes = !p.inQuotes

		case c == ',' && !p.inQuotes:
			p.endField()

		default:
			p.field.WriteByte(c)
		}
	}
}

func (p *parser) endField() {
	p.row = append(p.row, strings.TrimSpace(p.field.String()))
	p.field.Reset()
}

func (p *parser) endRow() {
	p.endField()
	if !isBlank(p.row) {
		p.rows = append(p.rows, p.row)
	}
	p.row = nil
	p.inQuotes = false
}

func isBlank(row []string) bool {
	for _, f := range row {
		if f != "" {
			return false
		}
	}
	return true
}

// Compact 다른 디코더(XLSX 등)에서 얻은 행에 Parse와 같은 규칙(필드 trim, 빈 행 제거)을 적용합니다.
func Compact(rows [][]string) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		trimmed := make([]string, len(row))
		for i, f := range row {
			trimmed[i] = strings.TrimSpace(f)
		}
		if !isBlank(trimmed) {
			out = append(out, trimmed)
		}
	}
	return out
}

// Quote Parse가 원래 값으로 되돌릴 수 있도록 필드를 따옴표로 감쌉니다.
// 쉼표, 큰따옴표, 줄바꿈이 없는 값은 그대로 반환합니다.
func Quote(field string) string {
	if !strings.ContainsAny(field, ",\"\n\r") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// JoinRow 필드를 Quote로 감싸 한 줄로 만듭니다.
func JoinRow(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = Quote(f)
	}
	return strings.Join(quoted, ",")
}
