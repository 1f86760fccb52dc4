package cronx

import (
	"fmt"
	"strings"
)

// Validate spec이 StandardParser로 해석 가능한 Cron 표현식인지 검사합니다. 앞뒤 공백은 무시합니다.
func Validate(spec string) error {
	trimmed := strings.TrimSpace(spec)
	if _, err := StandardParser().Parse(trimmed); err != nil {
		return fmt.Errorf("Cron 표현식 파싱 실패 (spec=%q, 형식: 초 분 시 일 월 요일): %w", trimmed, err)
	}
	return nil
}
