// Package strutil 문자열 처리를 위한 유틸리티 함수들을 제공합니다.
package strutil

import "strings"

// NormalizeSpaces 문자열의 앞뒤 공백을 제거하고 줄바꿈을 포함한 연속된 공백을 하나로 축약합니다.
// 예: "  hello \n  world  " -> "hello world"
func NormalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate s를 최대 limit개의 문자(rune)로 자릅니다. 멀티바이트 문자가 중간에 잘리지 않습니다.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}

// Mask 토큰, 비밀번호 등 민감한 정보를 로그에 남길 수 있도록 마스킹합니다.
func Mask(data string) string {
	if data == "" {
		return ""
	}

	// 3자 이하는 전체 마스킹
	if len(data) <= 3 {
		return "***"
	}

	// 앞 4자만 표시하고 나머지는 마스킹
	if len(data) <= 12 {
		return data[:4] + "***"
	}

	// 긴 토큰은 앞 4자 + 마스킹 + 뒤 4자
	return data[:4] + "***" + data[len(data)-4:]
}
