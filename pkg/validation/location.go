package validation

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

// ValidateURL urlStr이 호스트를 가진 http 또는 https URL인지 검사합니다.
func ValidateURL(urlStr string) error {
	u, err := url.Parse(urlStr)
	if err != nil {
		return fmt.Errorf("잘못된 URL 형식입니다 (input=%q): %w", urlStr, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL은 http 또는 https 스키마를 사용해야 합니다 (input=%q)", urlStr)
	}
	if u.Host == "" {
		return fmt.Errorf("URL에 호스트가 없습니다 (input=%q)", urlStr)
	}
	return nil
}

// ValidateDir path가 존재하는 디렉토리인지 검사합니다.
func ValidateDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("디렉토리가 존재하지 않습니다 (path=%q)", path)
		}
		return fmt.Errorf("디렉토리에 접근할 수 없습니다 (path=%q): %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("디렉토리가 아닙니다 (path=%q)", path)
	}
	return nil
}

// ValidateBaseLocation 원본 리소스의 기준 위치가 http(s) URL 또는 존재하는 디렉토리인지 검사합니다.
// 빈 값은 현재 작업 디렉토리를 의미하므로 허용합니다.
func ValidateBaseLocation(base string) error {
	switch {
	case base == "":
		return nil
	case strings.HasPrefix(base, "http://"), strings.HasPrefix(base, "https://"):
		return ValidateURL(base)
	default:
		return ValidateDir(base)
	}
}
