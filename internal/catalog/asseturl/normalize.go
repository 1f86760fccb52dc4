// Package asseturl 외부 파일 호스팅의 공유 링크를 직접 접근 가능한 URL로 변환합니다.
package asseturl

import "regexp"

// driveFileView 구글 드라이브 "파일 보기" 공유 링크입니다. (예: https://drive.google.com/file/d/<ID>/view?usp=sharing)
var driveFileView = regexp.MustCompile(`^https?://drive\.google\.com/file/d/([a-zA-Z0-9_-]+)`)

const driveDirectContent = "https://drive.google.com/uc?export=view&id="

// Normalize 구글 드라이브 공유 링크이면 직접 콘텐츠 URL로 바꾸고, 그 외의 값은 그대로 반환합니다.
func Normalize(raw string) string {
	m := driveFileView.FindStringSubmatch(raw)
	if m == nil {
		return raw
	}
	return driveDirectContent + m[1]
}
