// Package validation 설정 파일과 API 입력값 검증에 사용하는 함수들을 제공합니다.
//
// 모든 함수는 유효하지 않은 입력에 대해 원인을 담은 error를 반환하며, 동시에 호출해도 안전합니다.
package validation
