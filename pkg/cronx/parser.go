// Package cronx 애플리케이션 전체에서 공통으로 사용하는 Cron 표현식 파서를 제공합니다.
package cronx

import "github.com/robfig/cron/v3"

// StandardParser 초 단위를 포함하는 6필드 Cron 파서를 반환합니다. 표준 5필드 형식은 지원하지 않습니다.
//
// 필드 순서는 [초] [분] [시] [일] [월] [요일]이며 @daily, @every 1h 같은 Descriptor도 지원합니다.
//
// 예시:
//   - "0 0 */6 * * *" : 6시간마다 정각
//   - "@every 30m"    : 30분 간격
func StandardParser() cron.Parser {
	return cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
}
