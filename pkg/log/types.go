// Package log logrus 기반의 애플리케이션 로깅을 제공합니다.
//
// Setup으로 로테이션되는 로그 파일(main, critical, verbose)과 콘솔 출력을 구성하고,
// 각 컴포넌트는 WithComponent/WithComponentAndFields로 component 필드가 붙은 Entry를 사용합니다.
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Level logrus.Level의 별칭입니다.
type Level = logrus.Level

const (
	PanicLevel Level = logrus.PanicLevel
	FatalLevel Level = logrus.FatalLevel
	ErrorLevel Level = logrus.ErrorLevel
	WarnLevel  Level = logrus.WarnLevel
	InfoLevel  Level = logrus.InfoLevel
	DebugLevel Level = logrus.DebugLevel
	TraceLevel Level = logrus.TraceLevel
)

// AllLevels logrus.AllLevels의 별칭입니다.
var AllLevels = logrus.AllLevels

type (
	Fields        = logrus.Fields
	Entry         = logrus.Entry
	Hook          = logrus.Hook
	Logger        = logrus.Logger
	Formatter     = logrus.Formatter
	TextFormatter = logrus.TextFormatter
)

// StandardLogger 전역 logrus 로거를 반환합니다.
func StandardLogger() *Logger { return logrus.StandardLogger() }

// SetOutput 전역 로거의 출력 대상을 변경합니다. 주로 테스트에서 사용합니다.
func SetOutput(w io.Writer) { logrus.SetOutput(w) }

// SetLevel 전역 로거의 레벨을 변경합니다.
func SetLevel(level Level) { logrus.SetLevel(level) }

// GetLevel 전역 로거의 현재 레벨을 반환합니다.
func GetLevel() Level { return logrus.GetLevel() }

// ParseLevel 문자열을 로그 레벨로 변환합니다.
func ParseLevel(s string) (Level, error) { return logrus.ParseLevel(s) }

// SetDebugMode debug가 true이면 Trace, 아니면 Info 레벨로 설정합니다.
func SetDebugMode(debug bool) {
	if debug {
		logrus.SetLevel(TraceLevel)
		return
	}
	logrus.SetLevel(InfoLevel)
}

func Info(args ...any)  { logrus.Info(args...) }
func Warn(args ...any)  { logrus.Warn(args...) }
func Error(args ...any) { logrus.Error(args...) }
func Debug(args ...any) { logrus.Debug(args...) }

// WithComponent component 필드를 포함한 Entry를 반환합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField("component", component)
}

// WithComponentAndFields component 필드와 fields를 함께 포함한 Entry를 반환합니다.
// fields에 component 키가 있어도 인자로 받은 component가 우선합니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	merged := make(Fields, len(fields)+1)
	for k, v := range fields {
		merged[k] = v
	}
	merged["component"] = component
	return logrus.WithFields(merged)
}
