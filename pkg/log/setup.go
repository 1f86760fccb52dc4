package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultDir        = "logs"
	defaultMaxSizeMB  = 100
	defaultMaxBackups = 20
)

var (
	setupOnce   sync.Once
	setupCloser io.Closer
	setupErr    error
)

// Setup 전역 로거를 구성합니다. 프로세스당 한 번만 실행되며, 이후 호출은 최초 결과를 그대로 반환합니다.
// 반환된 Closer는 종료 시 반드시 닫아야 합니다.
func Setup(opts Options) (io.Closer, error) {
	setupOnce.Do(func() {
		setupCloser, setupErr = setup(logrus.StandardLogger(), opts)
	})
	return setupCloser, setupErr
}

func setup(l *Logger, opts Options) (io.Closer, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("유효하지 않은 로그 설정: %w", err)
	}

	level := opts.Level
	if level == 0 {
		level = InfoLevel
	}
	l.SetLevel(level)
	l.SetReportCaller(opts.ReportCaller)

	// 실제 출력은 hook이 담당한다.
	l.SetFormatter(silentFormatter{})
	l.SetOutput(io.Discard)

	dir := opts.Dir
	if dir == "" {
		dir = defaultDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("로그 디렉토리 생성 실패: %w", err)
	}

	newFile := func(suffix string) *lumberjack.Logger {
		return &lumberjack.Logger{
			Filename:   filepath.Join(dir, opts.Name+suffix+".log"),
			MaxSize:    valueOr(opts.MaxSizeMB, defaultMaxSizeMB),
			MaxBackups: valueOr(opts.MaxBackups, defaultMaxBackups),
			MaxAge:     opts.MaxAge,
			LocalTime:  true,
		}
	}

	h := &hook{formatter: newTextFormatter(opts.CallerPathPrefix)}
	c := &closer{hook: h}

	mainFile := newFile("")
	h.mainWriter = mainFile
	c.files = append(c.files, mainFile)

	if opts.EnableCriticalLog {
		f := newFile(".critical")
		h.criticalWriter = f
		c.files = append(c.files, f)
	}
	if opts.EnableVerboseLog {
		f := newFile(".verbose")
		h.verboseWriter = f
		c.files = append(c.files, f)
	}
	if opts.EnableConsoleLog {
		h.consoleWriter = os.Stdout
	}

	l.AddHook(h)
	logrus.RegisterExitHandler(func() { _ = c.Close() })

	return c, nil
}

func newTextFormatter(callerPathPrefix string) *logrus.TextFormatter {
	return &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		CallerPrettyfier: func(frame *runtime.Frame) (function string, file string) {
			function = frame.Function + "(line:" + strconv.Itoa(frame.Line) + ")"
			if callerPathPrefix != "" {
				if rest, ok := strings.CutPrefix(function, callerPathPrefix); ok {
					function = "..." + rest
				}
			}
			return function, ""
		},
	}
}

func valueOr(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

// silentFormatter io.Discard로 버려질 출력의 포맷팅 비용을 없앱니다.
type silentFormatter struct{}

func (silentFormatter) Format(*logrus.Entry) ([]byte, error) { return nil, nil }

// closer hook을 먼저 닫아 로그 유입을 막은 뒤 로그 파일을 닫습니다. 여러 번 호출해도 안전합니다.
type closer struct {
	files  []io.Closer
	hook   *hook
	closed atomic.Bool
}

func (c *closer) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}

	if c.hook != nil {
		c.hook.close()
	}

	var errs error
	for _, f := range c.files {
		if err := f.Close(); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	return errs
}
