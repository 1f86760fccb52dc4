package log

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEntry(level Level, msg string) *Entry {
	e := logrus.NewEntry(logrus.New())
	e.Level = level
	e.Message = msg
	return e
}

func TestHook_Fire_Routing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		level        Level
		withVerbose  bool
		wantMain     bool
		wantCritical bool
		wantVerbose  bool
	}{
		{name: "ERROR는 main과 critical에 기록", level: ErrorLevel, withVerbose: true, wantMain: true, wantCritical: true},
		{name: "INFO는 main에만 기록", level: InfoLevel, withVerbose: true, wantMain: true},
		{name: "DEBUG는 verbose에만 기록", level: DebugLevel, withVerbose: true, wantVerbose: true},
		{name: "verbose가 없으면 DEBUG도 main에 기록", level: DebugLevel, withVerbose: false, wantMain: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var mainBuf, criticalBuf, verboseBuf, consoleBuf bytes.Buffer
			h := &hook{
				mainWriter:     &mainBuf,
				criticalWriter: &criticalBuf,
				consoleWriter:  &consoleBuf,
				formatter:      &logrus.TextFormatter{DisableTimestamp: true},
			}
			if tt.withVerbose {
				h.verboseWriter = &verboseBuf
			}

			require.NoError(t, h.Fire(newTestEntry(tt.level, "카탈로그 로드")))

			assert.Equal(t, tt.wantMain, mainBuf.Len() > 0, "main")
			assert.Equal(t, tt.wantCritical, criticalBuf.Len() > 0, "critical")
			assert.Equal(t, tt.wantVerbose, verboseBuf.Len() > 0, "verbose")
			assert.Contains(t, consoleBuf.String(), "카탈로그 로드")
		})
	}
}

func TestHook_ClosedDropsEntries(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := &hook{mainWriter: &buf, formatter: &logrus.TextFormatter{}}
	h.close()

	require.NoError(t, h.Fire(newTestEntry(InfoLevel, "무시")))
	assert.Zero(t, buf.Len())
}

func TestOptions_Validate(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{name: "성공: 운영 프로필", opts: NewProductionOptions("catalog-server")},
		{name: "성공: 개발 프로필", opts: NewDevelopmentOptions("catalog-server")},
		{name: "실패: 이름 누락", opts: Options{}, wantErr: true},
		{name: "실패: 디렉토리가 파일", opts: Options{Name: "app", Dir: file}, wantErr: true},
		{name: "실패: 음수 보관 일수", opts: Options{Name: "app", MaxAge: -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.opts.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSetup_WritesFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	l := logrus.New()

	c, err := setup(l, Options{
		Name:              "catalog-test",
		Dir:               dir,
		Level:             TraceLevel,
		EnableCriticalLog: true,
		EnableVerboseLog:  true,
	})
	require.NoError(t, err)

	l.Info("정상 동작")
	l.Error("장애 발생")
	l.Debug("상세 정보")
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())

	read := func(name string) string {
		b, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		return string(b)
	}

	mainLog := read("catalog-test.log")
	assert.Contains(t, mainLog, "정상 동작")
	assert.Contains(t, mainLog, "장애 발생")
	assert.NotContains(t, mainLog, "상세 정보")
	assert.Contains(t, read("catalog-test.critical.log"), "장애 발생")
	assert.Contains(t, read("catalog-test.verbose.log"), "상세 정보")
}

func TestWithComponentAndFields(t *testing.T) {
	t.Parallel()

	e := WithComponentAndFields("catalog.loader", Fields{"component": "overridden", "rows": 3})
	assert.Equal(t, "catalog.loader", e.Data["component"])
	assert.Equal(t, 3, e.Data["rows"])
	assert.Equal(t, "catalog.loader", WithComponent("catalog.loader").Data["component"])
}
