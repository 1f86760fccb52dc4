package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// hook 로그 레벨에 따라 Entry를 각 Writer로 분배합니다.
//
//   - console: 모든 레벨
//   - critical: ERROR 이상
//   - verbose: DEBUG 이하 (verbose가 설정되면 main에는 기록하지 않음)
//   - main: INFO 이상, verbose가 없으면 모든 레벨
type hook struct {
	mainWriter     io.Writer
	criticalWriter io.Writer
	verboseWriter  io.Writer
	consoleWriter  io.Writer

	formatter Formatter

	mu     sync.RWMutex
	closed bool
}

func (h *hook) Levels() []Level { return AllLevels }

func (h *hook) Fire(entry *Entry) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return nil
	}

	msg, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	var firstErr error
	write := func(w io.Writer, name string) {
		if w == nil {
			return
		}
		if _, err := w.Write(msg); err != nil {
			fmt.Fprintf(os.Stderr, "[LOG] %s 로그 쓰기 실패: %v\n", name, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if h.consoleWriter != nil {
		// 콘솔 쓰기 실패는 반환하지 않는다.
		_, _ = h.consoleWriter.Write(msg)
	}

	if entry.Level <= ErrorLevel {
		write(h.criticalWriter, "critical")
	}

	if entry.Level >= DebugLevel && h.verboseWriter != nil {
		write(h.verboseWriter, "verbose")
		return firstErr
	}

	write(h.mainWriter, "main")

	return firstErr
}

func (h *hook) close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
}
