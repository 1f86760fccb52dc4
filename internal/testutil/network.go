// Package testutil 여러 패키지의 테스트가 함께 사용하는 도우미입니다.
package testutil

import (
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// FreePort 현재 비어 있는 로컬 TCP 포트를 찾아 반환합니다.
func FreePort(tb testing.TB) int {
	tb.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(tb, err, "빈 포트를 찾지 못했습니다")
	defer l.Close()

	return l.Addr().(*net.TCPAddr).Port
}

// WaitListening port에 연결이 가능해질 때까지 기다립니다. timeout 안에 연결되지 않으면 테스트를 실패시킵니다.
func WaitListening(tb testing.TB, port int, timeout time.Duration) {
	tb.Helper()

	addr := net.JoinHostPort("127.0.0.1", strconv.Itoa(port))
	require.Eventually(tb, func() bool {
		conn, err := net.DialTimeout("tcp", addr, 100*time.Millisecond)
		if err != nil {
			return false
		}
		_ = conn.Close()
		return true
	}, timeout, 10*time.Millisecond, "서버가 %s에서 대기하지 않습니다", addr)
}
