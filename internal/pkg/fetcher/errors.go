package fetcher

import (
	"fmt"
	"net/http"

	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
)

const msgMaxRetriesExceeded = "최대 재시도 횟수를 초과했습니다"

var (
	// ErrMaxRetriesExceeded 재시도 횟수를 모두 소진했습니다.
	ErrMaxRetriesExceeded = apperrors.New(apperrors.Unavailable, msgMaxRetriesExceeded)

	// ErrResponseBodyTooLarge 응답 본문이 허용 크기를 초과했습니다.
	ErrResponseBodyTooLarge = apperrors.New(apperrors.InvalidInput, "응답 본문이 허용된 크기를 초과했습니다")
)

func newErrInvalidRequest(url string, cause error) error {
	return apperrors.Wrapf(cause, apperrors.InvalidInput, "HTTP 요청을 생성할 수 없습니다(URL: %s)", url)
}

func newErrMaxRetriesExceeded(cause error) error {
	if cause == nil {
		return ErrMaxRetriesExceeded
	}
	return apperrors.Wrap(cause, apperrors.Unavailable, msgMaxRetriesExceeded)
}

func newErrRetryAfterExceeded(retryAfter, maxDelay string) error {
	return apperrors.Newf(apperrors.Unavailable, "서버가 요구한 재시도 대기 시간(%s)이 최대 대기 시간(%s)을 초과했습니다", retryAfter, maxDelay)
}

func newErrResponseBodyTooLarge(limit int64) error {
	return apperrors.Wrapf(ErrResponseBodyTooLarge, apperrors.InvalidInput, "응답 본문 크기 제한(%d bytes) 초과", limit)
}

// statusErrorType 상태 코드를 에러 타입으로 분류합니다. 5xx, 429, 408은 일시적인 장애로 봅니다.
func statusErrorType(code int) apperrors.ErrorType {
	switch {
	case code >= 500, code == http.StatusTooManyRequests, code == http.StatusRequestTimeout:
		return apperrors.Unavailable
	case code == http.StatusNotFound, code == http.StatusGone:
		return apperrors.NotFound
	default:
		return apperrors.ExecutionFailed
	}
}

// HTTPStatusError 허용되지 않은 상태 코드의 응답입니다.
type HTTPStatusError struct {
	StatusCode  int
	Status      string
	URL         string
	Header      http.Header
	BodySnippet string

	// Cause 상태 코드로 분류된 AppError입니다.
	Cause error
}

func newHTTPStatusError(resp *http.Response, url, snippet string) *HTTPStatusError {
	return &HTTPStatusError{
		StatusCode:  resp.StatusCode,
		Status:      resp.Status,
		URL:         url,
		Header:      redactHeaders(resp.Header),
		BodySnippet: snippet,
		Cause:       apperrors.Newf(statusErrorType(resp.StatusCode), "HTTP 요청이 실패했습니다(상태 코드: %d)", resp.StatusCode),
	}
}

func (e *HTTPStatusError) Error() string {
	msg := fmt.Sprintf("HTTP %d (%s)", e.StatusCode, e.Status)
	if e.URL != "" {
		msg += " URL: " + e.URL
	}
	if e.BodySnippet != "" {
		msg += ", Body: " + e.BodySnippet
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *HTTPStatusError) Unwrap() error { return e.Cause }
