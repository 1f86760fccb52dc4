package httputil

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
	"github.com/darkkaiser/catalog-server/internal/service/api/constants"
	applog "github.com/darkkaiser/catalog-server/pkg/log"
)

// ErrorHandler Echo의 전역 에러 핸들러입니다.
//
// echo.HTTPError는 그대로, 애플리케이션 에러(AppError)는 에러 타입에 맞는 상태 코드로 변환하여
// ErrorResponse JSON으로 응답합니다. 내부 에러의 메시지는 클라이언트에 노출하지 않습니다.
func ErrorHandler(err error, c echo.Context) {
	code, message := resolve(err)

	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}
	if code >= http.StatusInternalServerError {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error("HTTP 5xx: 서버 내부 오류가 발생했습니다")
	} else if code >= http.StatusBadRequest {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn("HTTP 4xx: 클라이언트 요청 오류")
	}

	// 이중 응답 방지
	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	_ = c.JSON(code, ErrorResponse{ResultCode: code, Message: message})
}

func resolve(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		message := http.StatusText(he.Code)
		switch m := he.Message.(type) {
		case string:
			message = m
		case ErrorResponse:
			message = m.Message
		}
		if he.Code == http.StatusNotFound && message == http.StatusText(http.StatusNotFound) {
			message = constants.ErrMsgNotFound
		}
		return he.Code, message
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError, constants.ErrMsgInternalServer
	}

	switch apperrors.UnderlyingType(err) {
	case apperrors.InvalidInput:
		return http.StatusBadRequest, appErr.Message()
	case apperrors.NotFound:
		return http.StatusNotFound, appErr.Message()
	case apperrors.Timeout:
		return http.StatusGatewayTimeout, constants.ErrMsgRequestTimeout
	case apperrors.Unavailable:
		return http.StatusServiceUnavailable, constants.ErrMsgServiceUnavailable
	default:
		return http.StatusInternalServerError, constants.ErrMsgInternalServer
	}
}
