// Package httputil API 응답 형식과 전역 에러 핸들러를 제공합니다.
package httputil

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorResponse 표준 에러 응답입니다.
type ErrorResponse struct {
	ResultCode int    `json:"result_code" example:"400"`
	Message    string `json:"message" example:"잘못된 요청입니다"`
}

// SuccessResponse 본문이 필요 없는 작업의 성공 응답입니다.
type SuccessResponse struct {
	ResultCode int    `json:"result_code" example:"0"`
	Message    string `json:"message" example:"성공"`
}

func newHTTPError(code int, message string) error {
	return echo.NewHTTPError(code, ErrorResponse{ResultCode: code, Message: message})
}

// NewBadRequestError 400 Bad Request 에러를 생성합니다.
func NewBadRequestError(message string) error {
	return newHTTPError(http.StatusBadRequest, message)
}

// NewNotFoundError 404 Not Found 에러를 생성합니다.
func NewNotFoundError(message string) error {
	return newHTTPError(http.StatusNotFound, message)
}

// NewTooManyRequestsError 429 Too Many Requests 에러를 생성합니다.
func NewTooManyRequestsError(message string) error {
	return newHTTPError(http.StatusTooManyRequests, message)
}

// NewInternalServerError 500 Internal Server Error 에러를 생성합니다.
func NewInternalServerError(message string) error {
	return newHTTPError(http.StatusInternalServerError, message)
}

// Success 표준 성공 응답(200 OK)을 반환합니다.
func Success(c echo.Context) error {
	return c.JSON(http.StatusOK, SuccessResponse{ResultCode: 0, Message: "성공"})
}
