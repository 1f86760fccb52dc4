// Package middleware API 서버에 적용되는 Echo 미들웨어를 제공합니다.
//
// 적용 순서는 api.NewHTTPServer에 정의되어 있습니다.
package middleware
