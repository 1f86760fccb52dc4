// Package v1 카탈로그 API v1 라우트를 등록합니다.
package v1

import (
	"github.com/labstack/echo/v4"

	"github.com/darkkaiser/catalog-server/internal/service/api/v1/handler"
)

// RegisterRoutes /api/v1 하위 라우트를 등록합니다.
func RegisterRoutes(e *echo.Echo, h *handler.Handler) {
	g := e.Group("/api/v1")

	g.GET("/products", h.ListProducts)
	g.GET("/products/:id", h.GetProduct)
	g.GET("/categories", h.ListCategories)

	g.GET("/catalog/export.csv", h.ExportCatalog)
	g.GET("/catalog/status", h.CatalogStatus)
	g.POST("/catalog/reload", h.ReloadCatalog)
	g.DELETE("/catalog/cache", h.ClearCatalogCache)

	g.POST("/cart/quote", h.QuoteCart)

	g.POST("/contact", h.SubmitContact)
}
