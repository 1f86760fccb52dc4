package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/darkkaiser/catalog-server/internal/catalog"
	"github.com/darkkaiser/catalog-server/internal/catalog/domain"
	"github.com/darkkaiser/catalog-server/internal/service/api/constants"
	"github.com/darkkaiser/catalog-server/internal/service/api/httputil"
	applog "github.com/darkkaiser/catalog-server/pkg/log"
)

// ProductsResponse 상품 목록 응답입니다.
type ProductsResponse struct {
	Products []domain.Product `json:"products"`
	Count    int              `json:"count"`
}

// CategoriesResponse 카테고리 목록 응답입니다. 첫 번째 항목은 항상 "All"입니다.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// ListProducts godoc
// @Summary 상품 목록 조회
// @Description 카테고리, 검색어, 정렬 기준으로 상품 목록을 조회합니다.
// @Tags Catalog
// @Produce json
// @Param category query string false "카테고리 (All이면 전체)"
// @Param q query string false "이름, 설명, 브랜드 검색어"
// @Param sort query string false "정렬 기준" Enums(name-asc, name-desc, price-asc, price-desc, rating-desc, popularity)
// @Param reload query bool false "원본을 다시 로드한 뒤 조회"
// @Success 200 {object} ProductsResponse
// @Failure 400 {object} httputil.ErrorResponse
// @Router /api/v1/products [get]
func (h *Handler) ListProducts(c echo.Context) error {
	key := domain.SortKey(c.QueryParam("sort"))
	if key != "" && !key.Known() {
		return httputil.NewBadRequestError(constants.ErrMsgInvalidSortKey)
	}

	reload, err := parseBool(c.QueryParam("reload"))
	if err != nil {
		return httputil.NewBadRequestError("reload는 true 또는 false여야 합니다")
	}

	products := h.catalog.Find(c.Request().Context(), catalog.Query{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("q"),
		Sort:     key,
		Reload:   reload,
	})

	return c.JSON(http.StatusOK, ProductsResponse{Products: products, Count: len(products)})
}

// GetProduct godoc
// @Summary 상품 조회
// @Tags Catalog
// @Produce json
// @Param id path string true "상품 ID"
// @Success 200 {object} domain.Product
// @Failure 404 {object} httputil.ErrorResponse
// @Router /api/v1/products/{id} [get]
func (h *Handler) GetProduct(c echo.Context) error {
	p, ok := h.catalog.ProductByID(c.Request().Context(), c.Param("id"))
	if !ok {
		return httputil.NewNotFoundError(constants.ErrMsgProductNotFound)
	}
	return c.JSON(http.StatusOK, p)
}

// ListCategories godoc
// @Summary 카테고리 목록 조회
// @Tags Catalog
// @Produce json
// @Success 200 {object} CategoriesResponse
// @Router /api/v1/categories [get]
func (h *Handler) ListCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, CategoriesResponse{Categories: h.catalog.Categories(c.Request().Context(), false)})
}

// ExportCatalog godoc
// @Summary 카탈로그 CSV 내보내기
// @Description 다시 로드할 수 있는 원본 형식의 CSV를 내려받습니다.
// @Tags Catalog
// @Produce text/csv
// @Success 200 {string} string
// @Failure 500 {object} httputil.ErrorResponse
// @Router /api/v1/catalog/export.csv [get]
func (h *Handler) ExportCatalog(c echo.Context) error {
	data, err := h.catalog.ExportCSV(c.Request().Context())
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="products.csv"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", data)
}

// CatalogStatus godoc
// @Summary 카탈로그 캐시 상태 조회
// @Tags Catalog
// @Produce json
// @Success 200 {object} catalog.Snapshot
// @Router /api/v1/catalog/status [get]
func (h *Handler) CatalogStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.Snapshot())
}

// ReloadCatalog godoc
// @Summary 카탈로그 다시 로드
// @Description 원본을 강제로 다시 로드합니다. 실패하면 샘플 목록이 제공되며 state가 fallback이 됩니다.
// @Tags Catalog
// @Produce json
// @Success 200 {object} catalog.Snapshot
// @Router /api/v1/catalog/reload [post]
func (h *Handler) ReloadCatalog(c echo.Context) error {
	snap := h.catalog.Reload(c.Request().Context())

	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"state":      snap.State.String(),
		"products":   snap.ProductCount,
		"generation": snap.Generation,
		"remote_ip":  c.RealIP(),
	}).Info("API 요청으로 카탈로그를 다시 로드했습니다")

	return c.JSON(http.StatusOK, snap)
}

// ClearCatalogCache godoc
// @Summary 카탈로그 캐시 비우기
// @Description 다음 조회 시 원본을 다시 로드합니다.
// @Tags Catalog
// @Produce json
// @Success 200 {object} httputil.SuccessResponse
// @Router /api/v1/catalog/cache [delete]
func (h *Handler) ClearCatalogCache(c echo.Context) error {
	h.catalog.ClearCache()
	return httputil.Success(c)
}

func parseBool(s string) (bool, error) {
	if s == "" {
		return false, nil
	}
	return strconv.ParseBool(s)
}
