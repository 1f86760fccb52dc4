package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/darkkaiser/catalog-server/internal/cart"
	"github.com/darkkaiser/catalog-server/internal/service/api/constants"
	"github.com/darkkaiser/catalog-server/internal/service/api/httputil"
)

// QuoteRequest 장바구니 견적 요청입니다.
type QuoteRequest struct {
	Items []cart.Line `json:"items"`
}

// QuoteCart godoc
// @Summary 장바구니 견적 계산
// @Description 카탈로그 가격으로 장바구니 합계를 계산합니다. 카탈로그에 없는 상품은 unknownIds로 보고됩니다.
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body QuoteRequest true "장바구니 항목"
// @Success 200 {object} cart.Quote
// @Failure 400 {object} httputil.ErrorResponse
// @Router /api/v1/cart/quote [post]
func (h *Handler) QuoteCart(c echo.Context) error {
	var req QuoteRequest
	if err := c.Bind(&req); err != nil {
		return httputil.NewBadRequestError(constants.ErrMsgInvalidJSON)
	}
	if len(req.Items) == 0 {
		return httputil.NewBadRequestError(constants.ErrMsgCartLinesRequired)
	}

	return c.JSON(http.StatusOK, cart.NewQuote(c.Request().Context(), h.catalog, req.Items))
}
